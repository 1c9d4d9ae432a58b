package netlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const unbinnedLine = "M1 d g s b sky130_fd_pr__nfet_01v8__model l=1u w=1u"

func TestTokenize(t *testing.T) {
	cases := []struct {
		line string
		kind LineKind
		bin  int
		l, w float64
	}{
		{unbinnedLine, LineUnbinned, 0, 1, 1},
		{"M2 d g s b sky130_fd_pr__nfet_01v8__model.5 l=0.5u w=2u", LineBinned, 5, 0.5, 2},
		{"  MN1 out in 0 0 sky130_fd_pr__nfet_01v8__model l= 20 w= 7", LineUnbinned, 0, 20, 7},
		{"* comment line", LineOther, 0, 0, 0},
		{"R1 a b 1k", LineOther, 0, 0, 0},
		{"", LineOther, 0, 0, 0},
		{"X1 d g s b sky130_fd_pr__pfet_01v8__model l=1u w=1u", LineOther, 0, 0, 0},
	}
	for _, c := range cases {
		inst, err := Tokenize(c.line)
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", c.line, err)
		}
		if inst.Kind != c.kind {
			t.Errorf("Tokenize(%q) kind = %d, want %d", c.line, inst.Kind, c.kind)
		}
		if c.kind == LineOther {
			continue
		}
		if inst.Length != c.l || inst.Width != c.w {
			t.Errorf("Tokenize(%q) L=%g W=%g, want L=%g W=%g", c.line, inst.Length, inst.Width, c.l, c.w)
		}
		if c.kind == LineBinned && inst.Bin != c.bin {
			t.Errorf("Tokenize(%q) bin = %d, want %d", c.line, inst.Bin, c.bin)
		}
	}
}

func TestTokenizeMalformedValue(t *testing.T) {
	if _, err := Tokenize("M1 d g s b sky130_fd_pr__nfet_01v8__model l=abc w=1u"); err == nil {
		t.Fatal("expect parse error for malformed L")
	}
}

func TestRewriteLineUnbinned(t *testing.T) {
	newLine, action, err := RewriteLine(unbinnedLine)
	if err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	// L=1, W=1 -> length bin 4, width bin 6 -> 4 + 9*6 = 58
	if !strings.Contains(newLine, "sky130_fd_pr__nfet_01v8__model.58") {
		t.Errorf("unexpected rewrite: %q", newLine)
	}
	if !strings.HasPrefix(action, "Binned instance:") {
		t.Errorf("unexpected action: %q", action)
	}
}

func TestRewriteLineAlreadyCorrect(t *testing.T) {
	// W=7, L=20 -> bin 0
	line := "M3  d g s b  sky130_fd_pr__nfet_01v8__model.0 l=20u w=7u\n"
	newLine, action, err := RewriteLine(line)
	if err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if newLine != line {
		t.Errorf("already-correct line changed: %q -> %q", line, newLine)
	}
	if !strings.HasPrefix(action, "Instance already binned correctly:") {
		t.Errorf("unexpected action: %q", action)
	}
}

func TestRewriteLineCorrection(t *testing.T) {
	// W=7, L=20 -> bin 0, so suffix 3 is wrong
	line := "M3 d g s b sky130_fd_pr__nfet_01v8__model.3 l=20u w=7u"
	newLine, action, err := RewriteLine(line)
	if err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if !strings.Contains(newLine, "sky130_fd_pr__nfet_01v8__model.0 ") {
		t.Errorf("suffix not corrected: %q", newLine)
	}
	if !strings.HasPrefix(action, "Corrected binning:") {
		t.Errorf("unexpected action: %q", action)
	}
	// re-running classification on the corrected line reports already correct
	_, action, err = RewriteLine(newLine)
	if err != nil {
		t.Fatalf("second rewrite: %v", err)
	}
	if !strings.HasPrefix(action, "Instance already binned correctly:") {
		t.Errorf("correction not stable: %q", action)
	}
}

func TestRewriteLinePreservesWhitespace(t *testing.T) {
	line := "  M4   d  g  s  b   sky130_fd_pr__nfet_01v8__model   l=1u   w=1u  extra\n"
	newLine, _, err := RewriteLine(line)
	if err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	want := strings.Replace(line, "sky130_fd_pr__nfet_01v8__model", "sky130_fd_pr__nfet_01v8__model.58", 1)
	if newLine != want {
		t.Errorf("whitespace not preserved:\n got %q\nwant %q", newLine, want)
	}
}

func writeNetlist(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.spice")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRewriteFile(t *testing.T) {
	content := "* test netlist\n" +
		unbinnedLine + "\n" +
		"R1 a b 1k\n" +
		"M2 d g s b sky130_fd_pr__nfet_01v8__model.3 l=20u w=7u\n"
	path := writeNetlist(t, content)

	res, err := RewriteFile(path, false)
	if err != nil {
		t.Fatalf("RewriteFile: %v", err)
	}
	if len(res.Actions) != 2 {
		t.Fatalf("actions = %d, want 2: %v", len(res.Actions), res.Actions)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "* test netlist\n" +
		"M1 d g s b sky130_fd_pr__nfet_01v8__model.58 l=1u w=1u\n" +
		"R1 a b 1k\n" +
		"M2 d g s b sky130_fd_pr__nfet_01v8__model.0 l=20u w=7u\n"
	if string(got) != want {
		t.Errorf("rewritten file:\n got %q\nwant %q", got, want)
	}

	// second run is a no-op
	res, err = RewriteFile(path, false)
	if err != nil {
		t.Fatalf("second RewriteFile: %v", err)
	}
	again, _ := os.ReadFile(path)
	if string(again) != want {
		t.Errorf("rewrite not idempotent:\n got %q\nwant %q", again, want)
	}
	for _, a := range res.Actions {
		if !strings.HasPrefix(a, "Instance already binned correctly:") {
			t.Errorf("unexpected second-run action: %q", a)
		}
	}
}

func TestRewriteFileOutOfDomainLeavesFileUntouched(t *testing.T) {
	content := unbinnedLine + "\n" +
		"M9 d g s b sky130_fd_pr__nfet_01v8__model l=150u w=1u\n"
	path := writeNetlist(t, content)

	if _, err := RewriteFile(path, false); err == nil {
		t.Fatal("expect out-of-domain error")
	}
	got, _ := os.ReadFile(path)
	if string(got) != content {
		t.Errorf("file modified on failure:\n got %q\nwant %q", got, content)
	}
}

func TestRewriteFileBackup(t *testing.T) {
	content := unbinnedLine + "\n"
	path := writeNetlist(t, content)

	res, err := RewriteFile(path, true)
	if err != nil {
		t.Fatalf("RewriteFile: %v", err)
	}
	if res.BackupPath == "" {
		t.Fatal("no backup path recorded")
	}
	backup, err := os.ReadFile(res.BackupPath)
	if err != nil {
		t.Fatalf("backup not created: %v", err)
	}
	if string(backup) != content {
		t.Errorf("backup differs from original:\n got %q\nwant %q", backup, content)
	}
}

func TestRewriteFileNotFound(t *testing.T) {
	if _, err := RewriteFile(filepath.Join(t.TempDir(), "missing.spice"), false); err == nil {
		t.Fatal("expect not-found error")
	}
}
