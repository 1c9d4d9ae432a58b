package netlist

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/michele-dei/SkyWater130-BSIM4/internal/consts"
	"github.com/michele-dei/SkyWater130-BSIM4/pkg/bins"
)

// Result reports a completed file rewrite: one action string per
// recognized instance line, in file order, plus the backup path when a
// backup was requested.
type Result struct {
	Actions    []string
	BackupPath string
}

// RewriteLine applies the binning rule to a single line. The returned
// action is empty for pass-through lines. Already-correct lines come
// back byte-identical; a wrong suffix is corrected in place, touching
// only the numeric suffix.
func RewriteLine(line string) (string, string, error) {
	inst, err := Tokenize(line)
	if err != nil {
		return "", "", err
	}

	switch inst.Kind {
	case LineOther:
		return line, "", nil

	case LineUnbinned:
		bin, err := bins.NmosBin(inst.Width, inst.Length)
		if err != nil {
			return "", "", fmt.Errorf("error calculating bin for line: %s. Details: %v", strings.TrimSpace(line), err)
		}
		binned := fmt.Sprintf("%s.%d", consts.NFet01v8Model, bin)
		newLine := strings.Replace(line, consts.NFet01v8Model, binned, 1)
		action := fmt.Sprintf("Binned instance: %s -> %s", strings.TrimSpace(line), strings.TrimSpace(newLine))
		return newLine, action, nil

	default: // LineBinned
		bin, err := bins.NmosBin(inst.Width, inst.Length)
		if err != nil {
			return "", "", fmt.Errorf("error calculating bin for line: %s. Details: %v", strings.TrimSpace(line), err)
		}
		if inst.Bin == bin {
			return line, fmt.Sprintf("Instance already binned correctly: %s", strings.TrimSpace(line)), nil
		}
		binned := fmt.Sprintf("%s.%d", consts.NFet01v8Model, bin)
		newLine := binnedModelPattern.ReplaceAllString(line, binned)
		action := fmt.Sprintf("Corrected binning: %s -> %s", strings.TrimSpace(line), strings.TrimSpace(newLine))
		return newLine, action, nil
	}
}

// RewriteFile rebins every NMOS instance in the netlist at path,
// overwriting it in place. The whole replacement content is built in
// memory first, so any parse or classification failure leaves the file
// untouched. With backup set, the original is first copied to
// path.<YYYYMMDD_HHMMSS>; two backups within the same second overwrite
// each other.
func RewriteFile(path string, backup bool) (*Result, error) {
	res := &Result{}

	if backup {
		res.BackupPath = fmt.Sprintf("%s.%s", path, time.Now().Format("20060102_150405"))
		if err := copyFile(path, res.BackupPath); err != nil {
			return nil, fmt.Errorf("error during backup of netlist file: %w", err)
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("netlist file '%s' not found", path)
		}
		return nil, fmt.Errorf("error reading netlist file: %w", err)
	}

	lines := strings.SplitAfter(string(content), "\n")
	modified := make([]string, 0, len(lines))
	for _, line := range lines {
		newLine, action, err := RewriteLine(line)
		if err != nil {
			return nil, err
		}
		modified = append(modified, newLine)
		if action != "" {
			res.Actions = append(res.Actions, action)
		}
	}

	if err := os.WriteFile(path, []byte(strings.Join(modified, "")), 0o644); err != nil {
		return nil, fmt.Errorf("error writing netlist file: %w", err)
	}
	return res, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("netlist file '%s' not found", src)
		}
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
