// Package netlist rewrites NMOS instance lines in ngspice netlists so
// that every sky130_fd_pr__nfet_01v8__model reference carries the bin
// suffix matching its geometry.
package netlist

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/michele-dei/SkyWater130-BSIM4/internal/consts"
)

type LineKind int

const (
	LineOther    LineKind = iota // not an NMOS instance line, passed through
	LineUnbinned                 // instance referencing the bare model name
	LineBinned                   // instance already carrying a .N suffix
)

// Instance is one tokenized NMOS instance line. Length and Width are
// in micrometers; Bin is only meaningful for LineBinned.
type Instance struct {
	Kind   LineKind
	Bin    int
	Length float64
	Width  float64
}

// One pattern recognizes both shapes: instance name starting with M,
// four net tokens, the model name with an optional numeric suffix,
// then l= and w= values.
var instancePattern = regexp.MustCompile(
	`^\s*M\S+\s+\S+\s+\S+\s+\S+\s+\S+\s+` +
		regexp.QuoteMeta(consts.NFet01v8Model) +
		`(?:\.(\d+))?\s+l=\s*(\S+)\s+w=\s*(\S+)`)

// binnedModelPattern matches the model token with its suffix, for
// suffix-only replacement on correction.
var binnedModelPattern = regexp.MustCompile(regexp.QuoteMeta(consts.NFet01v8Model) + `\.\d+`)

// ParseMicrons parses an l= or w= value into micrometers. Geometry
// values in sky130 netlists are given in micrometers, optionally with
// an explicit u suffix, which is stripped before parsing.
func ParseMicrons(val string) (float64, error) {
	trimmed := strings.TrimSuffix(val, "u")
	num, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value format: %s", val)
	}
	return num, nil
}

// Tokenize classifies one netlist line. Lines that do not match the
// instance shape come back as LineOther with no error; a matching line
// with an unparseable geometry value fails.
func Tokenize(line string) (Instance, error) {
	m := instancePattern.FindStringSubmatch(line)
	if m == nil {
		return Instance{Kind: LineOther}, nil
	}

	l, err := ParseMicrons(m[2])
	if err != nil {
		return Instance{}, fmt.Errorf("error parsing L in line: %s. Details: %v", strings.TrimSpace(line), err)
	}
	w, err := ParseMicrons(m[3])
	if err != nil {
		return Instance{}, fmt.Errorf("error parsing W in line: %s. Details: %v", strings.TrimSpace(line), err)
	}

	inst := Instance{Kind: LineUnbinned, Length: l, Width: w}
	if m[1] != "" {
		suffix, err := strconv.Atoi(m[1])
		if err != nil {
			return Instance{}, fmt.Errorf("error parsing bin suffix in line: %s. Details: %v", strings.TrimSpace(line), err)
		}
		inst.Kind = LineBinned
		inst.Bin = suffix
	}
	return inst, nil
}
