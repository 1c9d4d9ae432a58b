// Package bins assigns sky130 NMOS instances to geometry bins. Each
// device model variant covers one (width, length) rectangle; the bin
// index selects the variant whose rectangle contains the instance
// geometry.
package bins

import (
	"errors"
	"fmt"
)

// Interval is one half-open geometry range [Lower, Upper) in micrometers.
type Interval struct {
	Index int
	Lower float64
	Upper float64
}

// ErrOutOfDomain reports a geometry value outside every defined interval.
var ErrOutOfDomain = errors.New("value is outside the allowed intervals")

// LengthIntervals covers channel lengths from 0.15 um up to (not
// including) 100 um. Table order defines the first-match scan; the
// intervals are disjoint by construction.
var LengthIntervals = []Interval{
	{0, 20, 100},
	{1, 8, 20},
	{2, 4, 8},
	{3, 2, 4},
	{4, 1, 2},
	{5, 0.5, 1},
	{6, 0.25, 0.5},
	{7, 0.18, 0.25},
	{8, 0.15, 0.18},
}

// WidthIntervals covers channel widths from 0.36 um up to (not
// including) 100 um.
var WidthIntervals = []Interval{
	{0, 7, 100},
	{1, 5, 7},
	{2, 3, 5},
	{3, 2, 3},
	{4, 1.68, 2},
	{5, 1.26, 1.68},
	{6, 1.0, 1.26},
	{7, 0.84, 1.0},
	{8, 0.74, 0.84},
	{9, 0.65, 0.74},
	{10, 0.64, 0.65},
	{11, 0.61, 0.64},
	{12, 0.6, 0.61},
	{13, 0.58, 0.6},
	{14, 0.55, 0.58},
	{15, 0.54, 0.55},
	{16, 0.52, 0.54},
	{17, 0.42, 0.52},
	{18, 0.39, 0.42},
	{19, 0.36, 0.39},
}

// Classify returns the index of the first interval containing value.
// Lower bounds are inclusive, upper bounds exclusive. Values in no
// interval fail with ErrOutOfDomain; there is no default bin.
func Classify(value float64, intervals []Interval) (int, error) {
	for _, iv := range intervals {
		if iv.Lower <= value && value < iv.Upper {
			return iv.Index, nil
		}
	}
	return 0, fmt.Errorf("%w: %g", ErrOutOfDomain, value)
}

// NmosBin computes the bin index for an NMOS instance of width w and
// length l, both in micrometers. Width and length are classified
// independently; the combined index is lengthBin + 9*widthBin.
func NmosBin(w, l float64) (int, error) {
	kl, err := Classify(l, LengthIntervals)
	if err != nil {
		return 0, fmt.Errorf("length: %w", err)
	}
	kw, err := Classify(w, WidthIntervals)
	if err != nil {
		return 0, fmt.Errorf("width: %w", err)
	}
	return kl + 9*kw, nil
}
