package bins

import (
	"errors"
	"testing"
)

func TestNmosBinKnownGeometries(t *testing.T) {
	cases := []struct {
		w, l float64
		want int
	}{
		{7.0, 20.0, 0},     // both at lower bounds of bin 0
		{0.60, 1.5, 112},   // length bin 4, width bin 12
		{1.0, 1.0, 58},     // length bin 4, width bin 6
		{0.36, 0.15, 179},  // smallest geometry, last bins
		{99.99, 99.99, 0},  // just under the upper bounds
		{0.42, 0.25, 159},  // width bin 17, length bin 6, which owns its lower bound
	}
	for _, c := range cases {
		got, err := NmosBin(c.w, c.l)
		if err != nil {
			t.Fatalf("NmosBin(%g, %g): %v", c.w, c.l, err)
		}
		if got != c.want {
			t.Errorf("NmosBin(%g, %g) = %d, want %d", c.w, c.l, got, c.want)
		}
	}
}

func TestNmosBinOutOfDomain(t *testing.T) {
	cases := []struct{ w, l float64 }{
		{7.0, 150},   // length too long
		{7.0, 100},   // upper bound is exclusive
		{7.0, 0.149}, // length too short
		{150, 20},    // width too wide
		{100, 20},    // upper bound is exclusive
		{0.35, 20},   // width too narrow
	}
	for _, c := range cases {
		if _, err := NmosBin(c.w, c.l); !errors.Is(err, ErrOutOfDomain) {
			t.Errorf("NmosBin(%g, %g): want ErrOutOfDomain, got %v", c.w, c.l, err)
		}
	}
}

// Every value in the domain must land in exactly one interval, and the
// combined bin must stay within [0, 179].
func TestIntervalsPartitionDomain(t *testing.T) {
	tables := []struct {
		name      string
		intervals []Interval
		lo, hi    float64
	}{
		{"length", LengthIntervals, 0.15, 100},
		{"width", WidthIntervals, 0.36, 100},
	}
	for _, tb := range tables {
		for v := tb.lo; v < tb.hi; v += 0.01 {
			matches := 0
			for _, iv := range tb.intervals {
				if iv.Lower <= v && v < iv.Upper {
					matches++
				}
			}
			if matches != 1 {
				t.Fatalf("%s table: value %g matched %d intervals", tb.name, v, matches)
			}
		}
	}
}

func TestNmosBinRange(t *testing.T) {
	for _, wi := range WidthIntervals {
		for _, li := range LengthIntervals {
			got, err := NmosBin(wi.Lower, li.Lower)
			if err != nil {
				t.Fatalf("NmosBin(%g, %g): %v", wi.Lower, li.Lower, err)
			}
			if got < 0 || got > 179 {
				t.Errorf("NmosBin(%g, %g) = %d out of range", wi.Lower, li.Lower, got)
			}
			want := li.Index + 9*wi.Index
			if got != want {
				t.Errorf("NmosBin(%g, %g) = %d, want %d", wi.Lower, li.Lower, got, want)
			}
		}
	}
}

// Boundary ownership: each interval owns its lower bound, the interval
// above does not.
func TestClassifyBoundaries(t *testing.T) {
	if k, err := Classify(20, LengthIntervals); err != nil || k != 0 {
		t.Errorf("Classify(20) = %d, %v; want bin 0", k, err)
	}
	if k, err := Classify(19.999, LengthIntervals); err != nil || k != 1 {
		t.Errorf("Classify(19.999) = %d, %v; want bin 1", k, err)
	}
	if k, err := Classify(0.6, WidthIntervals); err != nil || k != 12 {
		t.Errorf("Classify(0.6) = %d, %v; want bin 12", k, err)
	}
}
