// Package plotcsv draws ngspice simulation CSV data as line plots with
// engineering-prefix axis scaling.
package plotcsv

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Frame is one CSV file loaded column-wise.
type Frame struct {
	Name    string
	Headers []string
	Columns [][]float64
}

// CSVPath maps a .cir netlist path to its sibling CSV output path.
func CSVPath(cirPath string) string {
	return strings.TrimSuffix(cirPath, ".cir") + ".csv"
}

// LoadFrame reads a CSV file with a header row into columns.
func LoadFrame(csvPath string) (*Frame, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("CSV file '%s' not found", csvPath)
		}
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error parsing file %s: %v", csvPath, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("file %s has no data rows", csvPath)
	}

	frame := &Frame{Name: csvPath, Headers: records[0]}
	frame.Columns = make([][]float64, len(records[0]))
	for _, rec := range records[1:] {
		if len(rec) != len(frame.Headers) {
			return nil, fmt.Errorf("file %s has ragged rows", csvPath)
		}
		for i, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing file %s: %v", csvPath, err)
			}
			frame.Columns[i] = append(frame.Columns[i], v)
		}
	}
	return frame, nil
}

// Prefix is an engineering unit prefix with its scale factor.
type Prefix struct {
	Scale  float64
	Symbol string
}

// PrefixFor picks the prefix matching the mean absolute magnitude of
// the data, from femto up to tera. All-zero data keeps scale 1 so the
// values pass through unscaled.
func PrefixFor(data []float64) Prefix {
	abs := make([]float64, len(data))
	for i, v := range data {
		abs[i] = math.Abs(v)
	}
	magnitude := 0.0
	if len(abs) > 0 {
		magnitude = stat.Mean(abs, nil)
	}

	switch {
	case magnitude == 0:
		return Prefix{1, ""}
	case magnitude < 1e-12:
		return Prefix{1e-15, "f"}
	case magnitude < 1e-9:
		return Prefix{1e-12, "p"}
	case magnitude < 1e-6:
		return Prefix{1e-9, "n"}
	case magnitude < 1e-3:
		return Prefix{1e-6, "u"}
	case magnitude < 1:
		return Prefix{1e-3, "m"}
	case magnitude < 1e3:
		return Prefix{1, ""}
	case magnitude < 1e6:
		return Prefix{1e3, "k"}
	case magnitude < 1e9:
		return Prefix{1e6, "M"}
	case magnitude < 1e12:
		return Prefix{1e9, "G"}
	default:
		return Prefix{1e12, "T"}
	}
}

func scaledXYs(x, y []float64, px, py Prefix) plotter.XYs {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	xys := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		xys[i].X = x[i] / px.Scale
		xys[i].Y = y[i] / py.Scale
	}
	return xys
}

// Plot assembles all frames into one figure. In alternate mode columns
// pair up as X1,Y1,X2,Y2,...; otherwise the first column is the shared
// X and every other column is a curve. Axis values are divided by the
// engineering prefix gathered over all plotted data, and the prefix is
// shown in the axis label.
func Plot(frames []*Frame, title string, alternate bool) (*plot.Plot, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("no data to plot")
	}

	var allX, allY []float64
	for _, frame := range frames {
		if alternate {
			for i := 0; i+1 < len(frame.Columns); i += 2 {
				allX = append(allX, frame.Columns[i]...)
				allY = append(allY, frame.Columns[i+1]...)
			}
		} else {
			allX = append(allX, frame.Columns[0]...)
			for i := 1; i < len(frame.Columns); i++ {
				allY = append(allY, frame.Columns[i]...)
			}
		}
	}
	px := PrefixFor(allX)
	py := PrefixFor(allY)

	p := plot.New()
	p.Title.Text = title
	p.Add(plotter.NewGrid())

	var series []interface{}
	for iFrame, frame := range frames {
		if alternate {
			pair := 0
			for i := 0; i+1 < len(frame.Columns); i += 2 {
				pair++
				series = append(series,
					fmt.Sprintf("Y%d", pair),
					scaledXYs(frame.Columns[i], frame.Columns[i+1], px, py))
			}
		} else {
			x := frame.Columns[0]
			for i := 1; i < len(frame.Columns); i++ {
				series = append(series,
					fmt.Sprintf("%s (%d)", frame.Headers[i], iFrame+1),
					scaledXYs(x, frame.Columns[i], px, py))
			}
		}
	}
	if err := plotutil.AddLines(p, series...); err != nil {
		return nil, err
	}

	xName := frames[0].Headers[0]
	if px.Symbol != "" {
		xName = fmt.Sprintf("%s (%s)", xName, px.Symbol)
	}
	p.X.Label.Text = xName
	yName := "Y Values"
	if py.Symbol != "" {
		yName = fmt.Sprintf("%s (%s)", yName, py.Symbol)
	}
	p.Y.Label.Text = yName

	return p, nil
}

// SavePDF writes the figure as a 6x6 inch PDF next to the input,
// replacing the input extension, and returns the PDF path.
func SavePDF(p *plot.Plot, inputPath string) (string, error) {
	pdfPath := strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".pdf"
	if err := p.Save(6*vg.Inch, 6*vg.Inch, pdfPath); err != nil {
		return "", err
	}
	return pdfPath, nil
}
