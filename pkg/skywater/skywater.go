// Package skywater fetches and slices the SkyWater PDK device
// characterization tables.
package skywater

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/michele-dei/SkyWater130-BSIM4/internal/consts"
	"github.com/michele-dei/SkyWater130-BSIM4/pkg/rawdata"
)

// DataURL returns the raw GitHub URL of a characterization data file
// in the nfet_01v8 test directory.
func DataURL(file string) string {
	return consts.IVDataURLBase + "/" + file
}

// Download fetches url into destPath, creating the destination
// directory if needed.
func Download(url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("error downloading file: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("error downloading file: %s returned %s", url, resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return err
	}
	out, err := os.Create(destPath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// IVPoint is one gate-voltage/drain-current sample.
type IVPoint struct {
	V float64
	I float64
}

// ExtractIDVG filters the IV measurement table for rows at the given
// VDS and pairs gate voltage (column 4) with drain current (column 2).
// The IV data layout is VDS, ID, VBS, VGS per row.
func ExtractIDVG(rows [][]float64, vds float64) ([]IVPoint, error) {
	filtered := rawdata.FilterByFirstColumn(rows, vds)
	if len(filtered) == 0 {
		return nil, fmt.Errorf("no rows found for VDS=%g", vds)
	}
	points := make([]IVPoint, 0, len(filtered))
	for _, row := range filtered {
		if len(row) < 4 {
			return nil, fmt.Errorf("IV data row has %d columns, need 4", len(row))
		}
		points = append(points, IVPoint{V: row[3], I: row[1]})
	}
	return points, nil
}

// WriteCSV writes the characteristic as a two-column V,I CSV file.
func WriteCSV(points []IVPoint, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error writing to CSV file: %v", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write([]string{"V", "I"}); err != nil {
		f.Close()
		return err
	}
	for _, p := range points {
		rec := []string{
			strconv.FormatFloat(p.V, 'g', -1, 64),
			strconv.FormatFloat(p.I, 'g', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
