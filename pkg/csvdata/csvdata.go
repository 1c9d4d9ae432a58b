// Package csvdata loads simulation-result CSV files and compares them
// by root mean square error.
package csvdata

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ErrTooFewColumns reports a CSV file without the requested column.
// Callers typically skip such files rather than abort.
var ErrTooFewColumns = errors.New("too few columns")

// ReadList reads CSV file paths from a text file, one per line,
// skipping blank lines.
func ReadList(txtPath string) ([]string, error) {
	f, err := os.Open(txtPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("text file '%s' not found", txtPath)
		}
		return nil, err
	}
	defer f.Close()

	var files []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			files = append(files, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return files, nil
}

// FixExtensions forces a .csv extension on every filename, returning
// the corrected list and the names that were changed. The input slice
// is not modified.
func FixExtensions(files []string) (fixed []string, changed []string) {
	fixed = make([]string, 0, len(files))
	for _, name := range files {
		ext := filepath.Ext(name)
		if strings.ToLower(ext) != ".csv" {
			corrected := strings.TrimSuffix(name, ext) + ".csv"
			fixed = append(fixed, corrected)
			changed = append(changed, name)
		} else {
			fixed = append(fixed, name)
		}
	}
	return fixed, changed
}

// ReadColumn reads column col (zero-based) of a CSV file with a header
// row into a float slice. Files with fewer columns than col+1 fail.
func ReadColumn(csvPath string, col int) ([]float64, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("CSV file '%s' not found", csvPath)
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error parsing file %s: %v", csvPath, err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("file %s is empty", csvPath)
	}
	if len(records[0]) < col+1 {
		return nil, fmt.Errorf("file %s has %w: want %d", csvPath, ErrTooFewColumns, col+1)
	}

	values := make([]float64, 0, len(records)-1)
	for _, rec := range records[1:] { // skip header
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing file %s: %v", csvPath, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// RMSE returns the root mean square error between two equally sized
// slices. Mismatched sizes give +Inf, empty slices give 0, and any NaN
// propagates.
func RMSE(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	if len(a) == 0 {
		return 0
	}
	if floats.HasNaN(a) || floats.HasNaN(b) {
		return math.NaN()
	}
	return floats.Distance(a, b, 2) / math.Sqrt(float64(len(a)))
}

// RMSELog10 returns the RMSE between the base-10 logarithms of two
// slices. Non-positive values make the result NaN since their
// logarithm is undefined.
func RMSELog10(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	if len(a) == 0 {
		return 0
	}
	if floats.HasNaN(a) || floats.HasNaN(b) || floats.Min(a) <= 0 || floats.Min(b) <= 0 {
		return math.NaN()
	}

	la := make([]float64, len(a))
	lb := make([]float64, len(b))
	for i := range a {
		la[i] = math.Log10(a[i])
		lb[i] = math.Log10(b[i])
	}
	return RMSE(la, lb)
}
