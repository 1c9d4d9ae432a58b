// Package rawdata handles ngspice raw output tables: whitespace-
// separated numeric columns, optionally paired with a .csv_heads
// header file.
package rawdata

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadTable parses a whitespace-separated numeric table, one row per
// line. Blank lines are skipped; any non-numeric field fails.
func LoadTable(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file '%s' not found", path)
		}
		return nil, err
	}
	defer f.Close()

	var rows [][]float64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid data format in '%s': %v", path, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// FilterByFirstColumn keeps the rows whose first column equals value.
func FilterByFirstColumn(rows [][]float64, value float64) [][]float64 {
	var out [][]float64
	for _, row := range rows {
		if len(row) > 0 && row[0] == value {
			out = append(out, row)
		}
	}
	return out
}

// ReadHeaders reads the single comma-separated header line of a
// .csv_heads file.
func ReadHeaders(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("headers file '%s' is empty", path)
	}
	return strings.Split(strings.TrimSpace(scanner.Text()), ","), nil
}

// DefaultHeaders builds Column1..ColumnN names from the field count of
// the raw file's first line.
func DefaultHeaders(rawPath string) ([]string, error) {
	f, err := os.Open(rawPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("raw data file '%s' not found", rawPath)
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("raw data file '%s' is empty", rawPath)
	}
	n := len(strings.Fields(scanner.Text()))
	headers := make([]string, n)
	for i := range headers {
		headers[i] = fmt.Sprintf("Column%d", i+1)
	}
	return headers, nil
}

// CombineResult reports a completed raw/header merge.
type CombineResult struct {
	OutputFile     string
	UsedDefaults   bool   // no .csv_heads file, Column1..N assigned
	RemovedHeaders bool   // .csv_heads deleted after the merge
	RemovedRaw     bool   // .raw deleted after the merge
	HeadersFile    string
	RawFile        string
}

// Combine merges <base>.raw with <base>.csv_heads into <base>.csv,
// where base is cirPath without its .cir extension. A missing header
// file falls back to default column names. The consumed header and raw
// files are removed after a successful merge.
func Combine(cirPath string) (*CombineResult, error) {
	base := strings.TrimSuffix(cirPath, ".cir")
	res := &CombineResult{
		OutputFile:  base + ".csv",
		HeadersFile: base + ".csv_heads",
		RawFile:     base + ".raw",
	}

	headers, err := ReadHeaders(res.HeadersFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		res.UsedDefaults = true
		headers, err = DefaultHeaders(res.RawFile)
		if err != nil {
			return nil, err
		}
	}

	rows, err := LoadTable(res.RawFile)
	if err != nil {
		return nil, err
	}

	out, err := os.Create(res.OutputFile)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(out)
	if err := w.Write(headers); err != nil {
		out.Close()
		return nil, err
	}
	record := make([]string, 0, len(headers))
	for _, row := range rows {
		record = record[:0]
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(record); err != nil {
			out.Close()
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		out.Close()
		return nil, err
	}
	if err := out.Close(); err != nil {
		return nil, err
	}

	if !res.UsedDefaults {
		if err := os.Remove(res.HeadersFile); err == nil {
			res.RemovedHeaders = true
		}
	}
	if err := os.Remove(res.RawFile); err == nil {
		res.RemovedRaw = true
	}
	return res, nil
}
