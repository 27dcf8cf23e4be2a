package yieldcurve

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for loading yield observations from CSV.
type CSVOptions struct {
	MaturityColumn string // Column name for maturities (default: "tau")
	YieldColumn    string // Column name for yields (default: "yield")
	HasHeader      bool   // Whether CSV has a header row (default: true)
	Delimiter      rune   // Field delimiter (default: ',')
	SkipRows       int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		MaturityColumn: "tau",
		YieldColumn:    "yield",
		HasHeader:      true,
		Delimiter:      ',',
	}
}

// LoadCSV loads (maturity, yield) observations from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) ([]float64, []float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads (maturity, yield) observations from an io.Reader.
// Rows with unparsable or missing values are skipped.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) ([]float64, []float64, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, nil, err
		}
	}

	// Column indices; without a header the first two columns are assumed
	// to be maturity then yield.
	tauIdx, yieldIdx := 0, 1
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, nil, err
		}
		tauIdx, yieldIdx = -1, -1
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case h == opts.MaturityColumn || (tauIdx == -1 && (h == "tau" || h == "maturity" || h == "Maturity")):
				tauIdx = i
			case h == opts.YieldColumn || (yieldIdx == -1 && (h == "yield" || h == "Yield" || h == "y")):
				yieldIdx = i
			}
		}
		if tauIdx == -1 || yieldIdx == -1 {
			return nil, nil, errors.New("yieldcurve: maturity or yield column not found in CSV header")
		}
	}

	var tau, yields []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if tauIdx >= len(record) || yieldIdx >= len(record) {
			continue
		}
		t, err := strconv.ParseFloat(strings.TrimSpace(record[tauIdx]), 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(record[yieldIdx]), 64)
		if err != nil {
			continue
		}
		tau = append(tau, t)
		yields = append(yields, y)
	}

	if len(tau) == 0 {
		return nil, nil, errors.New("yieldcurve: no valid observations found in CSV")
	}
	return tau, yields, nil
}
