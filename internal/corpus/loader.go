package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// Column names as they appear in the Lexique export. genre is optional;
// everything else is required.
const (
	colLemma     = "lemme"
	colCGram     = "cgram"
	colGenre     = "genre"
	colFreqFilms = "freqlemfilms2"
	colFreqBooks = "freqlemlivres"
)

// LoadCSV reads the reference corpus. The file is mandatory: a missing
// or empty corpus is a startup failure, not a degraded mode.
func LoadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: open %s: %w", path, err)
	}
	defer f.Close()

	records, err := parseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("corpus: parse %s: %w", path, err)
	}
	return records, nil
}

func parseCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{colLemma, colCGram, colFreqFilms, colFreqBooks} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, Record{
			Lemma:     field(row, cols, colLemma),
			CGram:     field(row, cols, colCGram),
			Genre:     field(row, cols, colGenre),
			FreqFilms: parseFreq(field(row, cols, colFreqFilms)),
			FreqBooks: parseFreq(field(row, cols, colFreqBooks)),
		})
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no data rows")
	}
	return records, nil
}

func field(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseFreq maps empty or unparseable cells to NaN. The statistics
// layer decides per code path whether NaN means zero or "skip".
func parseFreq(s string) float64 {
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
