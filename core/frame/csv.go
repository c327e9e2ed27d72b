package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrEmpty is returned when a CSV has no header row.
var ErrEmpty = errors.New("csv has no header")

// missingMarkers are read as missing cells.
var missingMarkers = map[string]struct{}{
	"": {}, "NA": {}, "N/A": {}, "n/a": {}, "NaN": {}, "nan": {}, "null": {}, "NULL": {}, "None": {}, "#N/A": {},
}

// IsMissing reports whether a raw cell is read as missing.
func IsMissing(s string) bool {
	_, ok := missingMarkers[strings.TrimSpace(s)]
	return ok
}

// ReadCSV parses a CSV with a header row. A column is numeric when every
// non-missing cell parses as a number; otherwise it is text.
func ReadCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	names := headerNames(header)

	raw := make([][]string, len(names))
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		for i := range raw {
			raw[i] = append(raw[i], rec[i])
		}
	}

	cols := make([]*Column, len(names))
	for i, name := range names {
		cols[i] = inferColumn(name, raw[i])
	}
	return New(cols...)
}

// headerNames fills blank names and suffixes duplicates (x, x.1, x.2).
func headerNames(header []string) []string {
	names := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		} else {
			seen[name] = 0
		}
		names[i] = name
	}
	return names
}

func inferColumn(name string, cells []string) *Column {
	nums := make([]float64, len(cells))
	null := make([]bool, len(cells))
	numeric := true
	for i, cell := range cells {
		if IsMissing(cell) {
			null[i] = true
			nums[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			numeric = false
			break
		}
		nums[i] = v
	}
	if numeric {
		return &Column{Name: name, Kind: Numeric, Nums: nums, Null: null}
	}

	strs := make([]string, len(cells))
	for i, cell := range cells {
		null[i] = IsMissing(cell)
		if !null[i] {
			strs[i] = cell
		}
	}
	return &Column{Name: name, Kind: Text, Strs: strs, Null: null}
}

// WriteCSV writes the frame with a header row; missing cells are empty.
func (f *Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.Names()); err != nil {
		return err
	}
	rec := make([]string, len(f.Columns))
	for i := 0; i < f.Len(); i++ {
		for j, c := range f.Columns {
			rec[j] = c.String(i)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
