package convert

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

const bom = "\ufeff"

// Cell texts treated as missing values.
var naValues = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

var boolValues = map[string]bool{
	"true":  true,
	"True":  true,
	"TRUE":  true,
	"false": false,
	"False": false,
	"FALSE": false,
}

// LoadFile opens path and loads it as a table.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	// Explicitly ignore close error as it's a read-only operation
	defer func() { _ = f.Close() }()

	t, err := load(f, path)
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			return nil, err
		}
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

// Load parses a comma-delimited table with a header row.
// The header must name both coordinate columns.
func Load(r io.Reader) (*Table, error) {
	return load(r, "")
}

func load(r io.Reader, path string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &SchemaError{}
	}
	if err != nil {
		return nil, readError(err, 0, path)
	}

	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], bom)
	}
	header = dedupeHeader(header)

	for _, name := range []string{Longitude, Latitude} {
		if !contains(header, name) {
			return nil, &SchemaError{Column: name}
		}
	}

	var (
		records [][]string
		lines   []int
	)
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, readError(err, row, path)
		}

		line, _ := reader.FieldPos(0)
		if len(record) != len(header) {
			return nil, &ParseError{
				Row:  row,
				Line: line,
				Err:  fmt.Errorf("expected %d fields, got %d", len(header), len(record)),
			}
		}

		records = append(records, record)
		lines = append(lines, line)
	}

	columns := make([]Column, len(header))
	rows := make([][]interface{}, len(records))
	for i := range rows {
		rows[i] = make([]interface{}, len(header))
	}

	for j, name := range header {
		if name == Longitude || name == Latitude {
			columns[j] = Column{Name: name, Kind: KindFloat}
			for i, record := range records {
				v, err := parseCoordinate(record[j])
				if err != nil {
					return nil, &ParseError{Row: i + 1, Line: lines[i], Column: name, Value: record[j], Err: err}
				}
				rows[i][j] = v
			}
			continue
		}

		cells := make([]string, len(records))
		for i, record := range records {
			cells[i] = record[j]
		}

		kind := inferKind(cells)
		columns[j] = Column{Name: name, Kind: kind}
		for i, cell := range cells {
			rows[i][j] = typedValue(cell, kind)
		}
	}

	return newTable(columns, rows), nil
}

func readError(err error, row int, path string) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Row: row, Line: csvErr.StartLine, Err: csvErr.Err}
	}
	return &IOError{Op: "read", Path: path, Err: err}
}

// dedupeHeader names empty header cells "Unnamed: <index>" and suffixes
// repeated names with .1, .2 and so on.
func dedupeHeader(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]struct{}, len(header))
	counts := make(map[string]int)

	for i, name := range header {
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		candidate := name
		for {
			if _, dup := seen[candidate]; !dup {
				break
			}
			counts[name]++
			candidate = name + "." + strconv.Itoa(counts[name])
		}
		seen[candidate] = struct{}{}
		out[i] = candidate
	}

	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func isMissing(cell string) bool {
	_, ok := naValues[cell]
	return ok
}

// isDecimal rejects the Go-only number syntax strconv accepts:
// digit separators and hexadecimal mantissas.
func isDecimal(s string) bool {
	if strings.Contains(s, "_") {
		return false
	}
	s = strings.TrimLeft(s, "+-")
	return !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X")
}

// parseDecimal parses a finite decimal float.
func parseDecimal(s string) (float64, bool) {
	if !isDecimal(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func parseCoordinate(cell string) (float64, error) {
	if isMissing(cell) {
		return 0, errors.New("missing coordinate")
	}
	v, ok := parseDecimal(strings.TrimSpace(cell))
	if !ok {
		return 0, errors.New("not a number")
	}
	return v, nil
}

// inferKind picks the narrowest kind that fits every non-missing cell.
// An integer column with missing cells widens to float.
func inferKind(cells []string) Kind {
	isInt, isFloat, isBool := true, true, true
	present, missing := 0, false

	for _, cell := range cells {
		if isMissing(cell) {
			missing = true
			continue
		}
		present++

		s := strings.TrimSpace(cell)
		if isInt {
			if _, err := strconv.ParseInt(s, 10, 64); err != nil {
				isInt = false
			}
		}
		if isFloat {
			if _, ok := parseDecimal(s); !ok {
				isFloat = false
			}
		}
		if isBool {
			if _, ok := boolValues[s]; !ok {
				isBool = false
			}
		}
	}

	switch {
	case present == 0:
		return KindFloat
	case isInt && !missing:
		return KindInt
	case isInt || isFloat:
		return KindFloat
	case isBool:
		return KindBool
	default:
		return KindString
	}
}

func typedValue(cell string, kind Kind) interface{} {
	if isMissing(cell) {
		return nil
	}

	s := strings.TrimSpace(cell)
	switch kind {
	case KindInt:
		v, _ := strconv.ParseInt(s, 10, 64)
		return v
	case KindFloat:
		v, _ := strconv.ParseFloat(s, 64)
		return v
	case KindBool:
		return boolValues[s]
	default:
		return cell
	}
}
