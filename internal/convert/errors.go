package convert

import "fmt"

// SchemaError reports a required column absent from the table header.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	if e.Column == "" {
		return "schema: missing header row"
	}
	return fmt.Sprintf("schema: required column %q not found", e.Column)
}

// ParseError reports a malformed data row or a non-numeric coordinate.
// Row is the 1-based data row, Line the source line it starts on.
type ParseError struct {
	Err    error
	Column string
	Value  string
	Row    int
	Line   int
}

func (e *ParseError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("parse: row %d (line %d): column %q value %q: %v", e.Row, e.Line, e.Column, e.Value, e.Err)
	}
	return fmt.Sprintf("parse: row %d (line %d): %v", e.Row, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError reports a failed file operation.
type IOError struct {
	Err  error
	Op   string
	Path string
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
