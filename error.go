package martindb

import "fmt"

// Execution errors are typed and name the offending identifier so the
// caller can present a useful diagnostic. Syntax errors, by contrast,
// are plain strings produced by the parser and surfaced verbatim.

type TableAlreadyExistsError struct {
	Table string
}

func (e TableAlreadyExistsError) Error() string {
	return fmt.Sprintf("Table '%s' already exists", e.Table)
}

type TableNotFoundError struct {
	Table string
}

func (e TableNotFoundError) Error() string {
	return fmt.Sprintf("Table '%s' not found", e.Table)
}

type ColumnNotFoundError struct {
	Column string
}

func (e ColumnNotFoundError) Error() string {
	return fmt.Sprintf("Column '%s' not found", e.Column)
}

type UniqueViolationError struct {
	Column string
}

func (e UniqueViolationError) Error() string {
	return fmt.Sprintf("Unique constraint violation on column '%s'", e.Column)
}

// RowArityError reports an insert whose value count does not match the
// table's column count. Rows are strictly positional; there is no
// partial row or defaulting.
type RowArityError struct {
	Columns int
	Values  int
}

func (e RowArityError) Error() string {
	return fmt.Sprintf("Columns count mismatch: table has %d columns, got %d values", e.Columns, e.Values)
}
