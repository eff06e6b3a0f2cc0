package martindb

// StatementKind selects which variant a Statement holds.
type StatementKind uint

const (
	CreateTableKind StatementKind = iota
	InsertKind
	SelectKind
)

// ColumnDefinition is one column in a CREATE TABLE statement. DataType
// is the declared type token, upper-cased but otherwise free-form.
type ColumnDefinition struct {
	Name      string
	DataType  string
	IsPrimary bool
	IsUnique  bool
}

type CreateTableStatement struct {
	Name string
	Cols []ColumnDefinition
}

type InsertStatement struct {
	Table  string
	Values []Value
}

// JoinClause is the optional two-table equi-join of a SELECT.
type JoinClause struct {
	Table       string
	LeftColumn  string
	RightColumn string
}

type SelectStatement struct {
	Table   string
	Columns []string
	Join    *JoinClause
}

// Statement is the typed result of parsing one query. Exactly one of
// the variant pointers is set, matching Kind.
type Statement struct {
	CreateTableStatement *CreateTableStatement
	InsertStatement      *InsertStatement
	SelectStatement      *SelectStatement
	Kind                 StatementKind
}
