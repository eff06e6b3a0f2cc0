package martindb

import (
	"fmt"
	"sort"
)

// Database is a named collection of tables and the execution engine
// for parsed statements. It owns its tables exclusively; joins are
// resolved by name lookup at query time, never by stored references.
type Database struct {
	Tables map[string]*Table `json:"tables"`
}

func NewDatabase() *Database {
	return &Database{Tables: map[string]*Table{}}
}

// CreateTable allocates an empty table under the given name.
func (db *Database) CreateTable(name string, columns []Column) error {
	if _, ok := db.Tables[name]; ok {
		return TableAlreadyExistsError{Table: name}
	}

	db.Tables[name] = NewTable(name, columns)
	return nil
}

// Table resolves a table by name.
func (db *Database) Table(name string) (*Table, error) {
	t, ok := db.Tables[name]
	if !ok {
		return nil, TableNotFoundError{Table: name}
	}

	return t, nil
}

// Execute dispatches one statement against the database. Each call is
// a single atomic transformation: it either fully applies or fully
// rejects, leaving no partial state behind on failure.
func (db *Database) Execute(stmt *Statement) (*Result, error) {
	switch stmt.Kind {
	case CreateTableKind:
		crt := stmt.CreateTableStatement
		columns := make([]Column, len(crt.Cols))
		for i, c := range crt.Cols {
			columns[i] = Column{
				Name:      c.Name,
				DataType:  c.DataType,
				IsPrimary: c.IsPrimary,
				IsUnique:  c.IsUnique,
			}
		}
		if err := db.CreateTable(crt.Name, columns); err != nil {
			return nil, err
		}
		return &Result{Message: fmt.Sprintf("Table '%s' created", crt.Name)}, nil

	case InsertKind:
		inst := stmt.InsertStatement
		t, err := db.Table(inst.Table)
		if err != nil {
			return nil, err
		}
		if err := t.InsertRow(inst.Values); err != nil {
			return nil, err
		}
		return &Result{Message: "1 row inserted."}, nil

	case SelectKind:
		slct := stmt.SelectStatement
		if slct.Join != nil {
			return db.selectJoin(slct)
		}
		return db.selectFrom(slct)
	}

	return nil, fmt.Errorf("unsupported statement kind %d", stmt.Kind)
}

// selectFrom projects the requested columns in requested order with a
// single linear pass, preserving source row order. A literal '*'
// anywhere in the column list selects the whole row.
func (db *Database) selectFrom(slct *SelectStatement) (*Result, error) {
	t, err := db.Table(slct.Table)
	if err != nil {
		return nil, err
	}

	wildcard := false
	for _, name := range slct.Columns {
		if name == "*" {
			wildcard = true
			break
		}
	}

	var positions []int
	if wildcard {
		for i := range t.Columns {
			positions = append(positions, i)
		}
	} else {
		for _, name := range slct.Columns {
			pos, err := columnPosition(t, name)
			if err != nil {
				return nil, err
			}
			positions = append(positions, pos)
		}
	}

	headers := make([]string, len(positions))
	for i, pos := range positions {
		headers[i] = t.Columns[pos].Name
	}

	rows := make([][]Value, 0, len(t.Rows))
	for _, row := range t.Rows {
		projected := make([]Value, len(positions))
		for i, pos := range positions {
			projected[i] = row[pos]
		}
		rows = append(rows, projected)
	}

	return &Result{Headers: headers, Rows: rows}, nil
}

// selectJoin runs an unindexed nested-loop inner equi-join. Headers
// take the "table.column" form, left table's columns first, to keep
// identically named columns apart. Output order is stable: all matches
// for the first left row in right-table order, then the second, and so
// on. Rows without a match on either side are dropped.
func (db *Database) selectJoin(slct *SelectStatement) (*Result, error) {
	left, err := db.Table(slct.Table)
	if err != nil {
		return nil, err
	}
	right, err := db.Table(slct.Join.Table)
	if err != nil {
		return nil, err
	}

	leftPos, err := columnPosition(left, slct.Join.LeftColumn)
	if err != nil {
		return nil, err
	}
	rightPos, err := columnPosition(right, slct.Join.RightColumn)
	if err != nil {
		return nil, err
	}

	var headers []string
	for _, c := range left.Columns {
		headers = append(headers, fmt.Sprintf("%s.%s", left.Name, c.Name))
	}
	for _, c := range right.Columns {
		headers = append(headers, fmt.Sprintf("%s.%s", right.Name, c.Name))
	}

	var rows [][]Value
	for _, lrow := range left.Rows {
		for _, rrow := range right.Rows {
			// Structural Value equality; no numeric/text coercion.
			if lrow[leftPos] == rrow[rightPos] {
				combined := make([]Value, 0, len(lrow)+len(rrow))
				combined = append(combined, lrow...)
				combined = append(combined, rrow...)
				rows = append(rows, combined)
			}
		}
	}

	return &Result{Headers: headers, Rows: rows}, nil
}

func columnPosition(t *Table, name string) (int, error) {
	for i, col := range t.Columns {
		if col.Name == name {
			return i, nil
		}
	}

	return 0, ColumnNotFoundError{Column: name}
}

// Metadata lists every table sorted by name.
func (db *Database) Metadata() []TableMetadata {
	var tables []TableMetadata
	for _, t := range db.Tables {
		tables = append(tables, TableMetadata{
			Name:    t.Name,
			Columns: t.Columns,
			Rows:    len(t.Rows),
		})
	}

	sort.Slice(tables, func(i, j int) bool { return tables[i].Name < tables[j].Name })
	return tables
}
