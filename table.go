package martindb

// Column is the stored schema of one table column. DataType is the
// declared type tag and is not enforced at insert time beyond the
// Value tag itself. Each primary or unique column gets its own
// independent single-column uniqueness index; there are no composite
// keys.
type Column struct {
	Name      string `json:"name"`
	DataType  string `json:"data_type"`
	IsPrimary bool   `json:"is_primary"`
	IsUnique  bool   `json:"is_unique"`
}

// Table holds ordered columns, an append-only row sequence, and a
// derived uniqueness index mapping column position to the set of
// values present at that position. The index is a cache over Rows: it
// is unexported, never serialized, and must be rebuilt whenever row
// data arrives from a source that does not carry it.
type Table struct {
	Name    string    `json:"name"`
	Columns []Column  `json:"columns"`
	Rows    [][]Value `json:"rows"`

	indexes map[int]map[Value]struct{}
}

// NewTable allocates an empty table with fresh indexes for every
// primary/unique column.
func NewTable(name string, columns []Column) *Table {
	t := &Table{Name: name, Columns: columns}
	t.initIndexes()
	return t
}

func (t *Table) initIndexes() {
	t.indexes = map[int]map[Value]struct{}{}
	for i, col := range t.Columns {
		if col.IsPrimary || col.IsUnique {
			t.indexes[i] = map[Value]struct{}{}
		}
	}
}

// InsertRow appends a row after validating arity and uniqueness. Every
// indexed column is checked before any index or row mutation, so a row
// violating more than one constraint is rejected without partial index
// corruption.
func (t *Table) InsertRow(row []Value) error {
	if len(row) != len(t.Columns) {
		return RowArityError{Columns: len(t.Columns), Values: len(row)}
	}

	for i, v := range row {
		if index, ok := t.indexes[i]; ok {
			if _, dup := index[v]; dup {
				return UniqueViolationError{Column: t.Columns[i].Name}
			}
		}
	}

	for i, v := range row {
		if index, ok := t.indexes[i]; ok {
			index[v] = struct{}{}
		}
	}

	t.Rows = append(t.Rows, row)
	return nil
}

// RebuildIndexes reconstructs the uniqueness index from the row
// sequence alone. Callers that deserialize a table must invoke this
// before the first insert, since the index is not persisted.
func (t *Table) RebuildIndexes() {
	t.initIndexes()

	for _, row := range t.Rows {
		for i, v := range row {
			if index, ok := t.indexes[i]; ok {
				index[v] = struct{}{}
			}
		}
	}
}
