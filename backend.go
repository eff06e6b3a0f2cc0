package martindb

// Result is the outcome of one executed statement: a human-readable
// message for mutations, or a header/row tabular payload for queries.
type Result struct {
	Message string    `json:"message,omitempty"`
	Headers []string  `json:"headers,omitempty"`
	Rows    [][]Value `json:"rows,omitempty"`
}

// TableMetadata describes one table for inspection front ends.
type TableMetadata struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
	Rows    int      `json:"rows"`
}

// Backend executes parsed statements. It never parses text, performs
// no locking, and assumes it is invoked under exclusive access.
type Backend interface {
	Execute(*Statement) (*Result, error)
	Metadata() []TableMetadata
}
