package martindb

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
)

// Rows adapts a tabular Result to database/sql's row cursor.
type Rows struct {
	headers []string
	rows    [][]Value
	index   int
}

func (r *Rows) Columns() []string {
	return r.headers
}

func (r *Rows) Close() error {
	r.index = len(r.rows)
	return nil
}

func (r *Rows) Next(dest []driver.Value) error {
	if r.index >= len(r.rows) {
		return io.EOF
	}

	for i, v := range r.rows[r.index] {
		switch v.Kind {
		case IntValue:
			dest[i] = int64(v.Int)
		case TextValue:
			dest[i] = v.Text
		default:
			dest[i] = nil
		}
	}

	r.index++
	return nil
}

type Conn struct {
	bkd Backend
}

func (c *Conn) run(query string) (*Result, error) {
	stmt, err := Parse(query)
	if err != nil {
		return nil, fmt.Errorf("Error while parsing: %s", err)
	}

	return c.bkd.Execute(stmt)
}

func (c *Conn) Query(query string, args []driver.Value) (driver.Rows, error) {
	if len(args) > 0 {
		return nil, fmt.Errorf("parameterization not supported")
	}

	res, err := c.run(query)
	if err != nil {
		return nil, err
	}

	return &Rows{headers: res.Headers, rows: res.Rows}, nil
}

func (c *Conn) Exec(query string, args []driver.Value) (driver.Result, error) {
	if len(args) > 0 {
		return nil, fmt.Errorf("parameterization not supported")
	}

	if _, err := c.run(query); err != nil {
		return nil, err
	}

	return driver.RowsAffected(1), nil
}

func (c *Conn) Prepare(query string) (driver.Stmt, error) {
	return nil, fmt.Errorf("prepared statements not supported")
}

func (c *Conn) Begin() (driver.Tx, error) {
	return nil, fmt.Errorf("transactions not supported")
}

func (c *Conn) Close() error {
	return nil
}

// Driver opens in-memory databases. A non-empty name is treated as a
// snapshot path and loaded through the Store.
type Driver struct{}

func (d *Driver) Open(name string) (driver.Conn, error) {
	if name == "" {
		return &Conn{bkd: NewDatabase()}, nil
	}

	db, err := NewStore(name).Load()
	if err != nil {
		return nil, err
	}

	return &Conn{bkd: db}, nil
}

func init() {
	sql.Register("martindb", &Driver{})
}
