package martindb

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriver(t *testing.T) {
	db, err := sql.Open("martindb", "")
	require.NoError(t, err)
	defer db.Close()

	// Pin one connection: every connection is its own in-memory
	// database.
	ctx := context.Background()
	conn, err := db.Conn(ctx)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.ExecContext(ctx, "CREATE TABLE users (id INT PRIMARY, name TEXT)")
	require.NoError(t, err)

	_, err = conn.ExecContext(ctx, "INSERT INTO users VALUES (1, 'Martin')")
	require.NoError(t, err)
	_, err = conn.ExecContext(ctx, "INSERT INTO users VALUES (2, 'Alice')")
	require.NoError(t, err)

	_, err = conn.ExecContext(ctx, "INSERT INTO users VALUES (1, 'Dup')")
	require.Error(t, err)

	rows, err := conn.QueryContext(ctx, "SELECT id, name FROM users")
	require.NoError(t, err)
	defer rows.Close()

	cols, err := rows.Columns()
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, cols)

	type user struct {
		id   int64
		name string
	}
	var users []user
	for rows.Next() {
		var u user
		require.NoError(t, rows.Scan(&u.id, &u.name))
		users = append(users, u)
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, []user{{1, "Martin"}, {2, "Alice"}}, users)
}
