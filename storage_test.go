package martindb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "db.json"))

	db := NewDatabase()
	mustExec(t, db, "CREATE TABLE users (id INT PRIMARY, name TEXT)")
	mustExec(t, db, "INSERT INTO users VALUES (1, 'Martin')")
	mustExec(t, db, "INSERT INTO users VALUES (2, 'Alice')")
	require.NoError(t, store.Save(db))

	loaded, err := store.Load()
	require.NoError(t, err)

	table, err := loaded.Table("users")
	require.NoError(t, err)
	assert.Equal(t, db.Tables["users"].Columns, table.Columns)
	assert.Equal(t, db.Tables["users"].Rows, table.Rows)

	// Indexes were rebuilt on load: constraints hold immediately.
	_, err = exec(t, loaded, "INSERT INTO users VALUES (1, 'Dup')")
	assert.Equal(t, UniqueViolationError{Column: "id"}, err)

	res := mustExec(t, loaded, "SELECT name FROM users")
	assert.Equal(t, [][]Value{{NewText("Martin")}, {NewText("Alice")}}, res.Rows)
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"))

	db, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, db.Tables)
}

func TestStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewStore(path).Load()
	assert.Error(t, err)
}

func TestStoreSaveOverwrites(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "db.json"))

	db := NewDatabase()
	mustExec(t, db, "CREATE TABLE a (x INT)")
	require.NoError(t, store.Save(db))

	mustExec(t, db, "CREATE TABLE b (y INT)")
	require.NoError(t, store.Save(db))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, loaded.Tables, 2)
}
