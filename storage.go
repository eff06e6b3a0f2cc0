package martindb

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// DefaultFile is the snapshot written when no path is configured.
const DefaultFile = "database.json"

// Store persists a whole Database as a single JSON file: every table's
// name, columns, and rows, never the uniqueness index. Each save
// rewrites the full file, last write wins. There is no incremental
// persistence and no corruption detection beyond a failed parse.
type Store struct {
	Path string
}

func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFile
	}
	return &Store{Path: path}
}

// Save snapshots the database to disk.
func (s *Store) Save(db *Database) error {
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return errors.Wrap(err, "serializing database")
	}

	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return errors.Wrap(err, "writing database file")
	}

	return nil
}

// Load restores the database from disk. A missing file yields an empty
// database. Indexes are rebuilt from the loaded rows before the
// database is handed to the caller, since they are not part of the
// snapshot.
func (s *Store) Load() (*Database, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDatabase(), nil
		}
		return nil, errors.Wrap(err, "reading database file")
	}

	db := NewDatabase()
	if err := json.Unmarshal(data, db); err != nil {
		return nil, errors.Wrap(err, "deserializing database")
	}

	for _, t := range db.Tables {
		t.RebuildIndexes()
	}

	return db, nil
}
