package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// Snapshots is a small key-value layer over the snapshots table. Each
// entry holds one JSON document under a fixed namespace name; absence of
// the row means the namespace has never been written (or was cleared).
type Snapshots struct {
	db *sql.DB
}

func NewSnapshots(db *sql.DB) *Snapshots {
	return &Snapshots{db: db}
}

// Save marshals v and upserts it under name.
func (s *Snapshots) Save(name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO snapshots(name, value, updated_at) VALUES(?,?,?)
		 ON CONFLICT(name) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`,
		name, string(raw), time.Now().UTC(),
	)
	return err
}

// Load unmarshals the stored document into out. The boolean reports
// whether a snapshot existed.
func (s *Snapshots) Load(name string, out any) (bool, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM snapshots WHERE name = ?`, name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, err
	}
	return true, nil
}

// Clear removes the snapshot; clearing an absent name is a no-op.
func (s *Snapshots) Clear(name string) error {
	_, err := s.db.Exec(`DELETE FROM snapshots WHERE name = ?`, name)
	return err
}
