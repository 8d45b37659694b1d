package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNoRecord is returned when a record key has never been written.
var ErrNoRecord = errors.New("record not found")

func (s *Store) GetRecord(key string) (*Record, error) {
	r := &Record{Key: key}
	var updatedAt string
	err := s.db.QueryRow(`SELECT value, updated_at FROM records WHERE key = ?`, key).Scan(&r.Value, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get record %q: %w", key, ErrNoRecord)
	}
	if err != nil {
		return nil, fmt.Errorf("get record %q: %w", key, err)
	}
	r.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return r, nil
}

func (s *Store) PutRecord(key string, value []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO records (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, now,
	)
	if err != nil {
		return fmt.Errorf("put record %q: %w", key, err)
	}
	return nil
}

func (s *Store) DeleteRecord(key string) error {
	_, err := s.db.Exec(`DELETE FROM records WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete record %q: %w", key, err)
	}
	return nil
}
