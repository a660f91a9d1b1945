package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
)

// Keys of the persisted collections. Each holds one JSON document.
const (
	KeyActions         = "actions"
	KeyMembers         = "members"
	KeyEmails          = "emails"
	KeyManagerMeetings = "meetings_manager"
	KeyTeamMeetings    = "meetings_team"
	KeyObjectives      = "objectives"
	KeyPreferences     = "preferences"
)

// KVStore is the shared key-value surface every collection is persisted in.
// Writes replace the whole value; the last writer wins.
type KVStore struct {
	db *sql.DB

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db, locks: make(map[string]*sync.Mutex)}
}

// Get returns the raw value under key. ok is false when the key was never written.
func (s *KVStore) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM collections WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *KVStore) Put(ctx context.Context, key, value string) error {
	query := `
	INSERT INTO collections (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// lock returns the mutex serializing read-modify-write cycles on key.
// Nothing coordinates across keys.
func (s *KVStore) lock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.locks[key]
	if !ok {
		m = &sync.Mutex{}
		s.locks[key] = m
	}
	return m
}
