package content

import (
	"database/sql"
	"sort"
	"sync"
	"time"

	_ "github.com/glebarez/go-sqlite"
	"github.com/pkg/errors"
)

// Provider is an interface for a content store.
// It stores documents by key, along with their media type and
// modification time.
//
// Implementations must be thread-safe!
type Provider interface {
	// Get returns the item stored under key.
	// The boolean is false if there is no such item.
	Get(key string) (Item, bool, error)
	// Put stores item under key, replacing any previous item.
	Put(key string, item Item) error
	// Purge removes the item stored under key, if any.
	Purge(key string) error
	// Keys calls cb for each key, in ascending order.
	Keys(cb func(string)) error
}

type MemStore struct {
	mutex *sync.RWMutex
	db    map[string]Item
}

func NewMemStore() MemStore {
	return MemStore{
		mutex: &sync.RWMutex{},
		db:    make(map[string]Item),
	}
}

func (m MemStore) Get(key string) (Item, bool, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	item, ok := m.db[key]
	return item, ok, nil
}

func (m MemStore) Put(key string, item Item) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.db[key] = item
	return nil
}

func (m MemStore) Purge(key string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.db, key)
	return nil
}

func (m MemStore) Keys(cb func(string)) error {
	m.mutex.RLock()
	keys := make([]string, 0, len(m.db))
	for key := range m.db {
		keys = append(keys, key)
	}
	m.mutex.RUnlock()
	sort.Strings(keys)
	for _, key := range keys {
		cb(key)
	}
	return nil
}

type SQLiteStore struct {
	db         *sql.DB
	writeMutex *sync.Mutex
}

// NewSQLiteStore opens (and if needed creates) the store in the given
// database file. Use "file::memory:?cache=shared" for an in-memory database.
func NewSQLiteStore(filename string) (SQLiteStore, error) {
	db, err := sql.Open("sqlite", filename)
	if err != nil {
		return SQLiteStore{}, errors.Wrapf(err, "could not open content database %s", filename)
	}
	for _, stmt := range []string{
		"CREATE TABLE IF NOT EXISTS content (key TEXT PRIMARY KEY, content_type TEXT, modified INTEGER, body BLOB)",
		"PRAGMA journal_mode=WAL",
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return SQLiteStore{}, errors.Wrapf(err, "could not prepare content database %s", filename)
		}
	}
	return SQLiteStore{
		db:         db,
		writeMutex: &sync.Mutex{},
	}, nil
}

func (s SQLiteStore) Get(key string) (Item, bool, error) {
	var item Item
	var modified int64
	err := s.db.QueryRow("SELECT content_type, modified, body FROM content WHERE key = ?", key).
		Scan(&item.ContentType, &modified, &item.Body)
	if err == sql.ErrNoRows {
		return Item{}, false, nil
	}
	if err != nil {
		return Item{}, false, errors.Wrapf(err, "could not read %s", key)
	}
	item.Modified = time.Unix(modified, 0).UTC()
	return item, true, nil
}

func (s SQLiteStore) Put(key string, item Item) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()
	_, err := s.db.Exec("INSERT OR REPLACE INTO content (key, content_type, modified, body) VALUES (?, ?, ?, ?)",
		key, item.ContentType, item.Modified.Unix(), item.Body)
	return errors.Wrapf(err, "could not write %s", key)
}

func (s SQLiteStore) Purge(key string) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()
	_, err := s.db.Exec("DELETE FROM content WHERE key = ?", key)
	return errors.Wrapf(err, "could not delete %s", key)
}

func (s SQLiteStore) Keys(cb func(string)) error {
	rows, err := s.db.Query("SELECT key FROM content ORDER BY key")
	if err != nil {
		return errors.Wrap(err, "could not list keys")
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return errors.Wrap(err, "could not list keys")
		}
		cb(key)
	}
	return errors.Wrap(rows.Err(), "could not list keys")
}

// Close closes the underlying database.
func (s SQLiteStore) Close() error {
	return s.db.Close()
}
