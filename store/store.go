// Package store connects to the data store and manages the session log
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayinde/pomo/session"
)

var pathToDB string

var errPomoRunning = errors.New(
	"is Pomo already running? Only one instance can be active at a time",
)

var (
	logBucket = []byte("log")
	logKey    = []byte("entries")
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// decodeLog unmarshals the persisted session log. Malformed or absent data
// is treated as an empty log so that the next append self-heals it.
func decodeLog(b []byte) []session.LogEntry {
	if len(b) == 0 {
		return nil
	}

	var entries []session.LogEntry

	err := json.Unmarshal(b, &entries)
	if err != nil {
		return nil
	}

	return entries
}

// Append adds an entry to the end of the session log.
func (c *Client) Append(entry *session.LogEntry) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(logBucket)

		entries := decodeLog(b.Get(logKey))

		entries = append(entries, *entry)

		value, err := json.Marshal(entries)
		if err != nil {
			return err
		}

		return b.Put(logKey, value)
	})
}

// Entries returns the full session log in insertion order. An empty log
// reads as an empty, non-nil slice so that it marshals as a JSON array.
func (c *Client) Entries() ([]session.LogEntry, error) {
	entries := []session.LogEntry{}

	err := c.View(func(tx *bolt.Tx) error {
		entries = append(
			entries,
			decodeLog(tx.Bucket(logBucket).Get(logKey))...,
		)

		return nil
	})

	return entries, err
}

func (c *Client) Open() error {
	db, err := openDB(pathToDB)
	if err != nil {
		return err
	}

	*c = Client{
		db,
	}

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		// another process holds the file lock, so the open times out
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errPomoRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	pathToDB = dbPath

	db, err := openDB(pathToDB)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists(logBucket)

		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
