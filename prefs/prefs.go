// Package prefs persists per-demo view state between runs using BoltDB
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var viewsBucket = []byte("views")

// ErrClosed is returned when the store is used after Close
var ErrClosed = errors.New("prefs store closed")

// Store keeps JSON encoded values by name
type Store struct {
	db *bolt.DB
}

// Open opens or creates the preferences database at path
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening prefs %s: %w", path, err)
	}
	if err = createBucket(db, viewsBucket); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func createBucket(db *bolt.DB, name []byte) error {
	return db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(name)
		return err
	})
}

// Save stores v under name, replacing any previous value
func (s *Store) Save(name string, v interface{}) error {
	if s.db == nil {
		return ErrClosed
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(viewsBucket).Put([]byte(name), encoded)
	})
}

// Load decodes the value stored under name into v. It returns false when
// nothing was stored under that name.
func (s *Store) Load(name string, v interface{}) (found bool, err error) {
	if s.db == nil {
		return false, ErrClosed
	}
	err = s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(viewsBucket).Get([]byte(name))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, v)
	})
	if err != nil {
		return found, fmt.Errorf("decoding %s: %w", name, err)
	}
	return found, nil
}

// Names returns the names of all stored values
func (s *Store) Names() (names []string, err error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	err = s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(viewsBucket).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return
}

// Close closes the database
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
