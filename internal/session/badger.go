// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

const sessionKeyPrefix = "session:"

// BadgerStore persists sessions in BadgerDB as JSON values. Entries carry a
// Badger TTL matching ExpiresAt, so Badger drops them on its own during
// compaction; CleanupExpired removes whatever it has not yet dropped.
type BadgerStore struct {
	db  *badger.DB
	own bool
	now func() time.Time
}

// OpenBadger opens (or creates) a BadgerDB at path and owns it; Close closes
// the database.
func OpenBadger(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for sessions: %w", err)
	}
	s := NewBadgerStore(db)
	s.own = true
	return s, nil
}

// NewBadgerStore wraps an already open database. Close leaves it open.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db, now: time.Now}
}

func sessionKey(id string) []byte {
	return []byte(sessionKeyPrefix + id)
}

func (b *BadgerStore) put(txn *badger.Txn, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	entry := badger.NewEntry(sessionKey(s.ID), data)
	if ttl := s.ExpiresAt.Sub(b.now()); ttl > 0 {
		entry = entry.WithTTL(ttl)
	}
	if err := txn.SetEntry(entry); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

func readSession(item *badger.Item) (*Session, error) {
	var s Session
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &s)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &s, nil
}

// Create implements Store.
func (b *BadgerStore) Create(_ context.Context, s *Session) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return b.put(txn, s)
	})
}

// Get implements Store.
func (b *BadgerStore) Get(_ context.Context, id string) (*Session, error) {
	var s *Session
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}
		s, err = readSession(item)
		return err
	})
	if err != nil {
		return nil, err
	}
	if s.IsExpired(b.now()) {
		return nil, ErrExpired
	}
	if s.History == nil {
		s.History = []PlanEntry{}
	}
	return s, nil
}

// Update implements Store.
func (b *BadgerStore) Update(_ context.Context, s *Session) error {
	return b.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(s.ID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}
		existing, err := readSession(item)
		if err != nil {
			return err
		}
		if existing.IsExpired(b.now()) {
			return ErrNotFound
		}
		return b.put(txn, s)
	})
}

// Modify implements Store. The read and the write share one transaction;
// Badger aborts it with ErrConflict when another writer committed the key
// first, and Modify retries.
func (b *BadgerStore) Modify(ctx context.Context, id string, fn func(*Session) error) error {
	for {
		err := b.db.Update(func(txn *badger.Txn) error {
			item, err := txn.Get(sessionKey(id))
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			if err != nil {
				return fmt.Errorf("get session: %w", err)
			}
			s, err := readSession(item)
			if err != nil {
				return err
			}
			if s.IsExpired(b.now()) {
				return ErrExpired
			}
			if s.History == nil {
				s.History = []PlanEntry{}
			}
			if err := fn(s); err != nil {
				return err
			}
			s.ID = id
			return b.put(txn, s)
		})
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// Delete implements Store.
func (b *BadgerStore) Delete(_ context.Context, id string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(sessionKey(id)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete session: %w", err)
		}
		return nil
	})
}

// CleanupExpired implements Store.
func (b *BadgerStore) CleanupExpired(ctx context.Context) (int, error) {
	var expired [][]byte
	now := b.now()

	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(sessionKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			s, err := readSession(item)
			if err != nil {
				// Unreadable entries are removed along with expired ones.
				expired = append(expired, item.KeyCopy(nil))
				continue
			}
			if s.IsExpired(now) {
				expired = append(expired, item.KeyCopy(nil))
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scan sessions: %w", err)
	}
	if len(expired) == 0 {
		return 0, nil
	}

	wb := b.db.NewWriteBatch()
	for _, key := range expired {
		if err := wb.Delete(key); err != nil {
			wb.Cancel()
			return 0, fmt.Errorf("delete expired session: %w", err)
		}
	}
	if err := wb.Flush(); err != nil {
		return 0, fmt.Errorf("flush session cleanup: %w", err)
	}
	return len(expired), nil
}

// Count implements Store.
func (b *BadgerStore) Count(_ context.Context) (int, error) {
	count := 0
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(sessionKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// Close implements Store.
func (b *BadgerStore) Close() error {
	if !b.own {
		return nil
	}
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("close session db: %w", err)
	}
	return nil
}
