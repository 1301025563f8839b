// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package dataset

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrNoSource is returned by Reload when neither a path nor a previous
// source is known.
var ErrNoSource = errors.New("dataset: no source path to reload from")

// Holder publishes the current Store. Readers obtain a snapshot with Current
// and keep using it for the rest of their request; Reload swaps in a fully
// built replacement so no reader sees a partially loaded table.
type Holder struct {
	current atomic.Pointer[Store]
	// reloadMu serializes reloads so two concurrent loads cannot race to
	// publish out of order.
	reloadMu sync.Mutex
	path     string
}

// NewHolder wraps an already loaded store.
func NewHolder(store *Store) *Holder {
	h := &Holder{}
	h.current.Store(store)
	if store != nil {
		h.path = store.Source()
	}
	return h
}

// Current returns the active store.
func (h *Holder) Current() *Store {
	return h.current.Load()
}

// Reload loads path (or the previous source when path is empty) and swaps
// it in. On failure the current store stays in place and the
// *models.DataLoadError is returned.
func (h *Holder) Reload(path string) (*Store, error) {
	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()

	if path == "" {
		path = h.path
	}
	if path == "" {
		return nil, ErrNoSource
	}

	store, err := Load(path)
	if err != nil {
		return nil, err
	}
	h.current.Store(store)
	h.path = path
	return store, nil
}

// Replace installs store directly, for generated or in-memory datasets.
func (h *Holder) Replace(store *Store) {
	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()
	h.current.Store(store)
	if store.Source() != "" {
		h.path = store.Source()
	}
}
