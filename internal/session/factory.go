// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package session

import (
	"fmt"

	"github.com/tomtom215/wayfarer/internal/config"
)

// Open creates the store selected by cfg.Store ("memory" or "badger").
// An empty value means memory.
func Open(cfg *config.SessionConfig) (Store, error) {
	switch cfg.Store {
	case "", config.SessionStoreMemory:
		return NewMemoryStore(), nil
	case config.SessionStoreBadger:
		return OpenBadger(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}
