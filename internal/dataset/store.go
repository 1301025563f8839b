// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package dataset

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/tomtom215/wayfarer/internal/models"
)

// Predicate selects records in a query.
type Predicate func(*models.ExperienceRecord) bool

// Store is an immutable in-memory table of experience records. All methods
// are safe for concurrent use.
type Store struct {
	records  []models.ExperienceRecord
	version  string
	source   string
	loadedAt time.Time
	cities   []string
}

// NewStore builds a store from records already in memory. The slice is
// copied; the version is derived from the record contents.
func NewStore(records []models.ExperienceRecord) *Store {
	copied := make([]models.ExperienceRecord, len(records))
	copy(copied, records)
	return newStore(copied, contentVersion(copied))
}

func newStore(records []models.ExperienceRecord, version string) *Store {
	s := &Store{
		records:  records,
		version:  version,
		loadedAt: time.Now(),
	}

	seen := make(map[string]struct{})
	for i := range records {
		city := records[i].City
		if _, ok := seen[city]; ok {
			continue
		}
		seen[city] = struct{}{}
		s.cities = append(s.cities, city)
	}
	return s
}

// contentVersion hashes the fields that influence scoring and analytics.
func contentVersion(records []models.ExperienceRecord) string {
	h := xxhash.New()
	buf := make([]byte, 0, 256)
	for i := range records {
		r := &records[i]
		buf = buf[:0]
		buf = append(buf, r.TouristID...)
		buf = append(buf, 0)
		buf = append(buf, r.City...)
		buf = append(buf, 0)
		buf = append(buf, r.SiteName...)
		buf = append(buf, 0)
		buf = strconv.AppendInt(buf, int64(r.Cost), 10)
		buf = append(buf, 0)
		buf = strconv.AppendFloat(buf, r.Rating, 'g', -1, 64)
		buf = append(buf, 0)
		buf = strconv.AppendFloat(buf, r.Experience, 'g', -1, 64)
		buf = append(buf, string(r.Budget)...)
		buf = append(buf, string(r.BestSeason)...)
		buf = append(buf, '\n')
		_, _ = h.Write(buf)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// Query returns the records matching pred in file order. A nil predicate
// matches every record. The returned slice is freshly allocated; the records
// themselves must be treated as read-only.
func (s *Store) Query(pred Predicate) []models.ExperienceRecord {
	out := make([]models.ExperienceRecord, 0)
	for i := range s.records {
		if pred == nil || pred(&s.records[i]) {
			out = append(out, s.records[i])
		}
	}
	return out
}

// Each calls fn for every record matching pred in file order without
// copying. Iteration stops when fn returns false.
func (s *Store) Each(pred Predicate, fn func(*models.ExperienceRecord) bool) {
	for i := range s.records {
		if pred != nil && !pred(&s.records[i]) {
			continue
		}
		if !fn(&s.records[i]) {
			return
		}
	}
}

// Records returns every record in file order.
func (s *Store) Records() []models.ExperienceRecord {
	return s.Query(nil)
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Version identifies the store contents. Stores loaded from the same bytes
// share a version.
func (s *Store) Version() string {
	return s.version
}

// Source is the file the store was loaded from, empty for NewStore.
func (s *Store) Source() string {
	return s.source
}

// LoadedAt is when the store was built.
func (s *Store) LoadedAt() time.Time {
	return s.loadedAt
}

// Cities returns the distinct city names in order of first appearance.
func (s *Store) Cities() []string {
	out := make([]string, len(s.cities))
	copy(out, s.cities)
	return out
}

// Info summarizes the store for status endpoints.
type Info struct {
	Version  string    `json:"version"`
	Source   string    `json:"source,omitempty"`
	Records  int       `json:"records"`
	Cities   int       `json:"cities"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Info returns the store summary.
func (s *Store) Info() Info {
	return Info{
		Version:  s.version,
		Source:   s.source,
		Records:  len(s.records),
		Cities:   len(s.cities),
		LoadedAt: s.loadedAt,
	}
}

// ByCity is a predicate matching one city.
func ByCity(city string) Predicate {
	return func(r *models.ExperienceRecord) bool {
		return r.City == city
	}
}

// ByProfile is a predicate applying the profile's hard filters.
func ByProfile(p *models.TouristProfile) Predicate {
	return p.Matches
}

// And combines predicates; all must match.
func And(preds ...Predicate) Predicate {
	return func(r *models.ExperienceRecord) bool {
		for _, p := range preds {
			if p != nil && !p(r) {
				return false
			}
		}
		return true
	}
}
