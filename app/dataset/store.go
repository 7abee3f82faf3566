package dataset

import (
	"sync"
	"time"

	"github.com/eubelhor/house-scraper/app/member"
	"github.com/eubelhor/house-scraper/app/scraper"
)

// Store holds the most recent acquisition result for serve mode. The
// record set is swapped wholesale on refresh; readers never see a
// partially updated set.
type Store struct {
	mu        sync.RWMutex
	members   []member.Member
	stats     *scraper.Stats
	updatedAt time.Time
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Set(members []member.Member, stats *scraper.Stats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = members
	s.stats = stats
	s.updatedAt = time.Now()
}

func (s *Store) Members() []member.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.members
}

func (s *Store) Stats() *scraper.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

func (s *Store) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.members)
}
