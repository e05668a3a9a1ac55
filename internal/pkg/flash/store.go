package flash

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Store keeps one-shot flash notices between a redirect and the next render,
// keyed by a random per-browser id carried in a cookie.
type Store struct {
	cache *cache.Cache
}

func NewStore() *Store {
	// Notices older than 10 minutes are dropped; expired items are purged
	// every 5 minutes.
	c := cache.New(10*time.Minute, 5*time.Minute)
	return &Store{
		cache: c,
	}
}

func (s *Store) Add(id, notice string) {
	existing := s.peek(id)
	s.cache.Set(id, append(existing, notice), cache.DefaultExpiration)
}

// PopAll returns and clears all pending notices for the id.
func (s *Store) PopAll(id string) []string {
	notices := s.peek(id)
	s.cache.Delete(id)
	return notices
}

func (s *Store) peek(id string) []string {
	if x, found := s.cache.Get(id); found {
		return x.([]string)
	}
	return nil
}
