// Package cityprofile provides the read-only store of per-city latest known
// readings.
package cityprofile

import (
	"sort"
	"strings"

	"github.com/airadvisor/airadvisor/internal/reading"
)

// Store holds city profiles, built once at startup and immutable afterwards.
// Lookups are case-insensitive against the stored city names.
type Store struct {
	profiles map[string]reading.Set // keyed by lowercased city name
	names    []string               // original names, sorted
}

// NewStore builds a Store from a city name to reading-set mapping. When two
// names collide case-insensitively the last one wins.
func NewStore(profiles map[string]reading.Set) *Store {
	s := &Store{
		profiles: make(map[string]reading.Set, len(profiles)),
		names:    make([]string, 0, len(profiles)),
	}
	for name, set := range profiles {
		key := strings.ToLower(name)
		if _, exists := s.profiles[key]; !exists {
			s.names = append(s.names, name)
		}
		s.profiles[key] = set.Clone()
	}
	sort.Strings(s.names)
	return s
}

// Lookup returns the stored readings for a city, matching case-insensitively.
// A nil Store knows no cities.
func (s *Store) Lookup(city string) (reading.Set, bool) {
	if s == nil {
		return nil, false
	}
	set, ok := s.profiles[strings.ToLower(city)]
	return set, ok
}

// Names returns the known city names in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of known cities.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.profiles)
}
