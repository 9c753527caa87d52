package tstamp

import "sync"

// UniqueSet hands out millisecond timestamps that have not been handed out
// before. Sensor data keyed by timestamp uses it to keep entries created in
// the same millisecond apart. The zero value is ready to use. Safe for
// concurrent use.
type UniqueSet struct {
	mu   sync.Mutex
	seen map[int64]struct{}
}

func NewUniqueSet() *UniqueSet {
	return &UniqueSet{seen: make(map[int64]struct{})}
}

// Unique returns ms if unused, otherwise the next unused value above it.
func (s *UniqueSet) Unique(ms int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seen == nil {
		s.seen = make(map[int64]struct{})
	}
	for {
		if _, taken := s.seen[ms]; !taken {
			break
		}
		ms++
	}
	s.seen[ms] = struct{}{}
	return ms
}

// Len is the number of timestamps handed out.
func (s *UniqueSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}
