package entrylog

import "sync"

// idSequence hands out strictly increasing millisecond ids
type idSequence struct {
	mu   sync.Mutex
	last int64
}

func (s *idSequence) next(nowMillis int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := nowMillis
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
