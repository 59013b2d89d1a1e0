package core

import "sync"

// Session owns the current record ID used for relative navigation.
// Every lookup is stamped with a generation; a reply whose generation
// has been superseded by a later Begin must not overwrite newer state.
type Session struct {
	mu      sync.Mutex
	current int
	gen     uint64
}

func NewSession() *Session {
	return &Session{current: 1}
}

func (s *Session) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// PrevID returns the ID one step back. Stepping back below ID 1 is a
// no-op and yields ID 1 again.
func (s *Session) PrevID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current <= 1 {
		return 1
	}
	return s.current - 1
}

// NextID returns the ID one step forward. There is no upper bound; an
// out-of-range ID surfaces as a lookup failure.
func (s *Session) NextID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current + 1
}

// Begin supersedes all in-flight lookups and returns the new generation.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

// Commit stores id as the current selection if gen is still the latest
// generation. Stale commits are dropped and reported as false.
func (s *Session) Commit(gen uint64, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.current = id
	return true
}

// Stale reports whether gen has been superseded by a later Begin.
func (s *Session) Stale(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen != s.gen
}
