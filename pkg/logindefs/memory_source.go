package logindefs

// MemorySource implements Source with a fixed range, for testing and
// for callers that already know their UID boundaries.
type MemorySource struct {
	rng UIDRange
	err error
}

// NewMemorySource creates a MemorySource returning the given range.
func NewMemorySource(rng UIDRange) *MemorySource {
	return &MemorySource{rng: rng}
}

// NewFailingSource creates a MemorySource that always returns err.
func NewFailingSource(err error) *MemorySource {
	return &MemorySource{err: err}
}

// LoadUIDRange implements Source
func (s *MemorySource) LoadUIDRange() (UIDRange, error) {
	if s.err != nil {
		return UIDRange{}, s.err
	}
	return s.rng, nil
}
