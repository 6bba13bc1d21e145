package trustlines

import (
	"sync"
)

type pairKey struct {
	low  AccountID
	high AccountID
}

// MemStore is an in process Store used in test mode and unit tests.
// State is lost on shutdown.
type MemStore struct {
	mu    sync.RWMutex
	lines map[pairKey]*TrustLine
	seq   uint64
}

// NewMemStore creates an empty in process store
func NewMemStore() *MemStore {
	return &MemStore{
		lines: make(map[pairKey]*TrustLine),
	}
}

// GetTrustLine implements Store, the returned line is a private copy
func (s *MemStore) GetTrustLine(low, high AccountID) (*TrustLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tl, exist := s.lines[pairKey{low, high}]
	if !exist {
		return nil, ErrTrustLineNotFound
	}
	cp := *tl
	return &cp, nil
}

// InsertTrustLine implements Store
func (s *MemStore) InsertTrustLine(tl *TrustLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pairKey{tl.LowAccount, tl.HighAccount}
	if _, exist := s.lines[key]; exist {
		return ErrTrustLineExists
	}
	cp := *tl
	s.lines[key] = &cp
	return nil
}

// UpdateTrustLine implements Store
func (s *MemStore) UpdateTrustLine(tl *TrustLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pairKey{tl.LowAccount, tl.HighAccount}
	if _, exist := s.lines[key]; !exist {
		return ErrTrustLineNotFound
	}
	cp := *tl
	s.lines[key] = &cp
	return nil
}

// ApplyBalanceUpdates implements Store
func (s *MemStore) ApplyBalanceUpdates(updates []BalanceUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, up := range updates {
		if _, exist := s.lines[pairKey{up.LowAccount, up.HighAccount}]; !exist {
			return ErrTrustLineNotFound
		}
	}
	for _, up := range updates {
		tl := s.lines[pairKey{up.LowAccount, up.HighAccount}]
		tl.Balance = up.NewBalance
		tl.UpdatedAt = up.UpdatedAt
	}
	return nil
}

// NextSeq implements Store
func (s *MemStore) NextSeq() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq, nil
}

// CurrentSeq implements Store
func (s *MemStore) CurrentSeq() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq, nil
}

// TrustLineCount implements Store
func (s *MemStore) TrustLineCount() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.lines)), nil
}

// IterateTrustLines implements Store, fn receives private copies
func (s *MemStore) IterateTrustLines(fn func(*TrustLine) bool) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tl := range s.lines {
		cp := *tl
		if !fn(&cp) {
			break
		}
	}
	return nil
}
