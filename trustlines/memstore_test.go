package trustlines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func storedLine(low, high AccountID, balance int64) *TrustLine {
	return &TrustLine{
		LowAccount:  low,
		HighAccount: high,
		LowLimit:    100,
		HighLimit:   100,
		Balance:     balance,
		QualityIn:   QualityParity,
		QualityOut:  QualityParity,
		Seq:         1,
	}
}

func TestMemStoreCopies(t *testing.T) {
	s := NewMemStore()
	assert.Nil(t, s.InsertTrustLine(storedLine(acctA, acctB, 0)))
	assert.Equal(t, ErrTrustLineExists, s.InsertTrustLine(storedLine(acctA, acctB, 0)))

	// mutating a returned line must not leak into the store
	tl, err := s.GetTrustLine(acctA, acctB)
	assert.Nil(t, err)
	tl.Balance = 999

	tl, err = s.GetTrustLine(acctA, acctB)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), tl.Balance)

	_, err = s.GetTrustLine(acctA, acctC)
	assert.Equal(t, ErrTrustLineNotFound, err)
	assert.Equal(t, ErrTrustLineNotFound, s.UpdateTrustLine(storedLine(acctA, acctC, 0)))

	tl = storedLine(acctA, acctB, 42)
	assert.Nil(t, s.UpdateTrustLine(tl))
	tl, err = s.GetTrustLine(acctA, acctB)
	assert.Nil(t, err)
	assert.Equal(t, int64(42), tl.Balance)
}

func TestMemStoreApplyBalanceUpdates(t *testing.T) {
	s := NewMemStore()
	assert.Nil(t, s.InsertTrustLine(storedLine(acctA, acctB, 0)))
	assert.Nil(t, s.InsertTrustLine(storedLine(acctB, acctC, 0)))

	// one unknown pair rejects the whole batch
	err := s.ApplyBalanceUpdates([]BalanceUpdate{
		{LowAccount: acctA, HighAccount: acctB, NewBalance: 10},
		{LowAccount: acctC, HighAccount: acctD, NewBalance: 20},
	})
	assert.Equal(t, ErrTrustLineNotFound, err)
	tl, err := s.GetTrustLine(acctA, acctB)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), tl.Balance)

	assert.Nil(t, s.ApplyBalanceUpdates([]BalanceUpdate{
		{LowAccount: acctA, HighAccount: acctB, NewBalance: 10, UpdatedAt: 7},
		{LowAccount: acctB, HighAccount: acctC, NewBalance: 20, UpdatedAt: 7},
	}))
	tl, err = s.GetTrustLine(acctA, acctB)
	assert.Nil(t, err)
	assert.Equal(t, int64(10), tl.Balance)
	assert.Equal(t, int64(7), tl.UpdatedAt)
	tl, err = s.GetTrustLine(acctB, acctC)
	assert.Nil(t, err)
	assert.Equal(t, int64(20), tl.Balance)
}

func TestMemStoreSeq(t *testing.T) {
	s := NewMemStore()
	seq, err := s.CurrentSeq()
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), seq)

	seq, err = s.NextSeq()
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), seq)
	seq, err = s.NextSeq()
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), seq)

	seq, err = s.CurrentSeq()
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), seq)
}

func TestMemStoreIterate(t *testing.T) {
	s := NewMemStore()
	assert.Nil(t, s.InsertTrustLine(storedLine(acctA, acctB, 0)))
	assert.Nil(t, s.InsertTrustLine(storedLine(acctA, acctC, 0)))
	assert.Nil(t, s.InsertTrustLine(storedLine(acctB, acctC, 0)))

	count, err := s.TrustLineCount()
	assert.Nil(t, err)
	assert.Equal(t, uint64(3), count)

	visited := 0
	assert.Nil(t, s.IterateTrustLines(func(tl *TrustLine) bool {
		visited++
		return true
	}))
	assert.Equal(t, 3, visited)

	// returning false stops the scan
	visited = 0
	assert.Nil(t, s.IterateTrustLines(func(tl *TrustLine) bool {
		visited++
		return false
	}))
	assert.Equal(t, 1, visited)
}
