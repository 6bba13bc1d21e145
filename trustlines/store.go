package trustlines

// BalanceUpdate is one line's new balance inside a multi line commit
type BalanceUpdate struct {
	LowAccount  AccountID
	HighAccount AccountID
	NewBalance  int64
	UpdatedAt   int64
}

// Store is the durable trust line storage the engine drives. The engine
// serializes all calls, implementations need no cross operation locking
// beyond their own internal consistency. GetTrustLine must return a
// private copy the caller may mutate freely.
type Store interface {
	// GetTrustLine returns the line of a canonical pair,
	// ErrTrustLineNotFound if absent
	GetTrustLine(low, high AccountID) (*TrustLine, error)
	// InsertTrustLine adds a new line, ErrTrustLineExists on duplicate
	InsertTrustLine(tl *TrustLine) error
	// UpdateTrustLine overwrites the stored line of tl's pair
	UpdateTrustLine(tl *TrustLine) error
	// ApplyBalanceUpdates commits several lines' new balances in one go.
	// Callers have pre validated every update, a failure of any single
	// write is a storage fault, not a business rejection.
	ApplyBalanceUpdates(updates []BalanceUpdate) error
	// NextSeq increments the global creation counter and returns the
	// incremented value
	NextSeq() (uint64, error)
	// CurrentSeq returns the creation counter without incrementing
	CurrentSeq() (uint64, error)
	// TrustLineCount returns the number of stored lines
	TrustLineCount() (uint64, error)
	// IterateTrustLines calls fn on every stored line until fn returns
	// false or the lines are exhausted
	IterateTrustLines(fn func(*TrustLine) bool) error
}
