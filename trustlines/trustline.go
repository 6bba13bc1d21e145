package trustlines

// QualityParity is the fixed point scale of the quality rate fields.
// A quality of exactly QualityParity means 1:1.
const QualityParity uint32 = 1000000

// TrustLine is one bilateral credit line between a canonically ordered
// account pair. The balance is signed, positive means the high account
// is net obligated to the low account. The naming of the low/high roles
// follows the XRP ledger RippleState convention.
type TrustLine struct {
	LowAccount  AccountID
	HighAccount AccountID
	AssetID     uint32

	// LowLimit bounds the balance from above, it is the credit the low
	// account extends to the high account. HighLimit bounds the balance
	// magnitude from below when negative, stored as a positive value.
	LowLimit  int64
	HighLimit int64
	Balance   int64

	QualityIn     uint32
	QualityOut    uint32
	AllowRippling bool

	// Seq is the value the global creation counter took when this line
	// was created. Used for sequencing and audit only, never addressing.
	Seq       uint64
	CreatedAt int64
	UpdatedAt int64
}

// IsFrozen returns true if the line has been frozen by the administrator.
// Frozen lines have both limits pinned at zero and extend no credit.
func (tl *TrustLine) IsFrozen() bool {
	return tl.LowLimit == 0 && tl.HighLimit == 0
}

// IsParticipant returns true if the account is one side of this line
func (tl *TrustLine) IsParticipant(a AccountID) bool {
	return a == tl.LowAccount || a == tl.HighAccount
}

// PayerSign returns the balance delta sign of a payment sent by the
// given participant, +1 for the low account and -1 for the high account.
func (tl *TrustLine) PayerSign(payer AccountID) int64 {
	if payer == tl.LowAccount {
		return 1
	}
	return -1
}

// withinLimits reports whether a balance value satisfies
// -HighLimit <= balance <= LowLimit
func (tl *TrustLine) withinLimits(balance int64) bool {
	return balance >= -tl.HighLimit && balance <= tl.LowLimit
}

// balanceAfterPay computes the balance after the payer sends amount
// across this line, rejecting overflow and limit violations. The
// receiver is not mutated.
func (tl *TrustLine) balanceAfterPay(payer AccountID, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrBadAmount
	}
	if tl.IsFrozen() {
		return 0, ErrTrustLineFrozen
	}
	newBalance, err := addSigned(tl.Balance, amount*tl.PayerSign(payer))
	if err != nil {
		return 0, err
	}
	if !tl.withinLimits(newBalance) {
		return 0, ErrInsufficientCredit
	}
	return newBalance, nil
}

// AvailableLow is the remaining credit headroom for payments from the
// low account, AvailableHigh the same for the high account.
func (tl *TrustLine) AvailableLow() int64 {
	if tl.Balance >= 0 {
		return tl.LowLimit - tl.Balance
	}
	return tl.LowLimit
}

// AvailableHigh is the remaining credit headroom for payments from the
// high account.
func (tl *TrustLine) AvailableHigh() int64 {
	if tl.Balance <= 0 {
		return tl.HighLimit + tl.Balance
	}
	return tl.HighLimit
}

func checkQuality(q uint32) error {
	if q == 0 || q > QualityParity {
		return ErrBadQuality
	}
	return nil
}

// addSigned adds two int64 values rejecting overflow
func addSigned(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, ErrAmountOverflow
	}
	return sum, nil
}
