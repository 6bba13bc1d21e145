package trustlines

import (
	"bytes"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/common"
)

// AccountIDLength is the byte length of a participant identity
const AccountIDLength = 32

// AccountID is the identity of a trust line participant,
// the 32 byte ed25519 public key of its keypair.
type AccountID [AccountIDLength]byte

var zeroAccount AccountID

// Bytes gets the byte representation of the account
func (a AccountID) Bytes() []byte { return a[:] }

// Hex converts the account to a hex string with 0x prefix
func (a AccountID) Hex() string { return common.ToHex(a[:]) }

// String implements the stringer interface
func (a AccountID) String() string { return a.Hex() }

// IsZero returns true if the account is all zero bytes
func (a AccountID) IsZero() bool { return a == zeroAccount }

// Less compares two accounts under the canonical byte order
func (a AccountID) Less(b AccountID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

// MarshalText implements encoding.TextMarshaler
func (a AccountID) MarshalText() ([]byte, error) {
	return []byte(a.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *AccountID) UnmarshalText(input []byte) error {
	acc, err := HexToAccountID(string(input))
	if err != nil {
		return err
	}
	*a = acc
	return nil
}

// BytesToAccountID converts bytes to an account identity
func BytesToAccountID(b []byte) (AccountID, error) {
	var a AccountID
	if len(b) != AccountIDLength {
		return a, ErrBadAccountID
	}
	copy(a[:], b)
	if a.IsZero() {
		return a, ErrBadAccountID
	}
	return a, nil
}

// HexToAccountID converts a hex string (with or without 0x prefix) to an account identity
func HexToAccountID(s string) (AccountID, error) {
	data, err := common.FromHex(s)
	if err != nil {
		return zeroAccount, ErrBadAccountID
	}
	return BytesToAccountID(data)
}

// CanonicalPair orders two distinct accounts into their fixed low/high roles.
// The ordering is commutative, CanonicalPair(p, q) == CanonicalPair(q, p).
func CanonicalPair(p, q AccountID) (low, high AccountID, err error) {
	if p.IsZero() || q.IsZero() {
		return low, high, ErrBadAccountID
	}
	if p == q {
		return low, high, ErrSelfPair
	}
	if p.Less(q) {
		return p, q, nil
	}
	return q, p, nil
}
