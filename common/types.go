package common

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// HashLength is the expected length of a hash
const HashLength = 32

// Hash represents the 32 byte digest of arbitrary data
type Hash [HashLength]byte

// Bytes gets the byte representation of the underlying hash
func (h Hash) Bytes() []byte { return h[:] }

// Hex converts a hash to a hex string with 0x prefix
func (h Hash) Hex() string { return ToHex(h[:]) }

// String implements the stringer interface
func (h Hash) String() string { return h.Hex() }

func has0xPrefix(str string) bool {
	return len(str) >= 2 && str[0] == '0' && (str[1] == 'x' || str[1] == 'X')
}

// ToHex returns the hex representation with 0x prefix
func ToHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// FromHex decodes a hex string, with or without the 0x prefix
func FromHex(s string) ([]byte, error) {
	if has0xPrefix(s) {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		return nil, errors.New("hex string of odd length: " + s)
	}
	return hex.DecodeString(s)
}

// StorageSize is a wrapper around a float value that supports user
// friendly formatting.
type StorageSize float64

// String implements the stringer interface.
func (s StorageSize) String() string {
	if s > 1099511627776 {
		return fmt.Sprintf("%.2f TiB", s/1099511627776)
	} else if s > 1073741824 {
		return fmt.Sprintf("%.2f GiB", s/1073741824)
	} else if s > 1048576 {
		return fmt.Sprintf("%.2f MiB", s/1048576)
	} else if s > 1024 {
		return fmt.Sprintf("%.2f KiB", s/1024)
	}
	return fmt.Sprintf("%.2f B", s)
}
