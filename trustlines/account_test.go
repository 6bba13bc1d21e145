package trustlines

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalPair(t *testing.T) {
	p := testAccount(7)
	q := testAccount(3)

	low1, high1, err1 := CanonicalPair(p, q)
	low2, high2, err2 := CanonicalPair(q, p)
	assert.Nil(t, err1)
	assert.Nil(t, err2)
	assert.Equal(t, low1, low2)
	assert.Equal(t, high1, high2)
	assert.Equal(t, q, low1)
	assert.Equal(t, p, high1)
	assert.True(t, low1.Less(high1))

	_, _, err := CanonicalPair(p, p)
	assert.Equal(t, ErrSelfPair, err)

	var zero AccountID
	_, _, err = CanonicalPair(zero, q)
	assert.Equal(t, ErrBadAccountID, err)
	_, _, err = CanonicalPair(p, zero)
	assert.Equal(t, ErrBadAccountID, err)
}

func TestAccountHexRoundTrip(t *testing.T) {
	a := testAccount(5)
	hexStr := a.Hex()
	assert.Equal(t, "0x", hexStr[:2])

	b, err := HexToAccountID(hexStr)
	assert.Nil(t, err)
	assert.Equal(t, a, b)

	c, err := HexToAccountID(hexStr[2:]) // without 0x prefix
	assert.Nil(t, err)
	assert.Equal(t, a, c)

	_, err = HexToAccountID("0x1234")
	assert.Equal(t, ErrBadAccountID, err)

	_, err = HexToAccountID("not hex at all")
	assert.Equal(t, ErrBadAccountID, err)

	var zero AccountID
	_, err = HexToAccountID(zero.Hex())
	assert.Equal(t, ErrBadAccountID, err)

	_, err = BytesToAccountID(make([]byte, AccountIDLength-1))
	assert.Equal(t, ErrBadAccountID, err)
}

func TestAccountMarshalText(t *testing.T) {
	a := testAccount(8)
	bs, err := json.Marshal(a)
	assert.Nil(t, err)
	assert.Equal(t, `"`+a.Hex()+`"`, string(bs))

	var b AccountID
	err = json.Unmarshal(bs, &b)
	assert.Nil(t, err)
	assert.Equal(t, a, b)
}

func TestAccountLess(t *testing.T) {
	assert.True(t, testAccount(1).Less(testAccount(2)))
	assert.False(t, testAccount(2).Less(testAccount(1)))
	assert.False(t, testAccount(1).Less(testAccount(1)))
}
