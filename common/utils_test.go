package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeccak256Hash(t *testing.T) {
	assert.Equal(t,
		"0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		Keccak256Hash().Hex())
	assert.Equal(t,
		"0x4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45",
		Keccak256Hash([]byte("abc")).Hex())
	// concated data hashes like the joined bytes
	assert.Equal(t,
		Keccak256Hash([]byte("abc")),
		Keccak256Hash([]byte("a"), []byte("bc")))
}

func TestHexCodec(t *testing.T) {
	data := []byte{0x01, 0xab, 0xff}
	str := ToHex(data)
	assert.Equal(t, "0x01abff", str)

	decoded, err := FromHex(str)
	assert.Nil(t, err)
	assert.Equal(t, data, decoded)

	decoded, err = FromHex("01abff")
	assert.Nil(t, err)
	assert.Equal(t, data, decoded)

	decoded, err = FromHex("0X01ABFF")
	assert.Nil(t, err)
	assert.Equal(t, data, decoded)

	_, err = FromHex("0x123")
	assert.Error(t, err)
	_, err = FromHex("zzzz")
	assert.Error(t, err)

	assert.Equal(t, "0x", ToHex(nil))
}

func TestGetInt64FromStr(t *testing.T) {
	v, err := GetInt64FromStr("-100")
	assert.Nil(t, err)
	assert.Equal(t, int64(-100), v)
	_, err = GetInt64FromStr("1.5")
	assert.Error(t, err)
	_, err = GetInt64FromStr("")
	assert.Error(t, err)
}

func TestGetUint64FromStr(t *testing.T) {
	v, err := GetUint64FromStr("18446744073709551615")
	assert.Nil(t, err)
	assert.Equal(t, uint64(18446744073709551615), v)
	_, err = GetUint64FromStr("-1")
	assert.Error(t, err)
}

func TestGetUint32FromStr(t *testing.T) {
	v, err := GetUint32FromStr("4294967295")
	assert.Nil(t, err)
	assert.Equal(t, uint32(4294967295), v)
	_, err = GetUint32FromStr("4294967296")
	assert.Error(t, err)
}

func TestGetBoolFromStr(t *testing.T) {
	for _, str := range []string{"true", "1"} {
		v, err := GetBoolFromStr(str)
		assert.Nil(t, err)
		assert.True(t, v)
	}
	for _, str := range []string{"false", "0"} {
		v, err := GetBoolFromStr(str)
		assert.Nil(t, err)
		assert.False(t, v)
	}
	// anything else is refused, no lenient parsing
	for _, str := range []string{"True", "yes", "t", ""} {
		_, err := GetBoolFromStr(str)
		assert.Error(t, err)
	}
}
