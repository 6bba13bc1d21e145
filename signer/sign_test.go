package signer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/common"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/tools"
)

func testKey(t *testing.T) *tools.Key {
	key, _, err := tools.GenerateKey()
	assert.Nil(t, err)
	return key
}

func signWithTimestamp(t *testing.T, key *tools.Key, timestamp int64) string {
	signed, err := appendSignature(&SignedCall{Args: CallArgs{
		Method:    "status",
		Params:    []string{},
		Timestamp: timestamp,
	}}, key)
	assert.Nil(t, err)
	rawCall, err := encodeSignedCall(signed)
	assert.Nil(t, err)
	return rawCall
}

func TestSignAndVerify(t *testing.T) {
	keyWrapper = testKey(t)
	defer func() { keyWrapper = nil }()

	rawCall, err := Sign("create", []string{"a", "b", "100"})
	assert.Nil(t, err)

	args, signers, err := VerifyCall(rawCall)
	assert.Nil(t, err)
	assert.Equal(t, "create", args.Method)
	assert.Equal(t, []string{"a", "b", "100"}, args.Params)
	assert.Equal(t, 1, len(signers))
	assert.Equal(t, keyWrapper.Account, signers[0])

	account, err := LocalAccount()
	assert.Nil(t, err)
	assert.Equal(t, keyWrapper.Account, account)
}

func TestCosign(t *testing.T) {
	key1 := testKey(t)
	key2 := testKey(t)
	defer func() { keyWrapper = nil }()

	keyWrapper = key1
	rawCall, err := Sign("limits", []string{"b", "200", "300"})
	assert.Nil(t, err)

	keyWrapper = key2
	cosigned, err := AppendSignature(rawCall)
	assert.Nil(t, err)

	args, signers, err := VerifyCall(cosigned)
	assert.Nil(t, err)
	assert.Equal(t, "limits", args.Method)
	assert.Equal(t, 2, len(signers))
	assert.Equal(t, key1.Account, signers[0])
	assert.Equal(t, key2.Account, signers[1])

	// the same key can not sign twice
	keyWrapper = key1
	_, err = AppendSignature(cosigned)
	assert.Equal(t, ErrDuplicateSigner, err)

	// nor can a crafted envelope repeat a signature
	signed, err := DecodeSignedCall(cosigned)
	assert.Nil(t, err)
	signed.Sigs = append(signed.Sigs, signed.Sigs[0])
	crafted, err := encodeSignedCall(signed)
	assert.Nil(t, err)
	_, _, err = VerifyCall(crafted)
	assert.Equal(t, ErrDuplicateSigner, err)
}

func TestTimestampWindow(t *testing.T) {
	key := testKey(t)
	now := time.Now().Unix()

	_, _, err := VerifyCall(signWithTimestamp(t, key, now))
	assert.Nil(t, err)

	_, _, err = VerifyCall(signWithTimestamp(t, key, now-maxExpireSeconds-10))
	assert.Equal(t, ErrExpiredTimestamp, err)

	_, _, err = VerifyCall(signWithTimestamp(t, key, now+maxFutureSeconds+10))
	assert.Equal(t, ErrFutureTimestamp, err)
}

func TestTamperedCall(t *testing.T) {
	keyWrapper = testKey(t)
	defer func() { keyWrapper = nil }()

	rawCall, err := Sign("send", []string{"b", "100"})
	assert.Nil(t, err)

	signed, err := DecodeSignedCall(rawCall)
	assert.Nil(t, err)
	signed.Args.Params = []string{"b", "100000"}
	tampered, err := encodeSignedCall(signed)
	assert.Nil(t, err)
	_, _, err = VerifyCall(tampered)
	assert.Equal(t, ErrWrongSignature, err)

	signed, err = DecodeSignedCall(rawCall)
	assert.Nil(t, err)
	signed.Sigs[0].Signature = common.ToHex([]byte{1, 2, 3})
	tampered, err = encodeSignedCall(signed)
	assert.Nil(t, err)
	_, _, err = VerifyCall(tampered)
	assert.Equal(t, ErrWrongSignature, err)
}

func TestNoSignature(t *testing.T) {
	rawCall, err := encodeSignedCall(&SignedCall{Args: CallArgs{
		Method:    "status",
		Timestamp: time.Now().Unix(),
	}})
	assert.Nil(t, err)
	_, _, err = VerifyCall(rawCall)
	assert.Equal(t, ErrNoSignature, err)
}

func TestDecodeErrors(t *testing.T) {
	_, err := DecodeSignedCall("zz")
	assert.Error(t, err)
	_, err = DecodeSignedCall(common.ToHex([]byte("not json")))
	assert.Error(t, err)
}

func TestNoKeyLoaded(t *testing.T) {
	keyWrapper = nil
	_, err := Sign("status", nil)
	assert.Error(t, err)
	_, err = AppendSignature("0x00")
	assert.Error(t, err)
	_, err = LocalAccount()
	assert.Error(t, err)
}
