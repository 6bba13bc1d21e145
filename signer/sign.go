// Package signer provides methods to sign operation envelopes and to
// verify signed envelopes.
package signer

import (
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"time"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/common"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/tools"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/trustlines"
)

var (
	keyWrapper *tools.Key

	// signed call lifetime
	maxExpireSeconds int64 = 120
	maxFutureSeconds int64 = 30
)

// envelope errors
var (
	ErrNoSignature      = errors.New("signed call without signature")
	ErrWrongSignature   = errors.New("wrong signature in signed call")
	ErrDuplicateSigner  = errors.New("duplicate signer in signed call")
	ErrExpiredTimestamp = errors.New("expired signed call timestamp")
	ErrFutureTimestamp  = errors.New("future signed call timestamp")
)

// CallArgs call args, the signed payload of one operation request
type CallArgs struct {
	Method    string   `json:"method"`
	Params    []string `json:"params"`
	Timestamp int64    `json:"timestamp"`
}

// Signature is one signer's approval of the call digest
type Signature struct {
	Account   string `json:"account"`
	Signature string `json:"signature"`
}

// SignedCall is the wire form of a signed operation envelope
type SignedCall struct {
	Args CallArgs    `json:"args"`
	Sigs []Signature `json:"signatures"`
}

// CallDigest is the keccak256 hash of the canonically encoded call args
func CallDigest(args *CallArgs) (common.Hash, error) {
	payload, err := json.Marshal(args)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Keccak256Hash(payload), nil
}

// LoadKeyFile load the local signing key
func LoadKeyFile(keyfile string) error {
	key, err := tools.LoadKeyFile(keyfile)
	if err != nil {
		return err
	}
	keyWrapper = key
	log.Info("[signer] load key file success", "account", keyWrapper.Account)
	return nil
}

// LocalAccount returns the account of the loaded signing key
func LocalAccount() (trustlines.AccountID, error) {
	if keyWrapper == nil {
		return trustlines.AccountID{}, errors.New("no key file loaded")
	}
	return keyWrapper.Account, nil
}

// Sign builds a call envelope with the current timestamp and signs it
// with the loaded key, returning the hex encoded signed call
func Sign(method string, params []string) (rawCall string, err error) {
	log.Info("signer Sign", "method", method, "params", params)
	if keyWrapper == nil {
		return "", errors.New("no key file loaded")
	}
	args := CallArgs{
		Method:    method,
		Params:    params,
		Timestamp: time.Now().Unix(),
	}
	signed, err := appendSignature(&SignedCall{Args: args}, keyWrapper)
	if err != nil {
		return "", err
	}
	return encodeSignedCall(signed)
}

// AppendSignature adds the loaded key's signature to an existing hex
// encoded signed call, used to co sign a counterparty's envelope
func AppendSignature(rawCall string) (string, error) {
	if keyWrapper == nil {
		return "", errors.New("no key file loaded")
	}
	signed, err := DecodeSignedCall(rawCall)
	if err != nil {
		return "", err
	}
	signed, err = appendSignature(signed, keyWrapper)
	if err != nil {
		return "", err
	}
	return encodeSignedCall(signed)
}

func appendSignature(signed *SignedCall, key *tools.Key) (*SignedCall, error) {
	digest, err := CallDigest(&signed.Args)
	if err != nil {
		return nil, err
	}
	for _, sig := range signed.Sigs {
		if sig.Account == key.Account.Hex() {
			return nil, ErrDuplicateSigner
		}
	}
	signed.Sigs = append(signed.Sigs, Signature{
		Account:   key.Account.Hex(),
		Signature: common.ToHex(key.Sign(digest.Bytes())),
	})
	return signed, nil
}

func encodeSignedCall(signed *SignedCall) (string, error) {
	data, err := json.Marshal(signed)
	if err != nil {
		return "", err
	}
	return common.ToHex(data), nil
}

// DecodeSignedCall decodes a hex encoded signed call envelope
func DecodeSignedCall(rawCall string) (*SignedCall, error) {
	data, err := common.FromHex(rawCall)
	if err != nil {
		return nil, err
	}
	var signed SignedCall
	if err := json.Unmarshal(data, &signed); err != nil {
		return nil, err
	}
	return &signed, nil
}

// VerifyCall decodes a hex encoded signed call, checks its timestamp
// window and every signature, and returns the call args with the set
// of accounts that signed
func VerifyCall(rawCall string) (*CallArgs, []trustlines.AccountID, error) {
	signed, err := DecodeSignedCall(rawCall)
	if err != nil {
		return nil, nil, err
	}
	if err := checkTimestamp(signed.Args.Timestamp); err != nil {
		return nil, nil, err
	}
	if len(signed.Sigs) == 0 {
		return nil, nil, ErrNoSignature
	}
	digest, err := CallDigest(&signed.Args)
	if err != nil {
		return nil, nil, err
	}
	signers := make([]trustlines.AccountID, 0, len(signed.Sigs))
	for _, sig := range signed.Sigs {
		account, err := trustlines.HexToAccountID(sig.Account)
		if err != nil {
			return nil, nil, err
		}
		for _, have := range signers {
			if have == account {
				return nil, nil, ErrDuplicateSigner
			}
		}
		sigBytes, err := common.FromHex(sig.Signature)
		if err != nil || len(sigBytes) != ed25519.SignatureSize {
			return nil, nil, ErrWrongSignature
		}
		if !ed25519.Verify(account.Bytes(), digest.Bytes(), sigBytes) {
			return nil, nil, ErrWrongSignature
		}
		signers = append(signers, account)
	}
	return &signed.Args, signers, nil
}

func checkTimestamp(timestamp int64) error {
	now := time.Now().Unix()
	if now-timestamp > maxExpireSeconds {
		return ErrExpiredTimestamp
	}
	if now+maxFutureSeconds < timestamp {
		return ErrFutureTimestamp
	}
	return nil
}
