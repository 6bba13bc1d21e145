package tools

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/common"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/trustlines"
)

// Key is a loaded ed25519 keypair with its account identity, the
// account is the public key
type Key struct {
	Account    trustlines.AccountID
	PrivateKey ed25519.PrivateKey
}

// Sign signs a digest with the key
func (k *Key) Sign(digest []byte) []byte {
	return ed25519.Sign(k.PrivateKey, digest)
}

// LoadKeyFile load an ed25519 key file holding the hex encoded 32 byte seed
func LoadKeyFile(keyfile string) (*Key, error) {
	data, err := ioutil.ReadFile(keyfile)
	if err != nil {
		return nil, fmt.Errorf("read key file fail %v", err)
	}
	seed, err := common.FromHex(strings.TrimSpace(string(data)))
	if err != nil || len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("key file must hold a hex encoded %v byte seed", ed25519.SeedSize)
	}
	return keyFromSeed(seed)
}

// GenerateKey creates a random keypair, returns it with the hex seed to
// store in a key file
func GenerateKey() (*Key, string, error) {
	seed := make([]byte, ed25519.SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, "", fmt.Errorf("generate key fail %v", err)
	}
	key, err := keyFromSeed(seed)
	if err != nil {
		return nil, "", err
	}
	return key, common.ToHex(seed), nil
}

func keyFromSeed(seed []byte) (*Key, error) {
	priv := ed25519.NewKeyFromSeed(seed)
	account, err := trustlines.BytesToAccountID(priv.Public().(ed25519.PublicKey))
	if err != nil {
		return nil, err
	}
	return &Key{Account: account, PrivateKey: priv}, nil
}
