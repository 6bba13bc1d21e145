package trustapi

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/params"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/signer"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/tools"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/trustlines"
)

type testIdentity struct {
	account trustlines.AccountID
	keyfile string
}

func newTestIdentity(t *testing.T, dir, name string) *testIdentity {
	key, seed, err := tools.GenerateKey()
	assert.Nil(t, err)
	keyfile := filepath.Join(dir, name)
	assert.Nil(t, ioutil.WriteFile(keyfile, []byte(seed), 0600))
	return &testIdentity{account: key.Account, keyfile: keyfile}
}

func (id *testIdentity) sign(t *testing.T, method string, params []string) string {
	assert.Nil(t, signer.LoadKeyFile(id.keyfile))
	rawCall, err := signer.Sign(method, params)
	assert.Nil(t, err)
	return rawCall
}

func (id *testIdentity) cosign(t *testing.T, rawCall string) string {
	assert.Nil(t, signer.LoadKeyFile(id.keyfile))
	cosigned, err := signer.AppendSignature(rawCall)
	assert.Nil(t, err)
	return cosigned
}

// initTestAPI wires an in process engine in test mode, the way the
// server does when business components are disabled
func initTestAPI(t *testing.T, admins []string) {
	params.SetConfig(&params.TrustConfig{
		Identifier: "testapi",
		Server:     &params.ServerConfig{Admins: admins},
		Extra:      &params.ExtraConfig{IsTestMode: true},
	})
	adminAccounts, err := params.GetAdminAccounts()
	assert.Nil(t, err)
	Init(trustlines.NewEngine(trustlines.NewMemStore(), &trustlines.Config{Admins: adminAccounts}))
}

func TestSubmitCallFlow(t *testing.T) {
	dir, err := ioutil.TempDir("", "trustapi")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	initTestAPI(t, nil)
	alice := newTestIdentity(t, dir, "alice.key")
	bob := newTestIdentity(t, dir, "bob.key")

	res, err := SubmitCall(alice.sign(t, "create", []string{bob.account.Hex(), "1", "1000", "1000", "true"}))
	assert.Nil(t, err)
	assert.Equal(t, SuccessPostResult, *res)

	// creating the same pair from the other side is a duplicate
	_, err = SubmitCall(bob.sign(t, "create", []string{alice.account.Hex(), "1", "500", "500", "false"}))
	assert.Error(t, err)

	res, err = SubmitCall(alice.sign(t, "send", []string{bob.account.Hex(), "100"}))
	assert.Nil(t, err)
	assert.Equal(t, SuccessPostResult, *res)

	// the generated accounts land in either canonical order, the
	// payment shifted the balance by 100 toward the payer's direction
	balance, err := GetBalance(alice.account.Hex(), bob.account.Hex())
	assert.Nil(t, err)
	expected := int64(100)
	if bob.account.Less(alice.account) {
		expected = -100
	}
	assert.Equal(t, expected, balance.Balance)

	// limit updates are co signed, one signature is not enough
	single := alice.sign(t, "limits", []string{bob.account.Hex(), "2000", "3000"})
	_, err = SubmitCall(single)
	assert.Error(t, err)
	res, err = SubmitCall(bob.cosign(t, single))
	assert.Nil(t, err)
	assert.Equal(t, SuccessPostResult, *res)

	// limit params are canonical, low then high, whoever initiates
	info, err := GetTrustLine(alice.account.Hex(), bob.account.Hex())
	assert.Nil(t, err)
	assert.Equal(t, int64(2000), info.LowLimit)
	assert.Equal(t, int64(3000), info.HighLimit)

	// the payer is the creditor afterward and may settle, co signed
	settle := alice.sign(t, "settle", []string{bob.account.Hex(), "60"})
	_, err = SubmitCall(settle)
	assert.Error(t, err)
	res, err = SubmitCall(bob.cosign(t, settle))
	assert.Nil(t, err)
	assert.Equal(t, SuccessPostResult, *res)

	balance, err = GetBalance(alice.account.Hex(), bob.account.Hex())
	assert.Nil(t, err)
	if expected > 0 {
		assert.Equal(t, int64(40), balance.Balance)
	} else {
		assert.Equal(t, int64(-40), balance.Balance)
	}

	_, err = SubmitCall(alice.sign(t, "quality", []string{bob.account.Hex(), "900000", "950000"}))
	assert.Nil(t, err)
	info, err = GetTrustLine(alice.account.Hex(), bob.account.Hex())
	assert.Nil(t, err)
	assert.Equal(t, uint32(900000), info.QualityIn)
	assert.Equal(t, uint32(950000), info.QualityOut)

	_, err = SubmitCall(alice.sign(t, "ripple_set", []string{bob.account.Hex(), "false"}))
	assert.Nil(t, err)

	lines, err := GetAccountTrustLines(alice.account.Hex(), 0)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(lines))
	assert.False(t, lines[0].AllowRippling)
}

func TestSubmitCallErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "trustapi")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	initTestAPI(t, nil)
	alice := newTestIdentity(t, dir, "alice.key")
	bob := newTestIdentity(t, dir, "bob.key")

	_, err = SubmitCall("0x00")
	assert.Error(t, err)

	_, err = SubmitCall(alice.sign(t, "bogus", []string{}))
	assert.Error(t, err)

	_, err = SubmitCall(alice.sign(t, "send", []string{bob.account.Hex()}))
	assert.Error(t, err)

	_, err = SubmitCall(alice.sign(t, "create", []string{"nothex", "1", "100", "100", "true"}))
	assert.Error(t, err)

	_, err = SubmitCall(alice.sign(t, "send", []string{bob.account.Hex(), "10"}))
	assert.Error(t, err)
}

func TestAdminCall(t *testing.T) {
	dir, err := ioutil.TempDir("", "trustapi")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	admin := newTestIdentity(t, dir, "admin.key")
	alice := newTestIdentity(t, dir, "alice.key")
	bob := newTestIdentity(t, dir, "bob.key")
	initTestAPI(t, []string{admin.account.Hex()})

	_, err = SubmitCall(alice.sign(t, "create", []string{bob.account.Hex(), "1", "1000", "1000", "true"}))
	assert.Nil(t, err)

	// non admin signers are refused
	_, err = AdminCall(alice.sign(t, "freeze", []string{alice.account.Hex(), bob.account.Hex()}))
	assert.Error(t, err)

	result, err := AdminCall(admin.sign(t, "freeze", []string{alice.account.Hex(), bob.account.Hex()}))
	assert.Nil(t, err)
	assert.Equal(t, string(SuccessPostResult), result)

	info, err := GetTrustLine(alice.account.Hex(), bob.account.Hex())
	assert.Nil(t, err)
	assert.True(t, info.Frozen)

	result, err = AdminCall(admin.sign(t, "status", []string{}))
	assert.Nil(t, err)
	var stats StatsInfo
	assert.Nil(t, json.Unmarshal([]byte(result), &stats))
	assert.Equal(t, uint64(1), stats.TrustLines)

	_, err = AdminCall(admin.sign(t, "bogus", []string{}))
	assert.Error(t, err)
}

func TestAdminCallNoAdminConfiged(t *testing.T) {
	dir, err := ioutil.TempDir("", "trustapi")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	initTestAPI(t, nil)
	alice := newTestIdentity(t, dir, "alice.key")

	_, err = AdminCall(alice.sign(t, "status", []string{}))
	assert.Error(t, err)
}

func TestQueryAPIs(t *testing.T) {
	dir, err := ioutil.TempDir("", "trustapi")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	initTestAPI(t, nil)
	alice := newTestIdentity(t, dir, "alice.key")
	bob := newTestIdentity(t, dir, "bob.key")

	serverInfo, err := GetServerInfo()
	assert.Nil(t, err)
	assert.Equal(t, "testapi", serverInfo.Identifier)
	assert.NotEqual(t, "", serverInfo.Version)

	_, err = SubmitCall(alice.sign(t, "create", []string{bob.account.Hex(), "1", "1000", "1000", "true"}))
	assert.Nil(t, err)

	stats, err := GetStatistics()
	assert.Nil(t, err)
	assert.Equal(t, "testapi", stats.Identifier)
	assert.Equal(t, uint64(1), stats.TrustLines)
	assert.Equal(t, uint64(1), stats.CreationSeq)

	credit, err := GetAvailableCredit(alice.account.Hex(), bob.account.Hex())
	assert.Nil(t, err)
	assert.Equal(t, int64(1000), credit.LowAvailable)
	assert.Equal(t, int64(1000), credit.HighAvailable)

	_, err = GetTrustLine("nothex", bob.account.Hex())
	assert.Error(t, err)
	_, err = GetBalance(alice.account.Hex(), alice.account.Hex())
	assert.Error(t, err)

	// no asset registry configured
	assets, err := GetAssets()
	assert.Nil(t, err)
	assert.Equal(t, 0, len(assets))
	_, err = GetAsset("1")
	assert.Error(t, err)
	_, err = GetAsset("nothex")
	assert.Error(t, err)

	// history needs the database
	_, err = GetHistory(alice.account.Hex(), 0, 10)
	assert.Equal(t, errHistoryDisabled, err)
}

func TestProcessQueryLimit(t *testing.T) {
	assert.Equal(t, 20, processQueryLimit(0))
	assert.Equal(t, 20, processQueryLimit(-5))
	assert.Equal(t, 100, processQueryLimit(500))
	assert.Equal(t, 50, processQueryLimit(50))
}
