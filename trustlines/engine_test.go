package trustlines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	acctA     = testAccount(1)
	acctB     = testAccount(2)
	acctC     = testAccount(3)
	acctD     = testAccount(4)
	acctAdmin = testAccount(9)
)

func testAccount(n byte) AccountID {
	var a AccountID
	a[0] = n
	a[AccountIDLength-1] = n
	return a
}

func newTestEngine() *Engine {
	return NewEngine(NewMemStore(), &Config{Admins: []AccountID{acctAdmin}})
}

func mustCreate(t *testing.T, e *Engine, p, q AccountID, lowLimit, highLimit int64, allowRippling bool) *TrustLine {
	tl, err := e.CreateTrustLine(p, q, 1, lowLimit, highLimit, allowRippling)
	assert.Nil(t, err)
	return tl
}

func TestCreateTrustLine(t *testing.T) {
	e := newTestEngine()

	tl := mustCreate(t, e, acctA, acctB, 100, 200, true)
	assert.Equal(t, acctA, tl.LowAccount)
	assert.Equal(t, acctB, tl.HighAccount)
	assert.Equal(t, int64(0), tl.Balance)
	assert.Equal(t, int64(100), tl.LowLimit)
	assert.Equal(t, int64(200), tl.HighLimit)
	assert.Equal(t, QualityParity, tl.QualityIn)
	assert.Equal(t, QualityParity, tl.QualityOut)
	assert.True(t, tl.AllowRippling)
	assert.False(t, tl.IsFrozen())
	assert.Equal(t, uint64(1), tl.Seq)

	// the pair is canonical, creating from the other side is a duplicate
	_, err := e.CreateTrustLine(acctB, acctA, 1, 50, 50, false)
	assert.Equal(t, ErrTrustLineExists, err)

	_, err = e.CreateTrustLine(acctA, acctA, 1, 100, 100, false)
	assert.Equal(t, ErrSelfPair, err)

	_, err = e.CreateTrustLine(acctA, acctC, 1, 0, 100, false)
	assert.Equal(t, ErrBadLimit, err)
	_, err = e.CreateTrustLine(acctA, acctC, 1, 100, -1, false)
	assert.Equal(t, ErrBadLimit, err)

	var zero AccountID
	_, err = e.CreateTrustLine(acctA, zero, 1, 100, 100, false)
	assert.Equal(t, ErrBadAccountID, err)

	tl2 := mustCreate(t, e, acctA, acctC, 100, 100, false)
	assert.Equal(t, uint64(2), tl2.Seq)
}

func TestPayRoundTrip(t *testing.T) {
	e := newTestEngine()
	mustCreate(t, e, acctA, acctB, 100, 100, true)

	tl, err := e.Pay(acctA, acctB, 40)
	assert.Nil(t, err)
	assert.Equal(t, int64(40), tl.Balance)

	tl, err = e.Pay(acctB, acctA, 40)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), tl.Balance)
}

func TestPayBoundary(t *testing.T) {
	e := newTestEngine()
	mustCreate(t, e, acctA, acctB, 1000, 500, true)

	tl, err := e.Pay(acctA, acctB, 600)
	assert.Nil(t, err)
	assert.Equal(t, int64(600), tl.Balance)

	// would give balance -600, below -highLimit
	_, err = e.Pay(acctB, acctA, 1200)
	assert.Equal(t, ErrInsufficientCredit, err)

	balance, err := e.Balance(acctA, acctB)
	assert.Nil(t, err)
	assert.Equal(t, int64(600), balance)
}

func TestPayErrors(t *testing.T) {
	e := newTestEngine()

	_, err := e.Pay(acctA, acctB, 10)
	assert.Equal(t, ErrTrustLineNotFound, err)

	mustCreate(t, e, acctA, acctB, 100, 100, true)

	_, err = e.Pay(acctA, acctB, 0)
	assert.Equal(t, ErrBadAmount, err)
	_, err = e.Pay(acctA, acctB, -5)
	assert.Equal(t, ErrBadAmount, err)
	_, err = e.Pay(acctA, acctA, 10)
	assert.Equal(t, ErrSelfPair, err)
}

func TestUpdateQuality(t *testing.T) {
	e := newTestEngine()
	mustCreate(t, e, acctA, acctB, 100, 100, true)

	tl, err := e.UpdateQuality(acctA, acctB, 500000, 999999)
	assert.Nil(t, err)
	assert.Equal(t, uint32(500000), tl.QualityIn)
	assert.Equal(t, uint32(999999), tl.QualityOut)

	_, err = e.UpdateQuality(acctA, acctB, 0, 500000)
	assert.Equal(t, ErrBadQuality, err)
	_, err = e.UpdateQuality(acctA, acctB, 500000, QualityParity+1)
	assert.Equal(t, ErrBadQuality, err)

	_, err = e.UpdateQuality(acctA, acctC, 500000, 500000)
	assert.Equal(t, ErrTrustLineNotFound, err)
}

func TestSetRippling(t *testing.T) {
	e := newTestEngine()
	mustCreate(t, e, acctA, acctB, 100, 100, false)

	tl, err := e.SetRippling(acctB, acctA, true)
	assert.Nil(t, err)
	assert.True(t, tl.AllowRippling)

	tl, err = e.SetRippling(acctA, acctB, false)
	assert.Nil(t, err)
	assert.False(t, tl.AllowRippling)
}

func TestUpdateLimits(t *testing.T) {
	e := newTestEngine()
	mustCreate(t, e, acctA, acctB, 100, 100, true)
	_, err := e.Pay(acctA, acctB, 60)
	assert.Nil(t, err)

	both := []AccountID{acctA, acctB}

	// growing is always allowed
	tl, err := e.UpdateLimits(acctA, acctB, 1000, 1000, both)
	assert.Nil(t, err)
	assert.Equal(t, int64(1000), tl.LowLimit)
	assert.Equal(t, int64(1000), tl.HighLimit)

	// shrinking below the current exposure is refused
	_, err = e.UpdateLimits(acctA, acctB, 50, 1000, both)
	assert.Equal(t, ErrInsufficientCredit, err)

	// shrinking down to the exact exposure is allowed
	tl, err = e.UpdateLimits(acctA, acctB, 60, 80, both)
	assert.Nil(t, err)
	assert.Equal(t, int64(60), tl.LowLimit)
	assert.Equal(t, int64(80), tl.HighLimit)

	// both participants must approve
	_, err = e.UpdateLimits(acctA, acctB, 70, 70, []AccountID{acctA})
	assert.Equal(t, ErrMissingCosigner, err)
	_, err = e.UpdateLimits(acctA, acctB, 70, 70, []AccountID{acctB})
	assert.Equal(t, ErrMissingCosigner, err)
	_, err = e.UpdateLimits(acctA, acctB, 70, 70, nil)
	assert.Equal(t, ErrMissingCosigner, err)

	_, err = e.UpdateLimits(acctA, acctB, 0, 70, both)
	assert.Equal(t, ErrBadLimit, err)
}

func TestFreezeTerminal(t *testing.T) {
	e := newTestEngine()
	mustCreate(t, e, acctA, acctB, 100, 100, true)
	_, err := e.Pay(acctA, acctB, 30)
	assert.Nil(t, err)

	_, err = e.Freeze(acctA, acctA, acctB)
	assert.Equal(t, ErrNotAdministrator, err)

	tl, err := e.Freeze(acctAdmin, acctA, acctB)
	assert.Nil(t, err)
	assert.True(t, tl.IsFrozen())
	assert.Equal(t, int64(0), tl.LowLimit)
	assert.Equal(t, int64(0), tl.HighLimit)
	assert.False(t, tl.AllowRippling)
	assert.Equal(t, int64(30), tl.Balance)

	// no payment passes a frozen line in either direction
	_, err = e.Pay(acctA, acctB, 1)
	assert.Equal(t, ErrTrustLineFrozen, err)
	_, err = e.Pay(acctB, acctA, 1)
	assert.Equal(t, ErrTrustLineFrozen, err)

	// the normal update path can not re-open capacity
	_, err = e.UpdateLimits(acctA, acctB, 100, 100, []AccountID{acctA, acctB})
	assert.Equal(t, ErrTrustLineFrozen, err)
	_, err = e.UpdateQuality(acctA, acctB, 500000, 500000)
	assert.Equal(t, ErrTrustLineFrozen, err)
	_, err = e.SetRippling(acctA, acctB, true)
	assert.Equal(t, ErrTrustLineFrozen, err)
}

func TestSettle(t *testing.T) {
	e := newTestEngine()
	mustCreate(t, e, acctA, acctB, 100, 100, true)
	_, err := e.Pay(acctA, acctB, 40)
	assert.Nil(t, err)

	both := []AccountID{acctA, acctB}

	// only the creditor side can settle the obligation down
	_, err = e.Settle(acctB, acctA, 15, both)
	assert.Equal(t, ErrSettleExceedsDebt, err)

	tl, err := e.Settle(acctA, acctB, 15, both)
	assert.Nil(t, err)
	assert.Equal(t, int64(25), tl.Balance)

	// settling can not cross zero
	_, err = e.Settle(acctA, acctB, 26, both)
	assert.Equal(t, ErrSettleExceedsDebt, err)

	_, err = e.Settle(acctA, acctB, 10, []AccountID{acctA})
	assert.Equal(t, ErrMissingCosigner, err)
	_, err = e.Settle(acctA, acctB, 0, both)
	assert.Equal(t, ErrBadAmount, err)

	// settlement is the one mutation a frozen line still accepts
	_, err = e.Freeze(acctAdmin, acctA, acctB)
	assert.Nil(t, err)
	tl, err = e.Settle(acctA, acctB, 25, both)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), tl.Balance)
}

func TestAvailableCredit(t *testing.T) {
	e := newTestEngine()
	mustCreate(t, e, acctA, acctB, 1000, 500, true)
	_, err := e.Pay(acctA, acctB, 600)
	assert.Nil(t, err)

	credit, err := e.AvailableCredit(acctB, acctA)
	assert.Nil(t, err)
	assert.Equal(t, acctA, credit.LowAccount)
	assert.Equal(t, acctB, credit.HighAccount)
	assert.Equal(t, int64(600), credit.Balance)
	assert.Equal(t, int64(400), credit.LowAvailable)
	assert.Equal(t, int64(500), credit.HighAvailable)
	assert.False(t, credit.Frozen)

	// drive the balance negative and check the other decomposition
	_, err = e.Pay(acctB, acctA, 900)
	assert.Nil(t, err)
	credit, err = e.AvailableCredit(acctA, acctB)
	assert.Nil(t, err)
	assert.Equal(t, int64(-300), credit.Balance)
	assert.Equal(t, int64(1000), credit.LowAvailable)
	assert.Equal(t, int64(200), credit.HighAvailable)
}

func TestReadOnlyQueries(t *testing.T) {
	e := newTestEngine()
	mustCreate(t, e, acctA, acctB, 100, 100, true)
	_, err := e.Pay(acctA, acctB, 10)
	assert.Nil(t, err)

	before, err := e.GetTrustLine(acctA, acctB)
	assert.Nil(t, err)

	_, err = e.Balance(acctA, acctB)
	assert.Nil(t, err)
	_, err = e.AvailableCredit(acctA, acctB)
	assert.Nil(t, err)
	_, err = e.Statistics()
	assert.Nil(t, err)
	_, err = e.AccountTrustLines(acctA, 0)
	assert.Nil(t, err)

	after, err := e.GetTrustLine(acctA, acctB)
	assert.Nil(t, err)
	assert.Equal(t, *before, *after)
}

func TestStatistics(t *testing.T) {
	e := newTestEngine()
	mustCreate(t, e, acctA, acctB, 100, 100, true)
	mustCreate(t, e, acctA, acctC, 100, 100, true)

	stats, err := e.Statistics()
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), stats.TrustLines)
	assert.Equal(t, uint64(2), stats.CreationSeq)
	assert.Equal(t, uint64(2), stats.EventSeq)
}

func TestAccountTrustLines(t *testing.T) {
	e := newTestEngine()
	mustCreate(t, e, acctA, acctB, 100, 100, true)
	mustCreate(t, e, acctA, acctC, 100, 100, true)
	mustCreate(t, e, acctB, acctC, 100, 100, true)

	lines, err := e.AccountTrustLines(acctA, 0)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(lines))
	for _, tl := range lines {
		assert.True(t, tl.IsParticipant(acctA))
	}

	lines, err = e.AccountTrustLines(acctA, 1)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(lines))

	lines, err = e.AccountTrustLines(acctD, 0)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(lines))
}

func TestEngineEvents(t *testing.T) {
	e := newTestEngine()
	var events []*Event
	e.SetEventSink(func(ev *Event) { events = append(events, ev) })

	mustCreate(t, e, acctA, acctB, 100, 100, true)
	_, err := e.Pay(acctA, acctB, 10)
	assert.Nil(t, err)

	assert.Equal(t, 2, len(events))
	assert.Equal(t, uint64(1), events[0].Seq)
	assert.Equal(t, OpCreate, events[0].Op)
	assert.Equal(t, uint64(2), events[1].Seq)
	assert.Equal(t, OpSend, events[1].Op)
	assert.Equal(t, acctA, events[1].Initiator)
	assert.Equal(t, int64(10), events[1].Amount)
	assert.Equal(t, 1, len(events[1].Changes))
	assert.Equal(t, int64(10), events[1].Changes[0].NewBalance)

	// failed operations emit nothing
	_, err = e.Pay(acctA, acctB, 0)
	assert.Equal(t, ErrBadAmount, err)
	assert.Equal(t, 2, len(events))
}

func TestEventSeqStart(t *testing.T) {
	e := newTestEngine()
	e.SetEventSeqStart(100)
	var events []*Event
	e.SetEventSink(func(ev *Event) { events = append(events, ev) })

	mustCreate(t, e, acctA, acctB, 100, 100, true)
	assert.Equal(t, 1, len(events))
	assert.Equal(t, uint64(101), events[0].Seq)
}

func TestMustRegisterAsset(t *testing.T) {
	store := NewMemStore()
	e := NewEngine(store, &Config{MustRegisterAsset: true})

	_, err := e.CreateTrustLine(acctA, acctB, 1, 100, 100, false)
	assert.Equal(t, ErrUnknownAsset, err)

	reg := NewAssetRegistry()
	assert.Nil(t, reg.Add(&Asset{AssetID: 1, Symbol: "USD", Name: "US Dollar", Decimals: 2}))
	e.SetAssetRegistry(reg)

	_, err = e.CreateTrustLine(acctA, acctB, 2, 100, 100, false)
	assert.Equal(t, ErrUnknownAsset, err)

	tl, err := e.CreateTrustLine(acctA, acctB, 1, 100, 100, false)
	assert.Nil(t, err)
	assert.Equal(t, uint32(1), tl.AssetID)
}
