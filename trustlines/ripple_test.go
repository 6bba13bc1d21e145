package trustlines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRippleDecayChain(t *testing.T) {
	e := newTestEngine()
	mustCreate(t, e, acctA, acctB, 10000, 10000, true)
	mustCreate(t, e, acctB, acctC, 10000, 10000, true)
	// the final segment does not need the rippling flag
	mustCreate(t, e, acctC, acctD, 10000, 10000, false)

	var events []*Event
	e.SetEventSink(func(ev *Event) { events = append(events, ev) })

	res, err := e.Ripple(acctA, []AccountID{acctB, acctC, acctD}, 1000)
	assert.Nil(t, err)
	assert.Equal(t, acctA, res.Sender)
	assert.Equal(t, acctD, res.Recipient)
	assert.Equal(t, int64(1000), res.AmountIn)
	assert.Equal(t, int64(997), res.AmountOut)

	// 0.1% decay with floor division applies before every segment
	assert.Equal(t, 3, len(res.Deliveries))
	assert.Equal(t, Delivery{From: acctA, To: acctB, Amount: 999}, res.Deliveries[0])
	assert.Equal(t, Delivery{From: acctB, To: acctC, Amount: 998}, res.Deliveries[1])
	assert.Equal(t, Delivery{From: acctC, To: acctD, Amount: 997}, res.Deliveries[2])

	balance, err := e.Balance(acctA, acctB)
	assert.Nil(t, err)
	assert.Equal(t, int64(999), balance)
	balance, err = e.Balance(acctB, acctC)
	assert.Nil(t, err)
	assert.Equal(t, int64(998), balance)
	balance, err = e.Balance(acctC, acctD)
	assert.Nil(t, err)
	assert.Equal(t, int64(997), balance)

	assert.Equal(t, 1, len(events))
	assert.Equal(t, OpRipple, events[0].Op)
	assert.Equal(t, []AccountID{acctA, acctB, acctC, acctD}, events[0].Accounts)
	assert.Equal(t, 3, len(events[0].Changes))
}

func TestRippleSingleHop(t *testing.T) {
	e := newTestEngine()
	mustCreate(t, e, acctA, acctB, 10000, 10000, false)

	res, err := e.Ripple(acctA, []AccountID{acctB}, 1000)
	assert.Nil(t, err)
	assert.Equal(t, int64(999), res.AmountOut)
	assert.Equal(t, 1, len(res.Deliveries))

	balance, err := e.Balance(acctA, acctB)
	assert.Nil(t, err)
	assert.Equal(t, int64(999), balance)
}

func TestRippleReversedSegment(t *testing.T) {
	e := newTestEngine()
	// on the D-B line the payer D is the high account, the forwarded
	// amount drives that balance negative against B's limit
	mustCreate(t, e, acctA, acctD, 10000, 10000, true)
	mustCreate(t, e, acctD, acctB, 10000, 10000, true)

	_, err := e.Ripple(acctA, []AccountID{acctD, acctB}, 1000)
	assert.Nil(t, err)

	balance, err := e.Balance(acctA, acctD)
	assert.Nil(t, err)
	assert.Equal(t, int64(999), balance)
	balance, err = e.Balance(acctB, acctD)
	assert.Nil(t, err)
	assert.Equal(t, int64(-998), balance)
}

func TestRippleAtomicity(t *testing.T) {
	e := newTestEngine()
	mustCreate(t, e, acctA, acctB, 10000, 10000, true)
	mustCreate(t, e, acctB, acctC, 10000, 10000, true)
	// the last segment needs 997 of low capacity but only has 500
	mustCreate(t, e, acctC, acctD, 500, 10000, false)

	_, err := e.Ripple(acctA, []AccountID{acctB, acctC, acctD}, 1000)
	assert.Equal(t, ErrInsufficientCredit, err)

	// nothing moved on any segment
	for _, pair := range [][2]AccountID{{acctA, acctB}, {acctB, acctC}, {acctC, acctD}} {
		balance, err := e.Balance(pair[0], pair[1])
		assert.Nil(t, err)
		assert.Equal(t, int64(0), balance)
	}
}

func TestRippleRipplingDisabled(t *testing.T) {
	e := newTestEngine()
	mustCreate(t, e, acctA, acctB, 10000, 10000, false)
	mustCreate(t, e, acctB, acctC, 10000, 10000, true)

	// A-B is an intermediate segment here and refuses pass through
	_, err := e.Ripple(acctA, []AccountID{acctB, acctC}, 1000)
	assert.Equal(t, ErrRipplingDisabled, err)

	// as the final segment the same line forwards fine
	_, err = e.Ripple(acctA, []AccountID{acctB}, 1000)
	assert.Nil(t, err)
}

func TestRippleFrozenSegment(t *testing.T) {
	e := newTestEngine()
	mustCreate(t, e, acctA, acctB, 10000, 10000, true)
	mustCreate(t, e, acctB, acctC, 10000, 10000, true)
	_, err := e.Freeze(acctAdmin, acctB, acctC)
	assert.Nil(t, err)

	_, err = e.Ripple(acctA, []AccountID{acctB, acctC}, 1000)
	assert.Equal(t, ErrTrustLineFrozen, err)

	balance, err := e.Balance(acctA, acctB)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestRippleDuplicateHop(t *testing.T) {
	e := newTestEngine()
	mustCreate(t, e, acctA, acctB, 10000, 10000, true)
	mustCreate(t, e, acctB, acctC, 10000, 10000, true)

	// the sender is part of the chain, looping back to it is a dup
	_, err := e.Ripple(acctA, []AccountID{acctB, acctA}, 1000)
	assert.Equal(t, ErrDuplicateHop, err)

	_, err = e.Ripple(acctA, []AccountID{acctB, acctC, acctB}, 1000)
	assert.Equal(t, ErrDuplicateHop, err)
}

func TestRippleBadHopCount(t *testing.T) {
	e := newTestEngine()

	_, err := e.Ripple(acctA, nil, 1000)
	assert.Equal(t, ErrBadHopCount, err)

	tooLong := make([]AccountID, MaxRippleHops+1)
	for i := range tooLong {
		tooLong[i] = testAccount(byte(10 + i))
	}
	_, err = e.Ripple(acctA, tooLong, 1000)
	assert.Equal(t, ErrBadHopCount, err)
}

func TestRippleAmountChecks(t *testing.T) {
	e := newTestEngine()
	mustCreate(t, e, acctA, acctB, 10000, 10000, true)

	_, err := e.Ripple(acctA, []AccountID{acctB}, 0)
	assert.Equal(t, ErrBadAmount, err)
	_, err = e.Ripple(acctA, []AccountID{acctB}, -5)
	assert.Equal(t, ErrBadAmount, err)

	// one unit decays to zero on the first hop
	_, err = e.Ripple(acctA, []AccountID{acctB}, 1)
	assert.Equal(t, ErrAmountTooSmall, err)

	_, err = e.Ripple(acctA, []AccountID{acctB}, maxDecayableAmount+1)
	assert.Equal(t, ErrAmountOverflow, err)
}

func TestRippleLineNotFound(t *testing.T) {
	e := newTestEngine()
	mustCreate(t, e, acctA, acctB, 10000, 10000, true)

	_, err := e.Ripple(acctA, []AccountID{acctB, acctC}, 1000)
	assert.Equal(t, ErrTrustLineNotFound, err)

	balance, err := e.Balance(acctA, acctB)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestDecayForward(t *testing.T) {
	out, err := decayForward(1000)
	assert.Nil(t, err)
	assert.Equal(t, int64(999), out)

	out, err = decayForward(1000000)
	assert.Nil(t, err)
	assert.Equal(t, int64(999000), out)

	// floor division, never round up
	out, err = decayForward(999)
	assert.Nil(t, err)
	assert.Equal(t, int64(998), out)

	_, err = decayForward(1)
	assert.Equal(t, ErrAmountTooSmall, err)

	out, err = decayForward(maxDecayableAmount)
	assert.Nil(t, err)
	assert.True(t, out > 0)
	_, err = decayForward(maxDecayableAmount + 1)
	assert.Equal(t, ErrAmountOverflow, err)
}
