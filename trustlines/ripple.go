package trustlines

import (
	"math"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/common"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
)

// MaxRippleHops caps the length of a ripple path
const MaxRippleHops = 6

// per hop decay of the forwarded amount, 0.1% cost per hop applied with
// integer floor division
const (
	RippleDecayNumerator   int64 = 999000
	RippleDecayDenominator int64 = 1000000
)

// maxDecayableAmount bounds the decay multiplication below int64 overflow
const maxDecayableAmount = math.MaxInt64 / RippleDecayNumerator

// Delivery is one applied segment of a rippled payment
type Delivery struct {
	From   AccountID `json:"from"`
	To     AccountID `json:"to"`
	Amount int64     `json:"amount"`
}

// RippleResult summarizes a committed rippled payment. AmountIn is the
// requested amount, AmountOut what the final hop received after decay.
type RippleResult struct {
	Sender     AccountID  `json:"sender"`
	Recipient  AccountID  `json:"recipient"`
	AmountIn   int64      `json:"amountin"`
	AmountOut  int64      `json:"amountout"`
	Deliveries []Delivery `json:"deliveries"`
}

type stagedSegment struct {
	tl         *TrustLine
	from       AccountID
	to         AccountID
	amount     int64
	newBalance int64
}

// Ripple forwards a payment from sender along the given hop chain. The
// last hop is the final recipient, earlier hops are intermediaries
// whose lines must allow rippling. Validation runs over every segment
// against the current committed state first, balances move only after
// the whole path has proven admissible. Any failed segment aborts the
// call with no mutation.
func (e *Engine) Ripple(sender AccountID, hops []AccountID, amount int64) (*RippleResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(hops) < 1 || len(hops) > MaxRippleHops {
		return nil, ErrBadHopCount
	}
	if amount <= 0 {
		return nil, ErrBadAmount
	}
	if sender.IsZero() {
		return nil, ErrBadAccountID
	}
	// a line may be touched at most once per ripple, so the whole chain
	// must be pairwise distinct
	seen := map[AccountID]struct{}{sender: {}}
	for _, hop := range hops {
		if hop.IsZero() {
			return nil, ErrBadAccountID
		}
		if _, dup := seen[hop]; dup {
			return nil, ErrDuplicateHop
		}
		seen[hop] = struct{}{}
	}

	// phase one, validate every segment without mutating anything
	staged := make([]stagedSegment, 0, len(hops))
	forwarded := amount
	prev := sender
	for i, hop := range hops {
		var err error
		forwarded, err = decayForward(forwarded)
		if err != nil {
			return nil, err
		}
		low, high, err := CanonicalPair(prev, hop)
		if err != nil {
			return nil, err
		}
		tl, err := e.store.GetTrustLine(low, high)
		if err != nil {
			return nil, err
		}
		isFinal := i == len(hops)-1
		if !isFinal && !tl.AllowRippling {
			return nil, ErrRipplingDisabled
		}
		newBalance, err := tl.balanceAfterPay(prev, forwarded)
		if err != nil {
			return nil, err
		}
		staged = append(staged, stagedSegment{
			tl:         tl,
			from:       prev,
			to:         hop,
			amount:     forwarded,
			newBalance: newBalance,
		})
		prev = hop
	}

	// phase two, commit every segment's balance in one store write
	now := common.Now()
	updates := make([]BalanceUpdate, len(staged))
	for i, seg := range staged {
		updates[i] = BalanceUpdate{
			LowAccount:  seg.tl.LowAccount,
			HighAccount: seg.tl.HighAccount,
			NewBalance:  seg.newBalance,
			UpdatedAt:   now,
		}
	}
	if err := e.store.ApplyBalanceUpdates(updates); err != nil {
		return nil, err
	}

	result := &RippleResult{
		Sender:     sender,
		Recipient:  hops[len(hops)-1],
		AmountIn:   amount,
		AmountOut:  staged[len(staged)-1].amount,
		Deliveries: make([]Delivery, len(staged)),
	}
	changes := make([]LineChange, len(staged))
	for i, seg := range staged {
		result.Deliveries[i] = Delivery{From: seg.from, To: seg.to, Amount: seg.amount}
		changes[i] = LineChange{
			LowAccount:  seg.tl.LowAccount,
			HighAccount: seg.tl.HighAccount,
			Amount:      seg.amount,
			NewBalance:  seg.newBalance,
		}
	}
	log.Info("[engine] ripple payment", "sender", sender, "recipient", result.Recipient, "hops", len(hops), "amountIn", amount, "amountOut", result.AmountOut)
	e.emit(&Event{
		Op:        OpRipple,
		Initiator: sender,
		Accounts:  append([]AccountID{sender}, hops...),
		Amount:    amount,
		Changes:   changes,
	})
	return result, nil
}

// decayForward applies one hop's decay to the forwarded amount
func decayForward(amount int64) (int64, error) {
	if amount > maxDecayableAmount {
		return 0, ErrAmountOverflow
	}
	out := amount * RippleDecayNumerator / RippleDecayDenominator
	if out == 0 {
		return 0, ErrAmountTooSmall
	}
	return out, nil
}
