// Package trustlines implements bilateral credit lines with multi hop
// payment rippling. Every operation is atomic, it either commits all of
// its mutations or leaves the store untouched.
package trustlines

import (
	"sync"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/common"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
)

// Config is the immutable engine configuration captured at init
type Config struct {
	Admins            []AccountID
	MustRegisterAsset bool
}

// Engine validates and applies trust line operations. A single mutex
// serializes every operation, no two operations interleave even on
// disjoint pairs.
type Engine struct {
	mu    sync.Mutex
	store Store

	admins            map[AccountID]struct{}
	mustRegisterAsset bool
	assets            *AssetRegistry

	sink     EventSink
	eventSeq uint64
}

// NewEngine creates an engine over the given store. The admin set and
// asset policy are fixed for the engine's lifetime.
func NewEngine(store Store, config *Config) *Engine {
	e := &Engine{
		store:  store,
		admins: make(map[AccountID]struct{}),
	}
	if config != nil {
		for _, admin := range config.Admins {
			e.admins[admin] = struct{}{}
		}
		e.mustRegisterAsset = config.MustRegisterAsset
	}
	return e
}

// SetEventSink registers the applied operation sink. Call before
// serving operations.
func (e *Engine) SetEventSink(sink EventSink) {
	e.sink = sink
}

// SetEventSeqStart seeds the event sequence counter so journaled
// sequence numbers stay monotonic across restarts. Call before
// serving operations.
func (e *Engine) SetEventSeqStart(seq uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.eventSeq = seq
}

// SetAssetRegistry registers the asset registry consulted by create
func (e *Engine) SetAssetRegistry(reg *AssetRegistry) {
	e.assets = reg
}

// AssetRegistry returns the registered asset registry, may be nil
func (e *Engine) AssetRegistry() *AssetRegistry {
	return e.assets
}

// IsAdministrator returns true if the account is in the admin set
func (e *Engine) IsAdministrator(a AccountID) bool {
	_, exist := e.admins[a]
	return exist
}

func (e *Engine) emit(ev *Event) {
	e.eventSeq++
	ev.Seq = e.eventSeq
	ev.Timestamp = common.Now()
	if e.sink != nil {
		e.sink(ev)
	}
}

// CreateTrustLine creates the line of the canonical (creator,
// counterparty) pair. Balance starts at zero and both qualities at
// parity. Fails with ErrTrustLineExists if the pair already has a line.
func (e *Engine) CreateTrustLine(creator, counterparty AccountID, assetID uint32, lowLimit, highLimit int64, allowRippling bool) (*TrustLine, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	low, high, err := CanonicalPair(creator, counterparty)
	if err != nil {
		return nil, err
	}
	if lowLimit <= 0 || highLimit <= 0 {
		return nil, ErrBadLimit
	}
	if e.mustRegisterAsset {
		if e.assets == nil {
			return nil, ErrUnknownAsset
		}
		if _, exist := e.assets.Get(assetID); !exist {
			return nil, ErrUnknownAsset
		}
	}

	if _, err := e.store.GetTrustLine(low, high); err == nil {
		return nil, ErrTrustLineExists
	} else if !IsNotFoundError(err) {
		return nil, err
	}

	seq, err := e.store.NextSeq()
	if err != nil {
		return nil, err
	}
	now := common.Now()
	tl := &TrustLine{
		LowAccount:    low,
		HighAccount:   high,
		AssetID:       assetID,
		LowLimit:      lowLimit,
		HighLimit:     highLimit,
		Balance:       0,
		QualityIn:     QualityParity,
		QualityOut:    QualityParity,
		AllowRippling: allowRippling,
		Seq:           seq,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := e.store.InsertTrustLine(tl); err != nil {
		return nil, err
	}
	log.Info("[engine] create trust line", "low", low, "high", high, "assetID", assetID, "lowLimit", lowLimit, "highLimit", highLimit, "allowRippling", allowRippling, "seq", seq)
	e.emit(&Event{
		Op:        OpCreate,
		Initiator: creator,
		Accounts:  []AccountID{low, high},
		AssetID:   assetID,
	})
	return tl, nil
}

// Pay applies a single bilateral payment from sender to recipient over
// their direct trust line. Fails with ErrInsufficientCredit if the new
// balance would leave [-HighLimit, LowLimit], with no mutation.
func (e *Engine) Pay(sender, recipient AccountID, amount int64) (*TrustLine, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	tl, newBalance, err := e.validatePay(sender, recipient, amount)
	if err != nil {
		return nil, err
	}
	tl.Balance = newBalance
	tl.UpdatedAt = common.Now()
	if err := e.store.UpdateTrustLine(tl); err != nil {
		return nil, err
	}
	log.Info("[engine] send payment", "sender", sender, "recipient", recipient, "amount", amount, "balance", newBalance)
	e.emit(&Event{
		Op:        OpSend,
		Initiator: sender,
		Accounts:  []AccountID{sender, recipient},
		Amount:    amount,
		Changes: []LineChange{
			{LowAccount: tl.LowAccount, HighAccount: tl.HighAccount, Amount: amount, NewBalance: newBalance},
		},
	})
	return tl, nil
}

// validatePay checks a single payment without mutating anything and
// returns the line copy and the admissible new balance
func (e *Engine) validatePay(sender, recipient AccountID, amount int64) (*TrustLine, int64, error) {
	low, high, err := CanonicalPair(sender, recipient)
	if err != nil {
		return nil, 0, err
	}
	if amount <= 0 {
		return nil, 0, ErrBadAmount
	}
	tl, err := e.store.GetTrustLine(low, high)
	if err != nil {
		return nil, 0, err
	}
	newBalance, err := tl.balanceAfterPay(sender, amount)
	if err != nil {
		return nil, 0, err
	}
	return tl, newBalance, nil
}

// UpdateQuality overwrites both quality rate fields of the caller's
// line with the counterparty. Both values must be in (0, QualityParity].
func (e *Engine) UpdateQuality(caller, counterparty AccountID, qualityIn, qualityOut uint32) (*TrustLine, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	low, high, err := CanonicalPair(caller, counterparty)
	if err != nil {
		return nil, err
	}
	if err := checkQuality(qualityIn); err != nil {
		return nil, err
	}
	if err := checkQuality(qualityOut); err != nil {
		return nil, err
	}
	tl, err := e.store.GetTrustLine(low, high)
	if err != nil {
		return nil, err
	}
	if tl.IsFrozen() {
		return nil, ErrTrustLineFrozen
	}
	tl.QualityIn = qualityIn
	tl.QualityOut = qualityOut
	tl.UpdatedAt = common.Now()
	if err := e.store.UpdateTrustLine(tl); err != nil {
		return nil, err
	}
	log.Info("[engine] update quality", "low", low, "high", high, "qualityIn", qualityIn, "qualityOut", qualityOut)
	e.emit(&Event{
		Op:        OpQuality,
		Initiator: caller,
		Accounts:  []AccountID{low, high},
	})
	return tl, nil
}

// SetRippling toggles the pass through flag of the caller's line with
// the counterparty. Frozen lines refuse, freezing pins rippling off.
func (e *Engine) SetRippling(caller, counterparty AccountID, allow bool) (*TrustLine, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	low, high, err := CanonicalPair(caller, counterparty)
	if err != nil {
		return nil, err
	}
	tl, err := e.store.GetTrustLine(low, high)
	if err != nil {
		return nil, err
	}
	if tl.IsFrozen() {
		return nil, ErrTrustLineFrozen
	}
	tl.AllowRippling = allow
	tl.UpdatedAt = common.Now()
	if err := e.store.UpdateTrustLine(tl); err != nil {
		return nil, err
	}
	log.Info("[engine] set rippling", "low", low, "high", high, "allow", allow)
	e.emit(&Event{
		Op:        OpRippleSet,
		Initiator: caller,
		Accounts:  []AccountID{low, high},
	})
	return tl, nil
}

// UpdateLimits replaces both credit limits of a pair's line. The
// approvers set must contain both participants, limit updates are co
// signed. Limits may grow freely but never shrink below the current
// exposure, and frozen lines can not be re opened.
func (e *Engine) UpdateLimits(p, q AccountID, newLowLimit, newHighLimit int64, approvers []AccountID) (*TrustLine, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	low, high, err := CanonicalPair(p, q)
	if err != nil {
		return nil, err
	}
	if newLowLimit <= 0 || newHighLimit <= 0 {
		return nil, ErrBadLimit
	}
	if !containsAccount(approvers, low) || !containsAccount(approvers, high) {
		return nil, ErrMissingCosigner
	}
	tl, err := e.store.GetTrustLine(low, high)
	if err != nil {
		return nil, err
	}
	if tl.IsFrozen() {
		return nil, ErrTrustLineFrozen
	}
	if tl.Balance >= 0 && newLowLimit < tl.Balance {
		return nil, ErrInsufficientCredit
	}
	if tl.Balance < 0 && newHighLimit < -tl.Balance {
		return nil, ErrInsufficientCredit
	}
	tl.LowLimit = newLowLimit
	tl.HighLimit = newHighLimit
	tl.UpdatedAt = common.Now()
	if err := e.store.UpdateTrustLine(tl); err != nil {
		return nil, err
	}
	log.Info("[engine] update limits", "low", low, "high", high, "lowLimit", newLowLimit, "highLimit", newHighLimit)
	e.emit(&Event{
		Op:        OpLimits,
		Initiator: p,
		Accounts:  []AccountID{low, high},
	})
	return tl, nil
}

// Freeze pins both limits of a pair's line at zero and disables
// rippling. Only an administrator may freeze. There is no unfreeze, the
// line stays readable for audit but extends no further credit.
func (e *Engine) Freeze(caller, p, q AccountID) (*TrustLine, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.IsAdministrator(caller) {
		return nil, ErrNotAdministrator
	}
	low, high, err := CanonicalPair(p, q)
	if err != nil {
		return nil, err
	}
	tl, err := e.store.GetTrustLine(low, high)
	if err != nil {
		return nil, err
	}
	tl.LowLimit = 0
	tl.HighLimit = 0
	tl.AllowRippling = false
	tl.UpdatedAt = common.Now()
	if err := e.store.UpdateTrustLine(tl); err != nil {
		return nil, err
	}
	log.Warn("[engine] freeze trust line", "low", low, "high", high, "balance", tl.Balance, "admin", caller)
	e.emit(&Event{
		Op:        OpFreeze,
		Initiator: caller,
		Accounts:  []AccountID{low, high},
	})
	return tl, nil
}

// Settle reduces the outstanding balance of a line toward zero after an
// off ledger settlement of real assets. The initiator must be the
// current creditor and the approvers set must contain both
// participants. Settlement never crosses zero and is the only mutation
// a frozen line still accepts, it reduces exposure.
func (e *Engine) Settle(initiator, counterparty AccountID, amount int64, approvers []AccountID) (*TrustLine, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	low, high, err := CanonicalPair(initiator, counterparty)
	if err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, ErrBadAmount
	}
	if !containsAccount(approvers, low) || !containsAccount(approvers, high) {
		return nil, ErrMissingCosigner
	}
	tl, err := e.store.GetTrustLine(low, high)
	if err != nil {
		return nil, err
	}
	sign := tl.PayerSign(initiator)
	if sign*tl.Balance < amount {
		return nil, ErrSettleExceedsDebt
	}
	tl.Balance -= amount * sign
	tl.UpdatedAt = common.Now()
	if err := e.store.UpdateTrustLine(tl); err != nil {
		return nil, err
	}
	log.Info("[engine] settle", "initiator", initiator, "counterparty", counterparty, "amount", amount, "balance", tl.Balance)
	e.emit(&Event{
		Op:        OpSettle,
		Initiator: initiator,
		Accounts:  []AccountID{low, high},
		Amount:    amount,
		Changes: []LineChange{
			{LowAccount: tl.LowAccount, HighAccount: tl.HighAccount, Amount: amount, NewBalance: tl.Balance},
		},
	})
	return tl, nil
}

// GetTrustLine returns a copy of the pair's line, read only
func (e *Engine) GetTrustLine(p, q AccountID) (*TrustLine, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.getTrustLine(p, q)
}

func (e *Engine) getTrustLine(p, q AccountID) (*TrustLine, error) {
	low, high, err := CanonicalPair(p, q)
	if err != nil {
		return nil, err
	}
	return e.store.GetTrustLine(low, high)
}

// Balance returns the signed balance of the pair's line, read only
func (e *Engine) Balance(p, q AccountID) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	tl, err := e.getTrustLine(p, q)
	if err != nil {
		return 0, err
	}
	return tl.Balance, nil
}

// CreditSummary is the read only available credit decomposition of one
// line's two directions
type CreditSummary struct {
	LowAccount    AccountID `json:"low"`
	HighAccount   AccountID `json:"high"`
	Balance       int64     `json:"balance"`
	LowLimit      int64     `json:"lowlimit"`
	HighLimit     int64     `json:"highlimit"`
	LowAvailable  int64     `json:"lowavailable"`
	HighAvailable int64     `json:"highavailable"`
	Frozen        bool      `json:"frozen"`
}

// AvailableCredit returns the remaining credit headroom of the pair's
// line in both directions, read only
func (e *Engine) AvailableCredit(p, q AccountID) (*CreditSummary, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	tl, err := e.getTrustLine(p, q)
	if err != nil {
		return nil, err
	}
	return &CreditSummary{
		LowAccount:    tl.LowAccount,
		HighAccount:   tl.HighAccount,
		Balance:       tl.Balance,
		LowLimit:      tl.LowLimit,
		HighLimit:     tl.HighLimit,
		LowAvailable:  tl.AvailableLow(),
		HighAvailable: tl.AvailableHigh(),
		Frozen:        tl.IsFrozen(),
	}, nil
}

// Stats is the engine's audit counter summary
type Stats struct {
	TrustLines  uint64 `json:"trustlines"`
	CreationSeq uint64 `json:"creationseq"`
	EventSeq    uint64 `json:"eventseq"`
}

// Statistics returns the line count and counters, read only
func (e *Engine) Statistics() (*Stats, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	count, err := e.store.TrustLineCount()
	if err != nil {
		return nil, err
	}
	seq, err := e.store.CurrentSeq()
	if err != nil {
		return nil, err
	}
	return &Stats{
		TrustLines:  count,
		CreationSeq: seq,
		EventSeq:    e.eventSeq,
	}, nil
}

// AccountTrustLines returns copies of the lines the account
// participates in, at most limit when limit is positive, read only
func (e *Engine) AccountTrustLines(a AccountID, limit int) ([]*TrustLine, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	var result []*TrustLine
	err := e.store.IterateTrustLines(func(tl *TrustLine) bool {
		if !tl.IsParticipant(a) {
			return true
		}
		result = append(result, tl)
		return limit <= 0 || len(result) < limit
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func containsAccount(accounts []AccountID, a AccountID) bool {
	for _, item := range accounts {
		if item == a {
			return true
		}
	}
	return false
}
