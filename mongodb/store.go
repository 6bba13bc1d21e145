package mongodb

import (
	"encoding/json"
	"errors"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/common"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/trustlines"
)

// Store adapts the mongodb api to the trust line engine's Store
// interface. The engine serializes all calls.
type Store struct{}

// NewStore create the mongodb backed trust line store
func NewStore() *Store {
	return &Store{}
}

// GetTrustLine implements trustlines.Store
func (s *Store) GetTrustLine(low, high trustlines.AccountID) (*trustlines.TrustLine, error) {
	ml, err := FindTrustLine(low.Hex(), high.Hex())
	if err != nil {
		return nil, convertMgoError(err)
	}
	return convertFromMgoTrustLine(ml)
}

// InsertTrustLine implements trustlines.Store
func (s *Store) InsertTrustLine(tl *trustlines.TrustLine) error {
	return convertMgoError(AddTrustLine(ConvertToMgoTrustLine(tl)))
}

// UpdateTrustLine implements trustlines.Store
func (s *Store) UpdateTrustLine(tl *trustlines.TrustLine) error {
	return convertMgoError(ReplaceTrustLine(ConvertToMgoTrustLine(tl)))
}

// ApplyBalanceUpdates implements trustlines.Store
func (s *Store) ApplyBalanceUpdates(updates []trustlines.BalanceUpdate) error {
	writes := make([]BalanceWrite, len(updates))
	for i, up := range updates {
		writes[i] = BalanceWrite{
			Key:        PairKey{Low: up.LowAccount.Hex(), High: up.HighAccount.Hex()},
			NewBalance: up.NewBalance,
			UpdatedAt:  up.UpdatedAt,
		}
	}
	return convertMgoError(ApplyBalanceWrites(writes))
}

// NextSeq implements trustlines.Store
func (s *Store) NextSeq() (uint64, error) {
	seq, err := NextCreationSeq()
	return seq, convertMgoError(err)
}

// CurrentSeq implements trustlines.Store
func (s *Store) CurrentSeq() (uint64, error) {
	seq, err := CurrentCreationSeq()
	if errors.Is(err, ErrItemNotFound) {
		return 0, nil
	}
	return seq, convertMgoError(err)
}

// TrustLineCount implements trustlines.Store
func (s *Store) TrustLineCount() (uint64, error) {
	count, err := FindTrustLineCount()
	return count, convertMgoError(err)
}

// IterateTrustLines implements trustlines.Store
func (s *Store) IterateTrustLines(fn func(*trustlines.TrustLine) bool) error {
	var convErr error
	err := IterateTrustLines(func(ml *MgoTrustLine) bool {
		tl, err := convertFromMgoTrustLine(ml)
		if err != nil {
			convErr = err
			return false
		}
		return fn(tl)
	})
	if convErr != nil {
		return convErr
	}
	return convertMgoError(err)
}

func convertMgoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrItemNotFound):
		return trustlines.ErrTrustLineNotFound
	case errors.Is(err, ErrItemIsDup):
		return trustlines.ErrTrustLineExists
	}
	return err
}

// ConvertToMgoTrustLine convert the engine form to the stored form
func ConvertToMgoTrustLine(tl *trustlines.TrustLine) *MgoTrustLine {
	return &MgoTrustLine{
		Key:           PairKey{Low: tl.LowAccount.Hex(), High: tl.HighAccount.Hex()},
		AssetID:       tl.AssetID,
		LowLimit:      tl.LowLimit,
		HighLimit:     tl.HighLimit,
		Balance:       tl.Balance,
		QualityIn:     tl.QualityIn,
		QualityOut:    tl.QualityOut,
		AllowRippling: tl.AllowRippling,
		Seq:           tl.Seq,
		CreatedAt:     tl.CreatedAt,
		UpdatedAt:     tl.UpdatedAt,
	}
}

func convertFromMgoTrustLine(ml *MgoTrustLine) (*trustlines.TrustLine, error) {
	low, err := trustlines.HexToAccountID(ml.Key.Low)
	if err != nil {
		return nil, ErrWrongKey
	}
	high, err := trustlines.HexToAccountID(ml.Key.High)
	if err != nil {
		return nil, ErrWrongKey
	}
	return &trustlines.TrustLine{
		LowAccount:    low,
		HighAccount:   high,
		AssetID:       ml.AssetID,
		LowLimit:      ml.LowLimit,
		HighLimit:     ml.HighLimit,
		Balance:       ml.Balance,
		QualityIn:     ml.QualityIn,
		QualityOut:    ml.QualityOut,
		AllowRippling: ml.AllowRippling,
		Seq:           ml.Seq,
		CreatedAt:     ml.CreatedAt,
		UpdatedAt:     ml.UpdatedAt,
	}, nil
}

// ConvertEventToLineOp build the history record of an applied
// operation event, keyed by the digest of the event content
func ConvertEventToLineOp(ev *trustlines.Event) *MgoLineOp {
	accounts := make([]string, len(ev.Accounts))
	for i, a := range ev.Accounts {
		accounts[i] = a.Hex()
	}
	changes := make([]MgoLineChange, len(ev.Changes))
	for i, ch := range ev.Changes {
		changes[i] = MgoLineChange{
			Low:        ch.LowAccount.Hex(),
			High:       ch.HighAccount.Hex(),
			Amount:     ch.Amount,
			NewBalance: ch.NewBalance,
		}
	}
	content, _ := json.Marshal(ev)
	return &MgoLineOp{
		Key:       common.Keccak256Hash(content).Hex(),
		EventSeq:  ev.Seq,
		Op:        ev.Op,
		Initiator: ev.Initiator.Hex(),
		Accounts:  accounts,
		AssetID:   ev.AssetID,
		Amount:    ev.Amount,
		Changes:   changes,
		Timestamp: ev.Timestamp,
	}
}
