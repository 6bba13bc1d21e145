package trustlines

// operation names as recorded in events, history and the journal
const (
	OpCreate    = "create"
	OpSend      = "send"
	OpRipple    = "ripple"
	OpQuality   = "quality"
	OpRippleSet = "ripple_set"
	OpLimits    = "limits"
	OpFreeze    = "freeze"
	OpSettle    = "settle"
)

// LineChange is one trust line's balance movement inside an applied
// operation. Amount is the value carried over the line, NewBalance the
// committed balance after the change.
type LineChange struct {
	LowAccount  AccountID `json:"low"`
	HighAccount AccountID `json:"high"`
	Amount      int64     `json:"amount"`
	NewBalance  int64     `json:"newbalance"`
}

// Event is the record of one applied operation, delivered to the event
// sink after the commit. Seq numbers events of one engine run
// contiguously from 1.
type Event struct {
	Seq       uint64       `json:"seq"`
	Op        string       `json:"op"`
	Initiator AccountID    `json:"initiator"`
	Accounts  []AccountID  `json:"accounts"`
	AssetID   uint32       `json:"assetid,omitempty"`
	Amount    int64        `json:"amount,omitempty"`
	Changes   []LineChange `json:"changes,omitempty"`
	Timestamp int64        `json:"timestamp"`
}

// EventSink receives applied operation events. The engine calls the
// sink synchronously in commit order, implementations must not block.
type EventSink func(ev *Event)
