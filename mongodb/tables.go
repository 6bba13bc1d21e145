package mongodb

// PairKey is the structured composite key of a trust line document.
// The canonical low/high hex identities address the record, keys are
// never built by string concatenation.
type PairKey struct {
	Low  string `bson:"low" json:"low"`
	High string `bson:"high" json:"high"`
}

// MgoTrustLine is the stored form of one trust line
type MgoTrustLine struct {
	Key           PairKey `bson:"_id" json:"key"`
	AssetID       uint32  `bson:"assetid" json:"assetid"`
	LowLimit      int64   `bson:"lowlimit" json:"lowlimit"`
	HighLimit     int64   `bson:"highlimit" json:"highlimit"`
	Balance       int64   `bson:"balance" json:"balance"`
	QualityIn     uint32  `bson:"qualityin" json:"qualityin"`
	QualityOut    uint32  `bson:"qualityout" json:"qualityout"`
	AllowRippling bool    `bson:"allowrippling" json:"allowrippling"`
	Seq           uint64  `bson:"seq" json:"seq"`
	CreatedAt     int64   `bson:"createdat" json:"createdat"`
	UpdatedAt     int64   `bson:"updatedat" json:"updatedat"`
}

// MgoLineChange is one line's balance movement inside a stored operation
type MgoLineChange struct {
	Low        string `bson:"low" json:"low"`
	High       string `bson:"high" json:"high"`
	Amount     int64  `bson:"amount" json:"amount"`
	NewBalance int64  `bson:"newbalance" json:"newbalance"`
}

// MgoLineOp is one applied operation in the history collection, keyed
// by the digest of its event so a replayed write is a noop
type MgoLineOp struct {
	Key       string          `bson:"_id" json:"key"`
	EventSeq  uint64          `bson:"eventseq" json:"eventseq"`
	Op        string          `bson:"op" json:"op"`
	Initiator string          `bson:"initiator" json:"initiator"`
	Accounts  []string        `bson:"accounts" json:"accounts"`
	AssetID   uint32          `bson:"assetid,omitempty" json:"assetid,omitempty"`
	Amount    int64           `bson:"amount,omitempty" json:"amount,omitempty"`
	Changes   []MgoLineChange `bson:"changes,omitempty" json:"changes,omitempty"`
	Timestamp int64           `bson:"timestamp" json:"timestamp"`
}

// MgoServerStatus is the single global status document holding the
// trust line creation counter
type MgoServerStatus struct {
	Key         string `bson:"_id" json:"key"`
	Identifier  string `bson:"identifier" json:"identifier"`
	CreationSeq uint64 `bson:"creationseq" json:"creationseq"`
	Timestamp   int64  `bson:"timestamp" json:"timestamp"`
}
