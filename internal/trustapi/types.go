package trustapi

import (
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/mongodb"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/trustlines"
)

// LineOp type alias
type LineOp = mongodb.MgoLineOp

// Asset type alias
type Asset = trustlines.Asset

// ServerInfo server info
type ServerInfo struct {
	Identifier        string   `json:"identifier"`
	MustRegisterAsset bool     `json:"mustregisterasset"`
	Admins            []string `json:"admins"`
	Assets            []*Asset `json:"assets"`
	Version           string   `json:"version"`
}

// PostResult post result
type PostResult string

// SuccessPostResult success post result
var SuccessPostResult PostResult = "Success"

// TrustLineInfo trust line info
type TrustLineInfo struct {
	LowAccount    string `json:"low"`
	HighAccount   string `json:"high"`
	AssetID       uint32 `json:"assetid"`
	LowLimit      int64  `json:"lowlimit"`
	HighLimit     int64  `json:"highlimit"`
	Balance       int64  `json:"balance"`
	QualityIn     uint32 `json:"qualityin"`
	QualityOut    uint32 `json:"qualityout"`
	AllowRippling bool   `json:"allowrippling"`
	Frozen        bool   `json:"frozen"`
	Seq           uint64 `json:"seq"`
	CreatedAt     int64  `json:"createdat"`
	UpdatedAt     int64  `json:"updatedat"`
}

// BalanceInfo signed balance of one line, positive means the high
// account owes the low account
type BalanceInfo struct {
	LowAccount  string `json:"low"`
	HighAccount string `json:"high"`
	Balance     int64  `json:"balance"`
}

// CreditInfo remaining credit headroom of one line in both directions
type CreditInfo struct {
	LowAccount    string `json:"low"`
	HighAccount   string `json:"high"`
	Balance       int64  `json:"balance"`
	LowLimit      int64  `json:"lowlimit"`
	HighLimit     int64  `json:"highlimit"`
	LowAvailable  int64  `json:"lowavailable"`
	HighAvailable int64  `json:"highavailable"`
	Frozen        bool   `json:"frozen"`
}

// StatsInfo engine statistics
type StatsInfo struct {
	Identifier  string `json:"identifier"`
	TrustLines  uint64 `json:"trustlines"`
	CreationSeq uint64 `json:"creationseq"`
	EventSeq    uint64 `json:"eventseq"`
	Assets      int    `json:"assets"`
}

// DeliveryInfo one settled segment of a rippled payment
type DeliveryInfo struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

// RippleInfo result of a rippled payment
type RippleInfo struct {
	Sender     string          `json:"sender"`
	Recipient  string          `json:"recipient"`
	AmountIn   int64           `json:"amountin"`
	AmountOut  int64           `json:"amountout"`
	Deliveries []*DeliveryInfo `json:"deliveries"`
}
