package trustapi

import (
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/mongodb"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/trustlines"
)

// ConvertTrustLineToInfo convert engine trust line to api info
func ConvertTrustLineToInfo(tl *trustlines.TrustLine) *TrustLineInfo {
	return &TrustLineInfo{
		LowAccount:    tl.LowAccount.Hex(),
		HighAccount:   tl.HighAccount.Hex(),
		AssetID:       tl.AssetID,
		LowLimit:      tl.LowLimit,
		HighLimit:     tl.HighLimit,
		Balance:       tl.Balance,
		QualityIn:     tl.QualityIn,
		QualityOut:    tl.QualityOut,
		AllowRippling: tl.AllowRippling,
		Frozen:        tl.IsFrozen(),
		Seq:           tl.Seq,
		CreatedAt:     tl.CreatedAt,
		UpdatedAt:     tl.UpdatedAt,
	}
}

// ConvertTrustLinesToInfos convert engine trust lines to api infos
func ConvertTrustLinesToInfos(tls []*trustlines.TrustLine) []*TrustLineInfo {
	result := make([]*TrustLineInfo, len(tls))
	for k, v := range tls {
		result[k] = ConvertTrustLineToInfo(v)
	}
	return result
}

// ConvertMgoTrustLineToInfo convert mongodb trust line to api info
func ConvertMgoTrustLineToInfo(ml *mongodb.MgoTrustLine) *TrustLineInfo {
	frozen := ml.LowLimit == 0 && ml.HighLimit == 0
	return &TrustLineInfo{
		LowAccount:    ml.Key.Low,
		HighAccount:   ml.Key.High,
		AssetID:       ml.AssetID,
		LowLimit:      ml.LowLimit,
		HighLimit:     ml.HighLimit,
		Balance:       ml.Balance,
		QualityIn:     ml.QualityIn,
		QualityOut:    ml.QualityOut,
		AllowRippling: ml.AllowRippling,
		Frozen:        frozen,
		Seq:           ml.Seq,
		CreatedAt:     ml.CreatedAt,
		UpdatedAt:     ml.UpdatedAt,
	}
}

// ConvertMgoTrustLinesToInfos convert mongodb trust lines to api infos
func ConvertMgoTrustLinesToInfos(mls []*mongodb.MgoTrustLine) []*TrustLineInfo {
	result := make([]*TrustLineInfo, len(mls))
	for k, v := range mls {
		result[k] = ConvertMgoTrustLineToInfo(v)
	}
	return result
}

// ConvertCreditSummaryToInfo convert engine credit summary to api info
func ConvertCreditSummaryToInfo(cs *trustlines.CreditSummary) *CreditInfo {
	return &CreditInfo{
		LowAccount:    cs.LowAccount.Hex(),
		HighAccount:   cs.HighAccount.Hex(),
		Balance:       cs.Balance,
		LowLimit:      cs.LowLimit,
		HighLimit:     cs.HighLimit,
		LowAvailable:  cs.LowAvailable,
		HighAvailable: cs.HighAvailable,
		Frozen:        cs.Frozen,
	}
}

// ConvertRippleResultToInfo convert engine ripple result to api info
func ConvertRippleResultToInfo(res *trustlines.RippleResult) *RippleInfo {
	deliveries := make([]*DeliveryInfo, len(res.Deliveries))
	for k, d := range res.Deliveries {
		deliveries[k] = &DeliveryInfo{
			From:   d.From.Hex(),
			To:     d.To.Hex(),
			Amount: d.Amount,
		}
	}
	return &RippleInfo{
		Sender:     res.Sender.Hex(),
		Recipient:  res.Recipient.Hex(),
		AmountIn:   res.AmountIn,
		AmountOut:  res.AmountOut,
		Deliveries: deliveries,
	}
}
