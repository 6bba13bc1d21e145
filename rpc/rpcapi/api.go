package rpcapi

import (
	"net/http"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/internal/trustapi"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/params"
)

// RPCAPI rpc api handler
type RPCAPI struct{}

// RPCNullArgs null args
type RPCNullArgs struct{}

// GetVersionInfo api
func (s *RPCAPI) GetVersionInfo(r *http.Request, args *RPCNullArgs, result *string) error {
	version := params.VersionWithMeta
	*result = version
	return nil
}

// GetServerInfo api
func (s *RPCAPI) GetServerInfo(r *http.Request, args *RPCNullArgs, result *trustapi.ServerInfo) error {
	res, err := trustapi.GetServerInfo()
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// GetStatistics api
func (s *RPCAPI) GetStatistics(r *http.Request, args *RPCNullArgs, result *trustapi.StatsInfo) error {
	res, err := trustapi.GetStatistics()
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// RPCAccountPairArgs args
type RPCAccountPairArgs struct {
	Account1 string `json:"account1"`
	Account2 string `json:"account2"`
}

// GetTrustLine api
func (s *RPCAPI) GetTrustLine(r *http.Request, args *RPCAccountPairArgs, result *trustapi.TrustLineInfo) error {
	res, err := trustapi.GetTrustLine(args.Account1, args.Account2)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// GetBalance api
func (s *RPCAPI) GetBalance(r *http.Request, args *RPCAccountPairArgs, result *trustapi.BalanceInfo) error {
	res, err := trustapi.GetBalance(args.Account1, args.Account2)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// GetAvailableCredit api
func (s *RPCAPI) GetAvailableCredit(r *http.Request, args *RPCAccountPairArgs, result *trustapi.CreditInfo) error {
	res, err := trustapi.GetAvailableCredit(args.Account1, args.Account2)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// RPCAccountLinesArgs args
type RPCAccountLinesArgs struct {
	Account string `json:"account"`
	Limit   int    `json:"limit"`
}

// GetAccountTrustLines api
func (s *RPCAPI) GetAccountTrustLines(r *http.Request, args *RPCAccountLinesArgs, result *[]*trustapi.TrustLineInfo) error {
	res, err := trustapi.GetAccountTrustLines(args.Account, args.Limit)
	if err == nil && res != nil {
		*result = res
	}
	return err
}

// RPCQueryHistoryArgs args
type RPCQueryHistoryArgs struct {
	Account string `json:"account"`
	Offset  int    `json:"offset"`
	Limit   int    `json:"limit"`
}

// GetHistory api
func (s *RPCAPI) GetHistory(r *http.Request, args *RPCQueryHistoryArgs, result *[]*trustapi.LineOp) error {
	res, err := trustapi.GetHistory(args.Account, args.Offset, args.Limit)
	if err == nil && res != nil {
		*result = res
	}
	return err
}

// GetAssets api
func (s *RPCAPI) GetAssets(r *http.Request, args *RPCNullArgs, result *[]*trustapi.Asset) error {
	res, err := trustapi.GetAssets()
	if err == nil && res != nil {
		*result = res
	}
	return err
}

// GetAsset api
func (s *RPCAPI) GetAsset(r *http.Request, assetID *string, result *trustapi.Asset) error {
	res, err := trustapi.GetAsset(*assetID)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// SubmitCall api
func (s *RPCAPI) SubmitCall(r *http.Request, rawCall *string, result *trustapi.PostResult) error {
	res, err := trustapi.SubmitCall(*rawCall)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}
