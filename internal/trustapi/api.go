// Package trustapi is the service layer between the rpc transports and
// the trust line engine.
package trustapi

import (
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/common"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/mongodb"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/params"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/trustlines"
	rpcjson "github.com/gorilla/rpc/v2/json2"
)

var (
	trustEngine *trustlines.Engine

	errEngineNotInited = newRPCError(-32098, "trust line engine is not initialized")
	errAssetNotExist   = newRPCError(-32097, "asset not exist")
	errHistoryDisabled = newRPCError(-32096, "history is disabled in test mode")
	errNoConfig        = newRPCError(-32095, "server config is not loaded")
)

func newRPCError(ec rpcjson.ErrorCode, message string) error {
	return &rpcjson.Error{
		Code:    ec,
		Message: message,
	}
}

func newRPCInternalError(err error) error {
	return newRPCError(-32000, "rpcError: "+err.Error())
}

func newRPCValidationError(err error) error {
	return newRPCError(-32060, err.Error())
}

// wrapEngineError map engine errors to coded rpc errors
func wrapEngineError(err error) error {
	switch {
	case err == nil:
		return nil
	case trustlines.IsValidationError(err):
		return newRPCValidationError(err)
	case trustlines.IsNotFoundError(err):
		return newRPCError(-32061, err.Error())
	case trustlines.IsAuthorizationError(err):
		return newRPCError(-32062, err.Error())
	default:
		return newRPCInternalError(err)
	}
}

// Init set the engine the api serves, called once at server start
func Init(engine *trustlines.Engine) {
	trustEngine = engine
}

func getEngine() (*trustlines.Engine, error) {
	if trustEngine == nil {
		return nil, errEngineNotInited
	}
	return trustEngine, nil
}

func parseAccount(account string) (trustlines.AccountID, error) {
	acct, err := trustlines.HexToAccountID(account)
	if err != nil {
		return acct, newRPCError(-32063, "wrong account: "+account)
	}
	return acct, nil
}

func parseAccountPair(account1, account2 string) (p, q trustlines.AccountID, err error) {
	p, err = parseAccount(account1)
	if err != nil {
		return p, q, err
	}
	q, err = parseAccount(account2)
	return p, q, err
}

func processQueryLimit(limit int) int {
	switch {
	case limit == 0:
		limit = 20 // default
	case limit > 100:
		limit = 100
	case limit < 0:
		limit = 20
	}
	return limit
}

// GetServerInfo api
func GetServerInfo() (*ServerInfo, error) {
	log.Debug("[api] receive GetServerInfo")
	config := params.GetConfig()
	if config == nil {
		return nil, errNoConfig
	}
	var admins []string
	if config.Server != nil {
		admins = config.Server.Admins
	}
	var assets []*Asset
	if engine, err := getEngine(); err == nil {
		if reg := engine.AssetRegistry(); reg != nil {
			assets = reg.All()
		}
	}
	return &ServerInfo{
		Identifier:        config.Identifier,
		MustRegisterAsset: params.MustRegisterAsset(),
		Admins:            admins,
		Assets:            assets,
		Version:           params.VersionWithMeta,
	}, nil
}

// GetStatistics api
func GetStatistics() (*StatsInfo, error) {
	log.Debug("[api] receive GetStatistics")
	engine, err := getEngine()
	if err != nil {
		return nil, err
	}
	stats, err := engine.Statistics()
	if err != nil {
		return nil, wrapEngineError(err)
	}
	info := &StatsInfo{
		Identifier:  params.GetIdentifier(),
		TrustLines:  stats.TrustLines,
		CreationSeq: stats.CreationSeq,
		EventSeq:    stats.EventSeq,
	}
	if reg := engine.AssetRegistry(); reg != nil {
		info.Assets = reg.Count()
	}
	return info, nil
}

// GetTrustLine api
func GetTrustLine(account1, account2 string) (*TrustLineInfo, error) {
	log.Debug("[api] receive GetTrustLine", "account1", account1, "account2", account2)
	p, q, err := parseAccountPair(account1, account2)
	if err != nil {
		return nil, err
	}
	engine, err := getEngine()
	if err != nil {
		return nil, err
	}
	tl, err := engine.GetTrustLine(p, q)
	if err != nil {
		return nil, wrapEngineError(err)
	}
	return ConvertTrustLineToInfo(tl), nil
}

// GetBalance api
func GetBalance(account1, account2 string) (*BalanceInfo, error) {
	log.Debug("[api] receive GetBalance", "account1", account1, "account2", account2)
	p, q, err := parseAccountPair(account1, account2)
	if err != nil {
		return nil, err
	}
	low, high, err := trustlines.CanonicalPair(p, q)
	if err != nil {
		return nil, wrapEngineError(err)
	}
	engine, err := getEngine()
	if err != nil {
		return nil, err
	}
	balance, err := engine.Balance(p, q)
	if err != nil {
		return nil, wrapEngineError(err)
	}
	return &BalanceInfo{
		LowAccount:  low.Hex(),
		HighAccount: high.Hex(),
		Balance:     balance,
	}, nil
}

// GetAvailableCredit api
func GetAvailableCredit(account1, account2 string) (*CreditInfo, error) {
	log.Debug("[api] receive GetAvailableCredit", "account1", account1, "account2", account2)
	p, q, err := parseAccountPair(account1, account2)
	if err != nil {
		return nil, err
	}
	engine, err := getEngine()
	if err != nil {
		return nil, err
	}
	summary, err := engine.AvailableCredit(p, q)
	if err != nil {
		return nil, wrapEngineError(err)
	}
	return ConvertCreditSummaryToInfo(summary), nil
}

// GetAccountTrustLines api
func GetAccountTrustLines(account string, limit int) ([]*TrustLineInfo, error) {
	log.Debug("[api] receive GetAccountTrustLines", "account", account, "limit", limit)
	acct, err := parseAccount(account)
	if err != nil {
		return nil, err
	}
	limit = processQueryLimit(limit)
	if !params.IsTestMode() {
		mls, err := mongodb.FindTrustLinesByAccount(acct.Hex(), int64(limit))
		if err != nil {
			return nil, err
		}
		return ConvertMgoTrustLinesToInfos(mls), nil
	}
	engine, err := getEngine()
	if err != nil {
		return nil, err
	}
	tls, err := engine.AccountTrustLines(acct, limit)
	if err != nil {
		return nil, wrapEngineError(err)
	}
	return ConvertTrustLinesToInfos(tls), nil
}

// GetHistory api
func GetHistory(account string, offset, limit int) ([]*LineOp, error) {
	log.Debug("[api] receive GetHistory", "account", account, "offset", offset, "limit", limit)
	if params.IsTestMode() {
		return nil, errHistoryDisabled
	}
	acct, err := parseAccount(account)
	if err != nil {
		return nil, err
	}
	limit = processQueryLimit(limit)
	return mongodb.FindLineOps(acct.Hex(), int64(offset), int64(limit))
}

// GetAssets api
func GetAssets() ([]*Asset, error) {
	log.Debug("[api] receive GetAssets")
	engine, err := getEngine()
	if err != nil {
		return nil, err
	}
	reg := engine.AssetRegistry()
	if reg == nil {
		return []*Asset{}, nil
	}
	return reg.All(), nil
}

// GetAsset api
func GetAsset(assetID string) (*Asset, error) {
	log.Debug("[api] receive GetAsset", "assetid", assetID)
	id, err := common.GetUint32FromStr(assetID)
	if err != nil {
		return nil, newRPCValidationError(err)
	}
	engine, err := getEngine()
	if err != nil {
		return nil, err
	}
	reg := engine.AssetRegistry()
	if reg == nil {
		return nil, errAssetNotExist
	}
	asset, exist := reg.Get(id)
	if !exist {
		return nil, errAssetNotExist
	}
	return asset, nil
}
