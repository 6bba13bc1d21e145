package trustapi

import (
	"encoding/json"
	"fmt"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/common"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/params"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/signer"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/trustlines"
)

// SubmitCall verify the signed call envelope and apply the operation.
// The first signer is the acting account, the full signer set is the
// approver set of co-signed operations.
func SubmitCall(rawCall string) (*PostResult, error) {
	args, signers, err := signer.VerifyCall(rawCall)
	if err != nil {
		return nil, newRPCValidationError(err)
	}
	engine, err := getEngine()
	if err != nil {
		return nil, err
	}
	initiator := signers[0]
	log.Info("[api] receive SubmitCall", "method", args.Method, "initiator", initiator.String(), "signers", len(signers))
	err = doCall(engine, args, initiator, signers)
	if err != nil {
		return nil, err
	}
	return &SuccessPostResult, nil
}

func doCall(engine *trustlines.Engine, args *signer.CallArgs, initiator trustlines.AccountID, signers []trustlines.AccountID) error {
	switch args.Method {
	case "create":
		return doCreate(engine, args, initiator)
	case "send":
		return doSend(engine, args, initiator)
	case "ripple":
		return doRipple(engine, args, initiator)
	case "quality":
		return doQuality(engine, args, initiator)
	case "ripple_set":
		return doRippleSet(engine, args, initiator)
	case "limits":
		return doLimits(engine, args, initiator, signers)
	case "settle":
		return doSettle(engine, args, initiator, signers)
	default:
		return newRPCValidationError(fmt.Errorf("unknown method '%v'", args.Method))
	}
}

func errWrongParamsCount(have, want int) error {
	return newRPCValidationError(fmt.Errorf("wrong number of params, have %v want %v", have, want))
}

func doCreate(engine *trustlines.Engine, args *signer.CallArgs, initiator trustlines.AccountID) error {
	if len(args.Params) != 5 {
		return errWrongParamsCount(len(args.Params), 5)
	}
	counterparty, err := parseAccount(args.Params[0])
	if err != nil {
		return err
	}
	assetID, err := common.GetUint32FromStr(args.Params[1])
	if err != nil {
		return newRPCValidationError(err)
	}
	lowLimit, err := common.GetInt64FromStr(args.Params[2])
	if err != nil {
		return newRPCValidationError(err)
	}
	highLimit, err := common.GetInt64FromStr(args.Params[3])
	if err != nil {
		return newRPCValidationError(err)
	}
	allowRippling, err := common.GetBoolFromStr(args.Params[4])
	if err != nil {
		return newRPCValidationError(err)
	}
	_, err = engine.CreateTrustLine(initiator, counterparty, assetID, lowLimit, highLimit, allowRippling)
	return wrapEngineError(err)
}

func doSend(engine *trustlines.Engine, args *signer.CallArgs, initiator trustlines.AccountID) error {
	if len(args.Params) != 2 {
		return errWrongParamsCount(len(args.Params), 2)
	}
	recipient, err := parseAccount(args.Params[0])
	if err != nil {
		return err
	}
	amount, err := common.GetInt64FromStr(args.Params[1])
	if err != nil {
		return newRPCValidationError(err)
	}
	_, err = engine.Pay(initiator, recipient, amount)
	return wrapEngineError(err)
}

func doRipple(engine *trustlines.Engine, args *signer.CallArgs, initiator trustlines.AccountID) error {
	if len(args.Params) < 2 {
		return newRPCValidationError(fmt.Errorf("wrong number of params, have %v want at least 2", len(args.Params)))
	}
	amount, err := common.GetInt64FromStr(args.Params[0])
	if err != nil {
		return newRPCValidationError(err)
	}
	hops := make([]trustlines.AccountID, 0, len(args.Params)-1)
	for _, param := range args.Params[1:] {
		hop, err := parseAccount(param)
		if err != nil {
			return err
		}
		hops = append(hops, hop)
	}
	_, err = engine.Ripple(initiator, hops, amount)
	return wrapEngineError(err)
}

func doQuality(engine *trustlines.Engine, args *signer.CallArgs, initiator trustlines.AccountID) error {
	if len(args.Params) != 3 {
		return errWrongParamsCount(len(args.Params), 3)
	}
	counterparty, err := parseAccount(args.Params[0])
	if err != nil {
		return err
	}
	qualityIn, err := common.GetUint32FromStr(args.Params[1])
	if err != nil {
		return newRPCValidationError(err)
	}
	qualityOut, err := common.GetUint32FromStr(args.Params[2])
	if err != nil {
		return newRPCValidationError(err)
	}
	_, err = engine.UpdateQuality(initiator, counterparty, qualityIn, qualityOut)
	return wrapEngineError(err)
}

func doRippleSet(engine *trustlines.Engine, args *signer.CallArgs, initiator trustlines.AccountID) error {
	if len(args.Params) != 2 {
		return errWrongParamsCount(len(args.Params), 2)
	}
	counterparty, err := parseAccount(args.Params[0])
	if err != nil {
		return err
	}
	allow, err := common.GetBoolFromStr(args.Params[1])
	if err != nil {
		return newRPCValidationError(err)
	}
	_, err = engine.SetRippling(initiator, counterparty, allow)
	return wrapEngineError(err)
}

func doLimits(engine *trustlines.Engine, args *signer.CallArgs, initiator trustlines.AccountID, signers []trustlines.AccountID) error {
	if len(args.Params) != 3 {
		return errWrongParamsCount(len(args.Params), 3)
	}
	counterparty, err := parseAccount(args.Params[0])
	if err != nil {
		return err
	}
	newLowLimit, err := common.GetInt64FromStr(args.Params[1])
	if err != nil {
		return newRPCValidationError(err)
	}
	newHighLimit, err := common.GetInt64FromStr(args.Params[2])
	if err != nil {
		return newRPCValidationError(err)
	}
	_, err = engine.UpdateLimits(initiator, counterparty, newLowLimit, newHighLimit, signers)
	return wrapEngineError(err)
}

func doSettle(engine *trustlines.Engine, args *signer.CallArgs, initiator trustlines.AccountID, signers []trustlines.AccountID) error {
	if len(args.Params) != 2 {
		return errWrongParamsCount(len(args.Params), 2)
	}
	counterparty, err := parseAccount(args.Params[0])
	if err != nil {
		return err
	}
	amount, err := common.GetInt64FromStr(args.Params[1])
	if err != nil {
		return newRPCValidationError(err)
	}
	_, err = engine.Settle(initiator, counterparty, amount, signers)
	return wrapEngineError(err)
}

// AdminCall verify the signed admin envelope and execute the admin
// method, the first signer must be a configured administrator.
func AdminCall(rawCall string) (string, error) {
	if !params.HasAdmin() {
		return "", newRPCError(-32064, "no admin is configed")
	}
	args, signers, err := signer.VerifyCall(rawCall)
	if err != nil {
		return "", newRPCValidationError(err)
	}
	engine, err := getEngine()
	if err != nil {
		return "", err
	}
	admin := signers[0]
	if !engine.IsAdministrator(admin) {
		return "", newRPCError(-32064, fmt.Sprintf("sender %v is not admin", admin.String()))
	}
	log.Info("[api] receive AdminCall", "method", args.Method, "admin", admin.String())
	switch args.Method {
	case "freeze":
		return adminFreeze(engine, args, admin)
	case "status":
		return adminStatus()
	default:
		return "", newRPCValidationError(fmt.Errorf("unknown admin method '%v'", args.Method))
	}
}

func adminFreeze(engine *trustlines.Engine, args *signer.CallArgs, admin trustlines.AccountID) (string, error) {
	if len(args.Params) != 2 {
		return "", errWrongParamsCount(len(args.Params), 2)
	}
	p, q, err := parseAccountPair(args.Params[0], args.Params[1])
	if err != nil {
		return "", err
	}
	_, err = engine.Freeze(admin, p, q)
	if err != nil {
		return "", wrapEngineError(err)
	}
	return string(SuccessPostResult), nil
}

func adminStatus() (string, error) {
	stats, err := GetStatistics()
	if err != nil {
		return "", err
	}
	bs, err := json.Marshal(stats)
	if err != nil {
		return "", newRPCInternalError(err)
	}
	return string(bs), nil
}
