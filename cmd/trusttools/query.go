package main

import (
	"fmt"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/cmd/utils"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/internal/trustapi"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/rpc/client"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/rpc/rpcapi"
	"github.com/urfave/cli/v2"
)

var (
	queryCommand = &cli.Command{
		Action:    query,
		Name:      "query",
		Usage:     "query the trust server",
		ArgsUsage: "<serverinfo|statistics|assets|asset|trustline|balance|credit|lines|history> [args...]",
		Description: `
query the trust server read interfaces.

  query serverinfo
  query statistics
  query assets
  query asset <assetid>
  query trustline <account1> <account2>
  query balance <account1> <account2>
  query credit <account1> <account2>
  query lines <account>
  query history <account>
`,
		Flags: queryFlags,
	}
)

func query(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	method := "query"
	if ctx.NArg() < 1 {
		_ = cli.ShowCommandHelp(ctx, method)
		fmt.Println()
		return fmt.Errorf("invalid arguments: %q", ctx.Args())
	}

	err := initTrustServer(ctx)
	if err != nil {
		return err
	}

	operation := ctx.Args().Get(0)
	args := ctx.Args().Slice()[1:]

	result, err := doQuery(operation, args)
	if err != nil {
		return err
	}

	titleStyle.Printf("%v result:\n", operation)
	printResult(result)
	return nil
}

func errWrongQueryArgs(operation, argsUsage string) error {
	return fmt.Errorf("query %v needs arguments %v", operation, argsUsage)
}

func doQuery(operation string, args []string) (result interface{}, err error) {
	switch operation {
	case "serverinfo":
		var res trustapi.ServerInfo
		err = client.RPCPost(&res, trustServer, "trust.GetServerInfo")
		result = &res
	case "statistics":
		var res trustapi.StatsInfo
		err = client.RPCPost(&res, trustServer, "trust.GetStatistics")
		result = &res
	case "assets":
		var res []*trustapi.Asset
		err = client.RPCPost(&res, trustServer, "trust.GetAssets")
		result = &res
	case "asset":
		if len(args) != 1 {
			return nil, errWrongQueryArgs(operation, "<assetid>")
		}
		var res trustapi.Asset
		err = client.RPCPost(&res, trustServer, "trust.GetAsset", args[0])
		result = &res
	case "trustline":
		if len(args) != 2 {
			return nil, errWrongQueryArgs(operation, "<account1> <account2>")
		}
		var res trustapi.TrustLineInfo
		err = client.RPCPost(&res, trustServer, "trust.GetTrustLine",
			&rpcapi.RPCAccountPairArgs{Account1: args[0], Account2: args[1]})
		result = &res
	case "balance":
		if len(args) != 2 {
			return nil, errWrongQueryArgs(operation, "<account1> <account2>")
		}
		var res trustapi.BalanceInfo
		err = client.RPCPost(&res, trustServer, "trust.GetBalance",
			&rpcapi.RPCAccountPairArgs{Account1: args[0], Account2: args[1]})
		result = &res
	case "credit":
		if len(args) != 2 {
			return nil, errWrongQueryArgs(operation, "<account1> <account2>")
		}
		var res trustapi.CreditInfo
		err = client.RPCPost(&res, trustServer, "trust.GetAvailableCredit",
			&rpcapi.RPCAccountPairArgs{Account1: args[0], Account2: args[1]})
		result = &res
	case "lines":
		if len(args) != 1 {
			return nil, errWrongQueryArgs(operation, "<account>")
		}
		var res []*trustapi.TrustLineInfo
		err = client.RPCPost(&res, trustServer, "trust.GetAccountTrustLines",
			&rpcapi.RPCAccountLinesArgs{Account: args[0]})
		result = &res
	case "history":
		if len(args) != 1 {
			return nil, errWrongQueryArgs(operation, "<account>")
		}
		var res []*trustapi.LineOp
		err = client.RPCPost(&res, trustServer, "trust.GetHistory",
			&rpcapi.RPCQueryHistoryArgs{Account: args[0]})
		result = &res
	default:
		return nil, fmt.Errorf("unknown query operation '%v'", operation)
	}
	return result, err
}
