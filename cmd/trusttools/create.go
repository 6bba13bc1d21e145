package main

import (
	"fmt"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/cmd/utils"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/common"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/trustlines"
	"github.com/urfave/cli/v2"
)

var (
	createCommand = &cli.Command{
		Action:    create,
		Name:      "create",
		Usage:     "create a trust line with a counterparty",
		ArgsUsage: "<counterparty> <assetid> <lowlimit> <highlimit> <allowrippling>",
		Description: `
create the trust line between the key file account and the
counterparty. both limits must be positive, the initial balance is
zero.
`,
		Flags: commonTxFlags,
	}
)

func create(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	method := "create"
	if ctx.NArg() != 5 {
		_ = cli.ShowCommandHelp(ctx, method)
		fmt.Println()
		return fmt.Errorf("invalid arguments: %q", ctx.Args())
	}

	err := prepare(ctx)
	if err != nil {
		return err
	}

	counterparty := ctx.Args().Get(0)
	assetID := ctx.Args().Get(1)
	lowLimit := ctx.Args().Get(2)
	highLimit := ctx.Args().Get(3)
	allowRippling := ctx.Args().Get(4)

	if _, err := trustlines.HexToAccountID(counterparty); err != nil {
		return fmt.Errorf("wrong counterparty '%v': %v", counterparty, err)
	}
	if _, err := common.GetUint32FromStr(assetID); err != nil {
		return fmt.Errorf("wrong assetid '%v': %v", assetID, err)
	}
	if _, err := common.GetInt64FromStr(lowLimit); err != nil {
		return fmt.Errorf("wrong lowlimit '%v': %v", lowLimit, err)
	}
	if _, err := common.GetInt64FromStr(highLimit); err != nil {
		return fmt.Errorf("wrong highlimit '%v': %v", highLimit, err)
	}
	if _, err := common.GetBoolFromStr(allowRippling); err != nil {
		return fmt.Errorf("wrong allowrippling '%v': %v", allowRippling, err)
	}

	log.Printf("create trust line: %v %v %v %v %v", counterparty, assetID, lowLimit, highLimit, allowRippling)

	result, err := postCall(method, []string{counterparty, assetID, lowLimit, highLimit, allowRippling})

	log.Printf("result is '%v'", result)
	return err
}
