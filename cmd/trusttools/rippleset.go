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
	rippleSetCommand = &cli.Command{
		Action:    rippleSet,
		Name:      "rippleset",
		Usage:     "allow or refuse rippling on a trust line",
		ArgsUsage: "<counterparty> <true|false>",
		Description: `
set the rippling flag of the trust line between the key file account
and the counterparty. rippling must be allowed on every intermediate
line of a rippled payment.
`,
		Flags: commonTxFlags,
	}
)

func rippleSet(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	if ctx.NArg() != 2 {
		_ = cli.ShowCommandHelp(ctx, "rippleset")
		fmt.Println()
		return fmt.Errorf("invalid arguments: %q", ctx.Args())
	}

	err := prepare(ctx)
	if err != nil {
		return err
	}

	counterparty := ctx.Args().Get(0)
	allow := ctx.Args().Get(1)

	if _, err := trustlines.HexToAccountID(counterparty); err != nil {
		return fmt.Errorf("wrong counterparty '%v': %v", counterparty, err)
	}
	if _, err := common.GetBoolFromStr(allow); err != nil {
		return fmt.Errorf("wrong flag '%v': %v", allow, err)
	}

	log.Printf("set rippling: %v %v", counterparty, allow)

	result, err := postCall("ripple_set", []string{counterparty, allow})

	log.Printf("result is '%v'", result)
	return err
}
