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
	sendCommand = &cli.Command{
		Action:    send,
		Name:      "send",
		Usage:     "send a direct payment over a trust line",
		ArgsUsage: "<recipient> <amount>",
		Description: `
send the amount to the recipient over the trust line between the key
file account and the recipient.
`,
		Flags: commonTxFlags,
	}
)

func send(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	method := "send"
	if ctx.NArg() != 2 {
		_ = cli.ShowCommandHelp(ctx, method)
		fmt.Println()
		return fmt.Errorf("invalid arguments: %q", ctx.Args())
	}

	err := prepare(ctx)
	if err != nil {
		return err
	}

	recipient := ctx.Args().Get(0)
	amount := ctx.Args().Get(1)

	if _, err := trustlines.HexToAccountID(recipient); err != nil {
		return fmt.Errorf("wrong recipient '%v': %v", recipient, err)
	}
	if _, err := common.GetInt64FromStr(amount); err != nil {
		return fmt.Errorf("wrong amount '%v': %v", amount, err)
	}

	log.Printf("send payment: %v %v", recipient, amount)

	result, err := postCall(method, []string{recipient, amount})

	log.Printf("result is '%v'", result)
	return err
}
