package main

import (
	"fmt"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/cmd/utils"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/trustlines"
	"github.com/urfave/cli/v2"
)

var (
	freezeCommand = &cli.Command{
		Action:    freeze,
		Name:      "freeze",
		Usage:     "admin freeze a trust line",
		ArgsUsage: "<account1> <account2>",
		Description: `
admin freeze the trust line between the two accounts. freezing pins
both limits at zero and disables rippling, the balance is kept and can
only be settled down. there is no unfreeze.
`,
		Flags: commonAdminFlags,
	}
)

func freeze(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	method := "freeze"
	if ctx.NArg() != 2 {
		_ = cli.ShowCommandHelp(ctx, method)
		fmt.Println()
		return fmt.Errorf("invalid arguments: %q", ctx.Args())
	}

	err := prepare(ctx)
	if err != nil {
		return err
	}

	account1 := ctx.Args().Get(0)
	account2 := ctx.Args().Get(1)
	if _, err := trustlines.HexToAccountID(account1); err != nil {
		return fmt.Errorf("wrong account '%v': %v", account1, err)
	}
	if _, err := trustlines.HexToAccountID(account2); err != nil {
		return fmt.Errorf("wrong account '%v': %v", account2, err)
	}

	log.Printf("admin freeze: %v %v", account1, account2)

	result, err := adminCall(method, []string{account1, account2})

	log.Printf("result is '%v'", result)
	return err
}
