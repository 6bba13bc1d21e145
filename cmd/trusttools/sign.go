package main

import (
	"fmt"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/cmd/utils"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/signer"
	"github.com/urfave/cli/v2"
)

var (
	signCommand = &cli.Command{
		Action:    sign,
		Name:      "sign",
		Usage:     "build and sign a call envelope",
		ArgsUsage: "<method> [params...]",
		Description: `
build a call envelope for the method and params, sign it with the key
file and print the hex encoded envelope. co-signed methods ('limits'
and 'settle') additionally need the counterparty to run 'cosign' on the
printed envelope before 'submit'.
`,
		Flags: envelopeFlags,
	}
)

func sign(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	method := "sign"
	if ctx.NArg() < 1 {
		_ = cli.ShowCommandHelp(ctx, method)
		fmt.Println()
		return fmt.Errorf("invalid arguments: %q", ctx.Args())
	}

	err := loadKeyFile(ctx)
	if err != nil {
		return err
	}

	callMethod := ctx.Args().Get(0)
	callParams := ctx.Args().Slice()[1:]

	rawCall, err := signer.Sign(callMethod, callParams)
	if err != nil {
		return err
	}

	printField("signed call", rawCall)
	return nil
}
