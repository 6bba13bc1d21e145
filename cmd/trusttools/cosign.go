package main

import (
	"fmt"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/cmd/utils"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/signer"
	"github.com/urfave/cli/v2"
)

var (
	cosignCommand = &cli.Command{
		Action:    cosign,
		Name:      "cosign",
		Usage:     "add a co-signature to a call envelope",
		ArgsUsage: "<rawcall>",
		Description: `
add the key file's signature to an existing hex encoded call envelope
and print the extended envelope. envelopes expire, co-sign and submit
promptly.
`,
		Flags: envelopeFlags,
	}
)

func cosign(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	method := "cosign"
	if ctx.NArg() != 1 {
		_ = cli.ShowCommandHelp(ctx, method)
		fmt.Println()
		return fmt.Errorf("invalid arguments: %q", ctx.Args())
	}

	err := loadKeyFile(ctx)
	if err != nil {
		return err
	}

	rawCall, err := signer.AppendSignature(ctx.Args().Get(0))
	if err != nil {
		return err
	}

	printField("signed call", rawCall)
	return nil
}
