package main

import (
	"fmt"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/signer"
	"github.com/urfave/cli/v2"
)

var (
	decodeCommand = &cli.Command{
		Action:    decode,
		Name:      "decode",
		Usage:     "decode a call envelope",
		ArgsUsage: "<rawcall>",
		Description: `
decode a hex encoded call envelope and print its method, params,
timestamp and signer accounts. use it to inspect an envelope before
co-signing.
`,
	}
)

func decode(ctx *cli.Context) error {
	method := "decode"
	if ctx.NArg() != 1 {
		_ = cli.ShowCommandHelp(ctx, method)
		fmt.Println()
		return fmt.Errorf("invalid arguments: %q", ctx.Args())
	}

	signed, err := signer.DecodeSignedCall(ctx.Args().Get(0))
	if err != nil {
		return err
	}

	printResult(signed)
	return nil
}
