package main

import (
	"fmt"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/cmd/utils"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/rpc/client"
	"github.com/urfave/cli/v2"
)

var (
	submitCommand = &cli.Command{
		Action:    submit,
		Name:      "submit",
		Usage:     "submit a signed call envelope",
		ArgsUsage: "<rawcall>",
		Description: `
submit a hex encoded signed call envelope to the trust server.
`,
		Flags: queryFlags,
	}
)

func submit(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	method := "submit"
	if ctx.NArg() != 1 {
		_ = cli.ShowCommandHelp(ctx, method)
		fmt.Println()
		return fmt.Errorf("invalid arguments: %q", ctx.Args())
	}

	err := initTrustServer(ctx)
	if err != nil {
		return err
	}

	rawCall := ctx.Args().Get(0)

	var result string
	err = client.RPCPost(&result, trustServer, "trust.SubmitCall", rawCall)

	log.Printf("result is '%v'", result)
	return err
}
