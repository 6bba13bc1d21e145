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
	qualityCommand = &cli.Command{
		Action:    quality,
		Name:      "quality",
		Usage:     "update the quality rates of a trust line",
		ArgsUsage: "<counterparty> <qualityin> <qualityout>",
		Description: `
update the quality in and quality out rates of the trust line between
the key file account and the counterparty. rates are fixed point with
parity 1000000 and must be in (0, 1000000].
`,
		Flags: commonTxFlags,
	}
)

func quality(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	method := "quality"
	if ctx.NArg() != 3 {
		_ = cli.ShowCommandHelp(ctx, method)
		fmt.Println()
		return fmt.Errorf("invalid arguments: %q", ctx.Args())
	}

	err := prepare(ctx)
	if err != nil {
		return err
	}

	counterparty := ctx.Args().Get(0)
	qualityIn := ctx.Args().Get(1)
	qualityOut := ctx.Args().Get(2)

	if _, err := trustlines.HexToAccountID(counterparty); err != nil {
		return fmt.Errorf("wrong counterparty '%v': %v", counterparty, err)
	}
	if _, err := common.GetUint32FromStr(qualityIn); err != nil {
		return fmt.Errorf("wrong qualityin '%v': %v", qualityIn, err)
	}
	if _, err := common.GetUint32FromStr(qualityOut); err != nil {
		return fmt.Errorf("wrong qualityout '%v': %v", qualityOut, err)
	}

	log.Printf("update quality: %v %v %v", counterparty, qualityIn, qualityOut)

	result, err := postCall(method, []string{counterparty, qualityIn, qualityOut})

	log.Printf("result is '%v'", result)
	return err
}
