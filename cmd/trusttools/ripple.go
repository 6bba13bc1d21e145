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
	rippleCommand = &cli.Command{
		Action:    ripple,
		Name:      "ripple",
		Usage:     "send a payment through intermediaries",
		ArgsUsage: "<amount> <hop1> ... <hopN>",
		Description: `
ripple the amount from the key file account through the hop accounts,
the last hop is the final recipient. every intermediate trust line must
allow rippling, the forwarded amount decays at each hop.
`,
		Flags: commonTxFlags,
	}
)

func ripple(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	method := "ripple"
	if ctx.NArg() < 2 {
		_ = cli.ShowCommandHelp(ctx, method)
		fmt.Println()
		return fmt.Errorf("invalid arguments: %q", ctx.Args())
	}

	err := prepare(ctx)
	if err != nil {
		return err
	}

	amount := ctx.Args().Get(0)
	if _, err := common.GetInt64FromStr(amount); err != nil {
		return fmt.Errorf("wrong amount '%v': %v", amount, err)
	}

	hops := ctx.Args().Slice()[1:]
	if len(hops) > trustlines.MaxRippleHops {
		return fmt.Errorf("too many hops, have %v max %v", len(hops), trustlines.MaxRippleHops)
	}
	for _, hop := range hops {
		if _, err := trustlines.HexToAccountID(hop); err != nil {
			return fmt.Errorf("wrong hop account '%v': %v", hop, err)
		}
	}

	log.Printf("ripple payment: %v %v", amount, hops)

	result, err := postCall(method, append([]string{amount}, hops...))

	log.Printf("result is '%v'", result)
	return err
}
