package main

import (
	"fmt"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/cmd/utils"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
	"github.com/urfave/cli/v2"
)

var (
	statusCommand = &cli.Command{
		Action:    status,
		Name:      "status",
		Usage:     "query server status as admin",
		ArgsUsage: " ",
		Description: `
query the engine statistics through the signed admin interface.
`,
		Flags: commonAdminFlags,
	}
)

func status(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	method := "status"
	if ctx.NArg() != 0 {
		_ = cli.ShowCommandHelp(ctx, method)
		fmt.Println()
		return fmt.Errorf("invalid arguments: %q", ctx.Args())
	}

	err := prepare(ctx)
	if err != nil {
		return err
	}

	result, err := adminCall(method, []string{})

	log.Printf("result is '%v'", result)
	return err
}
