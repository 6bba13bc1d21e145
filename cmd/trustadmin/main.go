package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/cmd/utils"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
	"github.com/urfave/cli/v2"
)

var (
	clientIdentifier = "trustadmin"
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
	// The app that holds all commands and flags.
	app = utils.NewApp(clientIdentifier, gitCommit, gitDate, "the trustadmin command line interface")
)

func initApp() {
	// Initialize the CLI app and start action
	app.Action = trustadmin
	app.HideVersion = true // we have a command to print the version
	app.Commands = []*cli.Command{
		freezeCommand,
		statusCommand,
		utils.VersionCommand,
	}
	sort.Sort(cli.CommandsByName(app.Commands))
}

func main() {
	initApp()
	if err := app.Run(os.Args); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func trustadmin(ctx *cli.Context) error {
	if ctx.NArg() > 0 {
		return fmt.Errorf("invalid command: %q", ctx.Args().Get(0))
	}
	_ = cli.ShowAppHelp(ctx)
	return nil
}
