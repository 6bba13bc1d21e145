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
	clientIdentifier = "trusttools"
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
	// The app that holds all commands and flags.
	app = utils.NewApp(clientIdentifier, gitCommit, gitDate, "the trusttools command line interface")
)

func initApp() {
	// Initialize the CLI app and start action
	app.Action = trusttools
	app.HideVersion = true // we have a command to print the version
	app.Commands = []*cli.Command{
		keygenCommand,
		signCommand,
		cosignCommand,
		decodeCommand,
		submitCommand,
		createCommand,
		sendCommand,
		rippleCommand,
		qualityCommand,
		rippleSetCommand,
		queryCommand,
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

func trusttools(ctx *cli.Context) error {
	if ctx.NArg() > 0 {
		return fmt.Errorf("invalid command: %q", ctx.Args().Get(0))
	}
	_ = cli.ShowAppHelp(ctx)
	return nil
}
