package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/cmd/utils"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/riskctrl"
	"github.com/urfave/cli/v2"
)

var (
	clientIdentifier = "trustaudit"
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
	// The app that holds all commands and flags.
	app = utils.NewApp(clientIdentifier, gitCommit, gitDate, "the trustaudit command line interface")
)

func initApp() {
	// Initialize the CLI app and start action
	app.Action = trustaudit
	app.HideVersion = true // we have a command to print the version
	app.Commands = []*cli.Command{
		utils.VersionCommand,
	}
	app.Flags = []cli.Flag{
		utils.ConfigFileFlag,
		utils.LogFileFlag,
		utils.LogRotationFlag,
		utils.LogMaxAgeFlag,
		utils.VerbosityFlag,
		utils.JSONFormatFlag,
		utils.ColorFormatFlag,
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

func trustaudit(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	if ctx.NArg() > 0 {
		return fmt.Errorf("invalid command: %q", ctx.Args().Get(0))
	}
	configFile := utils.GetConfigFilePath(ctx)
	riskctrl.LoadConfig(configFile)

	riskctrl.Work()
	return nil
}
