package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/cmd/utils"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/internal/trustapi"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/mongodb"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/params"
	rpcserver "github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/rpc/server"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/trustlines"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/worker"
	"github.com/urfave/cli/v2"
)

var (
	clientIdentifier = "trustserver"
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
	// The app that holds all commands and flags.
	app = utils.NewApp(clientIdentifier, gitCommit, gitDate, "the trustserver command line interface")
)

func initApp() {
	// Initialize the CLI app and start action
	app.Action = trustserver
	app.HideVersion = true // we have a command to print the version
	app.Commands = []*cli.Command{
		utils.VersionCommand,
	}
	app.Flags = []cli.Flag{
		utils.ConfigFileFlag,
		utils.DataDirFlag,
		utils.AssetsDirFlag,
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

func trustserver(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	if ctx.NArg() > 0 {
		return fmt.Errorf("invalid command: %q", ctx.Args().Get(0))
	}
	configFile := utils.GetConfigFilePath(ctx)
	config := params.LoadConfig(configFile)

	params.SetDataDir(utils.GetDataDir(ctx))
	params.SetAssetsDir(utils.GetAssetsDir(ctx))

	engine := initEngine(config)
	trustapi.Init(engine)

	worker.AddEventListener(rpcserver.BroadcastEvent)
	worker.StartWork(engine)
	time.Sleep(100 * time.Millisecond)
	rpcserver.StartAPIServer()

	utils.WaitAndCleanup(worker.Stop)
	return nil
}

func initEngine(config *params.TrustConfig) *trustlines.Engine {
	var store trustlines.Store
	if params.IsTestMode() {
		log.Info("run trust server in test mode, use in process store")
		store = trustlines.NewMemStore()
	} else {
		dbConfig := config.Server.MongoDB
		mongodb.MongoServerInit(clientIdentifier, dbConfig.GetURL(), dbConfig.DBName)
		if err := mongodb.InitServerStatus(config.Identifier); err != nil {
			log.Fatal("init server status failed", "err", err)
		}
		store = mongodb.NewStore()
	}

	admins, err := params.GetAdminAccounts()
	if err != nil {
		log.Fatal("load admin accounts failed", "err", err)
	}
	engine := trustlines.NewEngine(store, &trustlines.Config{
		Admins:            admins,
		MustRegisterAsset: params.MustRegisterAsset(),
	})

	if assetsDir := params.GetAssetsDir(); assetsDir != "" {
		registry := trustlines.NewAssetRegistry()
		if err := registry.LoadAssetsInDir(assetsDir); err != nil {
			log.Fatal("load assets failed", "assetsdir", assetsDir, "err", err)
		}
		engine.SetAssetRegistry(registry)
		log.Info("load assets success", "assetsdir", assetsDir, "count", registry.Count())
	}
	return engine
}
