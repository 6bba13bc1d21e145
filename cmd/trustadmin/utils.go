package main

import (
	"errors"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/cmd/utils"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/rpc/client"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/signer"
	"github.com/urfave/cli/v2"
)

var (
	trustServer string
)

var commonAdminFlags = []cli.Flag{
	utils.TrustServerFlag,
	utils.KeyFileFlag,
	utils.LogFileFlag,
	utils.LogRotationFlag,
	utils.LogMaxAgeFlag,
	utils.VerbosityFlag,
	utils.JSONFormatFlag,
	utils.ColorFormatFlag,
}

func prepare(ctx *cli.Context) (err error) {
	err = loadKeyFile(ctx)
	if err != nil {
		return err
	}
	return initTrustServer(ctx)
}

func loadKeyFile(ctx *cli.Context) error {
	keyfile := utils.GetKeyFilePath(ctx)
	return signer.LoadKeyFile(keyfile)
}

func initTrustServer(ctx *cli.Context) error {
	trustServer = utils.GetServerAddress(ctx)
	if trustServer == "" {
		return errors.New("must specify trust server")
	}
	return nil
}

func adminCall(method string, params []string) (result string, err error) {
	rawCall, err := signer.Sign(method, params)
	if err != nil {
		return "", err
	}
	err = client.RPCPost(&result, trustServer, "trust.AdminCall", rawCall)
	return result, err
}
