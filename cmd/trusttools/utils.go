package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/cmd/utils"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/rpc/client"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/signer"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var (
	trustServer string

	titleStyle  = color.New(color.FgYellow, color.Bold)
	resultStyle = color.New(color.FgGreen)
)

var commonTxFlags = []cli.Flag{
	utils.TrustServerFlag,
	utils.KeyFileFlag,
	utils.LogFileFlag,
	utils.LogRotationFlag,
	utils.LogMaxAgeFlag,
	utils.VerbosityFlag,
	utils.JSONFormatFlag,
	utils.ColorFormatFlag,
}

var envelopeFlags = []cli.Flag{
	utils.KeyFileFlag,
	utils.VerbosityFlag,
	utils.JSONFormatFlag,
	utils.ColorFormatFlag,
}

var queryFlags = []cli.Flag{
	utils.TrustServerFlag,
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

func postCall(method string, params []string) (result string, err error) {
	rawCall, err := signer.Sign(method, params)
	if err != nil {
		return "", err
	}
	err = client.RPCPost(&result, trustServer, "trust.SubmitCall", rawCall)
	return result, err
}

func printField(name, value string) {
	titleStyle.Printf("%v: ", name)
	resultStyle.Println(value)
}

func printResult(result interface{}) {
	bs, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Println(result)
		return
	}
	resultStyle.Println(string(bs))
}
