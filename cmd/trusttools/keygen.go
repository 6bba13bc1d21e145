package main

import (
	"fmt"
	"io/ioutil"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/cmd/utils"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/common"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/tools"
	"github.com/urfave/cli/v2"
)

var (
	keygenCommand = &cli.Command{
		Action:    keygen,
		Name:      "keygen",
		Usage:     "generate a new signing key",
		ArgsUsage: " ",
		Description: `
generate a new ed25519 signing key, the account identity is the public
key. specify '--keyfile' to write the seed into a new key file instead
of printing it.
`,
		Flags: []cli.Flag{
			utils.KeyFileFlag,
		},
	}
)

func keygen(ctx *cli.Context) error {
	key, seed, err := tools.GenerateKey()
	if err != nil {
		return err
	}

	printField("account", key.Account.Hex())

	keyfile := utils.GetKeyFilePath(ctx)
	if keyfile == "" {
		printField("seed", seed)
		return nil
	}
	if common.FileExist(keyfile) {
		return fmt.Errorf("key file '%v' already exists", keyfile)
	}
	if err := ioutil.WriteFile(keyfile, []byte(seed+"\n"), 0600); err != nil {
		return fmt.Errorf("write key file failed: %v", err)
	}
	printField("keyfile", keyfile)
	return nil
}
