package utils

import (
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
	"github.com/urfave/cli/v2"
)

var (
	// ConfigFileFlag specify config file
	ConfigFileFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Specify config file",
	}
	// DataDirFlag specify data directory
	DataDirFlag = &cli.StringFlag{
		Name:  "datadir",
		Usage: "Specify data directory of the operation journal",
	}
	// AssetsDirFlag specify assets config directory
	AssetsDirFlag = &cli.StringFlag{
		Name:  "assetsdir",
		Usage: "Specify assets config directory",
	}
	// KeyFileFlag specify signing key file
	KeyFileFlag = &cli.StringFlag{
		Name:  "keyfile",
		Usage: "Specify signing key file",
	}
	// TrustServerFlag specify server rpc address
	TrustServerFlag = &cli.StringFlag{
		Name:  "server",
		Usage: "Specify server rpc address",
		Value: "http://127.0.0.1:11556/rpc",
	}
	// LogFileFlag specify log file, support log rotation
	LogFileFlag = &cli.StringFlag{
		Name:  "log",
		Usage: "Specify log file, support rotate",
	}
	// LogRotationFlag specify log rotation time interval
	LogRotationFlag = &cli.Uint64Flag{
		Name:  "rotate",
		Usage: "log rotation time (unit hour)",
		Value: 24,
	}
	// LogMaxAgeFlag specify log max age
	LogMaxAgeFlag = &cli.Uint64Flag{
		Name:  "maxage",
		Usage: "log max age (unit hour)",
		Value: 720,
	}
	// VerbosityFlag specify log verbosity
	VerbosityFlag = &cli.Uint64Flag{
		Name:    "verbosity",
		Aliases: []string{"v"},
		Usage:   "log verbosity (0:panic, 1:fatal, 2:error, 3:warn, 4:info, 5:debug, 6:trace)",
		Value:   4,
	}
	// JSONFormatFlag output log in json format
	JSONFormatFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "output log in json format",
	}
	// ColorFormatFlag output log in color text format
	ColorFormatFlag = &cli.BoolFlag{
		Name:  "color",
		Usage: "output log in color text format",
		Value: true,
	}
)

// SetLogger set log level, format and rotation from the cli context
func SetLogger(ctx *cli.Context) {
	logLevel := ctx.Uint64(VerbosityFlag.Name)
	jsonFormat := ctx.Bool(JSONFormatFlag.Name)
	colorFormat := ctx.Bool(ColorFormatFlag.Name)
	log.SetLogger(uint32(logLevel), jsonFormat, colorFormat)

	logFile := ctx.String(LogFileFlag.Name)
	if logFile != "" {
		logRotation := ctx.Uint64(LogRotationFlag.Name)
		logMaxAge := ctx.Uint64(LogMaxAgeFlag.Name)
		log.SetLogFile(logFile, logRotation, logMaxAge)
	}
}

// GetConfigFilePath specified by the '--config' flag
func GetConfigFilePath(ctx *cli.Context) string {
	return ctx.String(ConfigFileFlag.Name)
}

// GetDataDir specified by the '--datadir' flag
func GetDataDir(ctx *cli.Context) string {
	return ctx.String(DataDirFlag.Name)
}

// GetAssetsDir specified by the '--assetsdir' flag
func GetAssetsDir(ctx *cli.Context) string {
	return ctx.String(AssetsDirFlag.Name)
}

// GetKeyFilePath specified by the '--keyfile' flag
func GetKeyFilePath(ctx *cli.Context) string {
	return ctx.String(KeyFileFlag.Name)
}

// GetServerAddress specified by the '--server' flag
func GetServerAddress(ctx *cli.Context) string {
	return ctx.String(TrustServerFlag.Name)
}
