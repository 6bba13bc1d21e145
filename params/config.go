// Package params holds the server configuration loaded from the toml
// config file, globally accessible after LoadConfig.
package params

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/common"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
)

const (
	defaultAPIPort = 11556
)

var (
	locDataDir        string
	locAssetsDir      string
	trustConfig       *TrustConfig
	loadConfigStarter sync.Once
)

// TrustConfig config items (decode from toml file)
type TrustConfig struct {
	Identifier string
	Server     *ServerConfig
	TrustLines *TrustLinesConfig `toml:",omitempty" json:",omitempty"`
	Extra      *ExtraConfig      `toml:",omitempty" json:",omitempty"`
}

// ServerConfig trust server config
type ServerConfig struct {
	MongoDB   *MongoDBConfig   `toml:",omitempty" json:",omitempty"`
	APIServer *APIServerConfig `toml:",omitempty" json:",omitempty"`
	Admins    []string         `toml:",omitempty" json:",omitempty"`
}

// APIServerConfig api service config
type APIServerConfig struct {
	Port             int
	AllowedOrigins   []string
	MaxRequestsLimit int
}

// MongoDBConfig mongodb config
type MongoDBConfig struct {
	DBURL    string
	DBName   string
	UserName string `json:"-"`
	Password string `json:"-"`
}

// GetURL joins the user credentials into the connection address
func (c *MongoDBConfig) GetURL() string {
	if c.UserName == "" && c.Password == "" {
		return c.DBURL
	}
	return fmt.Sprintf("%s:%s@%s", c.UserName, c.Password, c.DBURL)
}

// TrustLinesConfig trust line engine config
type TrustLinesConfig struct {
	AssetsDir         string `toml:",omitempty" json:",omitempty"`
	MustRegisterAsset bool   `toml:",omitempty" json:",omitempty"`
}

// ExtraConfig extra config
type ExtraConfig struct {
	IsTestMode  bool `toml:",omitempty" json:",omitempty"`
	IsDebugMode bool `toml:",omitempty" json:",omitempty"`
}

// GetAPIPort get api service port
func GetAPIPort() int {
	apiPort := GetServerConfig().APIServer.Port
	if apiPort == 0 {
		apiPort = defaultAPIPort
	}
	return apiPort
}

// GetIdentifier get identifier (to distinguish deployments)
func GetIdentifier() string {
	return GetConfig().Identifier
}

// IsTestMode is test mode (get rid of business related components: DB etc.)
func IsTestMode() bool {
	return GetExtraConfig() != nil && GetExtraConfig().IsTestMode
}

// IsDebugMode is debug mode, add more debugging log infos
func IsDebugMode() bool {
	return GetExtraConfig() != nil && GetExtraConfig().IsDebugMode
}

// GetConfig get trust config
func GetConfig() *TrustConfig {
	return trustConfig
}

// SetConfig set trust config
func SetConfig(config *TrustConfig) {
	trustConfig = config
}

// GetServerConfig get server config
func GetServerConfig() *ServerConfig {
	return GetConfig().Server
}

// GetExtraConfig get extra config
func GetExtraConfig() *ExtraConfig {
	return GetConfig().Extra
}

// GetTrustLinesConfig get trust line engine config
func GetTrustLinesConfig() *TrustLinesConfig {
	return GetConfig().TrustLines
}

// SetAssetsDir set assets config directory, overrides the config file
func SetAssetsDir(dir string) {
	if dir == "" {
		return
	}
	log.Printf("set assets config directory to '%v'\n", dir)
	locAssetsDir = dir
}

// GetAssetsDir get assets config directory
func GetAssetsDir() string {
	if locAssetsDir != "" {
		return locAssetsDir
	}
	if GetTrustLinesConfig() == nil {
		return ""
	}
	return GetTrustLinesConfig().AssetsDir
}

// MustRegisterAsset flag
func MustRegisterAsset() bool {
	return GetTrustLinesConfig() != nil && GetTrustLinesConfig().MustRegisterAsset
}

// LoadConfig load config
func LoadConfig(configFile string) *TrustConfig {
	loadConfigStarter.Do(func() {
		if configFile == "" {
			log.Fatalf("LoadConfig error: no config file specified")
		}
		log.Println("Config file is", configFile)
		if !common.FileExist(configFile) {
			log.Fatalf("LoadConfig error: config file %v not exist", configFile)
		}
		config := &TrustConfig{}
		if _, err := toml.DecodeFile(configFile, &config); err != nil {
			log.Fatalf("LoadConfig error (toml DecodeFile): %v", err)
		}

		SetConfig(config)
		var bs []byte
		if log.JSONFormat {
			bs, _ = json.Marshal(config)
		} else {
			bs, _ = json.MarshalIndent(config, "", "  ")
		}
		log.Println("LoadConfig finished.", string(bs))
		if err := CheckConfig(); err != nil {
			log.Fatalf("Check config failed. %v", err)
		}
		log.Info("Check config success", "configFile", configFile)
	})
	return trustConfig
}

// HasAdmin has admin
func HasAdmin() bool {
	return len(GetServerConfig().Admins) != 0
}

// IsAdmin is admin
func IsAdmin(account string) bool {
	for _, admin := range GetServerConfig().Admins {
		if strings.EqualFold(account, admin) {
			return true
		}
	}
	return false
}

// SetDataDir set data dir
func SetDataDir(dir string) {
	if dir == "" {
		log.Warn("suggest specify '--datadir' to enable the operation journal")
		return
	}
	currDir, err := common.CurrentDir()
	if err != nil {
		log.Fatal("get current dir failed", "err", err)
	}
	locDataDir = common.AbsolutePath(currDir, dir)
	log.Info("set data dir success", "datadir", locDataDir)
}

// GetDataDir get data dir
func GetDataDir() string {
	return locDataDir
}
