package riskctrl

import (
	"encoding/json"
	"errors"

	"github.com/BurntSushi/toml"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/common"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/params"
)

var (
	riskConfig *RiskConfig
)

// RiskConfig risk config
type RiskConfig struct {
	MongoDB *params.MongoDBConfig

	Email *EmailConfig

	ServerAPIAddress string

	MaxSeqDriftValue uint64
}

// EmailConfig email config
type EmailConfig struct {
	Server   string
	Port     int
	From     string
	FromName string
	Password string `json:"-"`
	To       []string
	Cc       []string
}

// GetConfig get config
func GetConfig() *RiskConfig {
	return riskConfig
}

// SetConfig set config
func SetConfig(config *RiskConfig) {
	riskConfig = config
}

// CheckConfig check config
func CheckConfig() (err error) {
	config := GetConfig()
	if config.MongoDB == nil {
		return errors.New("server must config 'MongoDB'")
	}
	if config.MongoDB.DBURL == "" {
		return errors.New("server must config 'MongoDB.DBURL'")
	}
	if config.MongoDB.DBName == "" {
		return errors.New("server must config 'MongoDB.DBName'")
	}
	if config.ServerAPIAddress == "" {
		return errors.New("server must config 'ServerAPIAddress'")
	}
	if config.MaxSeqDriftValue == 0 {
		return errors.New("server must config positive 'MaxSeqDriftValue'")
	}
	return nil
}

// LoadConfig load config
func LoadConfig(configFile string) *RiskConfig {
	log.Printf("Config file is '%v'", configFile)
	if !common.FileExist(configFile) {
		log.Fatalf("LoadConfig error: config file '%v' not exist", configFile)
	}
	config := &RiskConfig{}
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

	return riskConfig
}
