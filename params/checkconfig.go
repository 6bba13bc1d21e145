package params

import (
	"errors"
	"fmt"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/trustlines"
)

// CheckConfig check config
func CheckConfig() (err error) {
	config := GetConfig()
	if config.Identifier == "" {
		return errors.New("server must config non empty 'Identifier'")
	}
	if config.Server == nil {
		return errors.New("server must config 'Server'")
	}
	err = config.Server.CheckConfig()
	if err != nil {
		return err
	}
	if config.TrustLines != nil {
		err = config.TrustLines.CheckConfig()
		if err != nil {
			return err
		}
	}
	if MustRegisterAsset() && GetAssetsDir() == "" {
		return errors.New("must config 'TrustLines.AssetsDir' when 'MustRegisterAsset' is set")
	}
	return nil
}

// CheckConfig check trust server config
func (c *ServerConfig) CheckConfig() error {
	if c.MongoDB == nil && !IsTestMode() {
		return errors.New("server must config 'Server.MongoDB' (or run with 'Extra.IsTestMode')")
	}
	if c.APIServer == nil {
		return errors.New("server must config 'Server.APIServer'")
	}
	for _, admin := range c.Admins {
		if _, err := trustlines.HexToAccountID(admin); err != nil {
			return fmt.Errorf("wrong admin account '%v': %v", admin, err)
		}
	}
	return nil
}

// CheckConfig check trust line engine config
func (c *TrustLinesConfig) CheckConfig() error {
	return nil
}

// GetAdminAccounts parses the configured admin identities
func GetAdminAccounts() ([]trustlines.AccountID, error) {
	admins := make([]trustlines.AccountID, 0, len(GetServerConfig().Admins))
	for _, admin := range GetServerConfig().Admins {
		account, err := trustlines.HexToAccountID(admin)
		if err != nil {
			return nil, fmt.Errorf("wrong admin account '%v': %v", admin, err)
		}
		admins = append(admins, account)
	}
	return admins, nil
}
