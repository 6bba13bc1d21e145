package trustlines

import (
	"errors"
	"fmt"
	"io/ioutil"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/common"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
)

// Asset is one registered fungible unit trust lines may denominate
type Asset struct {
	AssetID  uint32
	Symbol   string
	Name     string
	Decimals uint8
}

// CheckConfig check asset config
func (a *Asset) CheckConfig() error {
	if a.AssetID == 0 {
		return errors.New("asset must config positive 'AssetID'")
	}
	if a.Symbol == "" {
		return errors.New("asset must config nonempty 'Symbol'")
	}
	return nil
}

// AssetRegistry holds the registered assets. The directory watcher may
// add assets while the server runs, access is mutex guarded.
type AssetRegistry struct {
	mu   sync.RWMutex
	byID map[uint32]*Asset
}

// NewAssetRegistry creates an empty registry
func NewAssetRegistry() *AssetRegistry {
	return &AssetRegistry{
		byID: make(map[uint32]*Asset),
	}
}

// Get returns the asset of an id
func (r *AssetRegistry) Get(assetID uint32) (*Asset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	asset, exist := r.byID[assetID]
	return asset, exist
}

// All returns all registered assets ordered by id
func (r *AssetRegistry) All() []*Asset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	assets := make([]*Asset, 0, len(r.byID))
	for _, asset := range r.byID {
		assets = append(assets, asset)
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].AssetID < assets[j].AssetID })
	return assets
}

// Count returns the number of registered assets
func (r *AssetRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Add registers an asset, overwriting any entry with the same id
func (r *AssetRegistry) Add(asset *Asset) error {
	if err := asset.CheckConfig(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, exist := r.byID[asset.AssetID]; exist && old.Symbol != asset.Symbol {
		log.Warn("replace registered asset", "assetID", asset.AssetID, "oldSymbol", old.Symbol, "newSymbol", asset.Symbol)
	}
	r.byID[asset.AssetID] = asset
	return nil
}

// LoadAssetsInDir loads and registers every *.toml asset file of a directory
func (r *AssetRegistry) LoadAssetsInDir(dir string) error {
	fileInfoList, err := ioutil.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read assets dir '%v' error: %v", dir, err)
	}
	for _, info := range fileInfoList {
		if info.IsDir() {
			continue
		}
		fileName := info.Name()
		if !strings.HasSuffix(fileName, ".toml") {
			log.Info("ignore not *.toml file", "file", fileName)
			continue
		}
		if err := r.LoadAssetFile(common.AbsolutePath(dir, fileName)); err != nil {
			return err
		}
	}
	log.Info("load assets finished", "directory", dir, "count", r.Count())
	return nil
}

// LoadAssetFile loads one asset config file and registers its asset,
// also called by the directory watcher on changed files
func (r *AssetRegistry) LoadAssetFile(configFile string) error {
	asset, err := loadAssetConfig(configFile)
	if err != nil {
		return err
	}
	if err := r.Add(asset); err != nil {
		return fmt.Errorf("asset config file '%v' invalid: %v", configFile, err)
	}
	log.Info("load asset config file success", "file", configFile, "assetID", asset.AssetID, "symbol", asset.Symbol)
	return nil
}

func loadAssetConfig(configFile string) (*Asset, error) {
	if !common.FileExist(configFile) {
		return nil, fmt.Errorf("config file '%v' not exist", configFile)
	}
	asset := &Asset{}
	if _, err := toml.DecodeFile(configFile, asset); err != nil {
		return nil, fmt.Errorf("toml decode file error: %v", err)
	}
	return asset, nil
}
