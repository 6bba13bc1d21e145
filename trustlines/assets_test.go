package trustlines

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssetCheckConfig(t *testing.T) {
	asset := &Asset{AssetID: 1, Symbol: "USD", Name: "US Dollar", Decimals: 2}
	assert.Nil(t, asset.CheckConfig())

	asset = &Asset{Symbol: "USD"}
	assert.EqualError(t, asset.CheckConfig(), "asset must config positive 'AssetID'")

	asset = &Asset{AssetID: 1}
	assert.EqualError(t, asset.CheckConfig(), "asset must config nonempty 'Symbol'")
}

func TestAssetRegistry(t *testing.T) {
	reg := NewAssetRegistry()
	assert.Equal(t, 0, reg.Count())

	assert.Nil(t, reg.Add(&Asset{AssetID: 2, Symbol: "EUR"}))
	assert.Nil(t, reg.Add(&Asset{AssetID: 1, Symbol: "USD"}))
	assert.Error(t, reg.Add(&Asset{AssetID: 3}))
	assert.Equal(t, 2, reg.Count())

	asset, exist := reg.Get(1)
	assert.True(t, exist)
	assert.Equal(t, "USD", asset.Symbol)
	_, exist = reg.Get(9)
	assert.False(t, exist)

	all := reg.All()
	assert.Equal(t, 2, len(all))
	assert.Equal(t, uint32(1), all[0].AssetID)
	assert.Equal(t, uint32(2), all[1].AssetID)

	// same id registers again and replaces
	assert.Nil(t, reg.Add(&Asset{AssetID: 1, Symbol: "USDX"}))
	assert.Equal(t, 2, reg.Count())
	asset, _ = reg.Get(1)
	assert.Equal(t, "USDX", asset.Symbol)
}

func writeAssetFile(t *testing.T, dir, name, content string) {
	err := ioutil.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
	assert.Nil(t, err)
}

func TestLoadAssetsInDir(t *testing.T) {
	dir, err := ioutil.TempDir("", "assets")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	writeAssetFile(t, dir, "usd.toml", `
AssetID = 1
Symbol = "USD"
Name = "US Dollar"
Decimals = 2
`)
	writeAssetFile(t, dir, "eur.toml", `
AssetID = 2
Symbol = "EUR"
`)
	writeAssetFile(t, dir, "readme.txt", "not an asset")
	assert.Nil(t, os.Mkdir(filepath.Join(dir, "subdir"), 0755))

	reg := NewAssetRegistry()
	assert.Nil(t, reg.LoadAssetsInDir(dir))
	assert.Equal(t, 2, reg.Count())

	asset, exist := reg.Get(1)
	assert.True(t, exist)
	assert.Equal(t, "USD", asset.Symbol)
	assert.Equal(t, "US Dollar", asset.Name)
	assert.Equal(t, uint8(2), asset.Decimals)

	assert.Error(t, reg.LoadAssetsInDir(filepath.Join(dir, "not-exist")))
}

func TestLoadAssetFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "assets")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	reg := NewAssetRegistry()
	assert.Error(t, reg.LoadAssetFile(filepath.Join(dir, "missing.toml")))

	writeAssetFile(t, dir, "bad.toml", `
AssetID = 5
`)
	assert.Error(t, reg.LoadAssetFile(filepath.Join(dir, "bad.toml")))

	writeAssetFile(t, dir, "gbp.toml", `
AssetID = 3
Symbol = "GBP"
`)
	assert.Nil(t, reg.LoadAssetFile(filepath.Join(dir, "gbp.toml")))
	asset, exist := reg.Get(3)
	assert.True(t, exist)
	assert.Equal(t, "GBP", asset.Symbol)
}
