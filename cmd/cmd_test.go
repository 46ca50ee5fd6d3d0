package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rogueblight/internal/basegame"
	"rogueblight/internal/common/errors"
	"rogueblight/internal/config"
	"rogueblight/internal/plugins/flora"
)

func setupEngine(t *testing.T) {
	t.Helper()
	cfg := &config.AppConfig{}
	cfg.Data.Path = t.TempDir()
	cfg.Data.TypeConfigFile = config.DefaultTypeConfigFile
	cfg.Plugins.Enabled = []string{flora.PluginName, "missing"}
	cfg.Plugins.MergeConfig = true

	_, err := config.EnsureDataDir(cfg)
	require.NoError(t, err)
	require.NoError(t, initializeEngine(cfg))
	t.Cleanup(func() { manager.StopAll() })
}

func TestInitializeEngine(t *testing.T) {
	setupEngine(t)

	assert.True(t, typeRegistry.ConfigLoaded())
	assert.Equal(t, []string{flora.PluginName}, loadedPlugins)
	assert.True(t, typeRegistry.EntityTypeExists(flora.TypeTree))
	assert.True(t, typeRegistry.ItemTypeExists(basegame.TypeStone))

	// 合并后的配置来自默认类型配置文件
	cfg, ok := typeRegistry.TypeConfig(flora.TypeApple)
	require.True(t, ok)
	assert.Equal(t, "Apple", cfg["display_name"])
}

func TestReadDescriptor(t *testing.T) {
	t.Cleanup(func() {
		spawnDescriptor = ""
		spawnFile = ""
	})

	spawnDescriptor = `{"type": "stone"}`
	desc, err := readDescriptor(nil)
	require.NoError(t, err)
	name, _ := desc.TypeName()
	assert.Equal(t, "stone", name)

	spawnDescriptor = ""
	spawnFile = "-"
	desc, err = readDescriptor(strings.NewReader(`{"type": "tree"}`))
	require.NoError(t, err)
	name, _ = desc.TypeName()
	assert.Equal(t, "tree", name)

	path := filepath.Join(t.TempDir(), "desc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"type": "apple"}`), 0o644))
	spawnFile = path
	desc, err = readDescriptor(nil)
	require.NoError(t, err)
	name, _ = desc.TypeName()
	assert.Equal(t, "apple", name)

	spawnFile = ""
	_, err = readDescriptor(nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCodeInvalidParam))
}

func TestTypesMarkdownTable(t *testing.T) {
	setupEngine(t)

	table := typesMarkdownTable()
	assert.Contains(t, table, "| 实体 | `item_container` |")
	assert.Contains(t, table, "`tree`")
	assert.Contains(t, table, "| 物品 | `stone` |")
}

func TestEntityView(t *testing.T) {
	setupEngine(t)

	e, ok := typeRegistry.CreateEntityInWorld(map[string]any{"type": flora.TypeTree}, gameWorld)
	require.True(t, ok)

	view := entityView(e)
	assert.Equal(t, flora.TypeTree, view.Type)
	assert.Equal(t, float64(500), view.Mass)
	require.NotNil(t, view.Health)
	assert.Equal(t, float64(40), *view.Health)
	assert.Nil(t, view.Inventory)
}
