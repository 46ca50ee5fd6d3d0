package flora

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rogueblight/internal/descriptor"
	"rogueblight/internal/item"
	"rogueblight/internal/plugins"
	"rogueblight/internal/registry"
	"rogueblight/internal/world"
)

func TestFactoryRegisteredOnImport(t *testing.T) {
	assert.Contains(t, plugins.ListPluginFactories(), PluginName)

	factory, ok := plugins.GetPluginFactory(PluginName)
	require.True(t, ok)
	assert.Equal(t, PluginName, factory().Name())
}

func TestFloraTypes(t *testing.T) {
	reg := registry.New()
	loaded, err := plugins.NewLoader(nil).LoadPlugins(reg, []string{PluginName})
	require.NoError(t, err)
	require.Equal(t, []string{PluginName}, loaded)

	w := world.NewMemory("forest")
	tree, ok := reg.CreateEntityInWorld(descriptor.Object{"type": TypeTree}, w)
	require.True(t, ok)
	assert.Equal(t, float64(500), tree.Mass())

	living, ok := tree.Behavior().LivingComponent()
	require.True(t, ok)
	assert.Equal(t, float64(40), living.MaxHealth())

	inv := item.NewInventory()
	assert.True(t, reg.CreateItemInInventory(inv, descriptor.Object{"type": TypeApple}))
	assert.True(t, reg.CreateItemInInventory(inv, descriptor.Object{"type": TypeStick, "name": "Walking Stick"}))
	assert.Equal(t, []string{"Apple", "Walking Stick"}, inv.Names())
}
