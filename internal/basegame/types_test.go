package basegame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rogueblight/internal/descriptor"
	"rogueblight/internal/item"
	"rogueblight/internal/world"
)

type stoneCreator struct {
	stone *item.BasicType
	calls int
}

func (c *stoneCreator) CreateItemInInventory(inv *item.Inventory, desc descriptor.Object) bool {
	c.calls++
	if name, _ := desc.TypeName(); name != c.stone.Name() {
		return false
	}
	_, err := c.stone.Create(desc, inv)
	return err == nil
}

func TestItemContainer_Create(t *testing.T) {
	creator := &stoneCreator{stone: NewStone()}
	container := NewItemContainer(creator)
	w := world.NewMemory("test")

	e, err := container.Create(descriptor.Object{
		"type": TypeItemContainer,
		"mass": 10,
		"contents": []any{
			map[string]any{"type": TypeStone, "mass": 2},
			map[string]any{"type": "feather"},
			"not an object",
		},
	}, w)
	require.NoError(t, err)

	assert.Same(t, container, e.Type())
	assert.Equal(t, 1, w.Len())
	assert.Equal(t, 2, creator.calls)

	inv, ok := e.Inventory()
	require.True(t, ok)
	assert.Equal(t, []string{TypeStone}, inv.Names())
	assert.Equal(t, float64(12), e.Mass())
}

func TestItemContainer_NoContents(t *testing.T) {
	e, err := NewItemContainer(nil).Create(descriptor.Object{"type": TypeItemContainer}, nil)
	require.NoError(t, err)

	inv, ok := e.Inventory()
	require.True(t, ok)
	assert.Zero(t, inv.Count())
}

func TestStone_NameFallbacks(t *testing.T) {
	stone := NewStone()
	inv := item.NewInventory()

	_, err := stone.Create(descriptor.Object{"type": TypeStone}, inv)
	require.NoError(t, err)

	stone.SetConfig(descriptor.Object{"display_name": "Granite"})
	_, err = stone.Create(descriptor.Object{"type": TypeStone}, inv)
	require.NoError(t, err)

	_, err = stone.Create(descriptor.Object{"type": TypeStone, "name": "Flint"}, inv)
	require.NoError(t, err)

	assert.Equal(t, []string{"Flint", "Granite", TypeStone}, inv.Names())
}

func TestItemContainer_ContentsDescriptorsAreCopied(t *testing.T) {
	creator := &stoneCreator{stone: NewStone()}
	stoneDesc := map[string]any{"type": TypeStone, "name": "Flint"}
	desc := descriptor.Object{"type": TypeItemContainer, "contents": []any{stoneDesc}}

	e, err := NewItemContainer(creator).Create(desc, nil)
	require.NoError(t, err)

	stoneDesc["name"] = "Changed"
	desc["mass"] = 99

	inv, _ := e.Inventory()
	require.Equal(t, 1, inv.Count())
	name, _ := inv.Items()[0].Descriptor().String("name")
	assert.Equal(t, "Flint", name)
	assert.False(t, e.Descriptor().Has("mass"))
}
