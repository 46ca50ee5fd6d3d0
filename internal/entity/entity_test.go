package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rogueblight/internal/descriptor"
	"rogueblight/internal/item"
)

type recordingWorld struct {
	added []*Entity
}

func (w *recordingWorld) AddEntity(e *Entity) { w.added = append(w.added, e) }

func TestBasicType_CreatePlacesInWorld(t *testing.T) {
	typ := NewBasicType("tree")
	typ.SetConfig(descriptor.Object{"mass": 120.0, "max_health": 40.0})
	w := &recordingWorld{}

	desc := descriptor.Object{"type": "tree"}
	e, err := typ.Create(desc, w)
	require.NoError(t, err)

	require.Len(t, w.added, 1)
	assert.Same(t, e, w.added[0])
	assert.Same(t, w, e.World())
	assert.Equal(t, "tree", e.TypeName())
	assert.InDelta(t, 120.0, e.Mass(), 1e-9)

	living, ok := e.Behavior().LivingComponent()
	require.True(t, ok)
	assert.InDelta(t, 40.0, living.MaxHealth(), 1e-9)
	assert.InDelta(t, 40.0, living.Health(), 1e-9)

	_, hasInventory := e.Inventory()
	assert.False(t, hasInventory)
}

func TestBasicType_DescriptorOverrides(t *testing.T) {
	typ := NewBasicType("tree")
	typ.SetConfig(descriptor.Object{"mass": 120.0})
	id := uuid.New()

	e, err := typ.Create(descriptor.Object{"type": "tree", "mass": 5.0, "uuid": id.String()}, nil)
	require.NoError(t, err)
	assert.Equal(t, id, e.ID())
	assert.InDelta(t, 5.0, e.Mass(), 1e-9)
	assert.Nil(t, e.World())

	_, ok := e.Behavior().LivingComponent()
	assert.False(t, ok)
}

func TestStaticBehavior_MassIncludesInventory(t *testing.T) {
	inv := item.NewInventory()
	stone := item.NewBasicType("stone")
	_, err := stone.Create(descriptor.Object{"type": "stone", "mass": 2.0}, inv)
	require.NoError(t, err)
	_, err = stone.Create(descriptor.Object{"type": "stone", "mass": 3.0}, inv)
	require.NoError(t, err)

	e := New(uuid.New(), nil, nil, &StaticBehavior{BaseMass: 1, Inventory: inv}, nil)
	assert.InDelta(t, 6.0, e.Mass(), 1e-9)

	got, ok := e.Inventory()
	require.True(t, ok)
	assert.Same(t, inv, got)
	assert.Equal(t, "", e.TypeName())
}
