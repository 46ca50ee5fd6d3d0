package item

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rogueblight/internal/common/errors"
	"rogueblight/internal/descriptor"
)

func TestBasicType_ConfigDefaultsToEmpty(t *testing.T) {
	typ := NewBasicType("stone")
	assert.NotNil(t, typ.Config())
	assert.Empty(t, typ.Config())

	cfg := descriptor.Object{"display_name": "Rock"}
	typ.SetConfig(cfg)
	assert.Equal(t, cfg, typ.Config())
}

func TestBasicType_CreateNaming(t *testing.T) {
	typ := NewBasicType("stone")
	inv := NewInventory()

	plain, err := typ.Create(descriptor.Object{"type": "stone"}, inv)
	require.NoError(t, err)
	assert.Equal(t, "stone", plain.QualifiedName())

	typ.SetConfig(descriptor.Object{"display_name": "Rock", "mass": 3.0})
	configured, err := typ.Create(descriptor.Object{"type": "stone"}, inv)
	require.NoError(t, err)
	assert.Equal(t, "Rock", configured.QualifiedName())
	assert.InDelta(t, 3.0, configured.Mass(), 1e-9)

	named, err := typ.Create(descriptor.Object{"type": "stone", "name": "Lucky Rock", "mass": 0.5}, inv)
	require.NoError(t, err)
	assert.Equal(t, "Lucky Rock", named.QualifiedName())
	assert.InDelta(t, 0.5, named.Mass(), 1e-9)

	assert.Equal(t, 3, inv.Count())
	assert.Same(t, inv, named.Owner())
	assert.Same(t, typ, named.Type())
}

func TestBasicType_CreateWithUUID(t *testing.T) {
	typ := NewBasicType("stone")
	id := uuid.New()

	it, err := typ.Create(descriptor.Object{"type": "stone", "uuid": id.String()}, nil)
	require.NoError(t, err)
	assert.Equal(t, id, it.UUID())
	assert.Nil(t, it.Owner())

	_, err = typ.Create(descriptor.Object{"type": "stone", "uuid": "not-a-uuid"}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCodeDescriptorInvalid))
}

func TestBasicType_CreateCopiesDescriptor(t *testing.T) {
	desc := descriptor.Object{"type": "stone", "tags": []any{"heavy"}}
	it, err := NewBasicType("stone").Create(desc, nil)
	require.NoError(t, err)

	desc["name"] = "Changed"
	desc["tags"].([]any)[0] = "light"

	assert.False(t, it.Descriptor().Has("name"))
	assert.Equal(t, "heavy", it.Descriptor()["tags"].([]any)[0])
}
