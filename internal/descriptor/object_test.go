package descriptor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rogueblight/internal/common/errors"
)

func TestParse(t *testing.T) {
	obj, err := Parse([]byte(`{"type":"stone","mass":2.5,"tags":["heavy"]}`))
	require.NoError(t, err)

	name, ok := obj.TypeName()
	assert.True(t, ok)
	assert.Equal(t, "stone", name)

	mass, ok := obj.Float("mass")
	assert.True(t, ok)
	assert.InDelta(t, 2.5, mass, 1e-9)
}

func TestParse_RejectsNonObjects(t *testing.T) {
	for _, input := range []string{`null`, `[1,2]`, `"stone"`, `{`} {
		_, err := Parse([]byte(input))
		require.Error(t, err, input)
		assert.True(t, errors.IsErrorCode(err, errors.ErrCodeDescriptorInvalid), input)
	}
}

func TestDecode(t *testing.T) {
	obj, err := Decode(strings.NewReader(`{"stone": {"display_name": "Rock"}}`))
	require.NoError(t, err)

	nested, ok := obj.Object("stone")
	require.True(t, ok)
	display, _ := nested.String("display_name")
	assert.Equal(t, "Rock", display)
}

func TestTypeName_MustBeString(t *testing.T) {
	_, ok := Object{"type": 42.0}.TypeName()
	assert.False(t, ok)

	_, ok = Object{"name": "stone"}.TypeName()
	assert.False(t, ok)
}

func TestObjects_SkipsNonObjects(t *testing.T) {
	obj, err := Parse([]byte(`{"contents":[{"type":"stone"}, 3, {"type":"apple"}]}`))
	require.NoError(t, err)

	items, ok := obj.Objects("contents")
	require.True(t, ok)
	require.Len(t, items, 2)
	name, _ := items[1].TypeName()
	assert.Equal(t, "apple", name)

	_, ok = obj.Objects("missing")
	assert.False(t, ok)
}

func TestClone_IsDeep(t *testing.T) {
	original, err := Parse([]byte(`{"stats":{"mass":1},"tags":["a"]}`))
	require.NoError(t, err)

	clone := original.Clone()
	stats, _ := clone.Object("stats")
	stats["mass"] = 99.0
	clone["tags"].([]any)[0] = "b"

	originalStats, _ := original.Object("stats")
	assert.Equal(t, 1.0, originalStats["mass"])
	assert.Equal(t, "a", original["tags"].([]any)[0])
	assert.Nil(t, Object(nil).Clone())
}

func TestJSON(t *testing.T) {
	assert.Equal(t, `{"type":"stone"}`, Object{"type": "stone"}.JSON())
}
