package item

import (
	"bytes"
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"rogueblight/internal/common/errors"
	"rogueblight/internal/descriptor"
)

func newTestItem(t *testing.T, typ Type, name string) *Item {
	t.Helper()
	return New(uuid.New(), name, typ, 0, descriptor.Empty())
}

func TestInventory_AddSetsOwner(t *testing.T) {
	inv := NewInventory()
	stone := newTestItem(t, NewBasicType("stone"), "Rock")

	require.NoError(t, inv.Add(stone))
	assert.Equal(t, 1, inv.Count())
	assert.Same(t, inv, stone.Owner())

	// 重复放入同一背包不会产生重复记录
	require.NoError(t, inv.Add(stone))
	assert.Equal(t, 1, inv.Count())
}

func TestInventory_AddRejectsOwnedItem(t *testing.T) {
	a, b := NewInventory(), NewInventory()
	stone := newTestItem(t, NewBasicType("stone"), "Rock")
	require.NoError(t, a.Add(stone))

	err := b.Add(stone)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCodeItemAlreadyOwned))
	assert.Equal(t, 0, b.Count())
	assert.Same(t, a, stone.Owner())

	assert.True(t, errors.IsErrorCode(a.Add(nil), errors.ErrCodeInvalidParam))
}

func TestInventory_LookupsFollowStorageOrder(t *testing.T) {
	inv := NewInventory()
	stoneType, appleType := NewBasicType("stone"), NewBasicType("apple")

	first := newTestItem(t, stoneType, "Rock")
	apple := newTestItem(t, appleType, "Apple")
	second := newTestItem(t, stoneType, "Rock")
	for _, it := range []*Item{first, apple, second} {
		require.NoError(t, inv.Add(it))
	}

	rocks := inv.ItemsByQualifiedName("Rock")
	require.Len(t, rocks, 2)
	assert.Same(t, first, rocks[0])
	assert.Same(t, second, rocks[1])

	stones := inv.ItemsByTypeName("stone")
	require.Len(t, stones, 2)
	assert.Same(t, first, stones[0])

	assert.Empty(t, inv.ItemsByTypeName("tree"))
	assert.Empty(t, inv.ItemsByQualifiedName("rock"))

	found, ok := inv.ItemByUUID(apple.UUID())
	require.True(t, ok)
	assert.Same(t, apple, found)

	_, ok = inv.ItemByUUID(uuid.New())
	assert.False(t, ok)
}

func TestInventory_NamesSorted(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		names := rapid.SliceOf(rapid.String()).Draw(rt, "names")
		inv := NewInventory()
		typ := NewBasicType("thing")
		for _, name := range names {
			if err := inv.Add(New(uuid.New(), name, typ, 0, nil)); err != nil {
				rt.Fatalf("add: %v", err)
			}
		}

		got := inv.Names()
		if len(got) != len(names) {
			rt.Fatalf("期望 %d 个名称，实际为 %d", len(names), len(got))
		}
		if !sort.StringsAreSorted(got) {
			rt.Fatalf("名称未排序: %v", got)
		}
	})
}

func TestInventory_UUIDsSorted(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(0, 30).Draw(rt, "count")
		inv := NewInventory()
		typ := NewBasicType("thing")
		for i := 0; i < count; i++ {
			if err := inv.Add(New(uuid.New(), "x", typ, 0, nil)); err != nil {
				rt.Fatalf("add: %v", err)
			}
		}

		got := inv.UUIDs()
		if len(got) != count {
			rt.Fatalf("期望 %d 个标识，实际为 %d", count, len(got))
		}
		for i := 1; i < len(got); i++ {
			if bytes.Compare(got[i-1][:], got[i][:]) > 0 {
				rt.Fatalf("标识未排序: %v", got)
			}
			if got[i-1].String() > got[i].String() {
				rt.Fatalf("字节序与字符串顺序不一致: %v", got)
			}
		}
	})
}

func TestTransferItem(t *testing.T) {
	a, b := NewInventory(), NewInventory()
	stone := newTestItem(t, NewBasicType("stone"), "Rock")
	require.NoError(t, a.Add(stone))

	assert.True(t, TransferItem(a, b, stone))

	_, inA := a.ItemByUUID(stone.UUID())
	_, inB := b.ItemByUUID(stone.UUID())
	assert.False(t, inA)
	assert.True(t, inB)
	assert.Same(t, b, stone.Owner())
}

func TestTransferItem_NotInSource(t *testing.T) {
	a, b := NewInventory(), NewInventory()
	typ := NewBasicType("stone")
	inA := newTestItem(t, typ, "Rock")
	inB := newTestItem(t, typ, "Pebble")
	loose := newTestItem(t, typ, "Loose")
	require.NoError(t, a.Add(inA))
	require.NoError(t, b.Add(inB))

	assert.False(t, TransferItem(a, b, inB))
	assert.False(t, TransferItem(a, b, loose))
	assert.False(t, TransferItem(nil, b, inA))

	assert.Equal(t, []string{"Rock"}, a.Names())
	assert.Equal(t, []string{"Pebble"}, b.Names())
	assert.Same(t, b, inB.Owner())
	assert.Nil(t, loose.Owner())
}

func TestTransferItem_SameInventory(t *testing.T) {
	inv := NewInventory()
	typ := NewBasicType("stone")
	first := newTestItem(t, typ, "A")
	second := newTestItem(t, typ, "B")
	require.NoError(t, inv.Add(first))
	require.NoError(t, inv.Add(second))

	assert.True(t, TransferItem(inv, inv, first))
	items := inv.Items()
	require.Len(t, items, 2)
	assert.Same(t, first, items[1])
	assert.Same(t, inv, first.Owner())
}

func TestTransferItem_ConcurrentMovesOnce(t *testing.T) {
	src := NewInventory()
	stone := newTestItem(t, NewBasicType("stone"), "Rock")
	require.NoError(t, src.Add(stone))

	destinations := make([]*Inventory, 16)
	for i := range destinations {
		destinations[i] = NewInventory()
	}

	var moved atomic.Int32
	var wg sync.WaitGroup
	for _, dst := range destinations {
		wg.Add(1)
		go func(dst *Inventory) {
			defer wg.Done()
			if TransferItem(src, dst, stone) {
				moved.Add(1)
			}
		}(dst)
	}
	wg.Wait()

	assert.Equal(t, int32(1), moved.Load())
	assert.Equal(t, 0, src.Count())

	total := 0
	for _, dst := range destinations {
		total += dst.Count()
	}
	assert.Equal(t, 1, total)
	assert.True(t, stone.Owner().Contains(stone))
}

func TestInventory_AddRejectsDuplicateUUID(t *testing.T) {
	inv := NewInventory()
	typ := NewBasicType("stone")
	id := uuid.New()
	first := New(id, "Rock", typ, 0, descriptor.Empty())
	twin := New(id, "Rock", typ, 0, descriptor.Empty())

	require.NoError(t, inv.Add(first))
	err := inv.Add(twin)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCodeItemDuplicate))
	assert.Equal(t, 1, inv.Count())
	assert.Nil(t, twin.Owner())

	found, ok := inv.ItemByUUID(id)
	require.True(t, ok)
	assert.Same(t, first, found)
}

func TestTransferItem_DestinationHoldsSameUUID(t *testing.T) {
	a, b := NewInventory(), NewInventory()
	typ := NewBasicType("stone")
	id := uuid.New()
	inA := New(id, "Rock", typ, 0, descriptor.Empty())
	inB := New(id, "Rock", typ, 0, descriptor.Empty())
	require.NoError(t, a.Add(inA))
	require.NoError(t, b.Add(inB))

	assert.False(t, TransferItem(a, b, inA))
	assert.Equal(t, 1, a.Count())
	assert.Equal(t, 1, b.Count())
	assert.Same(t, a, inA.Owner())
}
