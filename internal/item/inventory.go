package item

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"rogueblight/internal/common/errors"
)

// Inventory 持有一组物品，每个物品同一时刻最多属于一个背包
type Inventory struct {
	id    uuid.UUID
	mu    sync.Mutex
	items []*Item
}

// NewInventory 创建一个空背包
func NewInventory() *Inventory {
	return &Inventory{
		id:    uuid.New(),
		items: make([]*Item, 0),
	}
}

// ID 返回背包标识
func (inv *Inventory) ID() uuid.UUID {
	return inv.id
}

// Count 返回背包中的物品数量
func (inv *Inventory) Count() int {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	return len(inv.items)
}

// Items 按存储顺序返回物品列表的副本
func (inv *Inventory) Items() []*Item {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	result := make([]*Item, len(inv.items))
	copy(result, inv.items)
	return result
}

// Names 返回排序后的物品名称列表
func (inv *Inventory) Names() []string {
	inv.mu.Lock()
	result := make([]string, 0, len(inv.items))
	for _, it := range inv.items {
		result = append(result, it.QualifiedName())
	}
	inv.mu.Unlock()

	sort.Strings(result)
	return result
}

// UUIDs 返回排序后的物品标识列表，按字节序排序（与规范字符串形式的顺序一致）
func (inv *Inventory) UUIDs() []uuid.UUID {
	inv.mu.Lock()
	result := make([]uuid.UUID, 0, len(inv.items))
	for _, it := range inv.items {
		result = append(result, it.UUID())
	}
	inv.mu.Unlock()

	sort.Slice(result, func(a, b int) bool {
		return bytes.Compare(result[a][:], result[b][:]) < 0
	})
	return result
}

// ItemsByQualifiedName 按存储顺序返回名称匹配的物品
func (inv *Inventory) ItemsByQualifiedName(name string) []*Item {
	return inv.filter(func(it *Item) bool {
		return it.QualifiedName() == name
	})
}

// ItemsByTypeName 按存储顺序返回类型名称匹配的物品
func (inv *Inventory) ItemsByTypeName(name string) []*Item {
	return inv.filter(func(it *Item) bool {
		return it.TypeName() == name
	})
}

func (inv *Inventory) filter(match func(*Item) bool) []*Item {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	result := make([]*Item, 0)
	for _, it := range inv.items {
		if match(it) {
			result = append(result, it)
		}
	}
	return result
}

// ItemByUUID 返回标识匹配的物品
func (inv *Inventory) ItemByUUID(id uuid.UUID) (*Item, bool) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	for _, it := range inv.items {
		if it.UUID() == id {
			return it, true
		}
	}
	return nil, false
}

// Contains 检查物品是否在背包中
func (inv *Inventory) Contains(it *Item) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	return inv.indexLocked(it) >= 0
}

// Add 将一个无归属的物品放入背包并设置归属
//
// 已属于其他背包的物品必须通过 TransferItem 移动。
// 背包中已有相同 UUID 的其他物品时拒绝放入。
func (inv *Inventory) Add(it *Item) error {
	if it == nil {
		return errors.NewError(errors.ErrCodeInvalidParam, "物品不能为空")
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if it.owner.Load() == inv {
		return nil
	}
	if inv.hasUUIDLocked(it) {
		return errors.NewErrorWithDetails(errors.ErrCodeItemDuplicate, "背包中已有相同UUID的物品",
			fmt.Sprintf("物品: %s", it.UUID()))
	}
	if !it.owner.CompareAndSwap(nil, inv) {
		return errors.NewErrorWithDetails(errors.ErrCodeItemAlreadyOwned, "物品已属于其他背包",
			fmt.Sprintf("物品: %s", it.UUID()))
	}
	inv.items = append(inv.items, it)
	return nil
}

func (inv *Inventory) indexLocked(it *Item) int {
	for i, candidate := range inv.items {
		if candidate == it {
			return i
		}
	}
	return -1
}

// hasUUIDLocked 检查背包中是否有与 it 同 UUID 的其他物品
func (inv *Inventory) hasUUIDLocked(it *Item) bool {
	for _, candidate := range inv.items {
		if candidate != it && candidate.UUID() == it.UUID() {
			return true
		}
	}
	return false
}

func (inv *Inventory) removeLocked(it *Item) bool {
	idx := inv.indexLocked(it)
	if idx < 0 {
		return false
	}
	inv.items = append(inv.items[:idx], inv.items[idx+1:]...)
	return true
}

// TransferItem 将物品从 source 移动到 destination
//
// 物品不在 source 中，或 destination 已有相同 UUID 的物品时返回 false，两个背包都不会被修改。
// 两个背包按标识顺序加锁，物品在任何时刻都只出现在其中一个背包里。
func TransferItem(source, destination *Inventory, it *Item) bool {
	if source == nil || destination == nil || it == nil {
		return false
	}

	if source == destination {
		source.mu.Lock()
		defer source.mu.Unlock()

		if !source.removeLocked(it) {
			return false
		}
		source.items = append(source.items, it)
		return true
	}

	first, second := source, destination
	if bytes.Compare(first.id[:], second.id[:]) > 0 {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if destination.hasUUIDLocked(it) || !source.removeLocked(it) {
		return false
	}
	destination.items = append(destination.items, it)
	it.owner.Store(destination)
	return true
}
