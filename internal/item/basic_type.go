package item

import (
	"sync"

	"github.com/google/uuid"

	"rogueblight/internal/common/errors"
	"rogueblight/internal/descriptor"
)

// 描述符与类型配置中识别的字段
const (
	FieldUUID        = "uuid"
	FieldName        = "name"
	FieldDisplayName = "display_name"
	FieldMass        = "mass"
)

// BasicType 是数据驱动的物品类型
//
// 物品名称依次取描述符的 name、类型配置的 display_name、类型名称；
// 质量依次取描述符的 mass、类型配置的 mass。
type BasicType struct {
	name string

	mu     sync.RWMutex
	config descriptor.Object
}

// NewBasicType 创建一个数据驱动的物品类型
func NewBasicType(name string) *BasicType {
	return &BasicType{name: name}
}

// Name 返回类型名称
func (t *BasicType) Name() string {
	return t.name
}

// SetConfig 注入类型配置
func (t *BasicType) SetConfig(cfg descriptor.Object) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.config = cfg
}

// Config 返回类型配置，未配置时返回空对象
func (t *BasicType) Config() descriptor.Object {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.config == nil {
		return descriptor.Empty()
	}
	return t.config
}

// Create 根据描述符创建物品，inv 不为空时放入该背包
func (t *BasicType) Create(desc descriptor.Object, inv *Inventory) (*Item, error) {
	id, err := ParseID(desc)
	if err != nil {
		return nil, err
	}

	cfg := t.Config()
	it := New(id, t.qualifiedName(desc, cfg), t, t.mass(desc, cfg), desc.Clone())
	if inv != nil {
		if err := inv.Add(it); err != nil {
			return nil, err
		}
	}
	return it, nil
}

func (t *BasicType) qualifiedName(desc, cfg descriptor.Object) string {
	if name, ok := desc.String(FieldName); ok && name != "" {
		return name
	}
	if name, ok := cfg.String(FieldDisplayName); ok && name != "" {
		return name
	}
	return t.name
}

func (t *BasicType) mass(desc, cfg descriptor.Object) float64 {
	if mass, ok := desc.Float(FieldMass); ok {
		return mass
	}
	mass, _ := cfg.Float(FieldMass)
	return mass
}

// ParseID 读取描述符中的 uuid 字段，缺失时生成新的标识
func ParseID(desc descriptor.Object) (uuid.UUID, error) {
	raw, ok := desc.String(FieldUUID)
	if !ok || raw == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.WrapDescriptorError("uuid 字段无效", err)
	}
	return id, nil
}
