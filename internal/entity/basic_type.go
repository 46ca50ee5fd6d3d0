package entity

import (
	"sync"

	"rogueblight/internal/descriptor"
	"rogueblight/internal/item"
)

// 描述符与类型配置中识别的字段
const (
	FieldMass      = "mass"
	FieldMaxHealth = "max_health"
)

// BasicType 是数据驱动的实体类型
//
// 质量依次取描述符、类型配置中的 mass；类型配置包含 max_health 时实体带有生命组件。
type BasicType struct {
	name string

	mu     sync.RWMutex
	config descriptor.Object
}

// NewBasicType 创建一个数据驱动的实体类型
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

// Create 创建实体并放入世界
func (t *BasicType) Create(desc descriptor.Object, world World) (*Entity, error) {
	return CreateEntity(t, desc, world, t.Behavior(desc))
}

// Behavior 根据描述符和类型配置构建默认行为
func (t *BasicType) Behavior(desc descriptor.Object) *StaticBehavior {
	cfg := t.Config()
	behavior := &StaticBehavior{}
	if mass, ok := desc.Float(FieldMass); ok {
		behavior.BaseMass = mass
	} else if mass, ok := cfg.Float(FieldMass); ok {
		behavior.BaseMass = mass
	}
	if maxHealth, ok := cfg.Float(FieldMaxHealth); ok {
		behavior.Vitals = &Vitals{Current: maxHealth, Max: maxHealth}
	}
	return behavior
}

// CreateEntity 创建实体并放入世界，typ 为实体记录的类型
func CreateEntity(typ Type, desc descriptor.Object, world World, behavior Behavior) (*Entity, error) {
	id, err := item.ParseID(desc)
	if err != nil {
		return nil, err
	}
	e := New(id, typ, world, behavior, desc.Clone())
	if world != nil {
		world.AddEntity(e)
	}
	return e, nil
}
