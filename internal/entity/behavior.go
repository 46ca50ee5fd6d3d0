package entity

import (
	"rogueblight/internal/item"
)

// Vitals 简单的生命组件
type Vitals struct {
	Current float64
	Max     float64
}

func (v *Vitals) Health() float64    { return v.Current }
func (v *Vitals) MaxHealth() float64 { return v.Max }

// StaticBehavior 固定质量、可选背包和生命组件的行为
type StaticBehavior struct {
	BaseMass  float64
	Inventory *item.Inventory
	Vitals    *Vitals
}

// QueryMass 返回自身质量加上背包中所有物品的质量
func (b *StaticBehavior) QueryMass(_ *Entity) float64 {
	mass := b.BaseMass
	if b.Inventory != nil {
		for _, it := range b.Inventory.Items() {
			mass += it.Mass()
		}
	}
	return mass
}

func (b *StaticBehavior) InventoryComponent() (*item.Inventory, bool) {
	return b.Inventory, b.Inventory != nil
}

func (b *StaticBehavior) LivingComponent() (Living, bool) {
	if b.Vitals == nil {
		return nil, false
	}
	return b.Vitals, true
}
