// Package registry 提供保持插入顺序的泛型注册表
//
// 这个包实现了一个类型安全的泛型注册表系统，支持：
//   - 按插入顺序追加、列表、移除和清空
//   - 按名称线性查找，第一个匹配项优先
//   - 线程安全的并发访问
//
// 基本用法：
//
//	reg := registry.NewRegistry[entity.Type]()
//	reg.Register(stoneType)
//	if t, ok := reg.Find("stone"); ok {
//		// 使用类型
//	}
//	reg.Clear()
package registry
