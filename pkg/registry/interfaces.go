package registry

// RegistryItem 定义注册表项的基本接口
type RegistryItem interface {
	// Name 返回注册表项的名称，作为查找键
	Name() string
}

// Registry 定义保持插入顺序的泛型注册表接口
//
// 名称不要求唯一：Find 按插入顺序返回第一个匹配项，
// 后注册的同名项会被遮蔽，但仍出现在 List 中。
type Registry[T RegistryItem] interface {
	// Register 将项目追加到注册表末尾
	Register(item T)
	// Find 根据名称查找第一个匹配的项目
	Find(name string) (T, bool)
	// Contains 检查注册表中是否存在指定名称的项目
	Contains(name string) bool
	// Count 返回指定名称的项目数量
	Count(name string) int
	// List 按插入顺序列出所有项目
	List() []T
	// Len 返回项目总数
	Len() int
	// Remove 移除第一个匹配名称的项目
	Remove(name string) bool
	// Clear 清空注册表中的所有项目
	Clear()
}
