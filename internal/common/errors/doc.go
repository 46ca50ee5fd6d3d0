// Package errors 提供统一的错误处理系统
//
// 这个包实现了一个简化的错误处理框架，包括：
//   - 统一的错误代码定义
//   - 基本的错误创建方法
//   - 简化的错误处理器
//
// 基本用法：
//
//  1. 创建错误：
//     err := errors.NewError(errors.ErrCodeConfigNotFound, "配置文件未找到")
//     errWithDetails := errors.NewErrorWithDetails(errors.ErrCodeTypeNotFound, "类型未注册", "类型名称: stone")
//     wrappedErr := errors.WrapError(errors.ErrCodeConfigParseFailed, "类型配置解析失败", originalErr)
//
//  2. 使用预定义错误创建函数：
//     configErr := errors.NewConfigError("数据目录未配置")
//     descErr := errors.NewDescriptorError("缺少 type 字段")
//     typeErr := errors.NewTypeNotFoundError("tree")
//     pluginErr := errors.NewPluginNotFoundError("flora")
//
//  3. 处理错误：
//     errors.HandleError(err)
//     userMessage := errors.GetUserFriendlyMessage(err)
//
//  4. 检查错误类型（支持 fmt.Errorf 的 %w 包装链）：
//     if errors.IsErrorCode(err, errors.ErrCodeItemAlreadyOwned) {
//     // 物品已有归属
//     }
//
// 注册表本身不会把这些错误返回给调用方，而是记录日志并返回缺省结果；
// 这里的错误用于跨包传递失败原因（配置加载、描述符解析、背包操作、插件查找）。
package errors
