package util

import (
	"rogueblight/internal/common/errors"
)

// 错误代码常量 - 指向通用错误处理系统中的错误代码
const (
	ErrCodeConfigNotFound       = errors.ErrCodeConfigNotFound       // 配置文件未找到
	ErrCodeConfigInvalid        = errors.ErrCodeConfigInvalid        // 配置文件无效
	ErrCodeConfigLoadFailed     = errors.ErrCodeConfigLoadFailed     // 配置加载失败
	ErrCodeConfigParseFailed    = errors.ErrCodeConfigParseFailed    // 配置解析失败
	ErrCodeInvalidParam         = errors.ErrCodeInvalidParam         // 无效参数
	ErrCodeInternalErr          = errors.ErrCodeInternalErr          // 内部错误
	ErrCodeNotFound             = errors.ErrCodeNotFound             // 资源未找到
	ErrCodeInitializationFailed = errors.ErrCodeInitializationFailed // 初始化失败

	ErrCodeTypeNotFound      = errors.ErrCodeTypeNotFound      // 类型未注册
	ErrCodeDescriptorInvalid = errors.ErrCodeDescriptorInvalid // 描述符无效
	ErrCodeCreationFailed    = errors.ErrCodeCreationFailed    // 实例创建失败
	ErrCodeItemNotFound      = errors.ErrCodeItemNotFound      // 物品未找到
	ErrCodeItemAlreadyOwned  = errors.ErrCodeItemAlreadyOwned  // 物品已属于其他背包
	ErrCodeItemDuplicate     = errors.ErrCodeItemDuplicate     // 背包中已有相同标识的物品
	ErrCodePluginNotFound    = errors.ErrCodePluginNotFound    // 插件未找到
)

// AppError 应用错误结构 - 使用通用错误处理系统中的AppError
type AppError = errors.AppError

// 创建新的应用错误
func NewError(code, message string) *AppError {
	return errors.NewError(code, message)
}

// 创建带详情的应用错误
func NewErrorWithDetail(code, message, details string) *AppError {
	return errors.NewErrorWithDetails(code, message, details)
}

// 包装现有错误
func WrapError(code, message string, cause error) *AppError {
	return errors.WrapError(code, message, cause)
}

// 检查错误是否为指定类型
func IsErrorCode(err error, code string) bool {
	return errors.IsErrorCode(err, code)
}

// 获取错误代码
func GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}

// 获取用户友好的错误消息
func GetUserFriendlyMessage(err error) string {
	return errors.GetUserFriendlyMessage(err)
}
