package errors

import (
	stderrors "errors"
	"fmt"
	"runtime"
	"strings"
)

// 错误代码常量
const (
	// 系统级错误
	ErrCodeSystemError          = "SYSTEM_ERROR"          // 系统错误
	ErrCodeInternalErr          = "INTERNAL_ERROR"        // 内部错误
	ErrCodeInitializationFailed = "INITIALIZATION_FAILED" // 初始化失败
	ErrCodeNotFound             = "NOT_FOUND"             // 资源未找到
	ErrCodeInvalidParam         = "INVALID_PARAM"         // 无效参数

	// 配置错误
	ErrCodeConfigNotFound    = "CONFIG_NOT_FOUND"    // 配置文件未找到
	ErrCodeConfigInvalid     = "CONFIG_INVALID"      // 配置文件无效
	ErrCodeConfigLoadFailed  = "CONFIG_LOAD_FAILED"  // 配置加载失败
	ErrCodeConfigParseFailed = "CONFIG_PARSE_FAILED" // 配置解析失败

	// 类型注册错误
	ErrCodeTypeNotFound      = "TYPE_NOT_FOUND"      // 类型未注册
	ErrCodeDescriptorInvalid = "DESCRIPTOR_INVALID"  // 描述符无效
	ErrCodeCreationFailed    = "CREATION_FAILED"     // 实例创建失败
	ErrCodeSubsystemExists   = "SUBSYSTEM_EXISTS"    // 子系统已存在
	ErrCodeSubsystemNotFound = "SUBSYSTEM_NOT_FOUND" // 子系统未找到

	// 物品与背包错误
	ErrCodeItemNotFound     = "ITEM_NOT_FOUND"     // 物品未找到
	ErrCodeItemAlreadyOwned = "ITEM_ALREADY_OWNED" // 物品已属于其他背包
	ErrCodeItemDuplicate    = "ITEM_DUPLICATE"     // 背包中已有相同标识的物品

	// 插件错误
	ErrCodePluginNotFound = "PLUGIN_NOT_FOUND" // 插件未找到
	ErrCodePluginInvalid  = "PLUGIN_INVALID"   // 插件无效

	// MCP错误
	ErrCodeMCPServeFailed = "MCP_SERVE_FAILED" // MCP服务运行失败
)

// AppError 应用错误结构
type AppError struct {
	Code    string `json:"code"`              // 错误代码
	Message string `json:"message"`           // 错误消息
	Details string `json:"details,omitempty"` // 错误详情
	Cause   error  `json:"-"`                 // 原始错误
	Stack   string `json:"stack,omitempty"`   // 错误堆栈
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回原始错误
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is 实现错误比较接口
func (e *AppError) Is(target error) bool {
	if other, ok := target.(*AppError); ok {
		return e.Code == other.Code
	}
	return false
}

// WithDetails 添加错误详情
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// WithStack 添加堆栈信息
func (e *AppError) WithStack() *AppError {
	e.Stack = getStackTrace(3) // 跳过3层调用栈
	return e
}

// getStackTrace 获取调用堆栈
func getStackTrace(skip int) string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(skip, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var stack strings.Builder
	for {
		frame, more := frames.Next()
		// 跳过runtime相关的调用栈
		if frame.File != "" && !strings.Contains(frame.File, "runtime/") {
			stack.WriteString(fmt.Sprintf("%s:%d %s\n", frame.File, frame.Line, frame.Function))
		}
		if !more {
			break
		}
	}
	return stack.String()
}

// asAppError 沿错误链查找 AppError
func asAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorCode 检查错误是否为指定类型
func IsErrorCode(err error, code string) bool {
	if appErr, ok := asAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// GetErrorCode 获取错误代码
func GetErrorCode(err error) string {
	if appErr, ok := asAppError(err); ok {
		return appErr.Code
	}
	return ErrCodeInternalErr
}

// GetErrorDetails 获取错误详情
func GetErrorDetails(err error) string {
	if appErr, ok := asAppError(err); ok {
		return appErr.Details
	}
	return ""
}
