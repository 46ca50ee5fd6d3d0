package errors

// NewError 创建新的错误
func NewError(code, message string) *AppError {
	err := &AppError{
		Code:    code,
		Message: message,
	}
	return err.WithStack()
}

// NewErrorWithDetails 创建带详情的错误
func NewErrorWithDetails(code, message, details string) *AppError {
	err := &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
	return err.WithStack()
}

// WrapError 包装现有错误
func WrapError(code, message string, cause error) *AppError {
	details := ""
	if cause != nil {
		details = cause.Error()
	}

	err := &AppError{
		Code:    code,
		Message: message,
		Details: details,
		Cause:   cause,
	}
	return err.WithStack()
}

// WrapErrorWithDetails 包装现有错误并添加详情
func WrapErrorWithDetails(code, message string, cause error, details string) *AppError {
	err := &AppError{
		Code:    code,
		Message: message,
		Details: details,
		Cause:   cause,
	}
	return err.WithStack()
}

// 预定义错误创建函数

// 配置错误
func NewConfigError(message string) *AppError {
	return NewError(ErrCodeConfigInvalid, message)
}

func WrapConfigError(message string, cause error) *AppError {
	return WrapError(ErrCodeConfigLoadFailed, message, cause)
}

// 描述符错误
func NewDescriptorError(message string) *AppError {
	return NewError(ErrCodeDescriptorInvalid, message)
}

func WrapDescriptorError(message string, cause error) *AppError {
	return WrapError(ErrCodeDescriptorInvalid, message, cause)
}

// 类型错误
func NewTypeNotFoundError(typeName string) *AppError {
	return NewErrorWithDetails(ErrCodeTypeNotFound, "类型未注册", "类型名称: "+typeName)
}

func WrapCreationError(typeName string, cause error) *AppError {
	return WrapErrorWithDetails(ErrCodeCreationFailed, "实例创建失败", cause, "类型名称: "+typeName)
}

// 物品错误
func NewItemNotFoundError(details string) *AppError {
	return NewErrorWithDetails(ErrCodeItemNotFound, "物品未找到", details)
}

// 插件错误
func NewPluginNotFoundError(pluginName string) *AppError {
	return NewErrorWithDetails(ErrCodePluginNotFound, "插件未找到", "插件名称: "+pluginName)
}
