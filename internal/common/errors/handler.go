package errors

// DefaultErrorHandler 默认错误处理器实现
type DefaultErrorHandler struct {
	// Report 接收处理后的错误，为空时忽略
	Report func(appErr *AppError)
}

// HandleError 处理错误
func (h *DefaultErrorHandler) HandleError(err error) {
	if err == nil {
		return
	}

	appErr, ok := asAppError(err)
	if !ok {
		// 如果不是AppError，包装一下
		appErr = WrapError(ErrCodeInternalErr, "未知错误", err)
	}

	if h.Report != nil {
		h.Report(appErr)
	}
}

// GetUserFriendlyMessage 获取用户友好的错误消息
func (h *DefaultErrorHandler) GetUserFriendlyMessage(err error) string {
	if err == nil {
		return ""
	}

	appErr, ok := asAppError(err)
	if !ok {
		return "发生未知错误"
	}

	switch appErr.Code {
	// 系统错误
	case ErrCodeSystemError, ErrCodeInternalErr:
		return "系统错误，请联系技术支持"
	case ErrCodeInitializationFailed:
		return "引擎初始化失败，请检查配置"
	case ErrCodeNotFound:
		return "请求的资源不存在"
	case ErrCodeInvalidParam:
		return "参数无效，请检查输入"

	// 配置错误
	case ErrCodeConfigNotFound:
		return "配置文件未找到，请检查配置文件路径"
	case ErrCodeConfigInvalid, ErrCodeConfigLoadFailed, ErrCodeConfigParseFailed:
		return "配置文件错误，请检查配置文件"

	// 类型注册错误
	case ErrCodeTypeNotFound:
		return "类型未注册，请检查类型名称或插件配置"
	case ErrCodeDescriptorInvalid:
		return "描述符无效，必须是包含 type 字段的 JSON 对象"
	case ErrCodeCreationFailed:
		return "实例创建失败，请检查描述符内容"
	case ErrCodeSubsystemExists, ErrCodeSubsystemNotFound:
		return "子系统配置错误"

	// 物品错误
	case ErrCodeItemNotFound:
		return "物品不存在"
	case ErrCodeItemAlreadyOwned:
		return "物品已属于其他背包，请使用转移操作"
	case ErrCodeItemDuplicate:
		return "背包中已有相同UUID的物品"

	// 插件错误
	case ErrCodePluginNotFound:
		return "插件未找到，请检查插件名称"
	case ErrCodePluginInvalid:
		return "插件无效"

	case ErrCodeMCPServeFailed:
		return "MCP服务运行失败"

	default:
		return appErr.Message
	}
}

// 默认错误处理器实例
var DefaultHandler = &DefaultErrorHandler{}

// HandleError 处理错误
func HandleError(err error) {
	DefaultHandler.HandleError(err)
}

// GetUserFriendlyMessage 获取用户友好的错误消息
func GetUserFriendlyMessage(err error) string {
	return DefaultHandler.GetUserFriendlyMessage(err)
}
