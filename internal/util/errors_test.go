package util

import (
	"errors"
	"testing"
)

func TestNewError(t *testing.T) {
	err := NewError(ErrCodeInvalidParam, "测试错误")

	if err.Code != ErrCodeInvalidParam {
		t.Errorf("期望错误代码为 '%s'，实际为 '%s'", ErrCodeInvalidParam, err.Code)
	}

	if err.Message != "测试错误" {
		t.Errorf("期望错误消息为 '测试错误'，实际为 '%s'", err.Message)
	}
}

func TestWrapError(t *testing.T) {
	originalErr := errors.New("原始错误")
	wrappedErr := WrapError(ErrCodeConfigLoadFailed, "类型配置加载失败", originalErr)

	if wrappedErr.Code != ErrCodeConfigLoadFailed {
		t.Errorf("期望错误代码为 '%s'，实际为 '%s'", ErrCodeConfigLoadFailed, wrappedErr.Code)
	}

	if wrappedErr.Cause != originalErr {
		t.Error("期望包装错误包含原始错误")
	}

	if wrappedErr.Unwrap() != originalErr {
		t.Error("期望Unwrap()返回原始错误")
	}
}

func TestIsErrorCode(t *testing.T) {
	appErr := NewError(ErrCodeTypeNotFound, "类型未注册")
	normalErr := errors.New("普通错误")

	if !IsErrorCode(appErr, ErrCodeTypeNotFound) {
		t.Error("期望IsErrorCode返回true")
	}

	if IsErrorCode(normalErr, ErrCodeTypeNotFound) {
		t.Error("期望IsErrorCode对普通错误返回false")
	}

	if IsErrorCode(appErr, ErrCodeItemNotFound) {
		t.Error("期望IsErrorCode对不匹配的错误代码返回false")
	}
}

func TestGetUserFriendlyMessage(t *testing.T) {
	testCases := []struct {
		err      error
		expected string
	}{
		{
			NewError(ErrCodeConfigNotFound, "配置文件未找到"),
			"配置文件未找到，请检查配置文件路径",
		},
		{
			NewError(ErrCodeDescriptorInvalid, "缺少 type 字段"),
			"描述符无效，必须是包含 type 字段的 JSON 对象",
		},
		{
			errors.New("普通错误"),
			"发生未知错误",
		},
	}

	for _, tc := range testCases {
		result := GetUserFriendlyMessage(tc.err)
		if result != tc.expected {
			t.Errorf("期望友好消息为 '%s'，实际为 '%s'", tc.expected, result)
		}
	}
}
