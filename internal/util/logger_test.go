package util

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogLevelWarn, "text", &buf, false)

	logger.Info("不应输出")
	logger.Warnw("未找到类型配置", map[string]interface{}{"type_name": "stone"})

	out := buf.String()
	if strings.Contains(out, "不应输出") {
		t.Errorf("低于日志级别的消息不应输出: %s", out)
	}
	if !strings.Contains(out, "WARN 未找到类型配置 | type_name=stone") {
		t.Errorf("警告日志格式不符合预期: %s", out)
	}
}

func TestLogger_TextFieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogLevelDebug, "text", &buf, false)

	logger.Infow("注册实体类型", map[string]interface{}{"b": 2, "a": 1, "c": 3})

	if !strings.Contains(buf.String(), "| a=1 b=2 c=3") {
		t.Errorf("字段应按键排序输出: %s", buf.String())
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogLevelDebug, "json", &buf, false)

	logger.Errorw(`无法打开 "types.json"`, map[string]interface{}{"path": "/data"})

	var record map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record); err != nil {
		t.Fatalf("JSON日志无法解析: %v (%s)", err, buf.String())
	}
	if record["level"] != "ERROR" {
		t.Errorf("期望日志级别为 ERROR，实际为 %v", record["level"])
	}
	if record["message"] != `无法打开 "types.json"` {
		t.Errorf("消息未正确转义: %v", record["message"])
	}
	if record["path"] != "/data" {
		t.Errorf("期望字段 path=/data，实际为 %v", record["path"])
	}
}

func TestLogger_LogErrorIncludesCode(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogLevelDebug, "text", &buf, false)

	logger.LogError(NewErrorWithDetail(ErrCodeTypeNotFound, "类型未注册", "类型名称: tree"), "spawn")

	out := buf.String()
	if !strings.Contains(out, "error_code=TYPE_NOT_FOUND") {
		t.Errorf("期望输出包含错误代码: %s", out)
	}
	if !strings.Contains(out, "context=spawn") {
		t.Errorf("期望输出包含上下文: %s", out)
	}
}

func TestParseLogLevel(t *testing.T) {
	testCases := map[string]LogLevel{
		"debug":   LogLevelDebug,
		"INFO":    LogLevelInfo,
		"warning": LogLevelWarn,
		"error":   LogLevelError,
		"unknown": LogLevelInfo,
	}
	for input, expected := range testCases {
		if got := ParseLogLevel(input); got != expected {
			t.Errorf("ParseLogLevel(%q) = %v，期望 %v", input, got, expected)
		}
	}
}
