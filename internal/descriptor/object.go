// Package descriptor 定义类型配置与实例化描述符共用的 JSON 对象。
package descriptor

import (
	"encoding/json"
	"fmt"
	"io"

	"rogueblight/internal/common/errors"
)

// TypeField 描述符中标识类型名称的字段
const TypeField = "type"

// Object 是一个 JSON 对象
type Object map[string]any

// Empty 返回一个空对象
func Empty() Object {
	return Object{}
}

// Parse 将字节解析为 JSON 对象，顶层必须是对象
func Parse(data []byte) (Object, error) {
	var obj Object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, errors.WrapDescriptorError("JSON 解析失败", err)
	}
	if obj == nil {
		return nil, errors.NewDescriptorError("顶层必须是 JSON 对象")
	}
	return obj, nil
}

// Decode 从读取器中解析一个 JSON 对象
func Decode(r io.Reader) (Object, error) {
	var obj Object
	if err := json.NewDecoder(r).Decode(&obj); err != nil {
		return nil, errors.WrapDescriptorError("JSON 解析失败", err)
	}
	if obj == nil {
		return nil, errors.NewDescriptorError("顶层必须是 JSON 对象")
	}
	return obj, nil
}

// FromMap 将通用 map 转换为对象，用于来自其他解码器的数据
func FromMap(m map[string]any) Object {
	if m == nil {
		return nil
	}
	return Object(m)
}

// Has 检查字段是否存在
func (o Object) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// TypeName 返回 type 字段，字段缺失或不是字符串时返回 false
func (o Object) TypeName() (string, bool) {
	return o.String(TypeField)
}

// String 读取字符串字段
func (o Object) String(key string) (string, bool) {
	v, ok := o[key].(string)
	return v, ok
}

// Float 读取数值字段
func (o Object) Float(key string) (float64, bool) {
	switch v := o[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// Object 读取嵌套对象字段
func (o Object) Object(key string) (Object, bool) {
	switch v := o[key].(type) {
	case map[string]any:
		return Object(v), true
	case Object:
		return v, true
	default:
		return nil, false
	}
}

// Objects 读取对象数组字段，数组中的非对象元素会被跳过
func (o Object) Objects(key string) ([]Object, bool) {
	raw, ok := o[key].([]any)
	if !ok {
		return nil, false
	}
	result := make([]Object, 0, len(raw))
	for _, elem := range raw {
		switch v := elem.(type) {
		case map[string]any:
			result = append(result, Object(v))
		case Object:
			result = append(result, v)
		}
	}
	return result, true
}

// Clone 深拷贝对象
func (o Object) Clone() Object {
	if o == nil {
		return nil
	}
	return cloneValue(map[string]any(o)).(map[string]any)
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = cloneValue(elem)
		}
		return out
	case Object:
		return Object(cloneValue(map[string]any(val)).(map[string]any))
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = cloneValue(elem)
		}
		return out
	default:
		return val
	}
}

// JSON 将对象编码为紧凑的 JSON 字符串
func (o Object) JSON() string {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Sprintf("%v", map[string]any(o))
	}
	return string(data)
}
