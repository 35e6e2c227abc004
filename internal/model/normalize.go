package model

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cast"
)

// NormalizeArrayField 把上游松散类型的数组字段统一成有序序列。
// 已是序列时原样返回；文本时按 JSON 严格解码，失败返回空序列；其它类型返回空序列。
// 任何输入都不会 panic，返回值永不为 nil。
func NormalizeArrayField[T any](value any) []T {
	switch v := value.(type) {
	case []T:
		if v == nil {
			return []T{}
		}
		return v
	case json.RawMessage:
		return decodeArray[T](v, 1)
	case []byte:
		return decodeArray[T](v, 1)
	case string:
		return decodeArray[T]([]byte(v), 1)
	case []any:
		// 结构化序列但元素类型不一致：经 JSON 转一次
		b, err := json.Marshal(v)
		if err != nil {
			return []T{}
		}
		return decodeArray[T](b, 0)
	}
	return []T{}
}

// decodeArray 解码 JSON 数组；depth>0 时允许一层“数组被编码成字符串”的情况
func decodeArray[T any](data []byte, depth int) []T {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []T{}
	}
	switch data[0] {
	case '[':
		var out []T
		if err := json.Unmarshal(data, &out); err != nil || out == nil {
			return []T{}
		}
		return out
	case '"':
		if depth <= 0 {
			return []T{}
		}
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return []T{}
		}
		return decodeArray[T]([]byte(inner), depth-1)
	}
	return []T{}
}

// normalizeTextList 数组字段 → 字符串序列（数字元素转成十进制文本）
func normalizeTextList(raw json.RawMessage) []string {
	items := NormalizeArrayField[any](raw)
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it == nil {
			out = append(out, "")
			continue
		}
		out = append(out, cast.ToString(it))
	}
	return out
}

// looseNumber 数字或数字字符串 → *float64；缺失、空串或无法解析时返回 nil
func looseNumber(raw json.RawMessage) *float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return nil
	}
	if s, ok := v.(string); ok && s == "" {
		return nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil
	}
	return &f
}
