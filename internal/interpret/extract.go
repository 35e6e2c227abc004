// Package interpret 把推理引擎的自由文本回复解析成结构化结果，容忍 markdown 代码块和前后说明文字。
package interpret

// ExtractObject 找出文本中第一个完整的 JSON 对象：从第一个 '{' 开始跟踪嵌套深度，
// 在与之匹配的 '}' 处停止。字符串字面量内的括号与转义字符不计入深度。
// 没有 '{' 或括号不闭合时 ok=false。
func ExtractObject(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		if start < 0 {
			if c == '{' {
				start = i
				depth = 1
			}
			continue
		}
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
