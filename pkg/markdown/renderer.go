// Package markdown 实现一组基于正则的 Markdown 文本工具：
// 固定顺序规则表驱动的 HTML 渲染、链接/标题提取和纯文本化统计。
// 所有操作都是纯函数，不依赖共享状态，可以并发调用。
//
// 渲染器是刻意的简单实现，不追求 CommonMark 兼容，
// 也不解析嵌套结构。
package markdown

import "strings"

// Render 将 Markdown 文本转换为 HTML 文本。
// 依次应用固定的有序规则表，每条规则作用于上一条规则的输出。
// 对任何输入都返回结果，不存在错误条件；空输入产生空输出。
func Render(input string) string {
	out := input
	for _, rule := range renderRules {
		out = rule.Apply(out)
	}
	return out
}

// wrapParagraphs 段落包裹：按行切分，去除首尾空白后
// 非空且不以 '<' 开头的行包进 <p> 元素，其余行原样（已去空白）保留。
func wrapParagraphs(text string) string {
	lines := strings.Split(text, "\n")
	processed := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "<") {
			processed = append(processed, "<p>"+line+"</p>")
		} else {
			processed = append(processed, line)
		}
	}
	return strings.Join(processed, "\n")
}
