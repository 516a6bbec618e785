package markdown

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// stripRules 纯文本化的有序规则表。
// 顺序与 HTML 渲染不同：这里围栏代码块整体移除（包括正文），
// 图片整体移除，链接只保留可见文本。
var stripRules = []Rule{
	{Name: "strip-heading", re: regexp.MustCompile(`(?m)^#{1,6}\s+`), repl: ""},
	{Name: "strip-emphasis", re: regexp.MustCompile(`\*{1,3}(.+?)\*{1,3}`), repl: "$1"},
	// 图片先于链接移除，否则链接规则会把 ![alt](url) 的后半段
	// 吃掉并留下一个孤立的 '!'
	{Name: "strip-image", re: regexp.MustCompile(`!\[.+?\]\(.+?\)`), repl: ""},
	{Name: "strip-link", re: regexp.MustCompile(`\[(.+?)\]\(.+?\)`), repl: "$1"},
	{Name: "strip-code-block", re: regexp.MustCompile("(?s)```.*?```"), repl: ""},
	{Name: "strip-inline-code", re: regexp.MustCompile("`(.+?)`"), repl: "$1"},
	{Name: "strip-horizontal-rule", re: regexp.MustCompile(`(?m)^---+$`), repl: ""},
	{Name: "strip-unordered-marker", re: regexp.MustCompile(`(?m)^[\*\-]\s+`), repl: ""},
	{Name: "strip-ordered-marker", re: regexp.MustCompile(`(?m)^\d+\.\s+`), repl: ""},
}

// PlainText 去除 Markdown 语法，返回纯文本。
// 结果去除首尾空白；对已是纯文本的输入是幂等的。
func PlainText(input string) string {
	out := input
	for _, rule := range stripRules {
		out = rule.Apply(out)
	}
	return strings.TrimSpace(out)
}

// Stats 文本统计结果。
// Words/Characters/CharactersNoSpaces 基于纯文本化结果，
// Lines 基于未转换的原始输入。
type Stats struct {
	Words              int `json:"words"`
	Characters         int `json:"characters"`
	CharactersNoSpaces int `json:"characters_no_spaces"`
	Lines              int `json:"lines"`
}

// CountStats 统计词数、字符数（含空白）、去空格字符数和行数。
// 词数和字符数基于纯文本化结果，行数始终基于原始输入。
// 字符按 Unicode 码点计数；去空格计数只排除空格和换行符。
func CountStats(input string) Stats {
	return countStats(PlainText(input), input)
}

// CountRawStats 与 CountStats 相同，但词数和字符数直接在原文上统计，
// 不先去除 Markdown 语法。
func CountRawStats(input string) Stats {
	return countStats(input, input)
}

func countStats(text, original string) Stats {
	noSpaces := strings.ReplaceAll(text, " ", "")
	noSpaces = strings.ReplaceAll(noSpaces, "\n", "")

	return Stats{
		Words:              len(strings.Fields(text)),
		Characters:         utf8.RuneCountInString(text),
		CharactersNoSpaces: utf8.RuneCountInString(noSpaces),
		Lines:              strings.Count(original, "\n") + 1,
	}
}
