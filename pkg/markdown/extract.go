package markdown

import (
	"regexp"
	"strings"
)

// Link 文档中的一个行内链接，按出现顺序提取，不去重。
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Heading 文档中的一个标题行。
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

var (
	linkPattern    = regexp.MustCompile(`\[(.+?)\]\((.+?)\)`)
	headingPattern = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
)

// ExtractLinks 提取文本中所有 [text](url) 形式的链接，保持出现顺序。
func ExtractLinks(input string) []Link {
	matches := linkPattern.FindAllStringSubmatch(input, -1)
	links := make([]Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, Link{Text: m[1], URL: m[2]})
	}
	return links
}

// ExtractHeadings 提取文本中所有标题行，级别由 # 的个数决定，
// 标题文本去除首尾空白。
func ExtractHeadings(input string) []Heading {
	matches := headingPattern.FindAllStringSubmatch(input, -1)
	headings := make([]Heading, 0, len(matches))
	for _, m := range matches {
		headings = append(headings, Heading{
			Level: len(m[1]),
			Text:  strings.TrimSpace(m[2]),
		})
	}
	return headings
}
