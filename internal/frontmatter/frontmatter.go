// Package frontmatter 提取 Markdown 文档头部的 YAML 元数据块。
// 只做解析，不做 HTML 渲染：goldmark 在这里仅用于驱动
// goldmark-meta 的 YAML 解析。
package frontmatter

import (
	"regexp"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// md 只挂载 meta 扩展的解析器实例，可安全并发复用。
var md = goldmark.New(
	goldmark.WithExtensions(meta.Meta),
)

// frontMatterPattern 匹配文档开头的 --- 包围块。
var frontMatterPattern = regexp.MustCompile(`(?s)\A---\r?\n.*?\r?\n---\r?\n?`)

// Extract 解析并剥离文档头部的 YAML front matter。
// 返回元数据（没有 front matter 时为 nil）和剩余正文。
func Extract(source []byte) (map[string]interface{}, []byte) {
	ctx := parser.NewContext()
	md.Parser().Parse(text.NewReader(source), parser.WithContext(ctx))

	metadata := meta.Get(ctx)
	if metadata == nil {
		return nil, source
	}

	body := frontMatterPattern.ReplaceAll(source, nil)
	return metadata, body
}
