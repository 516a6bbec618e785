package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	t.Run("StripsAllSyntax", func(t *testing.T) {
		input := "# Title\n\nSome **bold** and *italic* text with [link](url).\n\n* item\n1. numbered\n\n---\n"
		plain := PlainText(input)
		assert.NotContains(t, plain, "#")
		assert.NotContains(t, plain, "*")
		assert.NotContains(t, plain, "[")
		assert.NotContains(t, plain, "---")
		assert.Contains(t, plain, "Title")
		assert.Contains(t, plain, "link")
		assert.Contains(t, plain, "item")
	})

	t.Run("Idempotent", func(t *testing.T) {
		// 第一遍之后不应残留任何 Markdown 语法
		input := "## Head\n**b** `c` [t](u) ![i](u2)\n```go\ncode\n```"
		once := PlainText(input)
		assert.Equal(t, once, PlainText(once))
	})

	t.Run("LinksKeepTextImagesRemoved", func(t *testing.T) {
		assert.Equal(t, "visible", PlainText("[visible](url)"))
		assert.Equal(t, "", PlainText("![gone](url)"))
	})

	t.Run("CodeBlockRemovedEntirely", func(t *testing.T) {
		// 与渲染器不同：纯文本化把围栏代码块连正文一起移除
		plain := PlainText("before\n```go\nsecret\n```\nafter")
		assert.NotContains(t, plain, "secret")
		assert.Contains(t, plain, "before")
		assert.Contains(t, plain, "after")
	})

	t.Run("InlineCodeKeepsContent", func(t *testing.T) {
		assert.Equal(t, "go test", PlainText("`go test`"))
	})

	t.Run("Trimmed", func(t *testing.T) {
		assert.Equal(t, "x", PlainText("\n\n  x  \n\n"))
	})
}

func TestCountStats(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		stats := CountStats("# Hi\n\nhello world")
		assert.Equal(t, 3, stats.Words)
		assert.Equal(t, 3, stats.Lines)
	})

	t.Run("LinesFromOriginalInput", func(t *testing.T) {
		// 行数基于原始输入，而不是纯文本化结果
		stats := CountStats("```go\na\nb\n```")
		assert.Equal(t, 4, stats.Lines)
		assert.Equal(t, 0, stats.Words)
	})

	t.Run("CharactersNoSpaces", func(t *testing.T) {
		stats := CountStats("a b\nc")
		assert.Equal(t, 5, stats.Characters)
		assert.Equal(t, 3, stats.CharactersNoSpaces)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		stats := CountStats("")
		assert.Equal(t, 0, stats.Words)
		assert.Equal(t, 0, stats.Characters)
		assert.Equal(t, 1, stats.Lines)
	})
}

func TestCountRawStats(t *testing.T) {
	t.Run("CountsSyntaxVerbatim", func(t *testing.T) {
		input := "```go\na\nb\n```\n"
		stats := CountRawStats(input)
		assert.Equal(t, 4, stats.Words)
		assert.Equal(t, 14, stats.Characters)
		assert.Equal(t, 5, stats.Lines)
	})

	t.Run("SameLinesAsCountStats", func(t *testing.T) {
		input := "# Head\n\n**bold** text\n"
		assert.Equal(t, CountStats(input).Lines, CountRawStats(input).Lines)
	})
}
