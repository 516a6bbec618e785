package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLinks(t *testing.T) {
	t.Run("OrderPreserved", func(t *testing.T) {
		links := ExtractLinks("[a](u1) and [b](u2)")
		assert.Equal(t, []Link{
			{Text: "a", URL: "u1"},
			{Text: "b", URL: "u2"},
		}, links)
	})

	t.Run("NoDeduplication", func(t *testing.T) {
		links := ExtractLinks("[x](u) [x](u)")
		assert.Len(t, links, 2)
	})

	t.Run("NoLinks", func(t *testing.T) {
		assert.Empty(t, ExtractLinks("plain text without links"))
	})
}

func TestExtractHeadings(t *testing.T) {
	t.Run("LevelsAndOrder", func(t *testing.T) {
		headings := ExtractHeadings("# T1\n## T2")
		assert.Equal(t, []Heading{
			{Level: 1, Text: "T1"},
			{Level: 2, Text: "T2"},
		}, headings)
	})

	t.Run("TextTrimmed", func(t *testing.T) {
		headings := ExtractHeadings("###   spaced out   ")
		assert.Equal(t, []Heading{{Level: 3, Text: "spaced out"}}, headings)
	})

	t.Run("SixLevels", func(t *testing.T) {
		headings := ExtractHeadings("###### deep")
		assert.Equal(t, []Heading{{Level: 6, Text: "deep"}}, headings)
	})

	t.Run("NoHeadings", func(t *testing.T) {
		assert.Empty(t, ExtractHeadings("no headings here"))
	})
}
