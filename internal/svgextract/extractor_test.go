package svgextract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestExtractor(t *testing.T) (*Extractor, string) {
	t.Helper()
	dir := t.TempDir()
	opts := Options{
		ImagesDir:    filepath.Join(dir, "images"),
		ProcessedDir: filepath.Join(dir, "processed"),
		RefPrefix:    "images",
	}
	return New(zap.NewNop(), opts), dir
}

func TestExtract(t *testing.T) {
	e := New(zap.NewNop(), DefaultOptions())

	t.Run("ReplacesBlocksWithReferences", func(t *testing.T) {
		content := "before\n<svg viewBox=\"0 0 10 20\"><rect/></svg>\nafter\n<svg width=\"5\"><circle/></svg>\n"
		processed, figures := e.Extract(content, "chapter01")

		require.Len(t, figures, 2)
		assert.Equal(t, "chapter01-fig01.svg", figures[0].Filename)
		assert.Equal(t, "chapter01-fig02.svg", figures[1].Filename)
		assert.Equal(t, 1, figures[0].Index)

		assert.Contains(t, processed, "![Figure 1](images/chapter01-fig01.svg)")
		assert.Contains(t, processed, "![Figure 2](images/chapter01-fig02.svg)")
		assert.NotContains(t, processed, "<svg")
	})

	t.Run("InjectsXMLDeclaration", func(t *testing.T) {
		_, figures := e.Extract(`<svg><rect/></svg>`, "doc")
		require.Len(t, figures, 1)
		assert.True(t, strings.HasPrefix(figures[0].Content, "<?xml version="))
	})

	t.Run("SynthesizesDimensionsFromViewBox", func(t *testing.T) {
		_, figures := e.Extract(`<svg viewBox="0 0 100 50"><rect/></svg>`, "doc")
		require.Len(t, figures, 1)
		assert.Contains(t, figures[0].Content, `width="100"`)
		assert.Contains(t, figures[0].Content, `height="50"`)
	})

	t.Run("KeepsExplicitDimensions", func(t *testing.T) {
		_, figures := e.Extract(`<svg width="7" viewBox="0 0 100 50"><rect/></svg>`, "doc")
		require.Len(t, figures, 1)
		assert.NotContains(t, figures[0].Content, `width="100"`)
		assert.Contains(t, figures[0].Content, `width="7"`)
	})

	t.Run("NoSVGs", func(t *testing.T) {
		processed, figures := e.Extract("plain markdown", "doc")
		assert.Empty(t, figures)
		assert.Equal(t, "plain markdown", processed)
	})

	t.Run("MultilineBlock", func(t *testing.T) {
		content := "<svg viewBox=\"0 0 1 1\">\n  <rect/>\n</svg>"
		_, figures := e.Extract(content, "doc")
		require.Len(t, figures, 1)
		assert.Contains(t, figures[0].Content, "\n  <rect/>\n")
	})
}

func TestProcessFile(t *testing.T) {
	t.Run("WritesFiguresAndProcessedCopy", func(t *testing.T) {
		e, dir := newTestExtractor(t)

		src := filepath.Join(dir, "ch01.md")
		require.NoError(t, os.WriteFile(src, []byte("# T\n<svg viewBox=\"0 0 4 4\"><rect/></svg>\n"), 0o644))

		count, err := e.ProcessFile(src)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		svgData, err := os.ReadFile(filepath.Join(dir, "images", "ch01-fig01.svg"))
		require.NoError(t, err)
		assert.Contains(t, string(svgData), "<?xml")

		mdData, err := os.ReadFile(filepath.Join(dir, "processed", "ch01.md"))
		require.NoError(t, err)
		assert.Contains(t, string(mdData), "![Figure 1](images/ch01-fig01.svg)")
	})

	t.Run("MissingInputFails", func(t *testing.T) {
		e, dir := newTestExtractor(t)
		_, err := e.ProcessFile(filepath.Join(dir, "missing.md"))
		assert.Error(t, err)
	})
}
