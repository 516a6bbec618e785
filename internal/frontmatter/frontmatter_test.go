package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	t.Run("WithFrontMatter", func(t *testing.T) {
		source := []byte("---\ntitle: Hello\ndraft: true\n---\n# Body\n")
		metadata, body := Extract(source)

		require.NotNil(t, metadata)
		assert.Equal(t, "Hello", metadata["title"])
		assert.Equal(t, true, metadata["draft"])
		assert.Equal(t, "# Body\n", string(body))
	})

	t.Run("WithoutFrontMatter", func(t *testing.T) {
		source := []byte("# Just a document\n")
		metadata, body := Extract(source)

		assert.Nil(t, metadata)
		assert.Equal(t, string(source), string(body))
	})

	t.Run("Empty", func(t *testing.T) {
		metadata, body := Extract(nil)
		assert.Nil(t, metadata)
		assert.Empty(t, body)
	})
}
