package textenc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("PlainUTF8", func(t *testing.T) {
		assert.Equal(t, "hello 世界", Decode([]byte("hello 世界")))
	})

	t.Run("UTF8BOMStripped", func(t *testing.T) {
		data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello")...)
		assert.Equal(t, "hello", Decode(data))
	})

	t.Run("UTF16LE", func(t *testing.T) {
		// "hi" 的 UTF-16 LE 编码（带 BOM）
		data := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}
		assert.Equal(t, "hi", Decode(data))
	})

	t.Run("UTF16BE", func(t *testing.T) {
		data := []byte{0xFE, 0xFF, 0x00, 'h', 0x00, 'i'}
		assert.Equal(t, "hi", Decode(data))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "", Decode(nil))
	})
}

func TestReadFile(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a.md")
		require.NoError(t, os.WriteFile(path, []byte("# hi"), 0o644))

		content, err := ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# hi", content)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := ReadFile(filepath.Join(t.TempDir(), "missing.md"))
		assert.Error(t, err)
	})
}
