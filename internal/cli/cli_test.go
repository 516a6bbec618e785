package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootCommand 测试根命令的基本结构
func TestRootCommand(t *testing.T) {
	rootCmd := NewRootCommand("1.0.0", "abc1234", "2026-01-01")

	assert.Equal(t, "mdkit [flags] input_file [output_file]", rootCmd.Use)
	assert.Contains(t, rootCmd.Version, "1.0.0")
	assert.Contains(t, rootCmd.Version, "abc1234")

	// 检查标志注册
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("debug"))
	assert.NotNil(t, rootCmd.Flags().Lookup("watch"))
	assert.NotNil(t, rootCmd.Flags().Lookup("strip-front-matter"))
}

// TestSubcommands 测试子命令注册
func TestSubcommands(t *testing.T) {
	rootCmd := NewRootCommand("dev", "none", "unknown")

	expected := []string{"extract", "stats", "qualify", "svg", "fmt", "plugins", "call"}
	registered := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		registered[sub.Name()] = true
	}
	for _, name := range expected {
		assert.True(t, registered[name], "missing subcommand %s", name)
	}
}

// TestComputeStats 测试 stats 的统计路径
func TestComputeStats(t *testing.T) {
	content := "```go\na\nb\n```\n"

	t.Run("LinesFromOriginalInput", func(t *testing.T) {
		// 行数必须基于未转换的原始输入统计
		stats := computeStats(content, false, false)
		assert.Equal(t, 5, stats.Lines)
		assert.Equal(t, 0, stats.Words)
	})

	t.Run("RawCountsSyntax", func(t *testing.T) {
		stats := computeStats(content, true, false)
		assert.Equal(t, 5, stats.Lines)
		assert.Equal(t, 4, stats.Words)
	})

	t.Run("FrontMatterStripped", func(t *testing.T) {
		withFM := "---\ntitle: x\n---\nhello world\n"
		stats := computeStats(withFM, false, false)
		assert.Equal(t, 2, stats.Words)
		assert.Equal(t, 2, stats.Lines)

		kept := computeStats(withFM, false, true)
		assert.Greater(t, kept.Lines, stats.Lines)
	})
}

// TestArgValidation 测试根命令参数校验
func TestArgValidation(t *testing.T) {
	rootCmd := NewRootCommand("dev", "none", "unknown")

	require.Error(t, rootCmd.Args(rootCmd, nil))
	require.NoError(t, rootCmd.Args(rootCmd, []string{"in.md"}))
	require.NoError(t, rootCmd.Args(rootCmd, []string{"in.md", "out.html"}))
	require.Error(t, rootCmd.Args(rootCmd, []string{"a", "b", "c"}))
}
