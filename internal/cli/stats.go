package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nerdneilsfield/go-mdkit/internal/frontmatter"
	"github.com/nerdneilsfield/go-mdkit/internal/logger"
	"github.com/nerdneilsfield/go-mdkit/internal/textenc"
	"github.com/nerdneilsfield/go-mdkit/pkg/markdown"
)

var (
	statsJSON   bool
	statsRaw    bool // 直接统计原文，不先剥离 Markdown 标记
	statsKeepFM bool // 保留 front matter 参与统计
)

// NewStatsCommand 创建 stats 子命令，统计词数、字符数和行数。
func NewStatsCommand() *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats input_file",
		Short: "统计 Markdown 文件的词数、字符数和行数",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.NewLoggerWithVerbose(debugMode, verboseMode)
			defer func() {
				_ = log.Sync()
			}()

			content, err := textenc.ReadFile(args[0])
			if err != nil {
				log.Error("读取文件失败", zap.String("path", args[0]), zap.Error(err))
				os.Exit(1)
			}

			stats := computeStats(content, statsRaw, statsKeepFM)

			if statsJSON {
				data, err := json.MarshalIndent(stats, "", "  ")
				if err != nil {
					log.Error("序列化 JSON 失败", zap.Error(err))
					os.Exit(1)
				}
				fmt.Println(string(data))
				return
			}

			printStats(args[0], stats)
		},
	}

	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "以 JSON 输出")
	statsCmd.Flags().BoolVar(&statsRaw, "raw", false, "统计原始文本而非纯文本")
	statsCmd.Flags().BoolVar(&statsKeepFM, "keep-front-matter", false, "front matter 参与统计")

	return statsCmd
}

// computeStats 计算统计结果。
// 行数由 CountStats/CountRawStats 基于其输入统计，
// 因此除剥离 front matter 外不对内容做任何预处理。
func computeStats(content string, raw, keepFM bool) markdown.Stats {
	if !keepFM {
		_, body := frontmatter.Extract([]byte(content))
		content = string(body)
	}
	if raw {
		return markdown.CountRawStats(content)
	}
	return markdown.CountStats(content)
}

// printStats 输出彩色对齐的统计结果。
// 标签含中文，宽度用 runewidth 计算才能对齐。
func printStats(path string, stats markdown.Stats) {
	title := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgGreen)

	title.Printf("统计：%s\n", path)

	rows := []struct {
		name  string
		value int
	}{
		{"词数 (words)", stats.Words},
		{"字符数 (characters)", stats.Characters},
		{"字符数·不含空白 (no spaces)", stats.CharactersNoSpaces},
		{"行数 (lines)", stats.Lines},
	}

	width := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row.name); w > width {
			width = w
		}
	}
	for _, row := range rows {
		fmt.Printf("  %s  %d\n", label.Sprint(runewidth.FillRight(row.name, width)), row.value)
	}
}
