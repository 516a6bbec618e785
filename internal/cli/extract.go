package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nerdneilsfield/go-mdkit/internal/logger"
	"github.com/nerdneilsfield/go-mdkit/internal/textenc"
	"github.com/nerdneilsfield/go-mdkit/pkg/markdown"
)

var extractJSON bool

// NewExtractCommand 创建 extract 子命令，从 Markdown 中提取链接或标题。
func NewExtractCommand() *cobra.Command {
	extractCmd := &cobra.Command{
		Use:   "extract [links|headings] input_file",
		Short: "从 Markdown 文件中提取链接或标题",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.NewLoggerWithVerbose(debugMode, verboseMode)
			defer func() {
				_ = log.Sync()
			}()

			kind := args[0]
			content, err := textenc.ReadFile(args[1])
			if err != nil {
				log.Error("读取文件失败", zap.String("path", args[1]), zap.Error(err))
				os.Exit(1)
			}

			switch kind {
			case "links":
				printLinks(markdown.ExtractLinks(content), log)
			case "headings":
				printHeadings(markdown.ExtractHeadings(content), log)
			default:
				log.Error("未知的提取类型（应为 links 或 headings）", zap.String("kind", kind))
				os.Exit(1)
			}
		},
	}

	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "以 JSON 输出")

	return extractCmd
}

func printLinks(links []markdown.Link, log *zap.Logger) {
	if extractJSON {
		printJSON(links, log)
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "文本", "URL"})
	for i, link := range links {
		t.AppendRow(table.Row{i + 1, link.Text, link.URL})
	}
	t.Render()
	fmt.Printf("共 %d 个链接\n", len(links))
}

func printHeadings(headings []markdown.Heading, log *zap.Logger) {
	if extractJSON {
		printJSON(headings, log)
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "级别", "文本"})
	for i, h := range headings {
		t.AppendRow(table.Row{i + 1, h.Level, h.Text})
	}
	t.Render()
	fmt.Printf("共 %d 个标题\n", len(headings))
}

func printJSON(v interface{}, log *zap.Logger) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Error("序列化 JSON 失败", zap.Error(err))
		os.Exit(1)
	}
	fmt.Println(string(data))
}
