package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/Kunde21/markdownfmt/v3"
	"github.com/Kunde21/markdownfmt/v3/markdown"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nerdneilsfield/go-mdkit/internal/logger"
)

var fmtWrite bool

// NewFmtCommand 创建 fmt 子命令，按标准风格重排 Markdown 文件。
func NewFmtCommand() *cobra.Command {
	fmtCmd := &cobra.Command{
		Use:   "fmt input_file",
		Short: "按标准风格重排 Markdown 文件",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.NewLoggerWithVerbose(debugMode, verboseMode)
			defer func() {
				_ = log.Sync()
			}()

			if err := formatMarkdown(args[0], fmtWrite, log); err != nil {
				log.Error("格式化失败", zap.Error(err))
				os.Exit(1)
			}
		},
	}

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "W", false, "写回原文件而不是打印到标准输出")

	return fmtCmd
}

func formatMarkdown(path string, write bool, log *zap.Logger) error {
	if !strings.HasSuffix(path, ".md") {
		return fmt.Errorf("文件不是Markdown文件")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		log.Error("读取文件失败", zap.String("path", path), zap.Error(err))
		return err
	}

	opts := []markdown.Option{
		markdown.WithCodeFormatters(markdown.GoCodeFormatter),
	}

	res, err := markdownfmt.Process(path, content, opts...)
	if err != nil {
		log.Error("格式化 Markdown 文件失败", zap.String("path", path), zap.Error(err))
		return err
	}

	log.Info("格式化 Markdown 文件完成", zap.String("path", path), zap.Int("size", len(res)))

	if write {
		return os.WriteFile(path, res, 0o644)
	}
	_, err = os.Stdout.Write(res)
	return err
}
