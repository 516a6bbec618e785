package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nerdneilsfield/go-mdkit/internal/config"
	"github.com/nerdneilsfield/go-mdkit/internal/logger"
	"github.com/nerdneilsfield/go-mdkit/internal/svgextract"
)

var (
	svgImagesDir    string
	svgProcessedDir string
	svgRefPrefix    string
)

// NewSVGCommand 创建 svg 子命令，把 Markdown 文件中的内联 SVG 抽取为独立文件。
func NewSVGCommand() *cobra.Command {
	svgCmd := &cobra.Command{
		Use:   "svg path",
		Short: "抽取 Markdown 文件中的内联 SVG（path 可以是文件或目录）",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.NewLoggerWithVerbose(debugMode, verboseMode)
			defer func() {
				_ = log.Sync()
			}()

			cfg, err := config.Load(cfgFile)
			if err != nil {
				log.Error("加载配置失败", zap.Error(err))
				os.Exit(1)
			}

			opts := svgextract.Options{
				ImagesDir:    cfg.SVG.ImagesDir,
				ProcessedDir: cfg.SVG.ProcessedDir,
				RefPrefix:    cfg.SVG.RefPrefix,
			}
			if svgImagesDir != "" {
				opts.ImagesDir = svgImagesDir
			}
			if svgProcessedDir != "" {
				opts.ProcessedDir = svgProcessedDir
			}
			if svgRefPrefix != "" {
				opts.RefPrefix = svgRefPrefix
			}

			extractor := svgextract.New(log, opts)

			info, err := os.Stat(args[0])
			if err != nil {
				log.Error("访问路径失败", zap.String("path", args[0]), zap.Error(err))
				os.Exit(1)
			}

			if info.IsDir() {
				total, err := extractor.ProcessDir(args[0])
				if err != nil {
					log.Error("处理目录失败", zap.Error(err))
					os.Exit(1)
				}
				fmt.Printf("共抽取 %d 个 SVG\n", total)
				return
			}

			count, err := extractor.ProcessFile(args[0])
			if err != nil {
				log.Error("处理文件失败", zap.Error(err))
				os.Exit(1)
			}
			fmt.Printf("共抽取 %d 个 SVG\n", count)
		},
	}

	svgCmd.Flags().StringVar(&svgImagesDir, "images-dir", "", "SVG 输出目录（覆盖配置）")
	svgCmd.Flags().StringVar(&svgProcessedDir, "processed-dir", "", "处理后 Markdown 的输出目录（覆盖配置）")
	svgCmd.Flags().StringVar(&svgRefPrefix, "ref-prefix", "", "替换图片引用时使用的路径前缀（覆盖配置）")

	return svgCmd
}
