package cli

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nerdneilsfield/go-mdkit/internal/config"
	"github.com/nerdneilsfield/go-mdkit/internal/frontmatter"
	"github.com/nerdneilsfield/go-mdkit/internal/logger"
	"github.com/nerdneilsfield/go-mdkit/internal/textenc"
	"github.com/nerdneilsfield/go-mdkit/pkg/markdown"
)

var (
	// 命令行标志变量
	cfgFile          string
	debugMode        bool
	verboseMode      bool
	showVersion      bool
	watchMode        bool // 监听输入文件变化并重新渲染
	stripFrontMatter bool // 渲染前剥离 YAML front matter
)

// NewRootCommand 创建根命令。
// 根命令本身执行 Markdown 到 HTML 的渲染。
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mdkit [flags] input_file [output_file]",
		Short: "mdkit 是一组基于正则管线的 Markdown 文本工具",
		Long: `mdkit 是一组基于正则管线的 Markdown 文本工具。

根命令把 Markdown 文件渲染为 HTML（省略输出文件时打印到标准输出），
其余能力通过子命令提供：

  extract   提取链接或标题
  stats     词数、字符数、行数统计
  qualify   对 JSON 序列执行集合限定符（sort/unique/sum/avg/min/max）
  svg       抽取内联 SVG 为独立文件
  fmt       按标准风格重排 Markdown
  plugins   列出插件能力（能力发现）
  call      以原始 JSON 请求调用插件动作`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		Args: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				return nil
			}
			if len(args) < 1 || len(args) > 2 {
				return fmt.Errorf("accepts 1 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.NewLoggerWithVerbose(debugMode, verboseMode)
			defer func() {
				_ = log.Sync()
			}()

			if showVersion {
				fmt.Printf("mdkit %s (commit %s, built %s)\n", version, commit, buildDate)
				return
			}

			cfg, err := config.Load(cfgFile)
			if err != nil {
				log.Error("加载配置失败", zap.Error(err))
				os.Exit(1)
			}

			inputPath := args[0]
			outputPath := ""
			if len(args) == 2 {
				outputPath = args[1]
			}

			if err := renderFile(inputPath, outputPath, cfg, log); err != nil {
				log.Error("渲染失败", zap.Error(err))
				os.Exit(1)
			}

			if watchMode {
				if err := watchAndRender(inputPath, outputPath, cfg, log); err != nil {
					log.Error("监听失败", zap.Error(err))
					os.Exit(1)
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径（默认搜索 $HOME/.mdkit.yaml 和 ./.mdkit.yaml）")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "输出调试日志")
	rootCmd.PersistentFlags().BoolVarP(&verboseMode, "verbose", "v", false, "输出详细日志")
	rootCmd.Flags().BoolVar(&showVersion, "version-info", false, "显示版本信息")
	rootCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "监听输入文件变化并重新渲染")
	rootCmd.Flags().BoolVar(&stripFrontMatter, "strip-front-matter", false, "渲染前剥离 YAML front matter")

	rootCmd.AddCommand(NewExtractCommand())
	rootCmd.AddCommand(NewStatsCommand())
	rootCmd.AddCommand(NewQualifyCommand())
	rootCmd.AddCommand(NewSVGCommand())
	rootCmd.AddCommand(NewFmtCommand())
	rootCmd.AddCommand(NewPluginsCommand())
	rootCmd.AddCommand(NewCallCommand())

	return rootCmd
}

// renderFile 渲染单个文件。
func renderFile(inputPath, outputPath string, cfg *config.Config, log *zap.Logger) error {
	content, err := textenc.ReadFile(inputPath)
	if err != nil {
		return err
	}

	if stripFrontMatter || cfg.Render.StripFrontMatter {
		metadata, body := frontmatter.Extract([]byte(content))
		if metadata != nil {
			log.Debug("剥离 front matter", zap.Int("keys", len(metadata)))
		}
		content = string(body)
	}

	html := markdown.Render(content)
	log.Info("渲染完成",
		zap.String("input", inputPath),
		zap.Int("input_size", len(content)),
		zap.Int("output_size", len(html)))

	if outputPath == "" {
		fmt.Println(html)
		return nil
	}
	return os.WriteFile(outputPath, []byte(html), 0o644)
}

// watchAndRender 监听输入文件，每次写入后重新渲染。
func watchAndRender(inputPath, outputPath string, cfg *config.Config, log *zap.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Add(inputPath); err != nil {
		return err
	}
	log.Info("开始监听", zap.String("input", inputPath))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if err := renderFile(inputPath, outputPath, cfg, log); err != nil {
					log.Warn("重新渲染失败", zap.Error(err))
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("监听错误", zap.Error(err))
		}
	}
}
