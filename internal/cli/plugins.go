package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nerdneilsfield/go-mdkit/internal/config"
	"github.com/nerdneilsfield/go-mdkit/internal/logger"
	"github.com/nerdneilsfield/go-mdkit/pkg/plugin"
)

var (
	pluginsJSON       bool
	pluginDescriptors []string
)

// NewPluginsCommand 创建 plugins 子命令，列出所有已注册插件的能力。
// 除内置插件外，还会列出通过 TOML 描述文件声明的外部插件。
func NewPluginsCommand() *cobra.Command {
	pluginsCmd := &cobra.Command{
		Use:   "plugins",
		Short: "列出已注册插件及其动作和限定符",
		Args:  cobra.NoArgs,
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

			paths := append(cfg.Plugins.Descriptors, pluginDescriptors...)
			for _, path := range paths {
				desc, err := plugin.LoadDescriptor(path)
				if err != nil {
					log.Error("加载插件描述文件失败", zap.String("path", path), zap.Error(err))
					os.Exit(1)
				}
				plugin.DefaultRegistry().RegisterExternal(*desc)
			}

			host := plugin.NewHost(log)
			infos := host.Discover()

			if pluginsJSON {
				data, err := json.MarshalIndent(infos, "", "  ")
				if err != nil {
					log.Error("序列化 JSON 失败", zap.Error(err))
					os.Exit(1)
				}
				fmt.Println(string(data))
				return
			}

			printPluginTable(infos)
		},
	}

	pluginsCmd.Flags().BoolVar(&pluginsJSON, "json", false, "以 JSON 输出")
	pluginsCmd.Flags().StringArrayVar(&pluginDescriptors, "load", nil, "额外加载的插件描述文件（TOML，可重复）")

	return pluginsCmd
}

func printPluginTable(infos []plugin.Info) {
	color.New(color.FgCyan, color.Bold).Printf("已注册插件：%d 个\n", len(infos))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"名称", "版本", "动作", "限定符"})
	for _, info := range infos {
		qualifiers := make([]string, 0, len(info.Qualifiers))
		for _, q := range info.Qualifiers {
			qualifiers = append(qualifiers, q.Name)
		}
		t.AppendRow(table.Row{
			info.Name,
			info.Version,
			strings.Join(info.Actions, ", "),
			strings.Join(qualifiers, ", "),
		})
	}
	t.Render()
}
