package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/nerdneilsfield/go-mdkit/internal/logger"
	"github.com/nerdneilsfield/go-mdkit/pkg/plugin"
)

var callQualifier bool

// NewCallCommand 创建 call 子命令，以原始 JSON 请求调用插件。
// 这是调用约定的直通入口，主要用于调试插件实现。
func NewCallCommand() *cobra.Command {
	callCmd := &cobra.Command{
		Use:   "call plugin_name action [request_json]",
		Short: "以原始 JSON 请求调用插件动作或限定符",
		Long: `以原始 JSON 请求调用插件动作或限定符。

请求体可以作为第三个参数传入，省略时从标准输入读取：

  mdkit call plugin-go-markdown to-html '{"data": "# Title"}'
  echo '{"value": [2, 1], "type": "List"}' | mdkit call --qualifier plugin-go-collection sort`,
		Args: cobra.RangeArgs(2, 3),
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.NewLoggerWithVerbose(debugMode, verboseMode)
			defer func() {
				_ = log.Sync()
			}()

			var request []byte
			if len(args) == 3 {
				request = []byte(args[2])
			} else {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					log.Error("读取标准输入失败", zap.Error(err))
					os.Exit(1)
				}
				request = data
			}

			host := plugin.NewHost(log)
			var response []byte
			if callQualifier {
				response = host.InvokeQualifier(args[0], args[1], request)
			} else {
				response = host.Invoke(args[0], args[1], request)
			}

			fmt.Println(string(response))
			if gjson.GetBytes(response, "error").Exists() {
				color.Red("插件返回错误")
				os.Exit(1)
			}
		},
	}

	callCmd.Flags().BoolVarP(&callQualifier, "qualifier", "q", false, "调用限定符而不是动作")

	return callCmd
}
