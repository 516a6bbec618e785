package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"

	"github.com/nerdneilsfield/go-mdkit/internal/logger"
	"github.com/nerdneilsfield/go-mdkit/pkg/plugin"
)

// NewQualifyCommand 创建 qualify 子命令。
// 读取一个 JSON 序列（参数或标准输入），交给集合插件的指定限定符处理。
func NewQualifyCommand() *cobra.Command {
	qualifyCmd := &cobra.Command{
		Use:   "qualify qualifier_name [json_list]",
		Short: "对 JSON 序列执行限定符（sort/unique/sum/avg/min/max）",
		Long: `对 JSON 序列执行限定符。

序列可以作为第二个参数传入，省略时从标准输入读取：

  mdkit qualify sort '[3, 1, 2]'
  echo '[1, 2, 3]' | mdkit qualify sum`,
		Args: cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.NewLoggerWithVerbose(debugMode, verboseMode)
			defer func() {
				_ = log.Sync()
			}()

			name := args[0]
			var listJSON []byte
			if len(args) == 2 {
				listJSON = []byte(args[1])
			} else {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					log.Error("读取标准输入失败", zap.Error(err))
					os.Exit(1)
				}
				listJSON = data
			}

			if !gjson.ValidBytes(listJSON) {
				log.Error("输入不是合法的 JSON")
				os.Exit(1)
			}

			request, err := sjson.SetRawBytes([]byte(`{}`), "value", listJSON)
			if err != nil {
				log.Error("构造请求失败", zap.Error(err))
				os.Exit(1)
			}
			request, err = sjson.SetBytes(request, "type", "List")
			if err != nil {
				log.Error("构造请求失败", zap.Error(err))
				os.Exit(1)
			}

			host := plugin.NewHost(log)
			response := host.InvokeQualifier("plugin-go-collection", name, request)

			if errMsg := gjson.GetBytes(response, "error"); errMsg.Exists() {
				color.Red("错误：%s", errMsg.String())
				os.Exit(1)
			}
			fmt.Println(gjson.GetBytes(response, "result").Raw)
		},
	}

	return qualifyCmd
}
