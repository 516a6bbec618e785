package main

import (
	"os"

	"github.com/nerdneilsfield/go-mdkit/internal/cli"
	"github.com/nerdneilsfield/go-mdkit/internal/logger"
	"go.uber.org/zap"
)

// 构建时通过 -ldflags 注入
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	log := logger.NewLogger(false)
	defer func() {
		_ = log.Sync()
	}()

	if err := cli.NewRootCommand(version, commit, buildDate).Execute(); err != nil {
		log.Error("命令执行失败", zap.Error(err))
		os.Exit(1)
	}
}
