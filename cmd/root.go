package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"storage-facade/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	providerFlag string
	endpointFlag string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "storage-facade",
	Short: "Object storage facade",
	Long: `Storage Facade performs bucket and object operations against S3-compatible
stores (AWS S3, MinIO, LocalStack) from the command line or over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Console + debug gives ISO8601 timestamps, which reads better on a terminal.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&providerFlag, "provider", "", "Storage provider override (s3, minio, memory)")
	RootCmd.PersistentFlags().StringVar(&endpointFlag, "endpoint", "", "Storage endpoint override")
}
