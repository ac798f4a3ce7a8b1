package cmd

import (
	"fmt"
	"os"

	"gallery-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "gallery-manager",
	Short: "Gallery Manager Service",
	Long: `Gallery Manager serves a personal photo gallery and keeps its
database synchronized with an object-storage bucket of albums, images
and EXIF metadata.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// CLI errors go through the standard logger in console format so
		// they render the same way the server's logs do.
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
