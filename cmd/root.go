package cmd

import (
	"fmt"
	"os"

	"github.com/Kappa-h/fibulopedia/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "fibulopedia",
	Short: "Fibulopedia Content Service",
	Long: `Fibulopedia is the unofficial wiki for the Fibula Project, a Tibia 7.1
style OTS. It serves the server's weapons, equipment, spells, monsters,
quests and general information from static JSON content.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Report through the standard logger in console format; "debug"
		// gives ISO8601 timestamps instead of epoch.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
