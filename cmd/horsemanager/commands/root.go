package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"horsemanager/internal/app"
	"horsemanager/internal/config"
	"horsemanager/internal/table"
	"horsemanager/internal/util"
)

// version is overridden at build time with -ldflags "-X ...".
var version = "dev"

// skipApp marks commands that run without opening the game.
const skipApp = "skip-app"

var (
	configPath string
	logLevel   string
	plain      bool

	appCtx  *app.App
	logFile *lumberjack.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:           "horsemanager",
		Short:         "Buy and sell horses and jockeys in a terminal shop",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipApp] != "" {
				return nil
			}
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}

			// The interactive UI owns the terminal, so it logs to a file.
			var w io.Writer = os.Stderr
			if cmd == cmd.Root() && cfg.Logging.File != "" {
				if err := os.MkdirAll(filepath.Dir(cfg.Logging.File), 0o755); err != nil {
					return err
				}
				logFile = &lumberjack.Logger{
					Filename:   cfg.Logging.File,
					MaxSize:    cfg.Logging.MaxSizeMB,
					MaxBackups: cfg.Logging.MaxBackups,
				}
				w = logFile
			}
			logger := util.NewLogger(cfg.Logging.Level, cfg.Logging.Format, w)
			util.SetDefault(logger)

			appCtx, err = app.New(cmd.Context(), cfg, logger)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeApp()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd.Context())
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config/horsemanager.yaml", "path to the YAML configuration")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&plain, "plain", false, "print tables without colors")

	root.AddCommand(
		shopCmd(), stableCmd(),
		buyCmd(), sellCmd(),
		findCmd(), nextDayCmd(), holidaysCmd(),
		ledgerCmd(), versionCmd(),
	)

	err := root.ExecuteContext(context.Background())
	if err != nil {
		// PersistentPostRunE is skipped when RunE fails.
		closeApp()
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

func closeApp() error {
	var err error
	if appCtx != nil {
		err = appCtx.Close()
		appCtx = nil
	}
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	return err
}

func styles() *table.Styles {
	if plain {
		return table.PlainStyles()
	}
	return table.DefaultStyles()
}
