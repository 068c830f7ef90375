package cmd

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/inovacc/entrycard/internal/application"
	"github.com/inovacc/entrycard/internal/cli"
	"github.com/inovacc/entrycard/internal/config"
	"github.com/inovacc/entrycard/internal/logging"
	"github.com/inovacc/entrycard/internal/store/sqlite"
)

var (
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	cfg      config.Config
	logger   *slog.Logger
	closeLog = func() {}
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A personnel entry card recorder",
	Long: `Entrycard is a terminal application for recording personnel entry
card records (identity number, name, mobile, demographic fields) into a
local database, with sequential navigation, editing, and deletion.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		if flagDBPath != "" {
			cfg.DBPath = flagDBPath
		}
		if flagLogFile != "" {
			cfg.LogPath = flagLogFile
		}
		if flagLogLevel != "" {
			cfg.LogLevel = flagLogLevel
		}

		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}

		logger, closeLog, err = logging.Setup(cfg.LogPath, level)

		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Info("application closed")
		closeLog()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sqlite.New(cfg.DBPath, logger)
		if err != nil {
			logging.Critical(logger, "failed to open store", "error", err)
			return fmt.Errorf("opening store: %w", err)
		}

		defer func() { _ = db.Close() }()

		m, err := cli.NewFormModel(db, logger)
		if err != nil {
			logging.Critical(logger, "failed to initialize form", "error", err)
			return fmt.Errorf("initializing form: %w", err)
		}

		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			logging.Critical(logger, "unhandled error", "error", err)
			return err
		}

		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagDBPath, "db", "", "database file (default: config or app directory)")
	pf.StringVar(&flagLogFile, "log-file", "", "log file (default: config or app directory)")
	pf.StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
}
