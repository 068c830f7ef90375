package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/inovacc/entrycard/internal/cli"
	"github.com/inovacc/entrycard/internal/store/sqlite"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Browse all recorded entries in a table",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sqlite.New(cfg.DBPath, logger)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}

		defer func() { _ = db.Close() }()

		entries, err := db.ListAll()
		if err != nil {
			return fmt.Errorf("loading entries: %w", err)
		}

		m := cli.NewEntryListModel(entries)
		if _, err := tea.NewProgram(m).Run(); err != nil {
			return err
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
