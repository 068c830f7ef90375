package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inovacc/entrycard/internal/application"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the entrycard version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s version %s\n", application.AppName, application.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
