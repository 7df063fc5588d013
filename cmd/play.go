package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the quest map",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	playCmd.Flags().Bool("skip-assessment", false, "Skip the placement flow and start at task 1")
	rootCmd.Flags().Bool("skip-assessment", false, "Skip the placement flow and start at task 1")
}
