package cmd

import (
	"fmt"

	"github.com/kaiwen/hrquest/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe the event journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Println("This deletes all recorded task and placement events.")
			fmt.Println("Re-run with --force to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event journal: %w", err)
		}
		if err := repo.Wipe(cmd.Context()); err != nil {
			return fmt.Errorf("wipe journal: %w", err)
		}
		fmt.Println("Journal wiped.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Actually wipe the journal")
}
