package cmd

import (
	"fmt"

	"github.com/kaiwen/hrquest/internal/app"
	"github.com/kaiwen/hrquest/internal/config"
	"github.com/kaiwen/hrquest/internal/quest"
	"github.com/kaiwen/hrquest/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds a fresh quest session, and launches
// the TUI. Every run starts at task 1 (or at the placement flow).
func runApp(cmd *cobra.Command) error {
	cfgPath, err := resolveConfigPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
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

	skip := cfg.Player.SkipAssessment
	if f, _ := cmd.Flags().GetBool("skip-assessment"); f {
		skip = true
	}

	session := quest.NewSession(cfg.Player.Name)
	return app.Run(session, repo, skip)
}
