package cmd

import (
	"fmt"

	"github.com/kaiwen/hrquest/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show training statistics from the journal",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		sum, err := repo.Summarize(cmd.Context())
		if err != nil {
			return fmt.Errorf("summarize journal: %w", err)
		}

		fmt.Printf("Sessions played:      %d\n", sum.Sessions)
		fmt.Printf("Tasks completed:      %d\n", sum.TasksCompleted)
		fmt.Printf("Total XP earned:      %d\n", sum.TotalXP)
		fmt.Printf("Badges earned:        %d\n", sum.BadgesEarned)
		fmt.Printf("Perfect quizzes:      %d\n", sum.QuizzesAllCorrect)
		fmt.Printf("Placements accepted:  %d\n", sum.AssessmentsAccepted)
		fmt.Printf("Placements skipped:   %d\n", sum.AssessmentsSkipped)
		return nil
	},
}
