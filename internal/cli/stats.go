package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (r *root) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task, note and learning guide counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := r.requireUser(); err != nil {
				return err
			}
			stats, err := r.app.Client.Stats(cmd.Context())
			if err != nil {
				return r.checkAuth(err)
			}

			out := cmd.OutOrStdout()
			printField(out, "Tasks", fmt.Sprintf("%d (%d completed, %d pending)", stats.TotalTasks, stats.CompletedTasks, stats.PendingTasks))
			printField(out, "Completion", fmt.Sprintf("%d%%", stats.CompletionRate()))
			printField(out, "Notes", fmt.Sprintf("%d", stats.TotalNotes))
			printField(out, "Guides", fmt.Sprintf("%d", stats.AILearnings))
			return nil
		},
	}
}
