package cli

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"studydesk/internal/core/idlewatch"
	"studydesk/internal/core/pomodoro"
	"studydesk/internal/platform"
	"studydesk/internal/tui"
)

func (r *root) timerCommand() *cobra.Command {
	var noIdle bool
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run the Pomodoro timer in the terminal",
		Long: `Run a 25 minute focus / 5 minute break timer in the terminal.

space starts or pauses, r resets the current phase, q quits.
The timer stops after each phase; press space to begin the next one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := r.app.Settings
			// stderr shares the terminal with the program.
			logger := r.app.Logger
			if !r.app.Verbose {
				logger = slog.New(slog.DiscardHandler)
			}
			timer := pomodoro.New(pomodoro.Config{
				TickInterval: settings.TickInterval,
				Logger:       logger,
			})
			defer timer.Close()

			watcher := idlewatch.New(timer, platform.NewIdleProvider(), idlewatch.Config{
				Enabled: settings.IdlePauseEnabled && !noIdle,
				After:   settings.IdlePauseAfter,
				Logger:  logger,
			})
			watcher.Start()
			defer watcher.Stop()

			screen := tui.New(timer, timer.Subscribe(64))
			program := tea.NewProgram(screen,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithContext(cmd.Context()),
			)
			final, err := program.Run()
			if err != nil {
				return fmt.Errorf("run timer: %w", err)
			}
			if view, ok := final.(tui.Model); ok {
				state := view.State()
				fmt.Fprintf(cmd.OutOrStdout(), "Completed focus sessions: %d\n", state.CompletedFocusSessions)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noIdle, "no-idle-pause", false, "keep counting while you are away")
	return cmd
}
