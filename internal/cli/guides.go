package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"studydesk/internal/core/model"
)

func (r *root) guidesCommand() *cobra.Command {
	guides := &cobra.Command{
		Use:               "guides",
		Aliases:           []string{"guide", "learn"},
		Short:             "Generate and browse AI learning guides",
		PersistentPreRunE: r.setupSignedIn,
	}
	guides.AddCommand(
		r.guidesListCommand(),
		r.guidesShowCommand(),
		r.guidesCreateCommand(),
		r.guidesRemoveCommand(),
	)
	return guides
}

func (r *root) guidesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List learning guides",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			guides, err := r.app.Client.ListGuides(cmd.Context())
			if err != nil {
				return r.checkAuth(err)
			}
			out := cmd.OutOrStdout()
			if len(guides) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("No learning guides."))
				return nil
			}
			rows := make([][]string, 0, len(guides))
			for _, guide := range guides {
				rows = append(rows, []string{guide.ID, truncate(guide.Topic, 40), fmt.Sprintf("%d", guide.DurationDays), formatDate(guide.CreatedAt)})
			}
			renderTable(out, []string{"ID", "Topic", "Days", "Created"}, rows)
			return nil
		},
	}
}

func (r *root) guidesShowCommand() *cobra.Command {
	var day int
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a guide's daily plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			guide, err := r.app.Client.GetGuide(cmd.Context(), args[0])
			if err != nil {
				return r.checkAuth(err)
			}
			printGuide(cmd, guide, day)
			return nil
		},
	}
	cmd.Flags().IntVar(&day, "day", 0, "only show this day")
	return cmd
}

func (r *root) guidesCreateCommand() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "create TOPIC",
		Short: "Generate a learning guide for a topic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := model.CreateGuideInput{Topic: strings.Join(args, " "), DurationDays: days}
			guide, err := r.app.Client.CreateGuide(cmd.Context(), input)
			if err != nil {
				return r.checkAuth(err)
			}
			printDone(cmd.OutOrStdout(), "Created guide %s", guide.ID)
			printGuide(cmd, guide, 0)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, fmt.Sprintf("guide length in days (1-%d)", model.MaxGuideDays))
	return cmd
}

func (r *root) guidesRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete a learning guide",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.app.Client.DeleteGuide(cmd.Context(), args[0]); err != nil {
				return r.checkAuth(err)
			}
			printDone(cmd.OutOrStdout(), "Deleted guide %s", args[0])
			return nil
		},
	}
}

func printGuide(cmd *cobra.Command, guide *model.LearningGuide, onlyDay int) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("%s (%d days)", guide.Topic, guide.DurationDays)))
	for _, plan := range guide.DailyPlan {
		if onlyDay > 0 && plan.Day != onlyDay {
			continue
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("Day %d: %s", plan.Day, plan.Title)))
		if plan.Description != "" {
			fmt.Fprintln(out, plan.Description)
		}
		for _, resource := range plan.Resources {
			fmt.Fprintf(out, "  - %s\n", resource)
		}
	}
}
