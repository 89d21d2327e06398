package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"studydesk/internal/core/model"
)

func (r *root) tasksCommand() *cobra.Command {
	tasks := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "Manage your to-do list",
		PersistentPreRunE: r.setupSignedIn,
	}
	tasks.AddCommand(
		r.tasksListCommand(),
		r.tasksShowCommand(),
		r.tasksAddCommand(),
		r.tasksCompleteCommand("done", "Mark a task completed", true),
		r.tasksCompleteCommand("undo", "Mark a task pending", false),
		r.tasksEditCommand(),
		r.tasksRemoveCommand(),
	)
	return tasks
}

func (r *root) tasksListCommand() *cobra.Command {
	var pendingOnly, completedOnly bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := r.app.Client.ListTasks(cmd.Context())
			if err != nil {
				return r.checkAuth(err)
			}

			out := cmd.OutOrStdout()
			total, completed, pending := model.CountTasks(tasks)
			rows := make([][]string, 0, len(tasks))
			for _, task := range tasks {
				if (pendingOnly && task.Completed) || (completedOnly && !task.Completed) {
					continue
				}
				rows = append(rows, []string{task.ID, checkbox(task.Completed), truncate(task.Title, 48), formatDate(task.CreatedAt)})
			}
			if len(rows) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("No tasks."))
			} else {
				renderTable(out, []string{"ID", "Done", "Title", "Created"}, rows)
			}
			fmt.Fprintf(out, "%d total, %d completed, %d pending\n", total, completed, pending)
			return nil
		},
	}
	cmd.Flags().BoolVar(&pendingOnly, "pending", false, "only pending tasks")
	cmd.Flags().BoolVar(&completedOnly, "completed", false, "only completed tasks")
	cmd.MarkFlagsMutuallyExclusive("pending", "completed")
	return cmd
}

func (r *root) tasksShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := r.app.Client.GetTask(cmd.Context(), args[0])
			if err != nil {
				return r.checkAuth(err)
			}
			printTask(cmd, task)
			return nil
		},
	}
}

func (r *root) tasksAddCommand() *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := model.CreateTaskInput{Title: args[0]}
			if cmd.Flags().Changed("description") {
				input.Description = &description
			}
			task, err := r.app.Client.CreateTask(cmd.Context(), input)
			if err != nil {
				return r.checkAuth(err)
			}
			printDone(cmd.OutOrStdout(), "Created task %s: %s", task.ID, task.Title)
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "task details")
	return cmd
}

func (r *root) tasksCompleteCommand(use, short string, completed bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := r.app.Client.UpdateTask(cmd.Context(), args[0], model.UpdateTaskInput{Completed: &completed})
			if err != nil {
				return r.checkAuth(err)
			}
			printDone(cmd.OutOrStdout(), "%s %s: %s", checkbox(task.Completed), task.ID, task.Title)
			return nil
		},
	}
}

func (r *root) tasksEditCommand() *cobra.Command {
	var title, description string
	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change a task's title or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input model.UpdateTaskInput
			if cmd.Flags().Changed("title") {
				input.Title = &title
			}
			if cmd.Flags().Changed("description") {
				input.Description = &description
			}
			task, err := r.app.Client.UpdateTask(cmd.Context(), args[0], input)
			if err != nil {
				return r.checkAuth(err)
			}
			printDone(cmd.OutOrStdout(), "Updated task %s", task.ID)
			printTask(cmd, task)
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	return cmd
}

func (r *root) tasksRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.app.Client.DeleteTask(cmd.Context(), args[0]); err != nil {
				return r.checkAuth(err)
			}
			printDone(cmd.OutOrStdout(), "Deleted task %s", args[0])
			return nil
		},
	}
}

func printTask(cmd *cobra.Command, task *model.Task) {
	out := cmd.OutOrStdout()
	printField(out, "ID", task.ID)
	printField(out, "Title", task.Title)
	status := "pending"
	if task.Completed {
		status = "completed"
	}
	printField(out, "Status", status)
	if task.Description != "" {
		printField(out, "Description", task.Description)
	}
	printField(out, "Created", formatDate(task.CreatedAt))
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
