package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"taskboard/pkg/edit"
	"taskboard/pkg/report"
	"taskboard/pkg/task"
)

func newListCmd(a *app) *cobra.Command {
	var sortBy string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, ok := report.ParseSortKey(sortBy)
			if !ok {
				return fmt.Errorf("--sort must be due_date, status or category")
			}
			tok, err := a.token()
			if err != nil {
				return err
			}
			tasks, err := a.client().ListTasks(cmd.Context(), tok)
			if err != nil {
				return fmt.Errorf("list tasks: %w", err)
			}
			return printTasks(cmd.OutOrStdout(), report.SortTasks(tasks, key))
		},
	}
	cmd.Flags().StringVar(&sortBy, "sort", string(report.SortByDueDate), "sort by due_date, status or category")
	return cmd
}

func printTasks(w io.Writer, tasks []task.Task) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION\tCATEGORY\tDUE\tSTATUS")
	for _, t := range tasks {
		due := t.DueDate
		if len(due) > 10 {
			due = due[:10]
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Description, t.Category, due, t.Status)
	}
	return tw.Flush()
}

// draftFlags are the form fields shared by add and edit.
type draftFlags struct {
	name, description, category, due string
	suggestCategory, suggestDesc     bool
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "task name")
	cmd.Flags().StringVar(&f.description, "description", "", "task description")
	cmd.Flags().StringVar(&f.category, "category", "", "task category")
	cmd.Flags().StringVar(&f.due, "due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&f.suggestCategory, "suggest-category", false, "ask the AI service for a category")
	cmd.Flags().BoolVar(&f.suggestDesc, "suggest-description", false, "ask the AI service for a description")
}

// apply copies the flags the user set into the form.
func (f *draftFlags) apply(cmd *cobra.Command, form *edit.Form) error {
	fields := []struct {
		flag, field, value string
	}{
		{"name", "name", f.name},
		{"description", "description", f.description},
		{"category", "category", f.category},
		{"due", "due_date", f.due},
	}
	for _, fl := range fields {
		if !cmd.Flags().Changed(fl.flag) {
			continue
		}
		if err := form.Set(fl.field, fl.value); err != nil {
			return err
		}
	}
	return nil
}

func (f *draftFlags) suggest(ctx context.Context, a *app, form *edit.Form) error {
	if !f.suggestDesc && !f.suggestCategory {
		return nil
	}
	tok, err := a.token()
	if err != nil {
		return err
	}
	s := a.assist().Bind(tok)
	if f.suggestDesc {
		if err := form.SuggestDescription(ctx, s); err != nil {
			return err
		}
	}
	if f.suggestCategory {
		if err := form.SuggestCategory(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (f *draftFlags) submit(cmd *cobra.Command, a *app, form *edit.Form) error {
	ctx := cmd.Context()
	if err := f.apply(cmd, form); err != nil {
		return err
	}
	if err := f.suggest(ctx, a, form); err != nil {
		return err
	}
	tok, err := a.token()
	if err != nil {
		return err
	}
	mode := form.State().Mode
	t, err := form.Submit(ctx, a.client().Bind(tok))
	if err != nil {
		return err
	}
	verb := "Added"
	if mode == edit.ModeEdit {
		verb = "Updated"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s task %s: %s [%s]\n", verb, t.ID, t.Name, t.Category)
	return nil
}

func newAddCmd(a *app) *cobra.Command {
	var f draftFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.submit(cmd, a, edit.NewForm())
		},
	}
	f.register(cmd)
	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	var f draftFlags
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := a.token()
			if err != nil {
				return err
			}
			tasks, err := a.client().ListTasks(cmd.Context(), tok)
			if err != nil {
				return fmt.Errorf("list tasks: %w", err)
			}
			id := task.ID(args[0])
			form := edit.NewForm()
			found := false
			for _, t := range tasks {
				if t.ID == id {
					form.Edit(t)
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("edit %s: %w", id, task.ErrNotFound)
			}
			return f.submit(cmd, a, form)
		},
	}
	f.register(cmd)
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := a.token()
			if err != nil {
				return err
			}
			if err := a.client().DeleteTask(cmd.Context(), tok, task.ID(args[0])); err != nil {
				return fmt.Errorf("delete task %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", args[0])
			return nil
		},
	}
}

func newCompleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := a.token()
			if err != nil {
				return err
			}
			if err := a.client().CompleteTask(cmd.Context(), tok, task.ID(args[0])); err != nil {
				return fmt.Errorf("complete task %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed task %s\n", args[0])
			return nil
		},
	}
}
