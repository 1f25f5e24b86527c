package cli

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"pask/internal/period"
	"pask/internal/session"
	"pask/internal/task"
	"pask/internal/ui"
)

func (a *app) listCmd(k period.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   k.String(),
		Short: fmt.Sprintf("Manage the %s list", k),
	}
	cmd.AddCommand(
		a.addCmd(k),
		a.deleteCmd(k),
		a.completeCmd(k, true),
		a.completeCmd(k, false),
		a.displayCmd(k),
		a.tuiCmd(k),
	)
	return cmd
}

func (a *app) addCmd(k period.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   "add <desc> [start] [end]",
		Short: "Add a task, optionally with HH:MM start and end times",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end := argAt(args, 1), argAt(args, 2)
			t, err := task.New(args[0], start, end)
			if err != nil {
				return fmt.Errorf("invalid task: %w", err)
			}
			return a.withList(k, func(l *task.List) (bool, error) {
				l.Add(t)
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", t)
				return true, nil
			})
		},
	}
}

func (a *app) deleteCmd(k period.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <desc>",
		Short: "Delete the task with this description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withList(k, func(l *task.List) (bool, error) {
				if !l.DeleteByDesc(args[0]) {
					fmt.Fprintf(cmd.OutOrStdout(), "No task %q in the %s list\n", args[0], k)
					return false, nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", args[0])
				return true, nil
			})
		},
	}
}

// completeCmd builds "complete" or, when done is false, "incomplete". Both
// set the flag rather than toggle it.
func (a *app) completeCmd(k period.Kind, done bool) *cobra.Command {
	use, short := "complete", "Mark the task with this description as completed"
	if !done {
		use, short = "incomplete", "Mark the task with this description as not completed"
	}
	return &cobra.Command{
		Use:   use + " <desc>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withList(k, func(l *task.List) (bool, error) {
				var found bool
				if done {
					found = l.CompleteByDesc(args[0])
				} else {
					found = l.IncompleteByDesc(args[0])
				}
				if !found {
					fmt.Fprintf(cmd.OutOrStdout(), "No task %q in the %s list\n", args[0], k)
					return false, nil
				}
				return true, nil
			})
		},
	}
}

func (a *app) displayCmd(k period.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   "display",
		Short: "Print the list in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withList(k, func(l *task.List) (bool, error) {
				for _, line := range l.Lines() {
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
				return false, nil
			})
		},
	}
}

func (a *app) tuiCmd(k period.Kind) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Edit the list interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withList(k, func(l *task.List) (bool, error) {
				machine := session.New(l, session.NewKeymap(a.cfg.Keys))
				var err error
				if plain || !a.stdinIsTerminal() {
					err = session.Loop(ui.NewPlain(a.stdin, cmd.OutOrStdout()), machine)
				} else {
					err = ui.Run(machine)
				}
				if err != nil {
					return false, err
				}
				return true, nil
			})
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "read keys from stdin and print plain frames")
	return cmd
}

// withList loads the list for k, runs fn and saves the list when fn reports
// a change. A corrupt list aborts the command instead of starting empty.
func (a *app) withList(k period.Kind, fn func(l *task.List) (bool, error)) error {
	st, err := a.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	name := period.EntryName(k, a.now())
	l, err := task.Load(st, name)
	if err != nil {
		if errors.Is(err, task.ErrCorrupt) {
			return fmt.Errorf("%w (fix or remove it to start over)", err)
		}
		return err
	}
	log.Printf("loaded %s: %d tasks", name, l.Len())

	changed, err := fn(l)
	if err != nil || !changed {
		return err
	}
	if err := l.Save(st, name); err != nil {
		return err
	}
	log.Printf("saved %s: %d tasks", name, l.Len())
	return nil
}

func (a *app) stdinIsTerminal() bool {
	f, ok := a.stdin.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
