package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pask/internal/period"
)

func (a *app) listsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lists [goals|day|week|month]",
		Short: "Show the stored task lists, optionally only those of one period",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keep := func(string) bool { return true }
			if len(args) == 1 {
				k, err := period.Parse(args[0])
				if err != nil {
					return err
				}
				keep = func(name string) bool { return period.Owns(k, name) }
			}

			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			names, err := st.Names()
			if err != nil {
				return err
			}
			var shown int
			for _, n := range names {
				if !keep(n) {
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), n)
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No task lists yet.")
			}
			return nil
		},
	}
}
