package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stored adventures",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		advs, err := a.Manager.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list adventures: %w", err)
		}
		if len(advs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No adventures found.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tNODES")
		for _, adv := range advs {
			fmt.Fprintf(w, "%s\t%s\t%d\n", adv.ID, adv.Title, len(adv.Nodes))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
