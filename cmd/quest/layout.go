package main

import (
	"context"
	"encoding/json"

	"github.com/aretw0/quest/pkg/session"
	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout <id>",
	Short: "Print the computed map positions of an adventure as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		return a.Manager.Do(cmd.Context(), args[0], func(_ context.Context, sess *session.Session) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(sess.Layout())
		})
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}
