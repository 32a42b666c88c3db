package main

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/quest/internal/presentation/graph"
	"github.com/aretw0/quest/pkg/session"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph <id>",
	Short: "Export the adventure graph as a Mermaid diagram",
	Long: `Outputs a Mermaid flowchart (graph TD) of the adventure. With --watch the diagram is
printed again every time the adventure changes in the store.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		id := args[0]
		out := cmd.OutOrStdout()
		if err := printGraph(cmd.Context(), a.Manager, id, out); err != nil {
			return err
		}

		watch, _ := cmd.Flags().GetBool("watch")
		if !watch {
			return nil
		}
		events, err := a.Watch(cmd.Context())
		if err != nil {
			return fmt.Errorf("store %q: %w", a.cfg.Store, err)
		}
		for changed := range events {
			if changed != id {
				continue
			}
			a.Logger().Debug("adventure changed", "adventure_id", id)
			if err := printGraph(cmd.Context(), a.Manager, id, out); err != nil {
				a.Logger().Warn("failed to render graph", "adventure_id", id, "err", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().BoolP("watch", "w", false, "Print the diagram again on every change")
}

func printGraph(ctx context.Context, mgr *session.Manager, id string, out io.Writer) error {
	return mgr.Do(ctx, id, func(_ context.Context, sess *session.Session) error {
		fmt.Fprint(out, graph.GenerateMermaid(sess.Adventure(), nil))
		return nil
	})
}
