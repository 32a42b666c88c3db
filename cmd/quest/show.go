package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/editor"
	"github.com/aretw0/quest/pkg/session"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the nodes of an adventure and its structural warnings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		return a.Manager.Do(cmd.Context(), args[0], func(_ context.Context, sess *session.Session) error {
			return printAdventure(cmd.OutOrStdout(), sess)
		})
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func printAdventure(out io.Writer, sess *session.Session) error {
	adv := sess.Adventure()
	fmt.Fprintf(out, "%s (%s)\n", adv.Title, adv.ID)
	if adv.Description != "" {
		fmt.Fprintln(out, adv.Description)
	}
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tTITLE\tEDGES")
	for _, n := range sess.Nodes() {
		marker := ""
		if n.NodeID() == adv.StartNodeID {
			marker = " *"
		}
		fmt.Fprintf(w, "%s%s\t%s\t%s\t%d\n", n.NodeID(), marker, domain.TypeLabel(n), domain.Title(n), len(domain.OutgoingEdges(n)))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	printReport(out, sess.Diagnose())
	return nil
}

func printReport(out io.Writer, r editor.Report) {
	if r.Clean() {
		return
	}
	fmt.Fprintln(out, "\nWarnings:")
	if r.MissingStart {
		fmt.Fprintln(out, "  start node is missing")
	}
	for _, e := range r.Dangling {
		fmt.Fprintf(out, "  %s.%s points at missing node %s\n", e.From, e.Field, e.Target)
	}
	for _, e := range r.Unlinked {
		fmt.Fprintf(out, "  %s.%s is not linked\n", e.From, e.Field)
	}
	for _, id := range r.Orphans {
		fmt.Fprintf(out, "  %s has no inbound edge\n", id)
	}
	for _, id := range r.Unreachable {
		fmt.Fprintf(out, "  %s is unreachable from the start node\n", id)
	}
}
