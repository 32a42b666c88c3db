package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/quest/internal/presentation/tui"
	"github.com/aretw0/quest/pkg/play"
	"github.com/aretw0/quest/pkg/session"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var playCmd = &cobra.Command{
	Use:   "play <id>",
	Short: "Play an adventure in the terminal",
	Long: `Plays an adventure from its start node. Type the number of a choice to follow it,
"r" to restart, "g <node-id>" to jump to a node and "q" to quit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		plain, _ := cmd.Flags().GetBool("plain")
		render := tui.Renderer(tui.PlainRenderer)
		if !plain && term.IsTerminal(int(os.Stdout.Fd())) {
			render = tui.NewRenderer()
		}

		sess, err := a.Manager.Open(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !plain {
			tui.PrintBanner(cmd.OutOrStdout(), sess.Adventure().Title)
		}
		return runPlay(cmd.Context(), sess, cmd.InOrStdin(), cmd.OutOrStdout(), render)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().Bool("plain", false, "Print raw markdown without banner or styling")
}

// runPlay drives the playback loop until the input is exhausted or the player quits.
func runPlay(ctx context.Context, sess *session.Session, in io.Reader, out io.Writer, render tui.Renderer) error {
	sess.Restart(ctx)
	scanner := bufio.NewScanner(in)

	for {
		var screen string
		if node, ok := sess.CurrentNode(); ok {
			screen = tui.NodeMarkdown(node) + "\n" + tui.ChoicesMarkdown(sess.Choices())
		} else {
			screen = "_Fin de la aventura._ Escribe `r` para reiniciar o `q` para salir.\n"
		}
		rendered, err := render(screen)
		if err != nil {
			return fmt.Errorf("failed to render node: %w", err)
		}
		fmt.Fprint(out, rendered)

		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())

		switch {
		case input == "q" || input == "quit" || input == "exit":
			return nil
		case input == "r":
			sess.Restart(ctx)
		case strings.HasPrefix(input, "g "):
			if _, err := sess.Navigate(ctx, strings.TrimSpace(input[2:])); err != nil {
				fmt.Fprintf(out, "%v\n", err)
			}
		default:
			n, err := strconv.Atoi(input)
			if err != nil {
				fmt.Fprintf(out, "Unknown command %q\n", input)
				continue
			}
			if _, err := sess.Choose(ctx, n-1); err != nil {
				if errors.Is(err, play.ErrNoSuchChoice) || errors.Is(err, play.ErrEnded) {
					fmt.Fprintf(out, "%v\n", err)
					continue
				}
				return err
			}
		}
	}
}
