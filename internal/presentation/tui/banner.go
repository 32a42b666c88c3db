package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the quest banner followed by the adventure title.
func PrintBanner(w io.Writer, title string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"   ___                  _   ", "#818cf8"},
		{"  / _ \\ _   _  ___  ___| |_ ", "#a78bfa"},
		{" | | | | | | |/ _ \\/ __| __|", "#c084fc"},
		{" | |_| | |_| |  __/\\__ \\ |_ ", "#e879f9"},
		{"  \\__\\_\\\\__,_|\\___||___/\\__|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	if title != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, termenv.String("  "+title).Bold())
	}
	fmt.Fprintln(w)
}
