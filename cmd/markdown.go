package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// printMarkdown prints md to w, rendered for the terminal when w is one.
func printMarkdown(w io.Writer, md string) {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		out, err := terminalMarkdown(md, config.GlamourStyle)
		if err == nil {
			fmt.Fprint(w, out)
			return
		}
		logger.Debug().Err(err).Msg("cannot render markdown, printing it raw")
	}
	fmt.Fprint(w, md)
}

// terminalMarkdown renders md with a glamour standard style.
func terminalMarkdown(md, style string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
