package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
)

var plainOutput = flag.Bool("plain", false, "Print markdown reports as-is instead of rendering them for the terminal")

// printMarkdown renders a markdown report on stdout.
func printMarkdown(md string) {
	if *plainOutput {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
