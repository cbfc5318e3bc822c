package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// terminal asks questions on stderr and reads the answers from stdin.
type terminal struct {
	r   *bufio.Reader
	w   io.Writer
	yes bool // confirm everything without asking
}

func newTerminal(yes bool) *terminal {
	return &terminal{r: bufio.NewReader(stdin), w: os.Stderr, yes: yes}
}

// PromptText reads one line. An empty line accepts def, end of input cancels.
func (t *terminal) PromptText(message, def string) (string, bool) {
	if def != "" {
		fmt.Fprintf(t.w, "%s [%s] ", message, def)
	} else {
		fmt.Fprintf(t.w, "%s ", message)
	}
	line, err := t.r.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(t.w)
		return "", false
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, true
	}
	return line, true
}

func (t *terminal) Confirm(message string) bool {
	if t.yes {
		return true
	}
	fmt.Fprintf(t.w, "%s [y/N] ", message)
	line, _ := t.r.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// answer is a Prompter that replies with a value given on the command line.
type answer struct {
	text string
	yes  bool
}

func (a answer) PromptText(_, _ string) (string, bool) { return a.text, true }
func (a answer) Confirm(string) bool                   { return a.yes }

// browser opens links with the platform URL handler.
type browser struct{}

func (browser) Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("could not open %q: %w", url, err)
	}
	return cmd.Process.Release()
}
