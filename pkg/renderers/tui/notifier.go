package tui

import (
	"fmt"
	"io"
	"os"
)

// Notifier prints themed one-line notices. It satisfies export.Notifier.
type Notifier struct {
	out   io.Writer
	theme Theme
}

// NewNotifier writes to out (stderr when nil).
func NewNotifier(out io.Writer, theme Theme) *Notifier {
	if out == nil {
		out = os.Stderr
	}
	return &Notifier{out: out, theme: theme}
}

// Warn prints a warning.
func (n *Notifier) Warn(msg string) {
	fmt.Fprintln(n.out, n.theme.WarnLine(msg))
}

// Info prints an informational notice.
func (n *Notifier) Info(msg string) {
	fmt.Fprintln(n.out, n.theme.InfoLine(msg))
}

// Success prints a confirmation.
func (n *Notifier) Success(msg string) {
	fmt.Fprintln(n.out, n.theme.SuccessLine(msg))
}

// Error prints an error.
func (n *Notifier) Error(msg string) {
	fmt.Fprintln(n.out, n.theme.ErrorLine(msg))
}
