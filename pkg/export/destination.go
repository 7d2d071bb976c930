package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aymanbagabas/go-osc52/v2"
)

// Destination receives exported text.
type Destination interface {
	// Describe returns a short human readable target ("file notes.md").
	Describe() string
	Write(ctx context.Context, text string) error
}

// File writes the text verbatim to Path, creating parent directories.
type File struct {
	Path string
}

// Describe implements Destination.
func (f File) Describe() string {
	return "file " + f.Path
}

// MIMEType labels the file by extension. It does not influence the content.
func (f File) MIMEType() string {
	return MIMEType(f.Path)
}

// Write implements Destination.
func (f File) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(f.Path) == "" {
		return fmt.Errorf("export: file path is required")
	}
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: mkdir %s: %w", dir, err)
	}
	if err := os.WriteFile(f.Path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", f.Path, err)
	}
	return nil
}

// Clipboard copies text to the system clipboard of the controlling terminal
// using the OSC 52 escape sequence.
type Clipboard struct {
	// Writer receives the escape sequence; os.Stderr when nil.
	Writer io.Writer
	// Tmux wraps the sequence for tmux passthrough.
	Tmux bool
}

// Describe implements Destination.
func (c Clipboard) Describe() string {
	return "clipboard"
}

// Write implements Destination.
func (c Clipboard) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	out := c.Writer
	if out == nil {
		out = os.Stderr
	}
	seq := osc52.New(text)
	if c.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(out); err != nil {
		return fmt.Errorf("export: clipboard: %w", err)
	}
	return nil
}

// MIMEType maps a file extension to the label shown to users.
func MIMEType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return "text/markdown"
	case ".xml":
		return "application/xml"
	default:
		return "text/plain"
	}
}

// DefaultFilename suggests "<kind>_context_<YYYYMMDD_HHMMSS><ext>".
func DefaultFilename(kind, ext string, now time.Time) string {
	if ext == "" {
		ext = ".txt"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return fmt.Sprintf("%s_context_%s%s", kind, now.Format("20060102_150405"), ext)
}
