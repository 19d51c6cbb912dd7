// Package render provides terminal output for the coderev CLI. Review
// feedback is markdown: when writing to a terminal it is rendered through
// glamour, otherwise it is printed as plain text so output stays pipeable.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// defaultWidth is used when the output width cannot be detected.
const defaultWidth = 100

// Options configures the renderer.
type Options struct {
	// Output is where to write output. Defaults to os.Stdout.
	Output io.Writer

	// ColorEnabled controls styled output. When false, everything is
	// plain text.
	ColorEnabled bool

	// Width is the wrap width for markdown rendering. Zero means detect
	// from the terminal, falling back to defaultWidth.
	Width int
}

// DefaultOptions returns options suited to the current stdout.
func DefaultOptions() Options {
	return Options{
		Output:       os.Stdout,
		ColorEnabled: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// Renderer handles output display for code review.
type Renderer struct {
	output io.Writer
	color  bool
	width  int
}

// New creates a Renderer from the options.
func New(opts Options) *Renderer {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	width := opts.Width
	if width == 0 {
		width = detectWidth()
	}

	return &Renderer{
		output: opts.Output,
		color:  opts.ColorEnabled,
		width:  width,
	}
}

// RenderReview displays the model's review feedback.
func (r *Renderer) RenderReview(content string) error {
	if !r.color {
		_, err := fmt.Fprintln(r.output, content)
		return err
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(r.width),
	)
	if err != nil {
		// Styled rendering is best effort
		_, werr := fmt.Fprintln(r.output, content)
		return werr
	}

	rendered, err := tr.Render(content)
	if err != nil {
		_, werr := fmt.Fprintln(r.output, content)
		return werr
	}

	_, err = fmt.Fprint(r.output, rendered)
	return err
}

func detectWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}
