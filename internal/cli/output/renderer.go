// Package output provides the styled writer used for non-table CLI
// output: the file-info banner, footers, and warnings.
package output

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Mode selects how output is rendered.
type Mode string

// Output modes.
const (
	// ModeAuto picks text on a color terminal and plain otherwise.
	ModeAuto Mode = "auto"
	// ModeText renders with colors.
	ModeText Mode = "text"
	// ModePlain renders without styling, for pipes and scripts.
	ModePlain Mode = "plain"
)

// Renderer writes styled output to a destination.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles *Styles
}

// NewRenderer creates a renderer. ModeAuto resolves against the output
// destination: a non-TTY or NO_COLOR environment downgrades to plain.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" || mode == ModeAuto {
		mode = detectMode(out)
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		styles: NewStyles(mode == ModeText),
	}
}

func detectMode(w io.Writer) Mode {
	o := termenv.NewOutput(w)
	if o.EnvNoColor() || o.ColorProfile() == termenv.Ascii {
		return ModePlain
	}
	return ModeText
}

// EffectiveMode returns the resolved output mode.
func (r *Renderer) EffectiveMode() Mode { return r.mode }

// Styles returns the style set matching the output mode.
func (r *Renderer) Styles() *Styles { return r.styles }

// Writer returns the underlying output writer.
func (r *Renderer) Writer() io.Writer { return r.out }

// Println writes a line to the output.
func (r *Renderer) Println(args ...any) {
	_, _ = fmt.Fprintln(r.out, args...)
}

// Printf writes formatted text to the output.
func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Warnf writes a styled warning line to the error stream.
func (r *Renderer) Warnf(format string, args ...any) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Warning.Render(fmt.Sprintf(format, args...)))
}
