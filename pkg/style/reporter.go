package style

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const (
	bannerTitle   = "ContextHub"
	bannerTagline = "Unified Configuration for AI Coding Assistants"
	bannerTools   = "Setting up symlinks for Claude Code, Cursor, GitHub Copilot, and more..."
)

// Reporter writes the user-facing status lines of a run. Diagnostics go
// through pkg/logging instead.
type Reporter struct {
	out   io.Writer
	color bool
	// Width wraps rendered markdown; 0 leaves wrapping to glamour.
	Width int
}

// NewReporter creates a reporter. FormatAuto colors output only when out
// is a color-capable terminal.
func NewReporter(out io.Writer, format Format) *Reporter {
	if format == FormatAuto {
		format = FormatText
		if f, ok := out.(*os.File); ok {
			format = DetectFormat(f)
		}
	}
	return &Reporter{out: out, color: format == FormatTerminal}
}

// Colored reports whether the reporter emits styled output.
func (r *Reporter) Colored() bool {
	return r.color
}

// Info prints an [INFO] line.
func (r *Reporter) Info(format string, args ...interface{}) {
	r.status(pterm.Info, "Info", format, args...)
}

// Success prints a [SUCCESS] line.
func (r *Reporter) Success(format string, args ...interface{}) {
	r.status(pterm.Success, "Success", format, args...)
}

// Warning prints a [WARNING] line.
func (r *Reporter) Warning(format string, args ...interface{}) {
	r.status(pterm.Warning, "Warning", format, args...)
}

// Error prints an [ERROR] line.
func (r *Reporter) Error(format string, args ...interface{}) {
	r.status(pterm.Error, "Error", format, args...)
}

// Blank prints an empty line.
func (r *Reporter) Blank() {
	fmt.Fprintln(r.out)
}

// Styled renders text with the named style when color is enabled.
func (r *Reporter) Styled(name, text string) string {
	if !r.color {
		return text
	}
	return GetStyle(name).Render(text)
}

func (r *Reporter) status(printer pterm.PrefixPrinter, styleName, format string, args ...interface{}) {
	line := Label(printer) + " " + fmt.Sprintf(format, args...)
	fmt.Fprintln(r.out, r.Styled(styleName, line))
}

// Label is the bracketed tag of a pterm prefix printer, e.g. "[INFO]".
func Label(printer pterm.PrefixPrinter) string {
	return "[" + strings.TrimSpace(printer.Prefix.Text) + "]"
}

// Banner prints the product banner. Colored output uses pterm block
// letters; plain output keeps to a single title line.
func (r *Reporter) Banner() {
	if r.color {
		letters := putils.LettersFromStringWithStyle(bannerTitle, pterm.NewStyle(pterm.FgCyan))
		if art, err := pterm.DefaultBigText.WithLetters(letters).Srender(); err == nil {
			fmt.Fprint(r.out, art)
		} else {
			fmt.Fprintln(r.out, r.Styled("Banner", bannerTitle))
		}
	} else {
		fmt.Fprintln(r.out, bannerTitle)
	}
	fmt.Fprintln(r.out, r.Styled("Tagline", bannerTagline))
	fmt.Fprintln(r.out, r.Styled("Subtitle", bannerTools))
	fmt.Fprintln(r.out)
}

// Markdown prints a markdown document, rendered through glamour when color
// is enabled and flattened to plain text otherwise.
func (r *Reporter) Markdown(md string) {
	if r.color {
		if rendered, err := r.renderMarkdown(md); err == nil {
			fmt.Fprint(r.out, rendered)
			return
		}
	}
	fmt.Fprint(r.out, PlainMarkdown(md))
}

func (r *Reporter) renderMarkdown(md string) (string, error) {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}

var (
	headingPrefix = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	inlineCode    = regexp.MustCompile("`([^`]*)`")
	emphasis      = regexp.MustCompile(`\*\*([^*]+)\*\*`)
)

// PlainMarkdown strips heading markers, emphasis and inline code ticks so
// guidance reads naturally on dumb terminals and in logs.
func PlainMarkdown(md string) string {
	out := headingPrefix.ReplaceAllString(md, "")
	out = emphasis.ReplaceAllString(out, "$1")
	out = inlineCode.ReplaceAllString(out, "$1")
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}
