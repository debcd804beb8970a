package output

import (
	"fmt"
	"io"
)

// Printer handles plain status lines for the CLI actions.
type Printer struct {
	w io.Writer
}

// New creates a new Printer that writes to the given writer.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// FieldSet prints the section that was updated.
// Format: "Set Role (12 chars)" or "Cleared Role"
func (p *Printer) FieldSet(title string, length int) {
	switch {
	case length == 0:
		fmt.Fprintf(p.w, "Cleared %s\n", title)
	case length == 1:
		fmt.Fprintf(p.w, "Set %s (1 char)\n", title)
	default:
		fmt.Fprintf(p.w, "Set %s (%d chars)\n", title, length)
	}
}

// Generated prints the generation result.
// Format: "✓ Prompt generated (N sections)"
func (p *Printer) Generated(sections int) {
	switch sections {
	case 0:
		fmt.Fprintf(p.w, "✓ Prompt generated (empty, fill in a section first)\n")
	case 1:
		fmt.Fprintf(p.w, "✓ Prompt generated (1 section)\n")
	default:
		fmt.Fprintf(p.w, "✓ Prompt generated (%d sections)\n", sections)
	}
}

// Cleared prints the clear-all confirmation.
func (p *Printer) Cleared() {
	fmt.Fprintf(p.w, "✓ All sections cleared\n")
}

// ExampleLoaded prints the load-example confirmation.
func (p *Printer) ExampleLoaded() {
	fmt.Fprintf(p.w, "✓ Example loaded (run 'promptbuilder generate' to assemble it)\n")
}

// ViewSwitched prints the active view.
// Format: "View: output"
func (p *Printer) ViewSwitched(view string) {
	fmt.Fprintf(p.w, "View: %s\n", view)
}

// Copied prints that text was handed to the clipboard.
// Format: "✓ Copied <what> to clipboard"
func (p *Printer) Copied(what string) {
	fmt.Fprintf(p.w, "✓ Copied %s to clipboard\n", what)
}

// Saved prints where the prompt was written.
// Format: "✓ Saved to <path>"
func (p *Printer) Saved(path string) {
	fmt.Fprintf(p.w, "✓ Saved to %s\n", path)
}

// NothingToExport prints the hint shown when no prompt has been generated.
func (p *Printer) NothingToExport() {
	fmt.Fprintf(p.w, "Nothing generated yet. Fill in sections and run 'promptbuilder generate'.\n")
}
