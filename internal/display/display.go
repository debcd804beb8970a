package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/jywlabs/promptbuilder/internal/draft"
	"github.com/jywlabs/promptbuilder/internal/session"
)

// EmptyOutput is shown in the output view when nothing has been generated.
const EmptyOutput = "Build your prompt in the Builder tab"

// Display renders the builder and output views to a terminal.
type Display struct {
	out   io.Writer
	width int
}

// NewDisplay creates a display sized to the current terminal.
func NewDisplay(out io.Writer) *Display {
	return &Display{out: out, width: GetTerminalWidth()}
}

// NewDisplayWidth creates a display with a fixed width.
func NewDisplayWidth(out io.Writer, width int) *Display {
	if width < 20 {
		width = 20
	}
	return &Display{out: out, width: width}
}

// ShowSession renders the header, tabs, active view and footer.
func (d *Display) ShowSession(s *session.Session) {
	fmt.Fprintln(d.out, d.RenderHeader(s.MenuOpen))
	fmt.Fprintln(d.out, d.RenderTabs(s.View))
	fmt.Fprintln(d.out)
	if s.View == session.ViewOutput {
		fmt.Fprintln(d.out, d.RenderOutput(s.Assembled))
	} else {
		fmt.Fprintln(d.out, d.RenderBuilder(s.Draft))
	}
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, d.RenderFooter())
}

// RenderHeader renders the title bar and, when open, the menu.
func (d *Display) RenderHeader(menuOpen bool) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("AI Prompt Builder"))
	b.WriteString("  ")
	b.WriteString(StyleMuted.Render("Create structured, effective prompts"))
	b.WriteString("\n")
	b.WriteString(StyleMuted.Render("[example] Example   [clear] Clear   [menu] " + menuGlyph(menuOpen)))

	if menuOpen {
		b.WriteString("\n")
		b.WriteString(StyleAccent.Render("  > Load Example   (promptbuilder menu example)"))
		b.WriteString("\n")
		b.WriteString(StyleAccent.Render("  > Clear All      (promptbuilder menu clear)"))
	}
	return BoxStyle(ColorInfo, d.width).Render(b.String())
}

func menuGlyph(open bool) string {
	if open {
		return "x"
	}
	return "≡"
}

// RenderTabs renders the Builder/Output toggle.
func (d *Display) RenderTabs(v session.View) string {
	builder, output := StyleTabInactive, StyleTabInactive
	if v == session.ViewOutput {
		output = StyleTabActive
	} else {
		builder = StyleTabActive
	}
	return builder.Render("Builder") + " " + output.Render("Output")
}

// RenderBuilder renders one block per section with its current value.
func (d *Display) RenderBuilder(dr draft.Draft) string {
	blocks := []string{StyleTip.Render("💡 ") + StyleBold.Render("Prompt Components")}
	for _, sec := range draft.Sections() {
		var b strings.Builder
		b.WriteString(StyleBold.Render(sec.Title))
		b.WriteString("  ")
		b.WriteString(StyleMuted.Render("[" + sec.Tip + "]"))
		b.WriteString("\n")
		b.WriteString(StyleMuted.Render(sec.Description))
		b.WriteString("\n")
		if v := dr.Get(sec.Field); strings.TrimSpace(v) != "" {
			b.WriteString(v)
		} else {
			b.WriteString(StyleMuted.Italic(true).Render(sec.Placeholder))
		}
		blocks = append(blocks, SectionStyle(sec.Color, d.width).Render(b.String()))
	}
	blocks = append(blocks, StyleMuted.Render("Run 'promptbuilder generate' to assemble the prompt."))
	return strings.Join(blocks, "\n")
}

// RenderOutput renders the generated prompt, or the empty-state placeholder.
// The prompt text itself is written unstyled so it can be copied as is.
func (d *Display) RenderOutput(assembled string) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render("Generated Prompt"))
	if assembled == "" {
		b.WriteString("\n\n")
		b.WriteString(StyleTip.Render("💡"))
		b.WriteString("\n")
		b.WriteString(StyleMuted.Render(EmptyOutput))
		return b.String()
	}

	b.WriteString("  ")
	b.WriteString(StyleSuccess.Render("[copy] Copy"))
	b.WriteString(" ")
	b.WriteString(StyleAccent.Render("[save] Save"))
	b.WriteString("\n")
	rule := StyleMuted.Render(strings.Repeat("─", d.width))
	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(assembled)
	b.WriteString("\n")
	b.WriteString(rule)
	return b.String()
}

// RenderFooter renders the assistant template call to action.
func (d *Display) RenderFooter() string {
	var b strings.Builder
	b.WriteString(StyleAccent.Bold(true).Render("🤖 LLM Assistant Template"))
	b.WriteString("\n")
	b.WriteString("Transform any LLM into your personal prompt-building assistant. This template creates an interactive session that guides you through each component with questions, examples, and expert advice.")
	b.WriteString("\n")
	b.WriteString(StyleAccent.Render("promptbuilder template") + StyleMuted.Render("  copies it; paste into ChatGPT, Claude, Gemini, or any AI chat"))
	return BoxStyle(ColorAccent, d.width).Render(b.String())
}

// ShowSuccess displays a one-line success message.
func (d *Display) ShowSuccess(msg string) {
	fmt.Fprintln(d.out, StyleSuccess.Render("[ok]")+" "+msg)
}

// ShowError displays a one-line error message.
func (d *Display) ShowError(msg string) {
	fmt.Fprintln(d.out, StyleError.Render("[!!]")+" "+msg)
}

// ShowInfo displays an info message.
func (d *Display) ShowInfo(format string, args ...interface{}) {
	fmt.Fprintf(d.out, format, args...)
}

// ShowQuestion renders a section prompt for the interactive builder.
func (d *Display) ShowQuestion(step, total int, sec draft.Section, current string) {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("%d/%d  %s", step, total, sec.Title)))
	b.WriteString("  ")
	b.WriteString(StyleMuted.Render("[" + sec.Tip + "]"))
	b.WriteString("\n")
	b.WriteString(sec.Description)
	b.WriteString("\n")
	b.WriteString(StyleMuted.Render(sec.Placeholder))
	if strings.TrimSpace(current) != "" {
		b.WriteString("\n")
		b.WriteString(StyleMuted.Render("Current value kept if you enter nothing."))
	}
	fmt.Fprintln(d.out, SectionStyle(sec.Color, d.width).Render(b.String()))
}
