package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/jywlabs/promptbuilder/internal/draft"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <section>",
	Short: "Edit one section in $EDITOR",
	Long: `Open $EDITOR (or $VISUAL) with the current value of a section.
Save and quit to store the new value. The two comment lines added at the
top are dropped; everything else is stored as written.

Example:
  promptbuilder edit context`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, err := draft.ParseField(args[0])
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		s, err := a.store.Load()
		if err != nil {
			return err
		}
		sec, _ := draft.SectionFor(field)

		content, err := openEditorForInput(sec, s.Draft.Get(field))
		if err != nil {
			return err
		}
		return runSet(a, field, content)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func openEditorForInput(sec draft.Section, current string) (string, error) {
	tmpfile, err := os.CreateTemp("", "promptbuilder-"+string(sec.Field)+"-*.md")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpfile.Name())

	header := editorHeader(sec)
	if _, err := tmpfile.WriteString(header + current); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	tmpfile.Close()

	editor := findEditor()
	if editor == "" {
		return "", fmt.Errorf("no editor found - set $EDITOR environment variable")
	}

	editorCmd := exec.Command(editor, tmpfile.Name())
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr
	if err := editorCmd.Run(); err != nil {
		return "", fmt.Errorf("editor failed: %w", err)
	}

	content, err := os.ReadFile(tmpfile.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return stripHeader(string(content), header), nil
}

func findEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	for _, e := range []string{"nvim", "nano", "vim", "vi"} {
		if _, err := exec.LookPath(e); err == nil {
			return e
		}
	}
	return ""
}

func editorHeader(sec draft.Section) string {
	return fmt.Sprintf("<!-- %s: %s -->\n<!-- %s -->\n", sec.Title, sec.Description, sec.Placeholder)
}

// stripHeader removes the header lines written by openEditorForInput from
// the top of content. Any other comment lines belong to the value.
func stripHeader(content, header string) string {
	for _, line := range strings.SplitAfter(header, "\n") {
		if line == "" {
			continue
		}
		content = strings.TrimPrefix(content, line)
	}
	return content
}
