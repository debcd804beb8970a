package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jywlabs/promptbuilder/internal/draft"
	"github.com/jywlabs/promptbuilder/internal/session"
	"github.com/spf13/cobra"
)

var setFileFlag string

var setCmd = &cobra.Command{
	Use:   "set <section> [value...]",
	Short: "Set one section",
	Long: `Set the value of one section. Any text is accepted.

Sections: role, task, context, reasoning, outputFormat, stopConditions
(titles such as "Output Format" or output-format also work).

The value comes from the remaining arguments, from --file, or from stdin
when the value is "-". Setting an empty value clears the section.

Examples:
  promptbuilder set role "Act as an expert data scientist"
  promptbuilder set output-format --file format.md
  pbpaste | promptbuilder set task -`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, err := draft.ParseField(args[0])
		if err != nil {
			return err
		}
		value, err := readValue(args[1:], setFileFlag, cmd.InOrStdin())
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()
		return runSet(a, field, value)
	},
}

func init() {
	setCmd.Flags().StringVarP(&setFileFlag, "file", "f", "", "Read the value from a file")
	rootCmd.AddCommand(setCmd)
}

func readValue(args []string, file string, stdin io.Reader) (string, error) {
	if file != "" {
		if len(args) > 0 {
			return "", fmt.Errorf("pass a value or --file, not both")
		}
		content, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		return string(content), nil
	}
	if len(args) == 1 && args[0] == "-" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(content), nil
	}
	return strings.Join(args, " "), nil
}

func runSet(a *app, field draft.Field, value string) error {
	if _, err := a.store.Update(func(s *session.Session) error {
		return s.SetField(field, value)
	}); err != nil {
		return err
	}

	title := string(field)
	if sec, ok := draft.SectionFor(field); ok {
		title = sec.Title
	}
	a.printer.FieldSet(title, len([]rune(strings.TrimSpace(value))))
	return nil
}
