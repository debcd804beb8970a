package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jywlabs/promptbuilder/internal/draft"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Fill every section interactively, then generate",
	Long: `Walk through the six sections one at a time.

For each section, type or paste the text and finish with a line holding
a single "." (or end of input). Finishing right away keeps the current
value; a single "-" clears it. After the last section the prompt is
generated and shown.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()
		return runBuild(a, cmd.InOrStdin())
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(a *app, in io.Reader) error {
	s, err := a.store.Load()
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	sections := draft.Sections()
	for i, sec := range sections {
		current := s.Draft.Get(sec.Field)
		a.display.ShowQuestion(i+1, len(sections), sec, current)

		value, answered, err := readAnswer(scanner)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", sec.Title, err)
		}
		if answered {
			if err := s.SetField(sec.Field, value); err != nil {
				return err
			}
		}
		fmt.Fprintln(a.out)
	}

	s.Generate()
	if err := a.store.Save(s); err != nil {
		return err
	}

	a.printer.Generated(s.Draft.Filled())
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, a.display.RenderOutput(s.Assembled))
	return nil
}

// readAnswer reads lines up to a lone "." or end of input. It reports
// answered=false when nothing was entered, and "-" alone clears.
func readAnswer(scanner *bufio.Scanner) (value string, answered bool, err error) {
	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "." {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", false, err
	}

	if len(lines) == 0 {
		return "", false, nil
	}
	if len(lines) == 1 && strings.TrimSpace(lines[0]) == "-" {
		return "", true, nil
	}
	return strings.Join(lines, "\n"), true, nil
}

