package cmd

import (
	"fmt"

	"github.com/jywlabs/promptbuilder/internal/session"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Assemble the prompt and switch to the output view",
	Long: `Assemble the filled sections, in order, into one prompt and show it.

Blank sections are skipped. The generated prompt reflects the sections as
of this command; later edits need another generate.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()
		return runGenerate(a)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(a *app) error {
	s, err := a.store.Update(func(s *session.Session) error {
		s.Generate()
		return nil
	})
	if err != nil {
		return err
	}

	a.printer.Generated(s.Draft.Filled())
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, a.display.RenderOutput(s.Assembled))
	return nil
}
