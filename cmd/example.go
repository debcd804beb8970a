package cmd

import (
	"github.com/jywlabs/promptbuilder/internal/session"
	"github.com/spf13/cobra"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Load the example draft",
	Long: `Replace every section with a fixed example (a travel guide recommending
lesser-known hikes near San Francisco). The generated prompt and the
active view are left alone; run 'promptbuilder generate' afterwards.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()
		return runExample(a)
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear every section and the generated prompt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()
		return runClear(a)
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(clearCmd)
}

func runExample(a *app) error {
	if _, err := a.store.Update(func(s *session.Session) error {
		s.LoadExample()
		return nil
	}); err != nil {
		return err
	}
	a.printer.ExampleLoaded()
	return nil
}

func runClear(a *app) error {
	if _, err := a.store.Update(func(s *session.Session) error {
		s.ClearAll()
		return nil
	}); err != nil {
		return err
	}
	a.printer.Cleared()
	return nil
}
