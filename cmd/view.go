package cmd

import (
	"fmt"

	"github.com/jywlabs/promptbuilder/internal/session"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:       "view [builder|output]",
	Short:     "Show or switch the active view",
	Long:      `With no argument, print the active view. With one, switch to it and show the session.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(session.ViewBuilder), string(session.ViewOutput)},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		if len(args) == 0 {
			s, err := a.store.Load()
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, s.View)
			return nil
		}
		return runView(a, args[0])
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(a *app, name string) error {
	v, err := session.ParseView(name)
	if err != nil {
		return err
	}
	s, err := a.store.Update(func(s *session.Session) error {
		return s.SetView(v)
	})
	if err != nil {
		return err
	}

	a.printer.ViewSwitched(string(s.View))
	fmt.Fprintln(a.out)
	a.display.ShowSession(s)
	return nil
}
