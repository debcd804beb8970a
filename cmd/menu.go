package cmd

import (
	"fmt"

	"github.com/jywlabs/promptbuilder/internal/session"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Toggle the compact menu",
	Long: `Toggle the compact menu and print the header.

The menu offers the same Example and Clear actions as the header; running
one of them through the menu also closes it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()
		return runMenu(a, (*session.Session).ToggleMenu)
	},
}

var menuExampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Load the example draft and close the menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()
		if err := runMenu(a, (*session.Session).MenuLoadExample); err != nil {
			return err
		}
		a.printer.ExampleLoaded()
		return nil
	},
}

var menuClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear every section and close the menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()
		if err := runMenu(a, (*session.Session).MenuClearAll); err != nil {
			return err
		}
		a.printer.Cleared()
		return nil
	},
}

func init() {
	menuCmd.AddCommand(menuExampleCmd)
	menuCmd.AddCommand(menuClearCmd)
	rootCmd.AddCommand(menuCmd)
}

func runMenu(a *app, fn func(*session.Session)) error {
	s, err := a.store.Update(func(s *session.Session) error {
		fn(s)
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.display.RenderHeader(s.MenuOpen))
	return nil
}
