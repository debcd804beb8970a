package cmd

import (
	"fmt"

	"github.com/jywlabs/promptbuilder/internal/session"
	"github.com/spf13/cobra"
)

var (
	showRaw  bool
	showView string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current session",
	Long: `Render the header, the active view and the footer.

With --view, render that view without switching to it. With --raw, print
only the generated prompt, exactly as it would be copied or saved.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()
		return runShow(a, showView, showRaw)
	},
}

func init() {
	showCmd.Flags().StringVar(&showView, "view", "", "View to render (builder or output)")
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print only the generated prompt")
	rootCmd.AddCommand(showCmd)
}

func runShow(a *app, view string, raw bool) error {
	s, err := a.store.Load()
	if err != nil {
		return err
	}
	if view != "" {
		v, err := session.ParseView(view)
		if err != nil {
			return err
		}
		s.View = v
	}
	if raw {
		fmt.Fprint(a.out, s.Assembled)
		return nil
	}
	a.display.ShowSession(s)
	return nil
}
