package cmd

import (
	"context"

	"github.com/jywlabs/promptbuilder/internal/template"
	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy the generated prompt to the clipboard",
	Long: `Copy the generated prompt to the system clipboard.

Clipboard failures are not reported as errors; run with log.level debug to
see them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()
		return runCopy(cmd.Context(), a)
	},
}

var templatePrint bool

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Copy the LLM assistant template",
	Long: `Copy the LLM assistant template to the clipboard.

Paste it into any AI chat to build prompts interactively. The template is
fixed and does not depend on the current session. Use --print to write it
to stdout instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if templatePrint {
			_, err := cmd.OutOrStdout().Write([]byte(template.AssistantTemplate))
			return err
		}
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()
		runCopyTemplate(cmd.Context(), a)
		return nil
	},
}

func init() {
	templateCmd.Flags().BoolVar(&templatePrint, "print", false, "Print the template instead of copying it")
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(templateCmd)
}

func runCopy(ctx context.Context, a *app) error {
	s, err := a.store.Load()
	if err != nil {
		return err
	}
	if s.Assembled == "" {
		a.printer.NothingToExport()
		return nil
	}
	if a.exporter.Copy(ctx, s.Assembled) {
		a.printer.Copied("prompt")
	}
	return nil
}

func runCopyTemplate(ctx context.Context, a *app) {
	if a.exporter.CopyTemplate(ctx) {
		a.printer.Copied("assistant template")
	}
}
