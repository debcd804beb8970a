package cmd

import (
	"context"

	"github.com/jywlabs/promptbuilder/internal/export"
	"github.com/spf13/cobra"
)

var saveTo string

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the generated prompt to a text file",
	Long: `Write the generated prompt to ai-prompt.txt (export.fileName) in the
export directory, or in the directory given by --to.

The file holds the prompt exactly as shown in the output view. Nothing is
written until a prompt has been generated.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()
		return runSave(cmd.Context(), a, saveTo)
	},
}

func init() {
	saveCmd.Flags().StringVar(&saveTo, "to", "", "Directory to save into (overrides export.dir)")
	rootCmd.AddCommand(saveCmd)
}

func runSave(ctx context.Context, a *app, to string) error {
	s, err := a.store.Load()
	if err != nil {
		return err
	}

	if s.Assembled == "" {
		a.printer.NothingToExport()
		return nil
	}

	exporter := a.exporter
	if to != "" {
		exporter = export.New(nil, &export.FileSaver{Dir: to}, a.exporter.FileName(), a.log)
	}

	path, err := exporter.TryDownload(ctx, s.Assembled)
	if err != nil {
		return err
	}
	a.printer.Saved(path)
	return nil
}
