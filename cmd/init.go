package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jywlabs/promptbuilder/internal/display"
	"github.com/jywlabs/promptbuilder/internal/template"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize .promptbuilder/ directory",
	Long: `Initialize the .promptbuilder/ directory in the current directory.

Creates:
  .promptbuilder/
    config.yaml    # Export, clipboard, server and log settings

The session file (session.yaml) is created on the first edit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(dirFlag, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(dir string, out io.Writer) error {
	configDir := filepath.Join(dir, template.Dir)

	// Check if already initialized
	if _, err := os.Stat(filepath.Join(configDir, template.ConfigFile)); err == nil {
		return fmt.Errorf("%s already exists", filepath.Join(template.Dir, template.ConfigFile))
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	// Create default files from templates
	for filename, content := range template.DefaultFiles() {
		filePath := filepath.Join(configDir, filename)
		if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", filename, err)
		}
	}

	display.NewDisplay(out).ShowSuccess(fmt.Sprintf("Initialized %s/", template.Dir))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Created:")
	fmt.Fprintf(out, "  %s/%s   - Settings (export dir, clipboard, server, logs)\n", template.Dir, template.ConfigFile)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. promptbuilder example    # or: promptbuilder build")
	fmt.Fprintln(out, "  2. promptbuilder generate")

	return nil
}
