package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jywlabs/promptbuilder/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Long: `Show the current promptbuilder configuration.

Displays .promptbuilder/config.yaml if present, followed by the
effective settings after defaults and environment overrides.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfig(dirFlag, cmd.OutOrStdout())
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.Path(dirFlag))
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(dir string, out io.Writer) error {
	configPath := config.Path(dir)

	content, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		fmt.Fprintln(out, "No .promptbuilder/config.yaml found (using defaults)")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'promptbuilder init' to create a configuration file.")
	case err != nil:
		return fmt.Errorf("failed to read config: %w", err)
	default:
		fmt.Fprintf(out, "Current configuration (%s):\n\n", configPath)
		fmt.Fprintln(out, string(content))
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Effective settings:")
	printSettings(out, cfg)
	return nil
}

func printSettings(out io.Writer, cfg *config.Config) {
	fmt.Fprintf(out, "  serve.addr:       %s\n", cfg.Serve.Addr)
	fmt.Fprintf(out, "  export.dir:       %s\n", displayDir(cfg.Export.Dir))
	fmt.Fprintf(out, "  export.fileName:  %s\n", cfg.Export.FileName)
	fmt.Fprintf(out, "  clipboard.method: %s\n", cfg.Clipboard.Method)
	fmt.Fprintf(out, "  log.level:        %s\n", cfg.Log.Level)
	fmt.Fprintf(out, "  log.file:         %s\n", cfg.Log.File)
}

func displayDir(dir string) string {
	if dir == "" {
		return "(current directory)"
	}
	return dir
}
