package cmd

import (
	"os"

	"github.com/jywlabs/promptbuilder/internal/display"
	"github.com/spf13/cobra"
)

var dirFlag string

var rootCmd = &cobra.Command{
	Use:   "promptbuilder",
	Short: "Assemble structured AI prompts from six sections",
	Long: `promptbuilder helps you assemble a structured prompt for a chat model
from six sections: Role, Task, Context, Reasoning, Output Format and
Stop Conditions. Filled sections are joined in that order, separated by
blank lines.

Workflow:
  promptbuilder set role "Act as an expert data scientist"
  promptbuilder set task -           Read the task from stdin
  promptbuilder generate             Assemble and show the prompt
  promptbuilder copy                 Copy it to the clipboard
  promptbuilder save                 Write it to ai-prompt.txt

Commands:
  init        Initialize .promptbuilder/ with a default config
  show        Show the builder or output view
  set         Set one section
  edit        Edit one section in $EDITOR
  build       Fill every section interactively, then generate
  generate    Assemble the prompt and switch to the output view
  example     Load the example draft
  clear       Clear every section and the generated prompt
  view        Switch between the builder and output views
  menu        Toggle the quick-actions menu
  copy        Copy the generated prompt
  save        Save the generated prompt to a file
  template    Copy the LLM assistant template
  serve       Run the builder as a local web page
  config      Show current configuration
  version     Show version info

Quick Start:
  1. promptbuilder example
  2. promptbuilder generate
  3. promptbuilder copy`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "C", ".", "Workspace directory holding .promptbuilder/")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		display.NewDisplay(os.Stderr).ShowError(err.Error())
		os.Exit(1)
	}
}
