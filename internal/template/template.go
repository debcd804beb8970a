package template

import (
	_ "embed"
)

// AssistantTemplate is the instructional prompt that turns a chat model into
// an interactive prompt-building assistant. It does not depend on any draft.
//
//go:embed assistant.md
var AssistantTemplate string

//go:embed config.yaml
var DefaultConfig string

// Dir is the name of the promptbuilder workspace directory.
const Dir = ".promptbuilder"

// File name constants for consistent usage across the codebase.
const (
	ConfigFile   = "config.yaml"
	SessionFile  = "session.yaml" // CLI session state between invocations
	DownloadFile = "ai-prompt.txt"
	LogsDir      = "logs"
)

// DefaultFiles returns the default files to create in .promptbuilder/
func DefaultFiles() map[string]string {
	return map[string]string{
		ConfigFile: DefaultConfig,
	}
}
