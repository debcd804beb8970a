package draft

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is returned when a section name does not match any field.
var ErrUnknownField = errors.New("unknown section")

// Field identifies one of the six prompt sections.
type Field string

const (
	FieldRole           Field = "role"
	FieldTask           Field = "task"
	FieldContext        Field = "context"
	FieldReasoning      Field = "reasoning"
	FieldOutputFormat   Field = "outputFormat"
	FieldStopConditions Field = "stopConditions"
)

var fieldOrder = []Field{
	FieldRole,
	FieldTask,
	FieldContext,
	FieldReasoning,
	FieldOutputFormat,
	FieldStopConditions,
}

// Fields returns the six fields in assembly order.
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// ParseField resolves a user-supplied section name to a Field.
// Keys and titles match case-insensitively, and spaces, dashes and
// underscores are ignored, so "Output Format", "output-format" and
// "outputFormat" all resolve to FieldOutputFormat.
func ParseField(s string) (Field, error) {
	want := normalize(s)
	for _, f := range fieldOrder {
		if normalize(string(f)) == want {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (want one of: %s)", ErrUnknownField, s, fieldList())
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

func fieldList() string {
	names := make([]string, len(fieldOrder))
	for i, f := range fieldOrder {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Draft is the in-progress user input before assembly.
// Every field is optional; the empty string means unset.
type Draft struct {
	Role           string `yaml:"role" json:"role"`
	Task           string `yaml:"task" json:"task"`
	Context        string `yaml:"context" json:"context"`
	Reasoning      string `yaml:"reasoning" json:"reasoning"`
	OutputFormat   string `yaml:"outputFormat" json:"outputFormat"`
	StopConditions string `yaml:"stopConditions" json:"stopConditions"`
}

// Get returns the raw value of a field.
func (d Draft) Get(f Field) string {
	switch f {
	case FieldRole:
		return d.Role
	case FieldTask:
		return d.Task
	case FieldContext:
		return d.Context
	case FieldReasoning:
		return d.Reasoning
	case FieldOutputFormat:
		return d.OutputFormat
	case FieldStopConditions:
		return d.StopConditions
	}
	return ""
}

// Set stores value verbatim. Any string is accepted.
func (d *Draft) Set(f Field, value string) error {
	switch f {
	case FieldRole:
		d.Role = value
	case FieldTask:
		d.Task = value
	case FieldContext:
		d.Context = value
	case FieldReasoning:
		d.Reasoning = value
	case FieldOutputFormat:
		d.OutputFormat = value
	case FieldStopConditions:
		d.StopConditions = value
	default:
		return fmt.Errorf("%w %q", ErrUnknownField, string(f))
	}
	return nil
}

// IsEmpty reports whether every field is blank after trimming.
func (d Draft) IsEmpty() bool {
	return d.Filled() == 0
}

// Filled returns how many fields are non-blank after trimming.
func (d Draft) Filled() int {
	n := 0
	for _, f := range fieldOrder {
		if strings.TrimSpace(d.Get(f)) != "" {
			n++
		}
	}
	return n
}
