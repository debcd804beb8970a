package draft

// Section describes how a field is presented in the builder view.
type Section struct {
	Field       Field
	Title       string
	Tip         string
	Description string
	Placeholder string
	Color       string // accent color, hex
}

var sections = []Section{
	{
		Field:       FieldRole,
		Title:       "Role",
		Tip:         "Define AI expertise",
		Description: "Set the context for who the AI should be and what expertise it should bring.",
		Placeholder: `Define the AI's expertise and perspective (e.g., "Act as an expert data scientist...")`,
		Color:       "#3B82F6",
	},
	{
		Field:       FieldTask,
		Title:       "Task",
		Tip:         "Clear action steps",
		Description: "Define specific actions and deliverables you want from the AI.",
		Placeholder: "Clearly outline what you want the AI to do, step by step...",
		Color:       "#EF4444",
	},
	{
		Field:       FieldContext,
		Title:       "Context",
		Tip:         "Background & limits",
		Description: "Give necessary background and set boundaries for the task.",
		Placeholder: "Provide background information, constraints, and requirements...",
		Color:       "#22C55E",
	},
	{
		Field:       FieldReasoning,
		Title:       "Reasoning",
		Tip:         "Guide thinking",
		Description: "Guide the AI's thinking process and quality control measures.",
		Placeholder: "Explain how the AI should approach the problem and validate its work...",
		Color:       "#A855F7",
	},
	{
		Field:       FieldOutputFormat,
		Title:       "Output Format",
		Tip:         "Structure output",
		Description: "Define the structure and format of the desired output.",
		Placeholder: "Specify exactly how you want the results presented (tables, lists, etc.)...",
		Color:       "#4B5563",
	},
	{
		Field:       FieldStopConditions,
		Title:       "Stop Conditions",
		Tip:         "Success criteria",
		Description: "Set clear completion criteria and success metrics.",
		Placeholder: "Define when the task is complete and what constitutes success...",
		Color:       "#06B6D4",
	},
}

// Sections returns presentation metadata for every field, in field order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// SectionFor returns the metadata for f.
func SectionFor(f Field) (Section, bool) {
	for _, s := range sections {
		if s.Field == f {
			return s, true
		}
	}
	return Section{}, false
}
