package draft

// Example returns the fixed sample draft offered by the "Example" action.
// A fresh value is returned on each call.
func Example() Draft {
	return Draft{
		Role: "Act as an expert travel guide focused on recommending lesser-known, unique outdoor hikes within two hours of San Francisco.",
		Task: `- Begin with a concise checklist (3-7 bullets) of steps you will follow to complete this task, focusing on conceptual planning rather than details.
- Identify and present the top 3 medium-length hikes (not among the most popular) within a two-hour drive from San Francisco.
- Ensure each hike selected offers a unique adventure due to its scenery, remoteness, or distinctive qualities.`,
		Context: `- Exclude extremely popular hikes such as Mount Tam, Golden Gate Park, the Presidio, and other top-tier tourist mainstays in the San Francisco area.

- Prioritize accuracy: Hike names must match official listings (e.g., AllTrails), and all time and distance estimates should be realistic and reliable.
- Highlight what makes each hike an outstanding adventure in a concise summary.`,
		Reasoning: `- Internally vet all suggested hikes to guarantee they are real, under-the-radar, and fit the specified parameters before responding.
- Cross-check hike names and details with reliable outdoor hiking sources.
- Optimize for clarity, concise presentation, and practical value.`,
		OutputFormat: `- Return the results as a properly formatted Markdown table with these columns:
| --- | --- | --- | --- | --- | --- |
| [Hike 1 name] | [Address] | [X.X] | [XX] | [X:XX] | [Summary] |
| [Hike 2 name] | [Address] | [X.X] | [XX] | [X:XX] | [Summary] |
| [Hike 3 name] | [Address] | [X.X] | [XX] | [X:XX] | [Summary] |`,
		StopConditions: "Task is complete when three verified, unique medium-length hikes, excluding overly popular options, are returned in the specified format, and validation has confirmed full compliance with all requirements.",
	}
}
