package draft

import "strings"

// Assemble concatenates the non-blank sections of d in field order.
//
// Each value is trimmed; blank values contribute nothing. Kept values are
// separated by one blank line and the result carries no leading or trailing
// whitespace. Content is never validated or escaped.
func Assemble(d Draft) string {
	var b strings.Builder
	for _, f := range fieldOrder {
		v := strings.TrimSpace(d.Get(f))
		if v == "" {
			continue
		}
		b.WriteString(v)
		b.WriteString("\n\n")
	}
	return strings.TrimSpace(b.String())
}
