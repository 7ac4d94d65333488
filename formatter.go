package checklist

import "strings"

// FormatCards formats cards as tab-separated lines for terminal output:
// number, name, team and, for inserts, the insert set name.
func FormatCards(cards []Card) string {
	if len(cards) == 0 {
		return ""
	}

	lines := make([]string, 0, len(cards))
	for _, c := range cards {
		fields := []string{c.Number, c.Name, c.Team}
		if c.InsertName != "" {
			fields = append(fields, c.InsertName)
		}
		lines = append(lines, strings.Join(fields, "\t"))
	}

	return strings.Join(lines, "\n")
}
