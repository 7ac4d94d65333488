package extract

import (
	"strings"

	"github.com/fwojciec/checklist"
)

const (
	minDescriptionLineLen = 40
	maxDescriptionLines   = 3
)

// describe assembles a product description from the prose lines that
// precede the first located section.
func describe(lines []Line, sections []checklist.Section) string {
	end := len(lines)
	if len(sections) > 0 {
		end = max(sections[0].Start-1, 0)
	}

	var parts []string
	for _, l := range lines[:end] {
		if l.Heading || cardStartRe.MatchString(l.Text) || runeLen(l.Text) < minDescriptionLineLen {
			continue
		}
		parts = append(parts, l.Text)
		if len(parts) == maxDescriptionLines {
			break
		}
	}
	return strings.Join(parts, " ")
}
