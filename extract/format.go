package extract

import (
	"strings"

	"github.com/fwojciec/checklist"
)

// DetectBaseFormat inspects the base section and reports whether card
// numbers are plain integers or prefixed codes. The first line matching
// either shape decides for the whole section. For the prefixed format the
// returned family holds the prefix and its "C" companion (BD and BDC),
// which number the same base set; longer prefixes come first.
func DetectBaseFormat(lines []Line, section checklist.Section) (checklist.BaseFormat, []string) {
	end := min(section.End, len(lines))
	for i := max(section.Start, 0); i < end; i++ {
		text := lines[i].Text
		if plainLineRe.MatchString(text) {
			return checklist.FormatPlain, nil
		}
		if m := prefixedLineRe.FindStringSubmatch(text); m != nil {
			return checklist.FormatPrefixed, prefixFamily(m[1])
		}
	}
	return checklist.FormatUnknown, nil
}

func prefixFamily(prefix string) []string {
	if len(prefix) > 2 && strings.HasSuffix(prefix, "C") {
		return []string{prefix, strings.TrimSuffix(prefix, "C")}
	}
	return []string{prefix + "C", prefix}
}
