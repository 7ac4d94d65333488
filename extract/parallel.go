package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/checklist"
)

var (
	parallelFinishRe = regexp.MustCompile(`(?i)\b(?:refractor|x-fractor|superfractor|parallel|foil|prizm|wave|shimmer|mojo|lava|speckle|sapphire|atomic|mini-diamond|printing plates?)\b`)
	parallelRunRe    = regexp.MustCompile(`^[A-Z][A-Za-z' -]{1,40}?\s*-?\s*(?:/\d+|1/1)$`)
)

const maxLabelLen = 60

// isParallelLabel reports whether a line names a parallel variant, such as
// "Green Refractor /99" or "Gold /50".
func isParallelLabel(l Line) bool {
	text := l.Text
	if runeLen(text) > maxLabelLen || strings.Contains(text, ",") {
		return false
	}
	if cardStartRe.MatchString(text) {
		return false
	}
	if parallelRunRe.MatchString(text) {
		return true
	}
	if !parallelFinishRe.MatchString(text) {
		return false
	}
	// A bare category heading ("Parallels") is not a variant.
	return !matchesAnyRule(strings.ToLower(text)) || numberedRe.MatchString(text)
}

// parallelTypes lists the parallel variants named inside the parallel
// sections, or anywhere on the page when none was located. Labels keep
// page order and are deduplicated case-insensitively.
func parallelTypes(lines []Line, sections []checklist.Section) []string {
	ranges := make([]checklist.Section, 0, len(sections))
	for _, s := range sections {
		if s.Category == checklist.CategoryParallel {
			ranges = append(ranges, s)
		}
	}
	if len(ranges) == 0 {
		ranges = append(ranges, checklist.Section{Start: 0, End: len(lines)})
	}

	seen := make(map[string]bool)
	var labels []string
	for _, r := range ranges {
		for _, l := range lines[r.Start:min(r.End, len(lines))] {
			if !isParallelLabel(l) {
				continue
			}
			key := strings.ToLower(l.Text)
			if seen[key] {
				continue
			}
			seen[key] = true
			labels = append(labels, l.Text)
		}
	}
	return labels
}
