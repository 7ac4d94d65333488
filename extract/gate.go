package extract

import (
	"fmt"
	"strings"

	"github.com/fwojciec/checklist"
)

// gate re-checks a sorted batch as a whole and returns a diagnostic when the
// batch must be discarded. A wrong base set is worse than none, so any sign
// that section location or format detection misfired rejects everything.
//
// candidates is the number of distinct card numbers the extractor found
// before validation; a page listing more numbers than the ceiling is not
// the set the ceiling describes, even if validation trimmed the excess.
func gate(cards []checklist.Card, candidates int, category checklist.Category, format checklist.BaseFormat, policy checklist.Policy) string {
	if category != checklist.CategoryBase {
		if len(cards) > policy.MaxCards {
			return fmt.Sprintf("count %d exceeds max %d for %s batch", len(cards), policy.MaxCards, category)
		}
		return ""
	}

	limit := policy.MaxBase(format)
	if count := max(candidates, len(cards)); count > limit {
		return fmt.Sprintf("count %d exceeds max %d for %s base format", count, limit, format)
	}

	var prefixed, plain int
	for _, c := range cards {
		if strings.Contains(c.Number, "-") {
			prefixed++
		} else {
			plain++
		}
	}
	switch {
	case prefixed > 0 && plain > 0:
		return fmt.Sprintf("mixed numbering in base batch: %d prefixed, %d plain", prefixed, plain)
	case format == checklist.FormatPlain && prefixed > 0:
		return fmt.Sprintf("%d prefixed numbers in plain base batch", prefixed)
	case format == checklist.FormatPrefixed && plain > 0:
		return fmt.Sprintf("%d plain numbers in prefixed base batch", plain)
	}
	return ""
}
