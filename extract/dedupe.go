package extract

import (
	"strings"

	"github.com/fwojciec/checklist"
)

// dedupe keeps the first card for each (number, name, category) and then
// the first card for each (number, category), so card numbers are unique
// within a category. Overlapping matches of the same card collapse here.
func dedupe(cards []checklist.Card) []checklist.Card {
	type triple struct {
		number   string
		name     string
		category checklist.Category
	}
	type pair struct {
		number   string
		category checklist.Category
	}

	seenTriple := make(map[triple]bool, len(cards))
	seenNumber := make(map[pair]bool, len(cards))
	out := make([]checklist.Card, 0, len(cards))
	for _, c := range cards {
		t := triple{c.Number, strings.ToLower(c.Name), c.Category}
		if seenTriple[t] {
			continue
		}
		seenTriple[t] = true

		p := pair{c.Number, c.Category}
		if seenNumber[p] {
			continue
		}
		seenNumber[p] = true
		out = append(out, c)
	}
	return out
}
