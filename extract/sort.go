package extract

import (
	"sort"
	"strconv"

	"github.com/fwojciec/checklist"
)

// sortCards orders cards in place by their category's key. Mixed batches
// (parallel) keep base, insert and autograph blocks in that order.
func sortCards(cards []checklist.Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		a, b := cards[i], cards[j]
		if a.Category != b.Category {
			return categoryRank(a.Category) < categoryRank(b.Category)
		}
		switch a.Category {
		case checklist.CategoryBase:
			if na, nb := numericValue(a), numericValue(b); na != nb {
				return na < nb
			}
		case checklist.CategoryInsert:
			if pa, pb := insertPriority(a.Prefix()), insertPriority(b.Prefix()); pa != pb {
				return pa < pb
			}
			if na, nb := numericValue(a), numericValue(b); na != nb {
				return na < nb
			}
		}
		return a.Number < b.Number
	})
}

func categoryRank(c checklist.Category) int {
	switch c {
	case checklist.CategoryBase:
		return 0
	case checklist.CategoryInsert:
		return 1
	case checklist.CategoryAutograph:
		return 2
	}
	return 3
}

// numericValue returns the number after the code prefix; non-numeric
// suffixes count as 0.
func numericValue(c checklist.Card) int {
	n, err := strconv.Atoi(c.Suffix())
	if err != nil {
		return 0
	}
	return n
}
