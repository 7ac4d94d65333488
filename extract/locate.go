package extract

import (
	"sort"
	"strings"

	"github.com/fwojciec/checklist"
)

const (
	// lookAheadWindow is how many lines after a heading are searched for
	// card codes before the heading is accepted as a real section.
	lookAheadWindow = 30

	// maxHeadingLen bounds the length of unmarked heading-like lines.
	maxHeadingLen = 80
)

// heading is a heading-like line that matches at least one category's
// keywords. Class is the category it starts, or empty when exclusions
// leave it unclassified; it still ends other sections.
type heading struct {
	index int
	text  string
	class checklist.Category
}

// LocateSections finds the line range of every category present on the
// page. A category whose heading cannot be confirmed is absent from the
// result. Sections are returned in page order and never overlap.
func LocateSections(lines []Line) []checklist.Section {
	headings := findHeadings(lines)

	var sections []checklist.Section
	for _, category := range checklist.Categories {
		h, ok := chooseHeading(lines, headings, category)
		if !ok {
			continue
		}
		sections = append(sections, checklist.Section{
			Category: category,
			Heading:  h.text,
			Start:    h.index + 1,
			End:      sectionEnd(lines, headings, h),
		})
	}

	sort.Slice(sections, func(i, j int) bool {
		return sections[i].Start < sections[j].Start
	})

	// Clamp each section to the heading of the next one.
	for i := 0; i+1 < len(sections); i++ {
		if next := sections[i+1].Start - 1; sections[i].End > next {
			sections[i].End = next
		}
	}

	return sections
}

func findHeadings(lines []Line) []heading {
	var headings []heading
	for i, l := range lines {
		if !isHeadingLike(l) {
			continue
		}
		lower := strings.ToLower(l.Text)
		if !matchesAnyRule(lower) {
			continue
		}
		headings = append(headings, heading{
			index: i,
			text:  l.Text,
			class: classify(lower),
		})
	}
	return headings
}

// isHeadingLike reports whether a line could be a section heading: marked
// as one or short, and not itself a card or a numbered parallel label.
func isHeadingLike(l Line) bool {
	if !l.Heading && runeLen(l.Text) > maxHeadingLen {
		return false
	}
	if cardStartRe.MatchString(l.Text) {
		return false
	}
	return !numberedRe.MatchString(l.Text)
}

func matchesAnyRule(lower string) bool {
	for _, r := range headingRules {
		if r.includes(lower) {
			return true
		}
	}
	return false
}

func classify(lower string) checklist.Category {
	for _, r := range headingRules {
		if r.includes(lower) && !r.excludes(lower) {
			return r.category
		}
	}
	return ""
}

// chooseHeading picks the heading that starts a category's section. Non-base
// headings must be followed by the category's card codes within the
// look-ahead window. Base takes its first heading unless a later one is
// followed by card lines and the first is not.
func chooseHeading(lines []Line, headings []heading, category checklist.Category) (heading, bool) {
	var first *heading
	for i := range headings {
		h := headings[i]
		if h.class != category {
			continue
		}
		if confirmed(lines, h.index, category) {
			return h, true
		}
		if first == nil {
			first = &headings[i]
		}
	}
	if category == checklist.CategoryBase && first != nil {
		return *first, true
	}
	return heading{}, false
}

func confirmed(lines []Line, index int, category checklist.Category) bool {
	end := min(index+1+lookAheadWindow, len(lines))
	for _, l := range lines[index+1 : end] {
		if confirms(l, category) {
			return true
		}
	}
	return false
}

func confirms(l Line, category checklist.Category) bool {
	switch category {
	case checklist.CategoryBase:
		return plainLineRe.MatchString(l.Text) || prefixedLineRe.MatchString(l.Text)
	case checklist.CategoryInsert:
		return insertConfirmRe.MatchString(l.Text)
	case checklist.CategoryAutograph:
		return autographConfirmRe.MatchString(l.Text)
	case checklist.CategoryParallel:
		return isParallelLabel(l)
	}
	return false
}

// sectionEnd returns the index of the next heading that stops the section.
// Insert headings do not stop an insert section: a page lists several
// insert subsets back to back under one umbrella heading.
func sectionEnd(lines []Line, headings []heading, start heading) int {
	for _, h := range headings {
		if h.index <= start.index {
			continue
		}
		if start.class == checklist.CategoryInsert && h.class == checklist.CategoryInsert {
			continue
		}
		return h.index
	}
	return len(lines)
}
