package checklist

// Section is a heading-delimited range of normalized lines belonging to one
// category. Start is the index of the first line after the heading and End
// is exclusive.
type Section struct {
	Category Category `json:"category"`
	Heading  string   `json:"heading"`
	Start    int      `json:"start"`
	End      int      `json:"end"`
}

// Len returns the number of lines covered by the section.
func (s Section) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Contains reports whether line index i falls inside the section.
func (s Section) Contains(i int) bool {
	return i >= s.Start && i < s.End
}

// Overlaps reports whether two sections share at least one line.
func (s Section) Overlaps(o Section) bool {
	return s.Start < o.End && o.Start < s.End
}

// FindSection returns the section for a category, if present.
func FindSection(sections []Section, category Category) (Section, bool) {
	for _, s := range sections {
		if s.Category == category {
			return s, true
		}
	}
	return Section{}, false
}
