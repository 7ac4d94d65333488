package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/checklist"
)

// InsertSet is a known insert subset and the code prefix printed on its cards.
type InsertSet struct {
	Prefix string
	Name   string
}

// insertSets is ordered by sort priority.
var insertSets = []InsertSet{
	{Prefix: "BS", Name: "Bowman Spotlights"},
	{Prefix: "BTP", Name: "Bowman Scouts Top 100"},
	{Prefix: "ROYF", Name: "Rookie of the Year Favorites"},
	{Prefix: "PP", Name: "Prospect Profiles"},
	{Prefix: "PC", Name: "Power Chords"},
	{Prefix: "DOG", Name: "Dawn of Glory"},
	{Prefix: "FD", Name: "Final Draft"},
	{Prefix: "UTR", Name: "Under the Radar"},
	{Prefix: "SOF", Name: "Stars of the Future"},
	{Prefix: "HF", Name: "Hidden Finds"},
	{Prefix: "AN", Name: "Anime"},
	{Prefix: "KB", Name: "Kaboom"},
	{Prefix: "DT", Name: "Downtown"},
	{Prefix: "NM", Name: "Night Moves"},
	{Prefix: "FB", Name: "Fast Break"},
	{Prefix: "EM", Name: "Emergent"},
}

// LookupInsertSet returns the known insert set printed with prefix.
func LookupInsertSet(prefix string) (InsertSet, bool) {
	for _, s := range insertSets {
		if s.Prefix == prefix {
			return s, true
		}
	}
	return InsertSet{}, false
}

// insertPriority orders insert prefixes; unknown prefixes sort last.
func insertPriority(prefix string) int {
	for i, s := range insertSets {
		if s.Prefix == prefix {
			return i
		}
	}
	return len(insertSets)
}

// isInsertSetName reports whether a heading names a known insert subset.
func isInsertSetName(lower string) bool {
	for _, s := range insertSets {
		if strings.Contains(lower, strings.ToLower(s.Name)) {
			return true
		}
	}
	return false
}

// Autograph code prefixes. Base-set prefixes share the same code shape, so
// autograph extraction only trusts this family plus the single BD-201 card.
var autographPrefixes = []string{"CPA", "DPPA", "AA", "PDA", "BIA", "PPA", "BDNA", "79D", "DPPBA"}

const autographBaseException = "BD-201"

// baseSetPrefixes are the prefixes a prefixed base set is printed with.
var baseSetPrefixes = []string{"BD", "BDC"}

func isAutographPrefix(prefix string) bool {
	return containsString(autographPrefixes, prefix)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// headingRule classifies heading-like lines into categories.
type headingRule struct {
	category checklist.Category
	include  []string
	exclude  []string
}

// headingRules is ordered by precedence: a heading matching several rules
// belongs to the first.
var headingRules = []headingRule{
	{
		category: checklist.CategoryAutograph,
		include:  []string{"autograph", "signature", "auto"},
	},
	{
		category: checklist.CategoryParallel,
		include:  []string{"parallel"},
		exclude:  []string{"base"},
	},
	{
		category: checklist.CategoryInsert,
		include:  []string{"insert"},
		exclude:  []string{"autograph", "parallel"},
	},
	{
		category: checklist.CategoryBase,
		include:  []string{"base set", "base set checklist"},
		exclude:  []string{"insert", "parallel", "chrome", "image", "etched"},
	},
}

func (r headingRule) includes(lower string) bool {
	for _, kw := range r.include {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return r.category == checklist.CategoryInsert && isInsertSetName(lower)
}

func (r headingRule) excludes(lower string) bool {
	for _, kw := range r.exclude {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Shared patterns.
var (
	// cardStartRe matches lines that begin with a card number or code.
	cardStartRe = regexp.MustCompile(`^(?:\d{1,3}\s*\p{Lu}|\d*[A-Z]{1,5}-[A-Z0-9]+)`)

	// numberedRe matches a numbered-parallel print run marker such as "/99".
	numberedRe = regexp.MustCompile(`/\d+`)

	plainLineRe    = regexp.MustCompile(`^\d{1,3}\s+\p{Lu}[^,\d]*,`)
	prefixedLineRe = regexp.MustCompile(`^([A-Z]{2,5})-\d{1,3}\s*\p{Lu}`)

	autographConfirmRe = regexp.MustCompile(`(?:^|[^A-Z0-9])(?:CPA|DPPA|AA|PDA|BIA|PPA|BDNA|79D|DPPBA)-|BD-201\b`)
	insertConfirmRe    = regexp.MustCompile(`(?:^|[^A-Z0-9])(?:\d+[A-Z]-[A-Z]+|[A-Z]{1,5}-\d+)`)
)

// forbiddenSubstrings never appear in a real player name or team.
var forbiddenSubstrings = []string{"refractor", "parallel", "checklist", "odds", "print run"}
