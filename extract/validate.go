package extract

import (
	"strconv"
	"strings"

	"github.com/fwojciec/checklist"
)

// Rejection reasons reported in debug events.
const (
	reasonNameLength    = "name length out of range"
	reasonNameCase      = "name not capitalized"
	reasonTeamLength    = "team length out of range"
	reasonNumbered      = "numbered parallel marker"
	reasonForbidden     = "forbidden substring"
	reasonNumber        = "number out of range"
	reasonBasePrefix    = "base-set code in autograph section"
	reasonUnknownPrefix = "unknown autograph prefix"
)

// Field bounds in runes.
const (
	minNameLen = 2
	maxNameLen = 50
	minTeamLen = 2
	maxTeamLen = 60
)

// validation carries what the validator needs beyond the card itself.
type validation struct {
	teamRequired bool
	format       checklist.BaseFormat
	maxNumber    int

	// basePrefixes are the prefixes of the page's base set; autograph codes
	// using them are rejected except for BD-201.
	basePrefixes []string
}

// validate returns the reason a card is rejected, or an empty string.
func (v validation) validate(c checklist.Card) string {
	if n := runeLen(c.Name); n < minNameLen || n > maxNameLen {
		return reasonNameLength
	}
	if !startsUpper(c.Name) {
		return reasonNameCase
	}
	if c.Team != "" || v.teamRequired {
		if n := runeLen(c.Team); n < minTeamLen || n > maxTeamLen {
			return reasonTeamLength
		}
	}
	if numberedRe.MatchString(c.Team) || numberedRe.MatchString(c.Name) {
		return reasonNumbered
	}
	if hasForbidden(c.Name) || hasForbidden(c.Team) {
		return reasonForbidden
	}

	switch c.Category {
	case checklist.CategoryBase:
		n, err := strconv.Atoi(c.Suffix())
		if err != nil || n < 1 || n > v.maxNumber {
			return reasonNumber
		}
	case checklist.CategoryAutograph:
		if c.Number == autographBaseException {
			return ""
		}
		prefix := c.Prefix()
		if containsString(v.basePrefixes, prefix) {
			return reasonBasePrefix
		}
		if !isAutographPrefix(prefix) {
			return reasonUnknownPrefix
		}
	}
	// Non-numeric insert and autograph suffixes ("79D-DM") are special
	// format cards, not errors.
	return ""
}

func hasForbidden(s string) bool {
	lower := strings.ToLower(s)
	for _, f := range forbiddenSubstrings {
		if strings.Contains(lower, f) {
			return true
		}
	}
	return false
}
