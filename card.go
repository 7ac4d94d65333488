package checklist

import "strings"

// Category identifies which part of a checklist a card belongs to.
type Category string

// Card categories.
const (
	CategoryBase      Category = "base"
	CategoryInsert    Category = "insert"
	CategoryParallel  Category = "parallel"
	CategoryAutograph Category = "autograph"
)

// Categories lists every category in checklist order.
var Categories = []Category{
	CategoryBase,
	CategoryInsert,
	CategoryParallel,
	CategoryAutograph,
}

// ParseCategory returns the category named by s (case-insensitive).
// Returns EINVALID for unknown names.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", Errorf(EINVALID, "unknown category %q", s)
	}
	return c, nil
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryBase, CategoryInsert, CategoryParallel, CategoryAutograph:
		return true
	}
	return false
}

// Rarity returns the display label used for cards of this category.
func (c Category) Rarity() string {
	switch c {
	case CategoryBase:
		return "Base"
	case CategoryInsert:
		return "Inserts"
	case CategoryParallel:
		return "Parallels"
	case CategoryAutograph:
		return "Autographs"
	}
	return ""
}

// Card is a single checklist entry.
type Card struct {
	// Number is the card number as printed: a bare decimal ("114") or a
	// prefixed code ("BD-1", "CPA-AE"). It is never converted to an integer
	// because alphabetic suffixes are significant.
	Number string `json:"number"`
	Name   string `json:"name"`

	// Team may be empty for categories whose lines do not carry one.
	Team     string   `json:"team"`
	Category Category `json:"category"`

	// InsertName is the insert set the card belongs to (inserts only).
	InsertName string `json:"insertName,omitempty"`
	Rarity     string `json:"rarity"`

	// SetName is an opaque source identifier copied through unchanged.
	SetName string `json:"setName"`
}

// NewCard returns a card with the rarity label derived from its category.
func NewCard(category Category, number, name, team, setName string) Card {
	return Card{
		Number:   number,
		Name:     name,
		Team:     team,
		Category: category,
		Rarity:   category.Rarity(),
		SetName:  setName,
	}
}

// Prefix returns the code prefix of a card number ("BD" for "BD-1"),
// or an empty string for bare numbers.
func (c Card) Prefix() string {
	prefix, _, found := strings.Cut(c.Number, "-")
	if !found {
		return ""
	}
	return prefix
}

// Suffix returns the part of the number after the code prefix ("1" for
// "BD-1"), or the whole number when there is no prefix.
func (c Card) Suffix() string {
	_, suffix, found := strings.Cut(c.Number, "-")
	if !found {
		return c.Number
	}
	return suffix
}

// BaseFormat describes how base card numbers are printed on a page.
type BaseFormat string

// Base number formats.
const (
	FormatUnknown  BaseFormat = ""
	FormatPlain    BaseFormat = "plain"
	FormatPrefixed BaseFormat = "prefixed"
)
