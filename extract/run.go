package extract

import (
	"fmt"
	"strings"

	"github.com/fwojciec/checklist"
)

// run holds the state of a single ExtractCards call.
type run struct {
	engine   *Engine
	lines    []Line
	sections []checklist.Section
	source   string
}

// outcome is the result of extracting one concrete category.
type outcome struct {
	cards      []checklist.Card
	format     checklist.BaseFormat
	diagnostic string
}

func (r *run) base(b *checklist.Batch) {
	o := r.baseCards()
	b.Cards, b.Format, b.Diagnostic = o.cards, o.format, o.diagnostic
}

func (r *run) insert(b *checklist.Batch) {
	o := r.insertCards()
	b.Cards, b.Diagnostic = o.cards, o.diagnostic
}

func (r *run) autograph(b *checklist.Batch) {
	o := r.autographCards()
	b.Cards, b.Diagnostic = o.cards, o.diagnostic
}

// parallel layers parallels onto every card on the page: it returns the
// base, insert and autograph cards, each keeping its own category, plus the
// parallel variants the page names.
func (r *run) parallel(b *checklist.Batch) {
	var diagnostics []string
	var cards []checklist.Card

	base := r.baseCards()
	b.Format = base.format
	for _, o := range []struct {
		category checklist.Category
		outcome
	}{
		{checklist.CategoryBase, base},
		{checklist.CategoryInsert, r.insertCards()},
		{checklist.CategoryAutograph, r.autographCards()},
	} {
		if o.diagnostic != "" {
			diagnostics = append(diagnostics, fmt.Sprintf("%s: %s", o.category, o.diagnostic))
			r.engine.logger.Debug("parallel source skipped", "category", o.category, "diagnostic", o.diagnostic)
		}
		cards = append(cards, o.cards...)
	}

	sortCards(cards)
	b.Cards = cards
	// A miss in one category is normal; the batch only carries a
	// diagnostic when no category produced cards.
	if len(cards) == 0 {
		b.Diagnostic = strings.Join(diagnostics, "; ")
	}
	b.ParallelTypes = parallelTypes(r.lines, r.sections)
	r.engine.logger.Debug("parallel types", "count", len(b.ParallelTypes))
}

func (r *run) baseCards() outcome {
	section, ok := checklist.FindSection(r.sections, checklist.CategoryBase)
	if !ok {
		return outcome{cards: []checklist.Card{}, diagnostic: "no base set section found"}
	}

	format, family := DetectBaseFormat(r.lines, section)
	r.engine.logger.Debug("base format detected", "format", format, "prefixes", strings.Join(family, ","))

	var s *strategy
	switch format {
	case checklist.FormatPlain:
		s = plainBaseStrategy()
	case checklist.FormatPrefixed:
		s = prefixedBaseStrategy(family)
	default:
		return outcome{cards: []checklist.Card{}, diagnostic: "no card lines in base set section"}
	}

	candidates := s.extract(r.lines, section, r.source)
	v := validation{
		teamRequired: s.teamRequired,
		format:       format,
		maxNumber:    r.engine.policy.MaxNumber(format),
	}
	return r.finish(s.category, candidates, v, format)
}

func (r *run) insertCards() outcome {
	section, ok := checklist.FindSection(r.sections, checklist.CategoryInsert)
	if !ok {
		return outcome{cards: []checklist.Card{}, diagnostic: "no insert section found"}
	}

	s := insertStrategy()
	candidates := s.extract(r.lines, section, r.source)
	headings := subsetHeadings(r.lines, section)
	for i := range candidates {
		c := &candidates[i]
		if set, ok := LookupInsertSet(c.card.Prefix()); ok {
			c.card.InsertName = set.Name
		} else if h := headings[c.line]; h != "" {
			c.card.InsertName = h
		} else {
			c.card.InsertName = c.card.Prefix()
		}
	}

	return r.finish(s.category, candidates, validation{teamRequired: s.teamRequired}, checklist.FormatUnknown)
}

func (r *run) autographCards() outcome {
	section, ok := checklist.FindSection(r.sections, checklist.CategoryAutograph)
	if !ok {
		return outcome{cards: []checklist.Card{}, diagnostic: "no autograph section found"}
	}

	basePrefixes := append([]string(nil), baseSetPrefixes...)
	if base, ok := checklist.FindSection(r.sections, checklist.CategoryBase); ok {
		if format, family := DetectBaseFormat(r.lines, base); format == checklist.FormatPrefixed {
			basePrefixes = append(basePrefixes, family...)
		}
	}

	s := autographStrategy()
	candidates := s.extract(r.lines, section, r.source)
	v := validation{teamRequired: s.teamRequired, basePrefixes: basePrefixes}
	return r.finish(s.category, candidates, v, checklist.FormatUnknown)
}

// finish validates, deduplicates, sorts and gates candidates.
func (r *run) finish(category checklist.Category, candidates []candidate, v validation, format checklist.BaseFormat) outcome {
	log := r.engine.logger
	log.Debug("stage", "category", category, "stage", "extract", "out", len(candidates))

	numbers := make(map[string]bool, len(candidates))
	valid := make([]checklist.Card, 0, len(candidates))
	for _, c := range candidates {
		numbers[c.card.Number] = true
		if reason := v.validate(c.card); reason != "" {
			log.Debug("card rejected",
				"category", category,
				"number", c.card.Number,
				"name", c.card.Name,
				"line", c.line,
				"reason", reason,
			)
			continue
		}
		valid = append(valid, c.card)
	}
	log.Debug("stage", "category", category, "stage", "validate", "in", len(candidates), "out", len(valid))

	cards := dedupe(valid)
	log.Debug("stage", "category", category, "stage", "dedupe", "in", len(valid), "out", len(cards))

	sortCards(cards)

	if diag := gate(cards, len(numbers), category, format, r.engine.policy); diag != "" {
		return outcome{cards: []checklist.Card{}, format: format, diagnostic: diag}
	}
	return outcome{cards: cards, format: format}
}

// subsetHeadings maps each line of a section to the nearest heading-like
// line above it inside the section.
func subsetHeadings(lines []Line, section checklist.Section) map[int]string {
	out := make(map[int]string)
	current := ""
	end := min(section.End, len(lines))
	for i := max(section.Start, 0); i < end; i++ {
		l := lines[i]
		if isHeadingLike(l) && !isParallelLabel(l) && !insertConfirmRe.MatchString(l.Text) {
			current = l.Text
			continue
		}
		out[i] = current
	}
	return out
}
