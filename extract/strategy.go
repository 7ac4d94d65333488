package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/checklist"
)

// strategy describes how one kind of card is found in section text.
//
// Cards are often concatenated on one physical line with no separator
// ("BD-1 Name, TeamBD-2 Name2, Team2"), so a line is cut into one segment
// per code occurrence and each segment is parsed on its own.
type strategy struct {
	category checklist.Category

	// code matches a card code; its first group is the card number.
	code *regexp.Regexp

	// startOK reports whether the byte before a code match allows the match
	// to begin a new card.
	startOK func(prev byte) bool

	// parse splits the text following a code into name and team.
	parse func(rest string) (name, team string)

	// teamRequired rejects cards without a team.
	teamRequired bool
}

// candidate is a card found by a strategy before validation.
type candidate struct {
	card checklist.Card
	line int
}

var (
	plainCodeRe     = regexp.MustCompile(`(\d{1,3})\s*\p{Lu}`)
	insertCodeRe    = regexp.MustCompile(`(\d+[A-Z]-[A-Z]+|[A-Z]{1,5}-\d+)`)
	autographCodeRe = regexp.MustCompile(`(\d*[A-Z]{1,5}-[A-Z0-9]+)`)
	rookieSuffixRe  = regexp.MustCompile(`(?:\s+\(?RC\)?)+$`)

	// gluedRookieRe finds a rookie marker fused to the code of the next
	// card ("Texas Rangers RCBD-2"). A marker at the start of a line is
	// left alone since nothing precedes it.
	gluedRookieRe = regexp.MustCompile(`(\S\s+\(?RC\)?)(\d*[A-Z]{1,5}-[A-Z0-9])`)
)

func plainBaseStrategy() *strategy {
	return &strategy{
		category:     checklist.CategoryBase,
		code:         plainCodeRe,
		startOK:      notDigitOrDash,
		parse:        splitNameTeam,
		teamRequired: true,
	}
}

// prefixedBaseStrategy matches only codes from the detected prefix family so
// that codes of other sets end the previous card instead of starting one.
func prefixedBaseStrategy(family []string) *strategy {
	quoted := make([]string, len(family))
	for i, p := range family {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return &strategy{
		category:     checklist.CategoryBase,
		code:         regexp.MustCompile(`((?:` + strings.Join(quoted, "|") + `)-\d{1,3})`),
		startOK:      notUpperOrDigit,
		parse:        splitNameTeam,
		teamRequired: true,
	}
}

func insertStrategy() *strategy {
	return &strategy{
		category: checklist.CategoryInsert,
		code:     insertCodeRe,
		startOK:  notUpperOrDigit,
		parse:    splitNameTeam,
	}
}

// autographStrategy segments on the generic code shape so that a base-set
// code ends the previous autograph; the validator then drops codes outside
// the autograph family.
func autographStrategy() *strategy {
	return &strategy{
		category: checklist.CategoryAutograph,
		code:     autographCodeRe,
		startOK:  notUpperOrDigit,
		parse:    splitAutograph,
	}
}

// extract runs the strategy over the lines of a section.
func (s *strategy) extract(lines []Line, section checklist.Section, source string) []candidate {
	var out []candidate
	end := min(section.End, len(lines))
	for i := max(section.Start, 0); i < end; i++ {
		for _, seg := range s.segments(lines[i].Text) {
			name, team := s.parse(seg.rest)
			card := checklist.NewCard(s.category, seg.code, name, team, source)
			out = append(out, candidate{card: card, line: i})
		}
	}
	return out
}

type segment struct {
	code string
	rest string
}

// segments cuts text at every accepted code occurrence. Text before the
// first code is ignored.
func (s *strategy) segments(text string) []segment {
	type span struct{ start, end int }

	text = gluedRookieRe.ReplaceAllString(text, "$1 $2")

	var starts []span
	for _, loc := range s.code.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[2], loc[3]
		if start > 0 && !s.startOK(text[start-1]) {
			continue
		}
		starts = append(starts, span{start, end})
	}

	segs := make([]segment, 0, len(starts))
	for i, sp := range starts {
		restEnd := len(text)
		if i+1 < len(starts) {
			restEnd = starts[i+1].start
		}
		segs = append(segs, segment{
			code: text[sp.start:sp.end],
			rest: text[sp.end:restEnd],
		})
	}
	return segs
}

func notDigit(b byte) bool {
	return b < '0' || b > '9'
}

// notDigitOrDash keeps the suffix of a prefixed code ("BD-3") from being
// read as a plain number.
func notDigitOrDash(b byte) bool {
	return notDigit(b) && b != '-'
}

func notUpperOrDigit(b byte) bool {
	return notDigit(b) && (b < 'A' || b > 'Z')
}

// splitNameTeam splits "Name, Team" on the first comma.
func splitNameTeam(rest string) (string, string) {
	name, team, _ := strings.Cut(rest, ",")
	return cleanField(name), cleanField(team)
}

// splitAutograph handles "Name, Team" and the commaless dual autograph form
// "Name1/Name2 Team1/Team2".
func splitAutograph(rest string) (string, string) {
	if strings.Contains(rest, ",") {
		return splitNameTeam(rest)
	}
	if name, team, ok := splitDual(cleanField(rest)); ok {
		return name, team
	}
	return cleanField(rest), ""
}

// splitDual splits "Name1/Name2 Team1/Team2". The middle part holds the
// second name followed by the first team; when both teams are the same the
// split point is exact, otherwise the second name is assumed to have as
// many words as the first.
func splitDual(s string) (string, string, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return "", "", false
	}
	first := strings.TrimSpace(parts[0])
	middle := strings.TrimSpace(parts[1])
	last := strings.TrimSpace(parts[2])

	var name2, team1 string
	if strings.HasSuffix(middle, " "+last) {
		name2 = strings.TrimSpace(strings.TrimSuffix(middle, last))
		team1 = last
	} else {
		words := strings.Fields(middle)
		n := len(strings.Fields(first))
		if n == 0 || n >= len(words) {
			return "", "", false
		}
		name2 = strings.Join(words[:n], " ")
		team1 = strings.Join(words[n:], " ")
	}

	if !startsUpper(team1) || !startsUpper(last) || name2 == "" {
		return "", "", false
	}
	return first + "/" + name2, team1 + "/" + last, true
}

func cleanField(s string) string {
	s = strings.TrimSpace(s)
	s = rookieSuffixRe.ReplaceAllString(s, "")
	s = strings.Trim(s, " -:;|")
	return strings.TrimSpace(s)
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
