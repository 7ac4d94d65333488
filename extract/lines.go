package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Line is one normalized, non-empty line of page text.
type Line struct {
	Text string

	// Heading is true when the source marked the line as a heading
	// (a markdown "#" marker or a fully bold line).
	Heading bool
}

var (
	headingMarkerRe = regexp.MustCompile(`^#{1,6}\s+`)
	bulletRe        = regexp.MustCompile(`^[*+•-]\s+`)
	markdownEscRe   = regexp.MustCompile(`\\([\\*_{}\[\]()#+\-.!|>~` + "`" + `])`)
	tableRuleRe     = regexp.MustCompile(`^[\s|:-]+$`)
	spaceRe         = regexp.MustCompile(`\s+`)
)

var punctuationReplacer = strings.NewReplacer(
	"\u2010", "-",
	"\u2011", "-",
	"\u2012", "-",
	"\u2013", "-",
	"\u2014", "-",
	"\u2212", "-",
	"\u2018", "'",
	"\u2019", "'",
	"\u201c", `"`,
	"\u201d", `"`,
	"\u00a0", " ",
	"\u200b", "",
)

// SplitLines splits raw text into trimmed, non-empty lines. Text is NFKC
// normalized, typographic dashes and quotes are folded to ASCII, and
// markdown decoration (heading markers, bullets, emphasis, escapes, table
// pipes) is removed. Heading markers are recorded on the Line.
func SplitLines(text string) []Line {
	if text == "" {
		return nil
	}

	text = norm.NFKC.String(text)
	text = punctuationReplacer.Replace(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []Line
	for _, raw := range strings.Split(text, "\n") {
		line, ok := normalizeLine(raw)
		if !ok {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func normalizeLine(raw string) (Line, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Line{}, false
	}

	var heading bool
	if loc := headingMarkerRe.FindStringIndex(s); loc != nil {
		heading = true
		s = s[loc[1]:]
		s = strings.TrimRight(s, "# ")
	}

	if strings.HasPrefix(s, "|") && strings.HasSuffix(s, "|") {
		if tableRuleRe.MatchString(s) {
			return Line{}, false
		}
		s = joinCells(strings.Split(strings.Trim(s, "|"), "|"))
	}

	s = bulletRe.ReplaceAllString(s, "")

	if len(s) > 4 && strings.HasPrefix(s, "**") && strings.HasSuffix(s, "**") {
		heading = true
	}
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = markdownEscRe.ReplaceAllString(s, "$1")
	s = spaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	if s == "" {
		return Line{}, false
	}
	return Line{Text: s, Heading: heading}, true
}

// joinCells renders a table row as "first rest1, rest2" so that a row of
// number, name and team cells reads like a checklist line.
func joinCells(cells []string) string {
	var parts []string
	for _, c := range cells {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	return parts[0] + " " + strings.Join(parts[1:], ", ")
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
