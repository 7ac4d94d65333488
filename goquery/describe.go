package goquery

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/checklist"
)

const (
	minParagraphLen = 40
	maxParagraphs   = 3
)

// Describe returns a short product description for a checklist page: the
// first h1 (or the document title) followed by up to three opening
// paragraphs of prose. Paragraphs that look like card lines are skipped.
func Describe(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", checklist.Errorf(checklist.EINVALID, "failed to parse HTML: %v", err)
	}

	var parts []string
	if title := pageTitle(doc); title != "" {
		parts = append(parts, title)
	}

	root := contentRoot(doc)
	root.Find(skippedSelectors).Remove()
	var paragraphs int
	root.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.Join(strings.Fields(s.Text()), " ")
		if !isProse(text) || s.Children().Filter("strong, b").Text() == s.Text() {
			return true
		}
		parts = append(parts, text)
		paragraphs++
		return paragraphs < maxParagraphs
	})

	return strings.Join(parts, "\n"), nil
}

func pageTitle(doc *goquery.Document) string {
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return strings.Join(strings.Fields(h1), " ")
	}
	return strings.Join(strings.Fields(doc.Find("title").First().Text()), " ")
}

// isProse reports whether text reads like a sentence rather than a card.
func isProse(text string) bool {
	if utf8.RuneCountInString(text) < minParagraphLen {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text)
	return !unicode.IsDigit(r)
}
