package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/checklist"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var _ checklist.Converter = (*TextConverter)(nil)

// contentSelectors locate the article body on common checklist sites, most
// specific first. The whole body is used when none matches.
var contentSelectors = []string{
	".entry-content",   // WordPress blogs (Cardboard Connection and most card blogs)
	".article-content", // Beckett news
	".checklist",
	"article",
	"main",
	"#content",
}

// skippedSelectors never contain checklist text.
var skippedSelectors = "script, style, noscript, template, nav, footer, aside, form, iframe, svg"

// TextConverter reduces HTML to checklist lines. Headings are prefixed with
// markdown "#" markers, bold text is wrapped in "**", and table rows are
// written as pipe-delimited rows so every cell of a card stays on one line.
type TextConverter struct{}

// NewTextConverter creates a new TextConverter.
func NewTextConverter() *TextConverter {
	return &TextConverter{}
}

// Convert transforms HTML into line-oriented text.
func (c *TextConverter) Convert(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", checklist.Errorf(checklist.EINVALID, "failed to parse HTML: %v", err)
	}

	root := contentRoot(doc)
	root.Find(skippedSelectors).Remove()

	var w textWriter
	for _, n := range root.Nodes {
		w.children(n)
	}
	w.flush()
	return strings.TrimSpace(w.out.String()), nil
}

// contentRoot returns the first element matching a content selector that
// carries text, or the document body.
func contentRoot(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() > 0 && strings.TrimSpace(sel.Text()) != "" {
			return sel
		}
	}
	if body := doc.Find("body"); body.Length() > 0 {
		return body
	}
	return doc.Selection
}

// textWriter accumulates output lines. Inline content is buffered in line
// until a block boundary flushes it.
type textWriter struct {
	out  strings.Builder
	line strings.Builder
}

func (w *textWriter) flush() {
	text := strings.Join(strings.Fields(w.line.String()), " ")
	w.line.Reset()
	if text == "" {
		return
	}
	w.out.WriteString(text)
	w.out.WriteByte('\n')
}

func (w *textWriter) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.node(c)
	}
}

func (w *textWriter) node(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.line.WriteString(n.Data)
		return
	case html.ElementNode:
	default:
		w.children(n)
		return
	}

	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		w.flush()
		level := int(n.Data[1] - '0')
		w.line.WriteString(strings.Repeat("#", level) + " " + nodeText(n))
		w.flush()
	case atom.Br:
		w.flush()
	case atom.Tr:
		w.flush()
		w.row(n)
		w.flush()
	case atom.Strong, atom.B:
		text := strings.TrimSpace(nodeText(n))
		if text == "" {
			return
		}
		// Keep surrounding spaces so "**1** Name" stays separated.
		w.line.WriteString(" **" + text + "** ")
	case atom.P, atom.Div, atom.Li, atom.Ul, atom.Ol, atom.Table, atom.Thead,
		atom.Tbody, atom.Tfoot, atom.Section, atom.Article, atom.Main, atom.Header,
		atom.Blockquote, atom.Dl, atom.Dt, atom.Dd, atom.Pre, atom.Figure, atom.Figcaption:
		w.flush()
		w.children(n)
		w.flush()
	default:
		w.children(n)
	}
}

// row writes a table row as "| cell | cell |".
func (w *textWriter) row(tr *html.Node) {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.DataAtom != atom.Td && c.DataAtom != atom.Th) {
			continue
		}
		cells = append(cells, strings.Join(strings.Fields(nodeText(c)), " "))
	}
	if len(cells) == 0 {
		return
	}
	w.line.WriteString("| " + strings.Join(cells, " | ") + " |")
}

// nodeText returns the concatenated text of n and its descendants.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Br {
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
