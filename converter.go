package checklist

// Converter reduces HTML to line-oriented text for the extraction engine.
type Converter interface {
	// Convert transforms HTML into text with one block per line.
	// Headings are emitted with markdown "#" markers so the engine can
	// recognise them regardless of their wording.
	Convert(html string) (string, error)
}
