package checklist

// Content holds the main content extracted from an HTML page.
type Content struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// ContentExtractor removes boilerplate from HTML pages before conversion.
type ContentExtractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*Content, error)
}
