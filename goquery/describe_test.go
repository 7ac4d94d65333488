package goquery_test

import (
	"testing"

	"github.com/fwojciec/checklist/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	t.Parallel()

	t.Run("joins heading and opening prose paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Ignored Title</title></head><body>
<div class="entry-content">
<h1>2025 Bowman Draft Baseball Checklist</h1>
<p>Bowman Draft returns with first cards of this summer's draft class.</p>
<p>Short line.</p>
<p>1 Pascal Siakam, Indiana Pacers and a long enough trailing line</p>
<p>Hobby boxes carry two autographs each, plus numbered refractors.</p>
</div>
</body></html>`

		got, err := goquery.Describe(html)

		require.NoError(t, err)
		assert.Equal(t, "2025 Bowman Draft Baseball Checklist\n"+
			"Bowman Draft returns with first cards of this summer's draft class.\n"+
			"Hobby boxes carry two autographs each, plus numbered refractors.", got)
	})

	t.Run("falls back to the document title", func(t *testing.T) {
		t.Parallel()

		got, err := goquery.Describe(`<html><head><title>2024 Topps Chrome  Checklist</title></head><body></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, "2024 Topps Chrome Checklist", got)
	})

	t.Run("stops after three paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<p>First paragraph that is comfortably longer than forty runes.</p>
<p>Second paragraph that is comfortably longer than forty runes.</p>
<p>Third paragraph that is comfortably longer than forty runes.</p>
<p>Fourth paragraph that is comfortably longer than forty runes.</p>
</body>`

		got, err := goquery.Describe(html)

		require.NoError(t, err)
		assert.NotContains(t, got, "Fourth")
		assert.Contains(t, got, "Third")
	})

	t.Run("skips bold-only paragraphs and navigation", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<nav><p>Navigation text that is comfortably longer than forty runes.</p></nav>
<p><strong>Bold heading paragraph longer than forty runes in total.</strong></p>
</body>`

		got, err := goquery.Describe(html)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
