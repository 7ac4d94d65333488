package goquery_test

import (
	"testing"

	"github.com/fwojciec/checklist/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("marks headings and keeps paragraphs on their own lines", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<h1>2025 Bowman Draft Checklist</h1>
<p>Each hobby box contains twenty packs.</p>
<h3>Base Set</h3>
<p>BD-1 Eli Willits, Washington Nationals<br>BD-2 Jane Doe, Texas Rangers</p>
</body>
</html>`

		text, err := goquery.NewTextConverter().Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "# 2025 Bowman Draft Checklist\n"+
			"Each hobby box contains twenty packs.\n"+
			"### Base Set\n"+
			"BD-1 Eli Willits, Washington Nationals\n"+
			"BD-2 Jane Doe, Texas Rangers", text)
	})

	t.Run("wraps bold text in markers", func(t *testing.T) {
		t.Parallel()

		html := `<body><p><strong>Autographs</strong></p><p><b>CPA-AE</b> Alpha Echo, Los Angeles Dodgers</p></body>`

		text, err := goquery.NewTextConverter().Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "**Autographs**\n**CPA-AE** Alpha Echo, Los Angeles Dodgers", text)
	})

	t.Run("writes table rows as pipe-delimited lines", func(t *testing.T) {
		t.Parallel()

		html := `<body><table>
<thead><tr><th>No.</th><th>Player</th><th>Team</th></tr></thead>
<tbody>
<tr><td>1</td><td>Pascal Siakam</td><td>Indiana Pacers</td></tr>
<tr><td>2</td><td>Tyrese  Haliburton</td><td>Indiana Pacers</td></tr>
</tbody>
</table></body>`

		text, err := goquery.NewTextConverter().Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "| No. | Player | Team |\n"+
			"| 1 | Pascal Siakam | Indiana Pacers |\n"+
			"| 2 | Tyrese Haliburton | Indiana Pacers |", text)
	})

	t.Run("prefers the article body over page chrome", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<nav><a href="/">Home</a></nav>
<div class="sidebar">Popular posts</div>
<div class="entry-content"><h2>Base Set</h2><p>1 Pascal Siakam, Indiana Pacers</p></div>
<footer>Copyright</footer>
</body>`

		text, err := goquery.NewTextConverter().Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "## Base Set\n1 Pascal Siakam, Indiana Pacers", text)
	})

	t.Run("drops scripts and styles", func(t *testing.T) {
		t.Parallel()

		html := `<body><script>var x = 1;</script><style>p { color: red }</style><p>1 Pascal Siakam, Indiana Pacers</p></body>`

		text, err := goquery.NewTextConverter().Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "1 Pascal Siakam, Indiana Pacers", text)
	})

	t.Run("returns empty text for an empty document", func(t *testing.T) {
		t.Parallel()

		text, err := goquery.NewTextConverter().Convert("")

		require.NoError(t, err)
		assert.Empty(t, text)
	})
}

func TestDescribe_TextFile(t *testing.T) {
	t.Parallel()

	t.Run("uses the heading and opening prose", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Ignored Title</title></head><body>
<h1>2025 Bowman Draft Baseball Checklist</h1>
<p>Bowman Draft returns with the first cards of the newest draft class.</p>
<p><strong>Base Set Checklist</strong></p>
<p>1 Pascal Siakam, Indiana Pacers and a lot more text after the card</p>
<p>Short.</p>
<p>Each hobby box contains twenty packs with ten cards in every pack.</p>
</body></html>`

		description, err := goquery.Describe(html)

		require.NoError(t, err)
		assert.Equal(t, "2025 Bowman Draft Baseball Checklist\n"+
			"Bowman Draft returns with the first cards of the newest draft class.\n"+
			"Each hobby box contains twenty packs with ten cards in every pack.", description)
	})

	t.Run("falls back to the document title", func(t *testing.T) {
		t.Parallel()

		description, err := goquery.Describe(`<html><head><title>Topps Chrome Checklist</title></head><body></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, "Topps Chrome Checklist", description)
	})

	t.Run("stops after three paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<p>First paragraph describing the product in enough words.</p>
<p>Second paragraph describing the product in enough words.</p>
<p>Third paragraph describing the product in enough words.</p>
<p>Fourth paragraph describing the product in enough words.</p>
</body>`

		description, err := goquery.Describe(html)

		require.NoError(t, err)
		assert.NotContains(t, description, "Fourth")
		assert.Contains(t, description, "Third")
	})
}
