package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/checklist"
	"github.com/fwojciec/checklist/extract"
	"github.com/fwojciec/checklist/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements checklist.Converter at compile time.
var _ checklist.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		html := `<h1>2025 Bowman Draft</h1><h2>Base Set</h2><h3>Autographs</h3>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# 2025 Bowman Draft")
		assert.Contains(t, md, "## Base Set")
		assert.Contains(t, md, "### Autographs")
	})

	t.Run("reduces links to their text", func(t *testing.T) {
		t.Parallel()

		html := `<p>1 <a href="https://example.com/players/siakam">Pascal Siakam</a>, Indiana Pacers</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "1 Pascal Siakam, Indiana Pacers")
		assert.NotContains(t, md, "https://")
	})

	t.Run("drops images", func(t *testing.T) {
		t.Parallel()

		html := `<p><img src="/box.jpg" alt="Hobby box"></p><p>Base Set</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.NotContains(t, md, "box.jpg")
		assert.Contains(t, md, "Base Set")
	})

	t.Run("converts tables to pipe rows", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>No.</th><th>Player</th><th>Team</th></tr></thead>
<tbody><tr><td>1</td><td>Pascal Siakam</td><td>Indiana Pacers</td></tr></tbody>
</table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "| 1 ")
		assert.Contains(t, md, "Pascal Siakam")
	})

	t.Run("produces lines the engine can read", func(t *testing.T) {
		t.Parallel()

		html := `<h2>Base Set</h2>
<ul>
<li>1 Pascal Siakam, Indiana Pacers</li>
<li>2 Tyrese Haliburton, Indiana Pacers</li>
</ul>`

		md, err := htmltomarkdown.NewConverter().Convert(html)
		require.NoError(t, err)

		batch, err := extract.NewEngine().ExtractCards(md, checklist.CategoryBase, "test")

		require.NoError(t, err)
		require.Len(t, batch.Cards, 2)
		assert.Equal(t, "Tyrese Haliburton", batch.Cards[1].Name)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("   ")

		require.Error(t, err)
		assert.Equal(t, checklist.EINVALID, checklist.ErrorCode(err))
	})
}
