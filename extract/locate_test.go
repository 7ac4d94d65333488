package extract_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/checklist"
	"github.com/fwojciec/checklist/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullPage = `# 2025 Bowman Draft Baseball Checklist
Each hobby box contains twenty packs with ten cards in every pack.
## Base Set
BD-1 Eli Willits, Washington Nationals
BD-2 Jane Doe, Texas Rangers
## Inserts
## Bowman Spotlights
BS-1 Kevin McGonigle, Detroit Tigers
## Autographs
CPA-AE Alpha Echo, Los Angeles Dodgers
## Parallels
Gold Refractor /50`

func TestLocateSections(t *testing.T) {
	t.Parallel()

	t.Run("locates every category in page order", func(t *testing.T) {
		t.Parallel()

		sections := extract.LocateSections(extract.SplitLines(fullPage))

		assert.Equal(t, []checklist.Section{
			{Category: checklist.CategoryBase, Heading: "Base Set", Start: 3, End: 5},
			{Category: checklist.CategoryInsert, Heading: "Inserts", Start: 6, End: 8},
			{Category: checklist.CategoryAutograph, Heading: "Autographs", Start: 9, End: 10},
			{Category: checklist.CategoryParallel, Heading: "Parallels", Start: 11, End: 12},
		}, sections)
	})

	t.Run("sections never overlap", func(t *testing.T) {
		t.Parallel()

		sections := extract.LocateSections(extract.SplitLines(fullPage))

		for i, a := range sections {
			for _, b := range sections[i+1:] {
				assert.False(t, a.Overlaps(b), "%s overlaps %s", a.Category, b.Category)
			}
		}
	})

	t.Run("skips headings without codes in the look-ahead window", func(t *testing.T) {
		t.Parallel()

		lines := extract.SplitLines("Autographs\nSigned cards appear at random.\nBase Set\n1 Pascal Siakam, Indiana Pacers")

		sections := extract.LocateSections(lines)

		_, ok := checklist.FindSection(sections, checklist.CategoryAutograph)
		assert.False(t, ok)
		base, ok := checklist.FindSection(sections, checklist.CategoryBase)
		require.True(t, ok)
		assert.Equal(t, 3, base.Start)
	})

	t.Run("prefers a later base heading followed by card lines", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		b.WriteString("Base Set\n")
		for range 35 {
			b.WriteString("Contents entry\n")
		}
		b.WriteString("Base Set Checklist\n")
		b.WriteString("1 Pascal Siakam, Indiana Pacers\n")
		lines := extract.SplitLines(b.String())

		base, ok := checklist.FindSection(extract.LocateSections(lines), checklist.CategoryBase)

		require.True(t, ok)
		assert.Equal(t, "Base Set Checklist", base.Heading)
		assert.Equal(t, 37, base.Start)
		assert.Equal(t, 38, base.End)
	})

	t.Run("falls back to the first base heading", func(t *testing.T) {
		t.Parallel()

		lines := extract.SplitLines("Base Set\nComing soon.")

		base, ok := checklist.FindSection(extract.LocateSections(lines), checklist.CategoryBase)

		require.True(t, ok)
		assert.Equal(t, checklist.Section{Category: checklist.CategoryBase, Heading: "Base Set", Start: 1, End: 2}, base)
	})

	t.Run("excluded keywords do not start a base section", func(t *testing.T) {
		t.Parallel()

		lines := extract.SplitLines("Base Set Image Variations\n1 Pascal Siakam, Indiana Pacers")

		_, ok := checklist.FindSection(extract.LocateSections(lines), checklist.CategoryBase)

		assert.False(t, ok)
	})

	t.Run("insert subset headings do not end the insert section", func(t *testing.T) {
		t.Parallel()

		lines := extract.SplitLines("Inserts\nBS-1 Kevin McGonigle, Detroit Tigers\nPower Chords\nPC-1 Chord Player\nAutographs\nCPA-AE Alpha Echo, Los Angeles Dodgers")

		insert, ok := checklist.FindSection(extract.LocateSections(lines), checklist.CategoryInsert)

		require.True(t, ok)
		assert.Equal(t, 1, insert.Start)
		assert.Equal(t, 4, insert.End)
	})

	t.Run("returns nothing for a page without headings", func(t *testing.T) {
		t.Parallel()

		lines := extract.SplitLines("1 Pascal Siakam, Indiana Pacers")

		assert.Empty(t, extract.LocateSections(lines))
	})
}
