package extract_test

import (
	"testing"

	"github.com/fwojciec/checklist"
	"github.com/fwojciec/checklist/extract"
	"github.com/stretchr/testify/assert"
)

func TestDetectBaseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		wantFormat checklist.BaseFormat
		wantFamily []string
	}{
		{
			name:       "plain numbers",
			text:       "1 Pascal Siakam, Indiana Pacers",
			wantFormat: checklist.FormatPlain,
		},
		{
			name:       "prefixed codes",
			text:       "BD-1 Eli Willits, Washington Nationals",
			wantFormat: checklist.FormatPrefixed,
			wantFamily: []string{"BDC", "BD"},
		},
		{
			name:       "chrome companion prefix",
			text:       "BDC-14 Eli Willits, Washington Nationals",
			wantFormat: checklist.FormatPrefixed,
			wantFamily: []string{"BDC", "BD"},
		},
		{
			name:       "first matching line decides",
			text:       "Odds are listed below.\nTP-3 Jane Doe, Texas Rangers\n4 Pascal Siakam, Indiana Pacers",
			wantFormat: checklist.FormatPrefixed,
			wantFamily: []string{"TPC", "TP"},
		},
		{
			name:       "no card lines",
			text:       "Checklist coming soon.",
			wantFormat: checklist.FormatUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lines := extract.SplitLines(tt.text)
			section := checklist.Section{Category: checklist.CategoryBase, Start: 0, End: len(lines)}

			format, family := extract.DetectBaseFormat(lines, section)

			assert.Equal(t, tt.wantFormat, format)
			assert.Equal(t, tt.wantFamily, family)
		})
	}
}
