package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/checklist"
	"github.com/scizorman/go-ndjson"
)

// writeNDJSON writes one JSON object per batch per line.
func writeNDJSON(w io.Writer, batches []*checklist.Batch) error {
	output, err := ndjson.Marshal(batches)
	if err != nil {
		return err
	}

	_, err = w.Write(output)
	return err
}

// writeBatchText writes a summary header followed by one tab-separated
// line per card.
func writeBatchText(w io.Writer, batch *checklist.Batch) {
	header := fmt.Sprintf("# %s: %d cards", batch.Category, len(batch.Cards))
	if batch.Format != checklist.FormatUnknown {
		header += fmt.Sprintf(" (%s)", batch.Format)
	}
	fmt.Fprintln(w, header)

	if batch.Description != "" {
		fmt.Fprintln(w, batch.Description)
	}
	if len(batch.ParallelTypes) > 0 {
		fmt.Fprintf(w, "Parallels: %s\n", strings.Join(batch.ParallelTypes, ", "))
	}
	if len(batch.Cards) > 0 {
		fmt.Fprintln(w, checklist.FormatCards(batch.Cards))
	}
}
