package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/checklist"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the batches command.
func (c *BatchesCmd) Run(deps *Dependencies) error {
	filter := checklist.BatchFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.Source = &c.Source
	}
	if c.Category != "" {
		category, err := checklist.ParseCategory(c.Category)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", checklist.ErrorMessage(err))
			return err
		}
		filter.Category = &category
	}

	batches, err := deps.Batches.FindBatches(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", checklist.ErrorMessage(err))
		return err
	}

	if len(batches) == 0 {
		fmt.Fprintln(deps.Stdout, "No batches found. Use 'checklist extract --save' to create one.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.AppendHeader(table.Row{"ID", "Category", "Cards", "Source", "Created", "Diagnostic"})
	for _, b := range batches {
		t.AppendRow(table.Row{
			b.ID,
			b.Category,
			len(b.Cards),
			b.Source,
			b.CreatedAt.Local().Format(time.DateTime),
			b.Diagnostic,
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()

	return nil
}
