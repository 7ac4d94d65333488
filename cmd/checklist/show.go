package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/checklist"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	batch, err := deps.Batches.FindBatchByID(deps.Ctx, c.ID)
	if checklist.ErrorCode(err) == checklist.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: batch %q not found. Use 'checklist batches' to see saved batches.\n", c.ID)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", checklist.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(batch)
	}

	fmt.Fprintf(deps.Stdout, "Batch %s\n", batch.ID)
	fmt.Fprintf(deps.Stdout, "Source:  %s\n", batch.Source)
	fmt.Fprintf(deps.Stdout, "Created: %s\n", batch.CreatedAt.Local().Format(time.DateTime))
	if batch.Diagnostic != "" {
		fmt.Fprintf(deps.Stdout, "Diagnostic: %s\n", batch.Diagnostic)
	}
	fmt.Fprintln(deps.Stdout)
	writeBatchText(deps.Stdout, batch)

	return nil
}
