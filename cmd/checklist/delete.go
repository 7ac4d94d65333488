package main

import (
	"fmt"

	"github.com/fwojciec/checklist"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return checklist.Errorf(checklist.EINVALID, "use --force to confirm deletion")
	}

	err := deps.Batches.DeleteBatch(deps.Ctx, c.ID)
	if checklist.ErrorCode(err) == checklist.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: batch %q not found. Use 'checklist batches' to see saved batches.\n", c.ID)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", checklist.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted batch %s\n", c.ID)
	return nil
}
