package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/fwojciec/checklist"
	"github.com/fwojciec/checklist/goquery"
	"golang.org/x/sync/errgroup"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	categories, err := c.categories()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", checklist.ErrorMessage(err))
		return err
	}

	page, err := c.load(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", checklist.ErrorMessage(err))
		return err
	}

	text := page
	if deps.Content != nil {
		content, err := deps.Content.Extract(page)
		if err != nil {
			deps.Logger.Warn("content extraction failed, using full page", "source", c.Source, "err", err)
		} else {
			text = content.ContentHTML
		}
	}

	// Each category is an independent pass over the same text.
	batches := make([]*checklist.Batch, len(categories))
	var g errgroup.Group
	for i, category := range categories {
		g.Go(func() error {
			batch, err := deps.Extractor.ExtractCards(text, category, c.Source)
			if err != nil {
				return fmt.Errorf("extract %s: %w", category, err)
			}
			batches[i] = batch
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", checklist.ErrorMessage(err))
		return err
	}

	describeBatches(batches, page)

	if c.Save {
		for _, batch := range batches {
			if err := deps.Batches.CreateBatch(deps.Ctx, batch, page); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", checklist.ErrorMessage(err))
				return err
			}
			fmt.Fprintf(deps.Stderr, "Saved %s batch %s\n", batch.Category, batch.ID)
		}
	}

	warn := color.New(color.FgYellow)
	for _, batch := range batches {
		if batch.Diagnostic != "" {
			warn.Fprintf(deps.Stderr, "warning: %s: %s\n", batch.Category, batch.Diagnostic)
		}
	}

	if c.JSON {
		return writeNDJSON(deps.Stdout, batches)
	}
	for i, batch := range batches {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		writeBatchText(deps.Stdout, batch)
	}
	return nil
}

func (c *ExtractCmd) categories() ([]checklist.Category, error) {
	if c.Category == "all" {
		return checklist.Categories, nil
	}
	category, err := checklist.ParseCategory(c.Category)
	if err != nil {
		return nil, err
	}
	return []checklist.Category{category}, nil
}

// load returns the page HTML or text, fetched for URLs and read from disk
// otherwise.
func (c *ExtractCmd) load(deps *Dependencies) (string, error) {
	if isURL(c.Source) {
		if deps.Fetcher == nil {
			return "", checklist.Errorf(checklist.EINTERNAL, "no fetcher configured")
		}
		return deps.Fetcher.Fetch(deps.Ctx, c.Source)
	}

	data, err := os.ReadFile(c.Source)
	if errors.Is(err, fs.ErrNotExist) {
		return "", checklist.Errorf(checklist.ENOTFOUND, "file %q not found", c.Source)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// describeBatches fills in descriptions the engine could not assemble from
// page lines, using the title and lead paragraphs of an HTML page.
func describeBatches(batches []*checklist.Batch, page string) {
	if !strings.Contains(page, "<") {
		return
	}

	var description string
	var described bool
	for _, batch := range batches {
		if batch.Description != "" {
			continue
		}
		if !described {
			// A page goquery cannot parse simply has no description.
			description, _ = goquery.Describe(page)
			described = true
		}
		batch.Description = description
	}
}
