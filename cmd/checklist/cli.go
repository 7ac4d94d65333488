package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/checklist"
	"github.com/fwojciec/checklist/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Batches   checklist.BatchService
	Fetcher   checklist.Fetcher
	Content   checklist.ContentExtractor
	Extractor checklist.CardExtractor
	Policy    checklist.Policy
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract cards from a checklist page"`
	Batches BatchesCmd `cmd:"" help:"List saved batches"`
	Show    ShowCmd    `cmd:"" help:"Print a saved batch"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved batch"`
	Policy  PolicyCmd  `cmd:"" help:"Print the safeguard policy in effect"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Source     string `arg:"" help:"Checklist URL or local file path"`
	Category   string `short:"c" default:"base" enum:"base,insert,parallel,autograph,all" help:"Card category to extract (base, insert, parallel, autograph, all)"`
	JSON       bool   `name:"json" help:"Print batches as newline-delimited JSON"`
	Save       bool   `short:"s" help:"Save batches to the database"`
	Browser    bool   `short:"b" xor:"fetch" help:"Render the page in a headless browser"`
	Probe      bool   `xor:"fetch" help:"Fetch over HTTP and in a browser, keeping whichever page has more content"`
	Converter  string `default:"text" enum:"text,markdown" help:"HTML to text converter (text, markdown)"`
	Readable   string `name:"extractor" default:"none" enum:"none,trafilatura,readability" help:"Main content extractor applied before conversion (none, trafilatura, readability)"`
	PolicyFile string `name:"policy" type:"path" help:"Safeguard policy TOML file (overrides CHECKLIST_POLICY)"`
	Verbose    bool   `short:"v" help:"Log pipeline stages to stderr"`
}

// BatchesCmd is the "batches" subcommand.
type BatchesCmd struct {
	Source   string `help:"Only batches extracted from this source"`
	Category string `short:"c" help:"Only batches of this category (base, insert, parallel, autograph)"`
	Limit    int    `short:"n" default:"0" help:"Maximum number of batches to list (0 for all)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Batch ID"`
	JSON bool   `name:"json" help:"Print the batch as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Batch ID"`
	Force bool   `help:"Confirm deletion"`
}

// PolicyCmd is the "policy" subcommand.
type PolicyCmd struct {
	Write string `type:"path" help:"Write the policy to this file instead of printing it"`
}
