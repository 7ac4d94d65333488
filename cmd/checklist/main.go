package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/checklist"
	"github.com/fwojciec/checklist/extract"
	"github.com/fwojciec/checklist/goquery"
	"github.com/fwojciec/checklist/htmltomarkdown"
	chttp "github.com/fwojciec/checklist/http"
	"github.com/fwojciec/checklist/readability"
	"github.com/fwojciec/checklist/rod"
	cslog "github.com/fwojciec/checklist/slog"
	"github.com/fwojciec/checklist/sqlite"
	"github.com/fwojciec/checklist/toml"
	"github.com/fwojciec/checklist/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Policy file used when --policy is not given. Empty means defaults.
	PolicyPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	BatchService checklist.BatchService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		PolicyPath: os.Getenv("CHECKLIST_POLICY"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("checklist"),
		kong.Description("Extract trading card checklists from product pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'checklist --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	policyPath := m.PolicyPath
	if cmd == "extract" && cli.Extract.PolicyFile != "" {
		policyPath = cli.Extract.PolicyFile
	}
	deps.Policy = checklist.DefaultPolicy()
	if policyPath != "" {
		if deps.Policy, err = toml.LoadPolicy(policyPath); err != nil {
			fmt.Fprintf(stderr, "Hint: Unset CHECKLIST_POLICY or pass --policy to use another policy file\n")
			return fmt.Errorf("failed to load policy: %w", err)
		}
	}

	if needsDB(cmd, cli) {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set CHECKLIST_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.BatchService = sqlite.NewBatchService(m.DB)
		deps.DB = m.DB
		deps.Batches = m.BatchService
	}

	if cmd == "extract" {
		logger := newLogger(stderr, cli.Extract.Verbose)
		deps.Logger = logger

		converter := newConverter(cli.Extract.Converter)
		engine := extract.NewEngine(
			extract.WithPolicy(deps.Policy),
			extract.WithConverter(converter),
			extract.WithLogger(logger),
		)
		deps.Extractor = cslog.NewLoggingCardExtractor(engine, logger)

		switch cli.Extract.Readable {
		case "trafilatura":
			deps.Content = trafilatura.NewExtractor()
		case "readability":
			deps.Content = readability.NewExtractor()
		}

		if isURL(cli.Extract.Source) {
			var fetcher checklist.Fetcher
			if cli.Extract.Browser {
				f, err := rod.NewFetcher()
				if err != nil {
					fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
					return fmt.Errorf("failed to start browser: %w", err)
				}
				fetcher = f
			} else {
				// One request per second per domain.
				fetcher = chttp.NewFetcher(
					chttp.WithRateLimit(chttp.NewDomainLimiter(1.0)),
					chttp.WithLogger(logger),
				)
			}
			if cli.Extract.Probe {
				fetcher = &ProbeFetcher{
					HTTP:       fetcher,
					NewBrowser: newBrowserFetcher,
					Converter:  converter,
					Logger:     logger,
				}
			}
			deps.Fetcher = cslog.NewLoggingFetcher(fetcher, logger)
			defer deps.Fetcher.Close()
		}
	}

	return kongCtx.Run(deps)
}

func newBrowserFetcher() (checklist.Fetcher, error) {
	return rod.NewFetcher()
}

// needsDB reports whether the command reads or writes saved batches.
func needsDB(cmd string, cli *CLI) bool {
	switch cmd {
	case "policy":
		return false
	case "extract":
		return cli.Extract.Save
	}
	return true
}

// newLogger logs errors only unless verbose is set, in which case every
// pipeline stage is logged.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelError
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newConverter(name string) checklist.Converter {
	if name == "markdown" {
		return htmltomarkdown.NewConverter()
	}
	return goquery.NewTextConverter()
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func defaultDBPath() string {
	if path := os.Getenv("CHECKLIST_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "checklist.db"
	}
	dir := filepath.Join(home, ".checklist")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "checklist.db")
}
