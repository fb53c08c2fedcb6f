package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/emontes/prodex"
	"github.com/emontes/prodex/catalog"
	"github.com/emontes/prodex/fs"
	"github.com/emontes/prodex/goquery"
	"github.com/emontes/prodex/htmltomarkdown"
	prodexhttp "github.com/emontes/prodex/http"
	"github.com/emontes/prodex/scrape"
	prodexslog "github.com/emontes/prodex/slog"
	"github.com/emontes/prodex/sqlite"
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

	// Fetch retry backoff. Nil uses the scrape defaults.
	RetryDelays []time.Duration

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service exposed for end-to-end testing.
	ProductService prodex.ProductService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("prodex"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'prodex --help' to see available commands")
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

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PRODEX_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ProductService = sqlite.NewProductService(m.DB)

	fetcher := prodexhttp.NewFetcher()
	defer fetcher.Close()

	products := m.ProductService
	var scrapeFetcher prodex.Fetcher = fetcher
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		scrapeFetcher = prodexslog.NewLoggingFetcher(fetcher, logger)
		products = prodexslog.NewLoggingProductService(products, logger)
	}

	deps.DB = m.DB
	deps.Products = products
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Writer = fs.NewWriter(".")
	deps.Renderer = catalog.NewRenderer()
	deps.Scraper = &scrape.Scraper{
		Fetcher:     scrapeFetcher,
		Extractor:   goquery.NewExtractor(),
		RetryDelays: m.RetryDelays,
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PRODEX_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "prodex.db"
	}
	dir := filepath.Join(home, ".prodex")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "prodex.db")
}
