package main

import (
	"context"
	"io"

	"github.com/emontes/prodex"
	"github.com/emontes/prodex/catalog"
	"github.com/emontes/prodex/fs"
	"github.com/emontes/prodex/scrape"
	"github.com/emontes/prodex/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Products  prodex.ProductService
	Converter prodex.Converter
	Writer    *fs.Writer
	Scraper   *scrape.Scraper
	Renderer  *catalog.Renderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetch and store operations"`

	Get    GetCmd    `cmd:"" help:"Extract a product page and print the record"`
	Add    AddCmd    `cmd:"" help:"Extract a product page and store it in the catalog"`
	Batch  BatchCmd  `cmd:"" help:"Extract and store multiple product pages"`
	List   ListCmd   `cmd:"" help:"List stored products"`
	Delete DeleteCmd `cmd:"" help:"Delete a stored product"`
	Render RenderCmd `cmd:"" help:"Render the product catalog as HTML"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	URL      string `arg:"" help:"Product page URL"`
	JSON     bool   `help:"Save the record as a JSON file"`
	Out      string `short:"o" help:"JSON filename (implies --json)"`
	Markdown bool   `help:"Print the description as Markdown"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	URL  string `arg:"" help:"Product page URL"`
	JSON bool   `help:"Also save the record as a JSON file"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs        []string `arg:"" help:"Product page URLs"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	JSON        bool     `help:"Also save each record as a JSON file"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	ByTitle bool `help:"Sort by title instead of extraction date"`
	Limit   int  `help:"Maximum number of products to show"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	URL   string `arg:"" help:"Product page URL"`
	Force bool   `help:"Confirm deletion"`
}

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	Output string `short:"o" default:"catalogo_productos.html" help:"Output HTML file"`
	Dir    string `help:"Render JSON records from a directory instead of the catalog"`
}
