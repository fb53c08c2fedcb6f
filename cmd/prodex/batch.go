package main

import (
	"fmt"

	"github.com/emontes/prodex/scrape"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	deps.Scraper.Products = deps.Products
	deps.Scraper.Concurrency = c.Concurrency
	if c.JSON {
		deps.Scraper.Writer = deps.Writer
	}

	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Scraping %d URLs\n", event.Total)
		case scrape.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, event.URL)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		case scrape.ProgressFinished:
			// Summary printed after the scrape completes
		}
	}

	result, err := deps.Scraper.ScrapeAll(deps.Ctx, c.URLs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error scraping: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d product(s), %d failed\n", result.Saved, result.Failed)
	return nil
}
