package main

import (
	"fmt"

	"github.com/emontes/prodex"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	deps.Scraper.Products = deps.Products
	if c.JSON {
		deps.Scraper.Writer = deps.Writer
	}

	rec, err := deps.Scraper.ScrapeOne(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added %q (%s)\n", rec.Title, rec.URL)
	return nil
}
