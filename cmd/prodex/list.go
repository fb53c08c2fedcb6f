package main

import (
	"fmt"

	"github.com/emontes/prodex"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := prodex.ProductFilter{Limit: c.Limit}
	if c.ByTitle {
		filter.SortBy = prodex.SortByTitle
	}

	records, err := deps.Products.FindProducts(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodex.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No products found. Use 'prodex add' to store one.")
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			rec.ExtractedAt, prodex.FormatPrice(rec.Price), rec.Title, rec.URL)
	}

	return nil
}
