package main

import (
	"fmt"

	"github.com/emontes/prodex"
	"github.com/emontes/prodex/fs"
)

// Run executes the render command.
func (c *RenderCmd) Run(deps *Dependencies) error {
	var records []*prodex.Record
	var err error

	if c.Dir != "" {
		records, err = fs.NewStore(c.Dir).Records(deps.Ctx)
	} else {
		records, err = deps.Products.FindProducts(deps.Ctx, prodex.ProductFilter{})
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodex.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No products to render.")
		return nil
	}

	if err := deps.Renderer.RenderFile(c.Output, records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Rendered %d product(s) to %s\n", len(records), c.Output)
	return nil
}
