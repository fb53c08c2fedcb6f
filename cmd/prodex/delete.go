package main

import (
	"fmt"

	"github.com/emontes/prodex"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return prodex.Errorf(prodex.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Products.DeleteProduct(deps.Ctx, c.URL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %s\n", c.URL)
	return nil
}
