package main

import (
	"fmt"

	"github.com/emontes/prodex"
)

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	rec, err := deps.Scraper.ScrapeOne(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodex.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, prodex.FormatRecord(rec))

	if c.Markdown {
		if rec.DescriptionHTML == "" {
			fmt.Fprintln(deps.Stderr, "no description markup to convert")
		} else {
			md, err := deps.Converter.Convert(rec.DescriptionHTML)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", prodex.ErrorMessage(err))
				return err
			}
			fmt.Fprintln(deps.Stdout, md)
		}
	}

	if c.JSON || c.Out != "" {
		path, err := deps.Writer.WriteRecord(deps.Ctx, rec, c.Out)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", prodex.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Datos guardados en: %s\n", path)
	}

	return nil
}
