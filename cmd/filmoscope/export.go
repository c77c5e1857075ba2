package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/filmoscope"
)

// Run executes the export command, writing one JSON document per stored
// article in identity order.
func (c *ExportCmd) Run(deps *Dependencies) error {
	var out io.Writer = deps.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	err := deps.Articles.EnumerateDocuments(deps.Ctx, func(doc filmoscope.ArticleDocument) error {
		return enc.Encode(doc)
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", filmoscope.ErrorMessage(err))
		return err
	}

	return nil
}
