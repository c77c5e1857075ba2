package main

import (
	"fmt"

	"github.com/fwojciec/filmoscope/dump"
	"github.com/fwojciec/filmoscope/ingest"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	stem := c.Dump
	if stem == "" {
		stem = dump.DefaultStem
	}

	source, err := dump.OpenSource(stem)
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: download a dump from https://dumps.wikimedia.org/frwiki/latest/")
		return err
	}
	defer source.Close()

	syncer := &ingest.Syncer{
		Articles:  deps.Articles,
		BatchSize: c.BatchSize,
		Progress: func(e ingest.ProgressEvent) {
			fmt.Fprintf(deps.Stdout, "%d films extracted (%d pages processed) in %.2fs\n",
				e.Films, e.Pages, e.Window.Seconds())
		},
	}

	result, err := syncer.Sync(deps.Ctx, dump.NewReader(source))
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Extraction complete: %d pages processed, %d films (%d new, %d updated, %d unchanged) in %.2fs\n",
		result.Pages, result.Films, result.Inserted, result.Updated, result.Touched, result.Elapsed.Seconds())

	return nil
}
