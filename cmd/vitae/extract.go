package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/vitae"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if c.URL == "" && c.File == "" {
		fmt.Fprintf(deps.Stderr, "error: provide a profile URL or --file snapshot\n")
		return vitae.Errorf(vitae.EINVALID, "provide a profile URL or --file snapshot")
	}

	var html string
	if c.File != "" {
		data, err := os.ReadFile(c.File)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			return err
		}
		html = string(data)
	} else {
		var err error
		html, err = deps.Fetcher.Fetch(deps.Ctx, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", vitae.ErrorMessage(err))
			return err
		}
	}

	profile, err := deps.Extractor.Extract(deps.Ctx, html, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitae.ErrorMessage(err))
		return err
	}

	rec := &vitae.Record{SourceURL: c.URL, Profile: profile}
	if err := deps.Records.CreateRecord(deps.Ctx, rec); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitae.ErrorMessage(err))
		return err
	}

	if profile.Name == vitae.PlaceholderName {
		fmt.Fprintln(deps.Stderr, "Warning: no profile fields could be resolved from the page")
	}
	fmt.Fprintf(deps.Stdout, "%s  %s\n", rec.ID, profile.Name)
	return nil
}
