package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/vitae"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := vitae.RecordFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitae.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'vitae extract' to create one.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			r.ID, r.CreatedAt.Format(time.DateOnly), r.Profile.Name, r.SourceURL)
	}

	return nil
}
