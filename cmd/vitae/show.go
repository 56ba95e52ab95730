package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/vitae"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	rec, err := deps.Records.FindRecordByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitae.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}
