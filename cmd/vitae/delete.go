package main

import (
	"fmt"

	"github.com/fwojciec/vitae"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return vitae.Errorf(vitae.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Records.DeleteRecord(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitae.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted record %q\n", c.ID)
	return nil
}
