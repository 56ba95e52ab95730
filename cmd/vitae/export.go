package main

import (
	"fmt"

	"github.com/fwojciec/vitae"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	rec, err := deps.Records.FindRecordByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitae.ErrorMessage(err))
		return err
	}

	renderer, ok := deps.Renderers[c.Format]
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: unsupported format %q\n", c.Format)
		return vitae.Errorf(vitae.EINVALID, "unsupported format %q", c.Format)
	}

	data, err := renderer.Render(rec.Profile, deps.Settings)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitae.ErrorMessage(err))
		return err
	}

	path, err := deps.Writer.WriteExport(rec.Profile, data, renderer.Ext())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitae.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
	return nil
}
