package main

import (
	"context"
	"io"

	"github.com/fwojciec/vitae"
	"github.com/fwojciec/vitae/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Records   vitae.RecordService
	Fetcher   vitae.Fetcher
	Extractor vitae.ProfileExtractor
	Writer    vitae.ExportWriter
	Renderers map[string]vitae.Renderer
	Settings  vitae.Settings
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Extract ExtractCmd `cmd:"" help:"Extract a profile and store the record"`
	List    ListCmd    `cmd:"" help:"List stored records"`
	Show    ShowCmd    `cmd:"" help:"Print a stored record as JSON"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored record"`
	Export  ExportCmd  `cmd:"" help:"Export a stored record as a document"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL  string `arg:"" optional:"" help:"Profile URL to fetch and extract"`
	File string `short:"f" help:"Extract from a saved HTML snapshot instead of fetching"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL   string `help:"Only records extracted from this source URL"`
	Limit int    `short:"n" default:"0" help:"Maximum number of records to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Record ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Record ID"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	ID     string `arg:"" help:"Record ID"`
	Format string `short:"F" default:"json" enum:"json,markdown,html,pdf" help:"Export format (json, markdown, html, pdf)"`
	Out    string `short:"o" default:"." help:"Directory to write the export into"`
}
