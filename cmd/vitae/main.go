package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/vitae"
	"github.com/fwojciec/vitae/fs"
	vitaegofpdf "github.com/fwojciec/vitae/gofpdf"
	"github.com/fwojciec/vitae/goquery"
	"github.com/fwojciec/vitae/htmltomarkdown"
	"github.com/fwojciec/vitae/render"
	"github.com/fwojciec/vitae/rod"
	vitaeslog "github.com/fwojciec/vitae/slog"
	"github.com/fwojciec/vitae/sqlite"
	"gopkg.in/yaml.v3"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Render settings path. Missing file means defaults.
	SettingsPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RecordService vitae.RecordService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:       defaultDBPath(),
		SettingsPath: defaultSettingsPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("vitae"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'vitae --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set VITAE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.RecordService = sqlite.NewRecordService(m.DB)
	if cli.Verbose {
		m.RecordService = vitaeslog.NewLoggingRecordService(m.RecordService, logger)
	}
	deps.DB = m.DB
	deps.Records = m.RecordService

	settings, err := loadSettings(m.SettingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings from %q: %w", m.SettingsPath, err)
	}
	deps.Settings = settings

	if cmd == "extract" {
		var extractor vitae.ProfileExtractor = goquery.NewExtractor()
		if cli.Verbose {
			extractor = vitaeslog.NewLoggingExtractor(extractor, logger)
		}
		deps.Extractor = extractor

		// A saved snapshot needs no browser.
		if cli.Extract.File == "" {
			fetcher, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer fetcher.Close()
			if cli.Verbose {
				deps.Fetcher = rod.NewLoggingFetcher(fetcher, logger)
			} else {
				deps.Fetcher = fetcher
			}
		}
	}

	if cmd == "export" {
		deps.Writer = fs.NewWriter(cli.Export.Out)
		deps.Renderers = map[string]vitae.Renderer{
			"json":     render.NewJSONRenderer(),
			"html":     render.NewHTMLRenderer(),
			"markdown": render.NewMarkdownRenderer(htmltomarkdown.NewConverter()),
			"pdf":      vitaegofpdf.NewRenderer(),
		}
	}

	return kongCtx.Run(deps)
}

// loadSettings reads the YAML render settings file. A missing file yields
// the defaults; a malformed one is an error.
func loadSettings(path string) (vitae.Settings, error) {
	settings := vitae.DefaultSettings()
	if path == "" {
		return settings, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return settings, err
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, err
	}
	return settings, nil
}

func defaultDBPath() string {
	if path := os.Getenv("VITAE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "vitae.db"
	}
	dir := filepath.Join(home, ".vitae")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "vitae.db")
}

func defaultSettingsPath() string {
	if path := os.Getenv("VITAE_SETTINGS"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vitae", "settings.yaml")
}
