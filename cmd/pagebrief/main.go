package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagebrief"
	"github.com/fwojciec/pagebrief/brief"
	"github.com/fwojciec/pagebrief/gemini"
	pbgoquery "github.com/fwojciec/pagebrief/goquery"
	"github.com/fwojciec/pagebrief/htmltomarkdown"
	pbhttp "github.com/fwojciec/pagebrief/http"
	"github.com/fwojciec/pagebrief/rod"
	pbslog "github.com/fwojciec/pagebrief/slog"
	"github.com/fwojciec/pagebrief/sqlite"
	"github.com/fwojciec/pagebrief/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	// Best effort: a missing .env file is fine, env vars still apply.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// requestsPerSecond is the per-domain politeness limit.
const requestsPerSecond = 1.0

// Main represents the program.
type Main struct {
	// Page cache path. Set before calling Run().
	CachePath string

	// Config loaded from the environment.
	Config pagebrief.Config

	// SQLite database backing the page cache.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CachePath: defaultCachePath(),
		Config: pagebrief.Config{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  os.Getenv("PAGEBRIEF_MODEL"),
		},
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
		kong.Name("pagebrief"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagebrief --help' to see available commands")
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

	// Fail on bad configuration before any network or browser work.
	if cli.Model != "" {
		m.Config.Model = cli.Model
	}
	if err := m.Config.Validate(); err != nil {
		fmt.Fprintln(stderr, "Hint: Get an API key at https://aistudio.google.com/apikey")
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  m.Config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	defer m.Close()
	service, err := m.buildService(cli, client, logger, stderr)
	if err != nil {
		return err
	}
	defer service.Aggregator.Static.Close()
	if service.Aggregator.Rendered != nil {
		defer service.Aggregator.Rendered.Close()
	}

	deps.Service = service

	return kongCtx.Run(deps)
}

// buildService wires the aggregation pipeline and the generator.
func (m *Main) buildService(cli *CLI, client *genai.Client, logger *slog.Logger, stderr io.Writer) (*brief.Service, error) {
	model := m.Config.ModelOrDefault()

	var cache pagebrief.PageCache
	if !cli.NoCache {
		m.DB = sqlite.NewDB(m.CachePath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set PAGEBRIEF_CACHE to use a different cache path, or pass --no-cache")
			return nil, fmt.Errorf("failed to open page cache at %q: %w", m.CachePath, err)
		}
		cache = sqlite.NewPageCache(m.DB)
	}

	static := pagebrief.Fetcher(pbhttp.NewFetcher())
	if cache != nil {
		static = brief.NewCachingFetcher(static, cache, pagebrief.StrategyStatic)
	}
	static = pbslog.NewLoggingFetcher(static, logger)

	var rendered pagebrief.Fetcher
	if !cli.StaticOnly {
		rodFetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or pass --static-only")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		rendered = rodFetcher
		if cache != nil {
			rendered = brief.NewCachingFetcher(rendered, cache, pagebrief.StrategyRendered)
		}
		rendered = pbslog.NewLoggingFetcher(rendered, logger)
	}

	aggregator := &brief.Aggregator{
		Static:     static,
		Rendered:   rendered,
		Extractor:  trafilatura.NewExtractor(),
		Links:      pbgoquery.NewLinkSelector(),
		Converter:  htmltomarkdown.NewConverter(),
		Classifier: gemini.NewClassifier(client, model),
		Limiter:    brief.NewDomainLimiter(requestsPerSecond),
		Logger:     logger,
		MaxPages:   cli.MaxPages,
		MaxChars:   cli.MaxChars,
	}

	generator := gemini.NewGenerator(client, model)

	return &brief.Service{
		Aggregator: aggregator,
		Generator:  pbslog.NewLoggingGenerator(generator, logger),
		Logger:     logger,
	}, nil
}

func defaultCachePath() string {
	if path := os.Getenv("PAGEBRIEF_CACHE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagebrief.db"
	}
	dir := filepath.Join(home, ".pagebrief")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagebrief.db")
}
