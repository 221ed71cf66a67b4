package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/siteqa"
	"github.com/fwojciec/siteqa/fs"
	"github.com/fwojciec/siteqa/gemini"
	"github.com/fwojciec/siteqa/goquery"
	lochttp "github.com/fwojciec/siteqa/http"
	"github.com/fwojciec/siteqa/readability"
	"github.com/fwojciec/siteqa/scrape"
	locslog "github.com/fwojciec/siteqa/slog"
	"github.com/fwojciec/siteqa/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Asker overrides the Gemini asker. Set before calling Run(); used by
	// end-to-end tests that must not reach the network.
	Asker siteqa.Asker

	// Fetcher overrides the HTTP fetcher. Set before calling Run().
	Fetcher siteqa.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("siteqa"),
		kong.Description("Answer a fixed list of questions about any web site"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'siteqa --help' to see available commands")
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

	cfg, err := fs.LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: use --config to point at a key=value file\n")
		return fmt.Errorf("failed to load config: %w", err)
	}
	deps.Config = cfg

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Questions = fs.NewQuestionSource(cli.Questions)

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = lochttp.NewFetcher(lochttp.WithTimeout(cfg.FetchTimeout))
	}
	defer fetcher.Close()

	deps.Scraper = locslog.NewLoggingScraper(&scrape.Scraper{
		Fetcher:  locslog.NewLoggingFetcher(fetcher, deps.Logger),
		Text:     newTextExtractor(cfg.Extractor),
		Metadata: goquery.NewMetadataExtractor(),
		Logger:   deps.Logger,
	}, deps.Logger)

	asker := m.Asker
	if asker == nil {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		asker = gemini.NewAsker(client, cfg.Model)
	}
	deps.Asker = locslog.NewLoggingAsker(asker, deps.Logger)

	return kongCtx.Run(deps)
}

// newTextExtractor returns the main-text extractor named by the EXTRACTOR key.
func newTextExtractor(name string) siteqa.TextExtractor {
	switch name {
	case siteqa.ExtractorTrafilatura:
		return trafilatura.NewExtractor()
	case siteqa.ExtractorReadability:
		return readability.NewExtractor()
	default:
		return goquery.NewTextExtractor()
	}
}
