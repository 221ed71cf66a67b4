package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/siteqa"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Config    *siteqa.Config
	Logger    *slog.Logger
	Scraper   siteqa.Scraper
	Asker     siteqa.Asker
	Questions siteqa.QuestionSource
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    string `short:"c" default:"config/config.txt" help:"Path to the key=value configuration file"`
	Questions string `short:"q" default:"config/questions.txt" help:"Path to the questions file, one question per line"`
	Verbose   bool   `short:"v" help:"Enable debug logging"`

	Serve ServeCmd `cmd:"" help:"Serve the host-info HTTP endpoint"`
	Ask   AskCmd   `cmd:"" help:"Answer the configured questions about one host"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address (defaults to :PORT from the config file)"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Host    string `arg:"" help:"Host name or URL of the site"`
	Content bool   `help:"Print the scraped content before the answers"`
}
