package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/siteqa"
)

// Ensure LoggingAsker implements siteqa.Asker.
var _ siteqa.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with logging of each question.
type LoggingAsker struct {
	next   siteqa.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next siteqa.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker and logs the outcome.
func (a *LoggingAsker) Ask(ctx context.Context, content *siteqa.ScrapeResult, question string) (answer string, err error) {
	defer func(begin time.Time) {
		var url string
		if content != nil {
			url = content.URL
		}
		a.logger.Info("ask",
			"url", url,
			"question", question,
			"answer_len", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Ask(ctx, content, question)
}
