package main

import (
	"fmt"

	"github.com/fwojciec/siteqa"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	origin, err := siteqa.NormalizeOrigin(c.Host)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteqa.ErrorMessage(err))
		return err
	}

	questions, err := deps.Questions.Questions(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteqa.ErrorMessage(err))
		return err
	}

	content := deps.Scraper.Scrape(deps.Ctx, origin)
	if c.Content {
		fmt.Fprintln(deps.Stdout, siteqa.FormatContent(content))
		fmt.Fprintln(deps.Stdout)
	}

	answers, err := siteqa.AnswerAll(deps.Ctx, deps.Asker, content, questions)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteqa.ErrorMessage(err))
		return err
	}

	for i, answer := range answers {
		fmt.Fprintf(deps.Stdout, "Q%d: %s\n%s\n\n", i+1, questions[i], answer)
	}
	return nil
}
