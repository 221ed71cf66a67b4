package siteqa

import (
	"context"
	"fmt"
)

// AnswerAll asks every question in order, one at a time, and returns the
// answers index-aligned with questions.
//
// The batch is all-or-nothing: the first failing question aborts the run and
// no partial answers are returned.
func AnswerAll(ctx context.Context, asker Asker, content *ScrapeResult, questions []string) ([]string, error) {
	answers := make([]string, 0, len(questions))
	for i, question := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		answer, err := asker.Ask(ctx, content, question)
		if err != nil {
			return nil, fmt.Errorf("question %d %q: %w", i+1, question, err)
		}
		answers = append(answers, answer)
	}
	return answers, nil
}
