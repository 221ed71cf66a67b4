package mock

import (
	"context"

	"github.com/fwojciec/siteqa"
)

var _ siteqa.QuestionSource = (*QuestionSource)(nil)

// QuestionSource is a mock implementation of siteqa.QuestionSource.
type QuestionSource struct {
	QuestionsFn func(ctx context.Context) ([]string, error)
}

func (q *QuestionSource) Questions(ctx context.Context) ([]string, error) {
	return q.QuestionsFn(ctx)
}
