package fs

import (
	"context"

	"github.com/fwojciec/siteqa"
)

// Ensure QuestionSource implements siteqa.QuestionSource at compile time.
var _ siteqa.QuestionSource = (*QuestionSource)(nil)

// QuestionSource reads questions from a newline-delimited text file.
// The file is reread on every call, so edits apply to the next request.
type QuestionSource struct {
	path string
}

// NewQuestionSource creates a QuestionSource for the file at path.
func NewQuestionSource(path string) *QuestionSource {
	return &QuestionSource{path: path}
}

// Questions returns the questions in file order.
// A missing file is reported as ENOTFOUND.
func (s *QuestionSource) Questions(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := open(s.path, "questions")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return siteqa.ParseQuestions(f)
}
