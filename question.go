package siteqa

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// QuestionSource provides the ordered list of questions asked about every site.
type QuestionSource interface {
	// Questions returns the current question list. Implementations may
	// reread their backing store on every call.
	Questions(ctx context.Context) ([]string, error)
}

// ParseQuestions reads one question per line, trimming whitespace and
// skipping blank lines. File order is preserved.
func ParseQuestions(r io.Reader) ([]string, error) {
	var questions []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if q := strings.TrimSpace(scanner.Text()); q != "" {
			questions = append(questions, q)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return questions, nil
}
