package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"quizgen/internal/extract"
	"quizgen/internal/question"
)

// quizInput allows tests to override stdin for quiz text and answers.
var quizInput io.Reader = os.Stdin

// quizSource is the content of a quiz file: either raw text to parse or
// questions from a structured quiz file.
type quizSource struct {
	Path      string
	Text      string
	Questions []question.Question
	Spec      bool
}

// readSource loads path. "-" reads raw text from stdin.
func readSource(ctx context.Context, path string, shuffler question.Shuffler) (quizSource, error) {
	source := quizSource{Path: path}
	if path == "-" {
		data, err := io.ReadAll(quizInput)
		if err != nil {
			return source, fmt.Errorf("read stdin: %w", err)
		}
		source.Text = string(data)
		return source, nil
	}
	if question.IsSpecPath(path) {
		questions, err := question.OpenQuiz(path, shuffler)
		if err != nil {
			return source, err
		}
		source.Spec = true
		source.Questions = questions
		return source, nil
	}
	text, err := extract.File(ctx, path)
	if err != nil {
		return source, err
	}
	source.Text = text
	return source, nil
}
