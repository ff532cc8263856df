package question

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by WriteSpec.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ExportSpec converts parsed questions into the structured quiz schema.
// Unresolved correct options export as an empty correct_answers list.
func ExportSpec(questions []Question) Spec {
	spec := Spec{Version: 1, Questions: make([]Item, 0, len(questions))}
	for i, q := range questions {
		item := Item{
			ID:             fmt.Sprintf("q%d", i+1),
			Prompt:         q.Prompt,
			Answers:        append([]string(nil), q.Options...),
			CorrectAnswers: []string{},
		}
		if q.HasCorrect {
			item.CorrectAnswers = []string{q.Correct}
		}
		spec.Questions = append(spec.Questions, item)
	}
	return spec
}

// FromSpec builds quiz questions from a validated spec, shuffling options.
func FromSpec(spec Spec, shuffler Shuffler) []Question {
	questions := make([]Question, 0, len(spec.Questions))
	for _, item := range spec.Questions {
		options := append([]string(nil), item.Answers...)
		q := Question{Prompt: item.Prompt}
		if len(item.CorrectAnswers) == 1 {
			q.Correct = item.CorrectAnswers[0]
			q.HasCorrect = true
		}
		if shuffler != nil {
			options = shuffler.Strings(options)
		}
		q.Options = options
		questions = append(questions, q)
	}
	return questions
}

// WriteSpec encodes spec to w in the requested format.
func WriteSpec(w io.Writer, spec Spec, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(spec); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return encoder.Close()
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(spec); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected yaml|json)", format)
	}
}
