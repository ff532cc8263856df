package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a structured quiz file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("quiz spec validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeSpec trims whitespace and validates a structured quiz.
// Every item needs exactly four answers and at most one correct answer,
// which must be one of the answers.
func NormalizeSpec(spec Spec) (Spec, error) {
	collector := &issueCollector{}
	if spec.Version == 0 {
		collector.add("version", "is required")
	} else if spec.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", spec.Version))
	}

	seenIDs := map[string]struct{}{}
	for i, item := range spec.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		item.ID = strings.TrimSpace(item.ID)
		if item.ID != "" {
			if _, exists := seenIDs[item.ID]; exists {
				collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", item.ID))
			} else {
				seenIDs[item.ID] = struct{}{}
			}
		}

		item.Prompt = strings.TrimSpace(item.Prompt)
		if item.Prompt == "" {
			collector.add(prefix+".question", "is required")
		}

		item.Answers = normalizeStringSlice(item.Answers)
		if len(item.Answers) != OptionCount {
			collector.add(prefix+".answers", fmt.Sprintf("must include exactly %d entries, got %d", OptionCount, len(item.Answers)))
		}
		answerSet := map[string]struct{}{}
		for answerIndex, answer := range item.Answers {
			if answer == "" {
				collector.add(fmt.Sprintf("%s.answers[%d]", prefix, answerIndex), "is required")
				continue
			}
			answerSet[answer] = struct{}{}
		}

		item.CorrectAnswers = normalizeStringSlice(item.CorrectAnswers)
		if len(item.CorrectAnswers) > 1 {
			collector.add(prefix+".correct_answers", "must include at most one entry")
		}
		for correctIndex, correct := range item.CorrectAnswers {
			if correct == "" {
				collector.add(fmt.Sprintf("%s.correct_answers[%d]", prefix, correctIndex), "is required")
				continue
			}
			if _, ok := answerSet[correct]; !ok {
				collector.add(fmt.Sprintf("%s.correct_answers[%d]", prefix, correctIndex), fmt.Sprintf("unknown answer %q", correct))
			}
		}
		spec.Questions[i] = item
	}

	if err := collector.result(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}
