package config

import (
	"fmt"
	"strings"
)

// maxSecondsPerQuestion caps the per-question budget at one hour.
const maxSecondsPerQuestion = 3600

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

// add records a new validation issue.
func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

// result returns a ValidationError when issues are present.
func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks a normalized config for correctness.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if seconds := cfg.Seconds(); seconds < 0 {
		collector.add("seconds_per_question", "must be zero or positive")
	} else if seconds > maxSecondsPerQuestion {
		collector.add("seconds_per_question", fmt.Sprintf("must be at most %d", maxSecondsPerQuestion))
	}

	for i, label := range cfg.AnswerKeyLabels {
		if label == "" {
			collector.add(fmt.Sprintf("answer_key_labels[%d]", i), "is required")
		}
	}

	switch cfg.UI {
	case UIAuto, UILive, UIPlain:
	default:
		collector.add("ui", fmt.Sprintf("invalid mode %q (expected auto|live|plain)", cfg.UI))
	}

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		collector.add("log_level", fmt.Sprintf("invalid level %q (expected debug|info|warn|error)", cfg.LogLevel))
	}

	return collector.result()
}
