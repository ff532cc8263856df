package config

import (
	"strings"

	"quizgen/internal/question"
	"quizgen/internal/session"
)

// DefaultSecondsPerQuestion is the countdown budget when none is configured.
const DefaultSecondsPerQuestion = session.DefaultSecondsPerQuestion

// Default returns a normalized config with every default applied.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// Normalize fills defaults and canonicalizes enum values.
func Normalize(cfg *Config) {
	if cfg.SecondsPerQuestion == nil {
		seconds := DefaultSecondsPerQuestion
		cfg.SecondsPerQuestion = &seconds
	}
	labels := make([]string, 0, len(cfg.AnswerKeyLabels))
	for _, label := range cfg.AnswerKeyLabels {
		labels = append(labels, strings.TrimSpace(label))
	}
	if len(labels) == 0 {
		labels = append(labels, question.DefaultAnswerKeyLabels...)
	}
	cfg.AnswerKeyLabels = labels
	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))
	if cfg.UI == "" {
		cfg.UI = UIAuto
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFile = strings.TrimSpace(cfg.LogFile)
}
