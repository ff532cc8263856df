package config

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// UI modes accepted by the ui setting.
const (
	UIAuto  = "auto"
	UILive  = "live"
	UIPlain = "plain"
)

// Config holds quiz settings read from .quizgen.yml.
type Config struct {
	Version            int      `yaml:"version"`
	SecondsPerQuestion *int     `yaml:"seconds_per_question,omitempty"`
	AnswerKeyLabels    []string `yaml:"answer_key_labels,omitempty"`
	Seed               int64    `yaml:"seed,omitempty"`
	UI                 string   `yaml:"ui,omitempty"`
	NoColor            bool     `yaml:"no_color,omitempty"`
	LogFile            string   `yaml:"log_file,omitempty"`
	LogLevel           string   `yaml:"log_level,omitempty"`
}

// Seconds returns the countdown budget per question.
func (cfg Config) Seconds() int {
	if cfg.SecondsPerQuestion == nil {
		return DefaultSecondsPerQuestion
	}
	return *cfg.SecondsPerQuestion
}

// Parse decodes a single YAML document, rejecting unknown fields.
func Parse(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if err == io.EOF {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	var rest yaml.Node
	if err := decoder.Decode(&rest); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
