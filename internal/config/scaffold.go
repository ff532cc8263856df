package config

import (
	"fmt"
	"os"
)

const defaultConfig = `version: 1

# Countdown budget per question. 0 disables the timer.
seconds_per_question: 60

# Lines containing any of these tokens declare the correct letter after ":".
answer_key_labels:
  - "đáp án"
  - "answer key"

# Fixed shuffle seed for reproducible quizzes. 0 picks a random order.
seed: 0

# auto | live | plain
ui: auto
no_color: false

# log_file: ".quizgen/quizgen.log"
# log_level: info
`

// Scaffold writes a default config file, refusing to overwrite one.
func Scaffold(path string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
