package question

import (
	"regexp"
	"strings"
)

// DefaultAnswerKeyLabels are the tokens that mark an answer key line.
var DefaultAnswerKeyLabels = []string{"đáp án", "answer key"}

var blockMarker = regexp.MustCompile(`^\d+\)`)

// Shuffler returns a reordered copy of the given options.
type Shuffler interface {
	Strings(values []string) []string
}

// SkipReason explains why a question block was dropped.
type SkipReason string

const (
	SkipTooShort         SkipReason = "too few lines"
	SkipMissingAnswerKey SkipReason = "missing answer key"
)

// Skipped records a dropped block by its position in the source text.
type Skipped struct {
	Block  int
	Reason SkipReason
}

// Result holds parsed questions along with the blocks that were dropped.
type Result struct {
	Questions []Question
	Skipped   []Skipped
}

// Parser converts loosely structured exam text into questions.
type Parser struct {
	labels   []string
	shuffler Shuffler
}

// NewParser builds a Parser. With no labels the defaults are used.
func NewParser(shuffler Shuffler, labels ...string) *Parser {
	normalized := make([]string, 0, len(labels))
	for _, label := range labels {
		label = strings.ToLower(strings.TrimSpace(label))
		if label != "" {
			normalized = append(normalized, label)
		}
	}
	if len(normalized) == 0 {
		normalized = append(normalized, DefaultAnswerKeyLabels...)
	}
	return &Parser{labels: normalized, shuffler: shuffler}
}

// Parse returns the questions found in raw, in source order.
func (p *Parser) Parse(raw string) []Question {
	return p.ParseDetailed(raw).Questions
}

// ParseDetailed parses raw and also reports which blocks were skipped.
func (p *Parser) ParseDetailed(raw string) Result {
	var result Result
	for i, block := range SplitBlocks(raw) {
		q, reason, ok := p.parseBlock(block)
		if !ok {
			result.Skipped = append(result.Skipped, Skipped{Block: i, Reason: reason})
			continue
		}
		result.Questions = append(result.Questions, q)
	}
	return result
}

// SplitBlocks cuts raw text at every line that starts with "<n>)".
// Text before the first marker is discarded.
func SplitBlocks(raw string) []string {
	var (
		blocks  []string
		current []string
		started bool
	)
	for _, line := range strings.Split(raw, "\n") {
		if blockMarker.MatchString(strings.TrimLeft(line, " \t")) {
			if started {
				blocks = append(blocks, strings.Join(current, "\n"))
			}
			current = current[:0]
			started = true
		}
		if started {
			current = append(current, line)
		}
	}
	if started {
		blocks = append(blocks, strings.Join(current, "\n"))
	}
	return blocks
}

func (p *Parser) parseBlock(block string) (Question, SkipReason, bool) {
	lines := contentLines(block)
	if len(lines) < OptionCount+1 {
		return Question{}, SkipTooShort, false
	}
	keyLine, ok := p.findAnswerKey(lines)
	if !ok {
		return Question{}, SkipMissingAnswerKey, false
	}
	options := make([]string, OptionCount)
	copy(options, lines[1:OptionCount+1])

	q := Question{Prompt: lines[0]}
	q.Correct, q.HasCorrect = ResolveCorrect(options, AnswerLetter(keyLine))
	if p.shuffler != nil {
		options = p.shuffler.Strings(options)
	}
	q.Options = options
	return q, "", true
}

// contentLines splits a block into trimmed, non-empty lines.
func contentLines(block string) []string {
	raw := strings.Split(block, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func (p *Parser) findAnswerKey(lines []string) (string, bool) {
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, label := range p.labels {
			if strings.Contains(lower, label) {
				return line, true
			}
		}
	}
	return "", false
}

// AnswerLetter extracts the declared letter from an answer key line: the
// text after the first colon, trimmed and upper-cased. A line without a
// colon yields the whole line.
func AnswerLetter(line string) string {
	if idx := strings.Index(line, ":"); idx >= 0 {
		line = line[idx+1:]
	}
	return strings.ToUpper(strings.TrimSpace(line))
}

// ResolveCorrect finds the first option whose label starts with letter.
func ResolveCorrect(options []string, letter string) (string, bool) {
	if letter == "" {
		return "", false
	}
	for _, option := range options {
		if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(option)), letter) {
			return option, true
		}
	}
	return "", false
}
