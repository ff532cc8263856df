package question

// OptionCount is the number of answer options every quiz question carries.
const OptionCount = 4

// Question is a single multiple-choice item ready to be answered.
type Question struct {
	Prompt     string
	Options    []string
	Correct    string
	HasCorrect bool
	UserAnswer string
}

// HasOption reports whether option is one of the question's options.
func (q Question) HasOption(option string) bool {
	for _, candidate := range q.Options {
		if candidate == option {
			return true
		}
	}
	return false
}

// IsCorrect reports whether the recorded answer matches the correct option.
// Questions without a resolved correct option are never correct.
func (q Question) IsCorrect() bool {
	return q.HasCorrect && q.UserAnswer == q.Correct
}

// Spec defines the structured quiz file schema loaded from JSON or YAML.
type Spec struct {
	Version   int    `json:"version" yaml:"version"`
	Questions []Item `json:"questions" yaml:"questions"`
}

// Item is one question entry in a structured quiz file.
type Item struct {
	ID             string   `json:"id,omitempty" yaml:"id,omitempty"`
	Prompt         string   `json:"question" yaml:"question"`
	Answers        []string `json:"answers" yaml:"answers"`
	CorrectAnswers []string `json:"correct_answers" yaml:"correct_answers"`
}
