package question

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestExportSpecRoundTrip verifies exported quizzes load back unchanged.
func TestExportSpecRoundTrip(t *testing.T) {
	raw := wellFormed + "\n2) Pick one\nA. a\nB. b\nC. c\nD. d\nAnswer key: E"
	questions := NewParser(nil).Parse(raw)
	spec := ExportSpec(questions)
	if len(spec.Questions) != 2 {
		t.Fatalf("expected 2 items, got %d", len(spec.Questions))
	}
	if spec.Questions[1].ID != "q2" || len(spec.Questions[1].CorrectAnswers) != 0 {
		t.Fatalf("expected unresolved item to export no correct answer, got %+v", spec.Questions[1])
	}

	var buf bytes.Buffer
	if err := WriteSpec(&buf, spec, FormatYAML); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	path := filepath.Join(t.TempDir(), "quiz.yml")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	loaded, err := LoadSpec(path)
	if err != nil {
		t.Fatalf("load exported spec: %v\n%s", err, buf.String())
	}
	rebuilt := FromSpec(loaded, reverseShuffler{})
	if len(rebuilt) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(rebuilt))
	}
	if !rebuilt[0].HasCorrect || rebuilt[0].Correct != "B. 4" {
		t.Fatalf("expected B. 4, got %+v", rebuilt[0])
	}
	if rebuilt[0].Options[0] != "D. 6" {
		t.Fatalf("expected shuffled options, got %v", rebuilt[0].Options)
	}
	if rebuilt[1].HasCorrect {
		t.Fatalf("expected unresolved second question")
	}
}

// TestWriteSpecJSON verifies JSON output.
func TestWriteSpecJSON(t *testing.T) {
	var buf bytes.Buffer
	spec := ExportSpec(NewParser(nil).Parse(wellFormed))
	if err := WriteSpec(&buf, spec, "JSON"); err != nil {
		t.Fatalf("write json: %v", err)
	}
	if !strings.Contains(buf.String(), `"correct_answers": [`) {
		t.Fatalf("unexpected json output %s", buf.String())
	}
}

// TestWriteSpecUnknownFormat verifies format validation.
func TestWriteSpecUnknownFormat(t *testing.T) {
	if err := WriteSpec(&bytes.Buffer{}, Spec{Version: 1}, "toml"); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}
