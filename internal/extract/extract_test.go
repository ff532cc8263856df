package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:pPr><w:tabs><w:tab w:val="left" w:pos="720"/></w:tabs></w:pPr><w:r><w:t>1) What is </w:t></w:r><w:r><w:t>2+2?</w:t></w:r></w:p>
    <w:p><w:r><w:t>A.</w:t><w:tab/><w:t>3</w:t></w:r></w:p>
    <w:p><w:r><w:t>B. 4</w:t></w:r></w:p>
    <w:p><w:r><w:t>C. 5</w:t></w:r></w:p>
    <w:p><w:r><w:t>D. 6</w:t></w:r></w:p>
    <w:p/>
    <w:p><w:r><w:t xml:space="preserve">Answer key: B</w:t></w:r></w:p>
  </w:body>
</w:document>`

// buildDocx returns a minimal .docx archive holding the given document part.
func buildDocx(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

// TestDocxParagraphLines verifies one line per paragraph.
func TestDocxParagraphLines(t *testing.T) {
	data := buildDocx(t, map[string]string{documentPart: documentXML})
	text, err := Docx(data)
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	want := "1) What is 2+2?\nA. 3\nB. 4\nC. 5\nD. 6\n\nAnswer key: B"
	if text != want {
		t.Fatalf("unexpected text:\n%q\nwant:\n%q", text, want)
	}
}

// TestDocxMissingDocumentPart verifies non-Word archives are rejected.
func TestDocxMissingDocumentPart(t *testing.T) {
	data := buildDocx(t, map[string]string{"ppt/slides/slide1.xml": "<p/>"})
	_, err := Docx(data)
	if !errors.Is(err, ErrNotDocx) {
		t.Fatalf("expected ErrNotDocx, got %v", err)
	}
}

// TestDocxNotZip verifies garbage input fails cleanly.
func TestDocxNotZip(t *testing.T) {
	if _, err := Docx([]byte("plain text")); err == nil {
		t.Fatalf("expected error for non-zip data")
	}
}

// TestFileByExtension verifies dispatch on file extension.
func TestFileByExtension(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	txtPath := filepath.Join(dir, "quiz.txt")
	if err := os.WriteFile(txtPath, []byte("1) hi"), 0o644); err != nil {
		t.Fatalf("write txt: %v", err)
	}
	text, err := File(ctx, txtPath)
	if err != nil || text != "1) hi" {
		t.Fatalf("expected txt passthrough, got %q, %v", text, err)
	}

	docxPath := filepath.Join(dir, "quiz.docx")
	if err := os.WriteFile(docxPath, buildDocx(t, map[string]string{documentPart: documentXML}), 0o644); err != nil {
		t.Fatalf("write docx: %v", err)
	}
	text, err = File(ctx, docxPath)
	if err != nil {
		t.Fatalf("extract docx file: %v", err)
	}
	if text[:15] != "1) What is 2+2?" {
		t.Fatalf("unexpected docx text %q", text)
	}

	pdfPath := filepath.Join(dir, "quiz.pdf")
	if err := os.WriteFile(pdfPath, []byte("%PDF"), 0o644); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	if _, err := File(ctx, pdfPath); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}

	if _, err := File(ctx, filepath.Join(dir, "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

// TestFileCanceledContext verifies cancellation is honored.
func TestFileCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := File(ctx, "whatever.txt"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
