package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const documentPart = "word/document.xml"

// ErrNotDocx indicates the archive has no Word document part.
var ErrNotDocx = errors.New("missing " + documentPart)

// DocxFile extracts paragraph text from a .docx file on disk.
func DocxFile(path string) (string, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer rc.Close()
	return docxFromFiles(rc.File)
}

// Docx extracts paragraph text from an in-memory .docx archive.
func Docx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	return docxFromFiles(zr.File)
}

func docxFromFiles(files []*zip.File) (string, error) {
	body, err := readZipFile(files, documentPart)
	if err != nil {
		return "", err
	}
	paragraphs, err := docxParagraphs(body)
	if err != nil {
		return "", err
	}
	return strings.Join(paragraphs, "\n"), nil
}

func readZipFile(files []*zip.File, target string) ([]byte, error) {
	for _, f := range files {
		if f == nil {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(f.Name), target) {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("open %s: %w", target, err)
			}
			defer rc.Close()
			data, err := io.ReadAll(io.LimitReader(rc, maxFileSize))
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", target, err)
			}
			return data, nil
		}
	}
	return nil, ErrNotDocx
}

// docxParagraphs walks WordprocessingML and returns one string per <w:p>.
// Tabs and breaks inside a run become spaces and newlines.
func docxParagraphs(body []byte) ([]string, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	var (
		inParagraph bool
		inRun       bool
		inText      bool
		text        strings.Builder
		out         []string
	)
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("parse %s: %w", documentPart, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				inText = false
				text.Reset()
			case "r":
				inRun = inParagraph
			case "t":
				inText = inRun
			case "tab":
				if inRun {
					text.WriteString(" ")
				}
			case "br", "cr":
				if inRun {
					text.WriteString("\n")
				}
			}
		case xml.CharData:
			if inText {
				text.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "r":
				inRun = false
			case "t":
				inText = false
			case "p":
				if inParagraph {
					out = append(out, strings.TrimRight(text.String(), " "))
				}
				inParagraph = false
				inRun = false
				inText = false
				text.Reset()
			}
		}
	}
	return out, nil
}
