// Package extract turns input documents into the plain text the quiz
// parser consumes.
package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupported indicates a file type that cannot be turned into text.
var ErrUnsupported = errors.New("unsupported file type")

// maxFileSize bounds how much of a document is read into memory.
const maxFileSize = 32 << 20

// File reads path and returns its plain text. Plain text files are
// returned as-is and .docx files yield one line per paragraph.
func File(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > maxFileSize {
		return "", fmt.Errorf("%s is too large (%d bytes)", path, info.Size())
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", ".text", "":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return string(data), nil
	case ".docx":
		text, err := DocxFile(path)
		if err != nil {
			return "", fmt.Errorf("extract %s: %w", path, err)
		}
		return text, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
}
