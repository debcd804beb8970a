package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Saver writes an exported prompt to a named file.
type Saver interface {
	Save(ctx context.Context, name, content string) (string, error)
}

// FileSaver writes into Dir. The content is staged in a temporary file
// that is renamed into place, and removed if anything fails.
type FileSaver struct {
	Dir string
}

// Save writes content verbatim to Dir/name and returns the final path.
func (s *FileSaver) Save(ctx context.Context, name, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}

	final := filepath.Join(dir, name)
	if err := os.Rename(tmpName, final); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return final, nil
}
