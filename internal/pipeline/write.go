package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write serializes the document and writes it to path atomically: the full
// document lands in a temp file first and is renamed into place, so a
// failure at any point leaves either the previous file or nothing, never
// a truncated pipeline.
func Write(doc *Document, path string) error {
	data, err := doc.Encode()
	if err != nil {
		return fmt.Errorf("serializing pipeline document: %w", err)
	}
	return writeAtomic(path, data)
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %q: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing pipeline document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing pipeline document: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("moving pipeline document into place: %w", err)
	}
	return nil
}
