package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned when a source holds no document.
var ErrEmptyDocument = errors.New("loader: document is empty")

// Parse decodes a metadata document from raw YAML or JSON bytes.
func Parse(data []byte) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, ErrEmptyDocument
	}
	return Decode(bytes.NewReader(data))
}

// Decode reads a single metadata document from r.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, ErrEmptyDocument
		}
		return Document{}, fmt.Errorf("loader: decode: %w", err)
	}
	return doc, nil
}

// LoadFS reads and decodes the document stored at path inside fsys.
func LoadFS(fsys fs.FS, path string) (Document, error) {
	if fsys == nil {
		return Document{}, errors.New("loader: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Document{}, fmt.Errorf("loader: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("loader: parse %s: %w", path, err)
	}
	return doc, nil
}

// LoadFile reads and decodes a document from the local filesystem.
func LoadFile(path string) (Document, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return Document{}, errors.New("loader: path is required")
	}
	data, err := os.ReadFile(trimmed)
	if err != nil {
		return Document{}, fmt.Errorf("loader: read %s: %w", trimmed, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("loader: parse %s: %w", trimmed, err)
	}
	return doc, nil
}
