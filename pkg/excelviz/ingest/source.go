// Package ingest validates spreadsheet uploads and decodes their first sheet
// into a models.Dataset.
package ingest

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Source supplies a spreadsheet file's metadata and content.
// A Source must not be parsed by two goroutines at once.
type Source interface {
	// Name is the file name shown to users.
	Name() string
	// Size is the content length in bytes.
	Size() int64
	// MIMEType is the declared media type.
	MIMEType() string
	// ReadAll returns the full content.
	ReadAll(ctx context.Context) ([]byte, error)
}

// BytesSource is a Source backed by an in-memory buffer.
type BytesSource struct {
	name     string
	mimeType string
	data     []byte
}

// NewBytesSource creates a Source over data with the declared media type.
func NewBytesSource(name, mimeType string, data []byte) *BytesSource {
	return &BytesSource{name: name, mimeType: mimeType, data: data}
}

func (s *BytesSource) Name() string     { return s.name }
func (s *BytesSource) Size() int64      { return int64(len(s.data)) }
func (s *BytesSource) MIMEType() string { return s.mimeType }

// ReadAll returns the buffer.
func (s *BytesSource) ReadAll(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.data, nil
}

// FileSource is a Source backed by a file on disk.
// When no media type is declared it is sniffed from the file content.
type FileSource struct {
	path     string
	size     int64
	mimeType string
}

// OpenFile stats path and returns a FileSource for it.
// An empty mimeType is replaced by the detected type.
func OpenFile(path, mimeType string) (*FileSource, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if mimeType == "" {
		if mimeType, err = detectType(path); err != nil {
			return nil, err
		}
	}
	return &FileSource{path: path, size: info.Size(), mimeType: mimeType}, nil
}

// containerTypes maps spreadsheet file extensions to their media type for
// content that only sniffs as the generic container format.
var containerTypes = map[string]map[string]string{
	"application/zip":           {".xlsx": MIMETypeXLSX},
	"application/x-ole-storage": {".xls": MIMETypeXLS},
}

func detectType(path string) (string, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(path))
	for parent := mt; parent != nil; parent = parent.Parent() {
		if t, ok := containerTypes[parent.String()][ext]; ok && !IsSupportedType(mt.String()) {
			return t, nil
		}
	}
	return mt.String(), nil
}

func (s *FileSource) Name() string     { return filepath.Base(s.path) }
func (s *FileSource) Size() int64      { return s.size }
func (s *FileSource) MIMEType() string { return s.mimeType }

// ReadAll reads the whole file.
func (s *FileSource) ReadAll(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	buf.Grow(int(s.size))
	if _, err := io.Copy(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
