package upload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MaxFileSize is the largest file accepted for upload (5 MiB).
const MaxFileSize int64 = 5 * 1024 * 1024

// AcceptedExtensions is the advisory allowlist offered by the file picker.
var AcceptedExtensions = []string{".pdf", ".doc", ".docx"}

// Accepted reports whether name has an extension from AcceptedExtensions.
func Accepted(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, a := range AcceptedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}

// File is a user-selected local file.
type File struct {
	Name string
	Size int64
	open func() (io.ReadCloser, error)
}

// ErrNoContent is returned by Open for a File built without
// FileFromPath or FileFromBytes.
var ErrNoContent = errors.New("file has no content source")

// Open returns a reader over the file contents.
func (f *File) Open() (io.ReadCloser, error) {
	if f.open == nil {
		return nil, fmt.Errorf("%s: %w", f.Name, ErrNoContent)
	}
	return f.open()
}

// FileFromPath stats path and returns a File that reads it lazily.
func FileFromPath(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return &File{
		Name: filepath.Base(path),
		Size: info.Size(),
		open: func() (io.ReadCloser, error) { return os.Open(path) },
	}, nil
}

// FileFromBytes wraps in-memory content, as produced by a drop target.
func FileFromBytes(name string, data []byte) *File {
	return &File{
		Name: name,
		Size: int64(len(data)),
		open: func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(data)), nil },
	}
}
