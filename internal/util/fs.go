package util

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// readFile is the subset of *os.File needed to load an input document.
type readFile interface {
	io.Reader
	Close() error
}

// tempFile is the subset of *os.File needed by WriteFileAtomic.
type tempFile interface {
	Write([]byte) (int, error)
	Close() error
	Name() string
}

// fileSystem abstracts the file operations used for reading inputs and writing reports.
type fileSystem interface {
	Open(string) (readFile, error)
	MkdirAll(string, fs.FileMode) error
	CreateTemp(string, string) (tempFile, error)
	Chmod(string, fs.FileMode) error
	Rename(string, string) error
	Remove(string) error
}

// osFileSystem implements fileSystem using the standard library os package.
type osFileSystem struct{}

func (osFileSystem) Open(name string) (readFile, error) {
	// #nosec G304 -- input path provided via command argument or config
	return os.Open(name)
}
func (osFileSystem) MkdirAll(path string, perm fs.FileMode) error { return os.MkdirAll(path, perm) }
func (osFileSystem) CreateTemp(dir, pattern string) (tempFile, error) {
	return os.CreateTemp(dir, pattern)
}
func (osFileSystem) Chmod(name string, perm fs.FileMode) error { return os.Chmod(name, perm) }
func (osFileSystem) Rename(oldpath, newpath string) error      { return os.Rename(oldpath, newpath) }
func (osFileSystem) Remove(name string) error                  { return os.Remove(name) }

var defaultFS fileSystem = osFileSystem{}

// ReadLines loads the whole file into memory and splits it into lines without their terminators.
// The file is closed on every path, including a failed read.
func ReadLines(path string) ([]string, error) {
	return readLines(defaultFS, path)
}

func readLines(fsys fileSystem, path string) ([]string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	// #nosec G307 -- read-only handle, close error carries no data loss
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits text on any newline convention (\n, \r\n, \r). A trailing newline does not
// produce an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// WriteFileAtomic writes data to the path using a temporary file then renames it for atomicity.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	return writeFileAtomic(defaultFS, path, data, perm)
}

func writeFileAtomic(fsys fileSystem, path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := fsys.CreateTemp(dir, ".report-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		// #nosec G104 -- cleanup best-effort after a failed step
		fsys.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		// #nosec G104 -- cleanup best-effort during write failure
		tmp.Close()
		cleanup()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := fsys.Chmod(tmpName, perm); err != nil {
		cleanup()
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := fsys.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
