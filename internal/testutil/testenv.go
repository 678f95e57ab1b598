package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/virtualboard/sectionscan/internal/config"
)

// SampleIndex is a small page with two well-formed collapsible sections and one that never closes.
const SampleIndex = `<!DOCTYPE html>
<html>
<body>
  <div class="collapsible-section">
    <button class="section-header"><span class="section-title">Getting Started</span></button>
    <div class="section-content">
      <p>Install the tool.</p>
      <div class="note">
                        </div>
    </div>
  </div>
  <div class="collapsible-section">
    <button class="section-header"><span class="section-title">Usage</span></button>
    <div class="section-content">
      <p>Run it.</p>
    </div>
  </div>
  <div class="collapsible-section">
    <span class="section-title">Draft</span>
</body>
</html>
`

// Fixture provides a temporary root directory holding the files the CLI scans.
type Fixture struct {
	Root string
}

// NewFixture initialises a new workspace containing SampleIndex as index.html.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()
	fix := &Fixture{Root: t.TempDir()}
	fix.WriteFile(t, config.DefaultInputFile, []byte(SampleIndex))
	return fix
}

// Options returns cli options initialised for the fixture.
func (f *Fixture) Options(t *testing.T, jsonOut, verbose bool) *config.Options {
	t.Helper()
	opts := config.New()
	if err := opts.Init(f.Root, "", jsonOut, verbose, ""); err != nil {
		t.Fatalf("failed to init options: %v", err)
	}
	t.Cleanup(func() {
		if err := opts.Close(); err != nil {
			t.Errorf("failed to close options: %v", err)
		}
	})
	return opts
}

// WriteFile writes a file relative to the fixture root.
func (f *Fixture) WriteFile(t *testing.T, relative string, data []byte) {
	t.Helper()
	path := f.Path(relative)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

// WriteIndex replaces the fixture's index.html.
func (f *Fixture) WriteIndex(t *testing.T, content string) {
	t.Helper()
	f.WriteFile(t, config.DefaultInputFile, []byte(content))
}

// Path resolves a path relative to the fixture root.
func (f *Fixture) Path(parts ...string) string {
	return filepath.Join(append([]string{f.Root}, parts...)...)
}
