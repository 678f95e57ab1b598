package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFixtureLifecycle(t *testing.T) {
	fix := NewFixture(t)
	content, err := os.ReadFile(filepath.Join(fix.Root, "index.html"))
	if err != nil {
		t.Fatalf("expected index file: %v", err)
	}
	if string(content) != SampleIndex {
		t.Fatalf("unexpected index content")
	}

	fix.WriteFile(t, filepath.Join("pages", "about.html"), []byte("content"))
	if _, err := os.Stat(fix.Path("pages", "about.html")); err != nil {
		t.Fatalf("expected nested file: %v", err)
	}

	fix.WriteIndex(t, "<p>replaced</p>\n")
	content, err = os.ReadFile(fix.Path("index.html"))
	if err != nil || string(content) != "<p>replaced</p>\n" {
		t.Fatalf("expected replaced index: %q %v", content, err)
	}

	opts := fix.Options(t, true, true)
	resolvedRoot, _ := filepath.EvalSymlinks(fix.Root)
	resolvedOpts, _ := filepath.EvalSymlinks(opts.RootDir)
	if resolvedOpts != resolvedRoot {
		t.Fatalf("unexpected root: %s", opts.RootDir)
	}
	if opts.JSONOutput != true || opts.Verbose != true {
		t.Fatalf("unexpected options: %+v", opts)
	}
}
