package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// testEnv returns an Environment writing to buffers with a fixed clock
// and an empty environment.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	env := &Environment{
		Now:       func() time.Time { return fixed },
		Stdout:    stdout,
		Stderr:    stderr,
		Getenv:    func(key string) string { return vars[key] },
		TermWidth: func() int { return 80 },
	}
	return env, stdout, stderr
}

// writeFile creates path (and its parents) with content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// site lays out a content and static tree below a temp dir and returns the
// directory paths.
type site struct {
	root, content, static, public string
}

func newSite(t *testing.T) site {
	t.Helper()
	root := t.TempDir()
	return site{
		root:    root,
		content: filepath.Join(root, "content"),
		static:  filepath.Join(root, "static"),
		public:  filepath.Join(root, "public"),
	}
}

// buildArgs returns build args pointing at s.
func (s site) buildArgs(extra ...string) []string {
	args := []string{"build", "--content", s.content, "--static", s.static, "--public", s.public}
	return append(args, extra...)
}
