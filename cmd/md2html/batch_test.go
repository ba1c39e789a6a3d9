package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	md2html "github.com/alnah/go-md2html"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Stub converter
// ---------------------------------------------------------------------------

// stubConverter returns the markdown wrapped in a marker, or err for inputs
// containing "FAIL".
type stubConverter struct {
	calls atomic.Int32
}

func (s *stubConverter) Convert(_ context.Context, in md2html.Input) (*md2html.Result, error) {
	s.calls.Add(1)
	if strings.Contains(in.Markdown, "FAIL") {
		return nil, md2html.ErrNoTitleFound
	}
	title := in.Title
	if title == "" {
		title = "stub"
	}
	return &md2html.Result{Title: title, Page: "<page>" + in.Markdown + "</page>"}, nil
}

// ---------------------------------------------------------------------------
// TestConvertBatch - Concurrent page conversion
// ---------------------------------------------------------------------------

func TestConvertBatch(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		if got := convertBatch(context.Background(), &stubConverter{}, nil, 4); got != nil {
			t.Errorf("convertBatch() = %v, want nil", got)
		}
	})

	t.Run("results keep page order", func(t *testing.T) {
		t.Parallel()
		s := newSite(t)
		var pages []Page
		for i := range 10 {
			in := filepath.Join(s.content, fmt.Sprintf("p%02d.md", i))
			writeFile(t, in, fmt.Sprintf("page %d", i))
			pages = append(pages, Page{InputPath: in, OutputPath: filepath.Join(s.public, fmt.Sprintf("p%02d.html", i))})
		}

		conv := &stubConverter{}
		results := convertBatch(context.Background(), conv, pages, 3)

		if len(results) != len(pages) {
			t.Fatalf("got %d results, want %d", len(results), len(pages))
		}
		for i, r := range results {
			if r.Err != nil {
				t.Errorf("results[%d].Err = %v", i, r.Err)
			}
			if r.InputPath != pages[i].InputPath {
				t.Errorf("results[%d].InputPath = %q, want %q", i, r.InputPath, pages[i].InputPath)
			}
			want := fmt.Sprintf("<page>page %d</page>", i)
			if got := readFile(t, pages[i].OutputPath); got != want {
				t.Errorf("output %d = %q, want %q", i, got, want)
			}
		}
		if got := conv.calls.Load(); got != 10 {
			t.Errorf("Convert called %d times, want 10", got)
		}
	})

	t.Run("failures are isolated", func(t *testing.T) {
		t.Parallel()
		s := newSite(t)
		good := Page{filepath.Join(s.content, "good.md"), filepath.Join(s.public, "good.html")}
		bad := Page{filepath.Join(s.content, "bad.md"), filepath.Join(s.public, "bad.html")}
		writeFile(t, good.InputPath, "ok")
		writeFile(t, bad.InputPath, "FAIL")

		results := convertBatch(context.Background(), &stubConverter{}, []Page{bad, good}, 2)

		if !errors.Is(results[0].Err, md2html.ErrNoTitleFound) {
			t.Errorf("results[0].Err = %v, want ErrNoTitleFound", results[0].Err)
		}
		if results[1].Err != nil {
			t.Errorf("results[1].Err = %v, want nil", results[1].Err)
		}
	})

	t.Run("missing input file", func(t *testing.T) {
		t.Parallel()
		s := newSite(t)
		p := Page{filepath.Join(s.content, "missing.md"), filepath.Join(s.public, "missing.html")}

		results := convertBatch(context.Background(), &stubConverter{}, []Page{p}, 1)

		if !errors.Is(results[0].Err, ErrReadMarkdown) {
			t.Errorf("Err = %v, want ErrReadMarkdown", results[0].Err)
		}
	})

	t.Run("cancelled context skips work", func(t *testing.T) {
		t.Parallel()
		s := newSite(t)
		p := Page{filepath.Join(s.content, "a.md"), filepath.Join(s.public, "a.html")}
		writeFile(t, p.InputPath, "x")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		conv := &stubConverter{}
		results := convertBatch(ctx, conv, []Page{p}, 1)

		if !errors.Is(results[0].Err, context.Canceled) {
			t.Errorf("Err = %v, want context.Canceled", results[0].Err)
		}
		if conv.calls.Load() != 0 {
			t.Error("Convert should not be called after cancellation")
		}
	})
}

// ---------------------------------------------------------------------------
// TestPrintResults - Output formatting
// ---------------------------------------------------------------------------

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []ConversionResult{
		{InputPath: "a.md", OutputPath: "a.html", Title: "A"},
		{InputPath: "b.md", Err: md2html.ErrNoTitleFound},
	}

	t.Run("default", func(t *testing.T) {
		t.Parallel()
		env, stdout, stderr := testEnv(nil)

		summary := printResults(results, false, false, env)

		if summary != (ResultSummary{Succeeded: 1, Failed: 1}) {
			t.Errorf("summary = %+v", summary)
		}
		if !strings.Contains(stdout.String(), "Created a.html") {
			t.Errorf("stdout = %q, want Created line", stdout.String())
		}
		if !strings.Contains(stdout.String(), "1 succeeded, 1 failed") {
			t.Errorf("stdout = %q, want summary", stdout.String())
		}
		if !strings.Contains(stderr.String(), "FAILED b.md") || !strings.Contains(stderr.String(), "hint:") {
			t.Errorf("stderr = %q, want failure with hint", stderr.String())
		}
	})

	t.Run("quiet prints only failures", func(t *testing.T) {
		t.Parallel()
		env, stdout, stderr := testEnv(nil)

		printResults(results, true, false, env)

		if stdout.Len() != 0 {
			t.Errorf("stdout = %q, want empty", stdout.String())
		}
		if !strings.Contains(stderr.String(), "FAILED b.md") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})

	t.Run("verbose shows title", func(t *testing.T) {
		t.Parallel()
		env, stdout, _ := testEnv(nil)

		printResults(results[:1], false, true, env)

		if !strings.Contains(stdout.String(), `a.md -> a.html "A"`) {
			t.Errorf("stdout = %q", stdout.String())
		}
		if strings.Contains(stdout.String(), "succeeded") {
			t.Error("single result should not print a summary")
		}
	})
}
