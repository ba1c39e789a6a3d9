// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrNotDirectory           = errors.New("not a directory")
	ErrUnsafeRemove           = errors.New("refusing to remove directory")
	ErrSymlinkLoop            = errors.New("symlink points back into copied tree")
)

// Permissions for created files and directories.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)

// Logf receives one line per copied entry. It may be nil.
type Logf func(format string, args ...any)

// CopyDir copies the tree rooted at src into dst, creating dst when missing
// and overwriting files that already exist. Symlinks are followed, so a link
// to a directory is copied as a directory. Each copied entry is reported to
// logf as " * {from} -> {to}".
func CopyDir(src, dst string, logf Logf) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, src)
	}
	return copyDir(src, dst, logf, []fs.FileInfo{info})
}

// copyDir copies src into dst. ancestors holds the directories above src so
// a symlink back into the tree is refused instead of recursed forever.
func copyDir(src, dst string, logf Logf, ancestors []fs.FileInfo) error {
	if err := os.MkdirAll(dst, DirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("listing %s: %w", src, err)
	}

	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())
		if logf != nil {
			logf(" * %s -> %s", from, to)
		}

		info, err := os.Stat(from)
		if err != nil {
			return fmt.Errorf("reading %s: %w", from, err)
		}
		if !info.IsDir() {
			if err := copyFile(from, to); err != nil {
				return err
			}
			continue
		}
		for _, seen := range ancestors {
			if os.SameFile(seen, info) {
				return fmt.Errorf("%w: %s", ErrSymlinkLoop, from)
			}
		}
		if err := copyDir(from, to, logf, append(ancestors, info)); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src) // #nosec G304 -- walking a user-provided tree
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, FilePerm) // #nosec G304
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer func() {
		if closeErr := out.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("closing %s: %w", dst, closeErr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return nil
}

// ResetDir removes dir and everything below it, then recreates it empty.
// The filesystem root and the current directory are refused.
func ResetDir(dir string) error {
	clean := filepath.Clean(dir)
	if clean == "." || clean == string(filepath.Separator) || clean == filepath.VolumeName(clean)+string(filepath.Separator) {
		return fmt.Errorf("%w: %q", ErrUnsafeRemove, dir)
	}
	if err := os.RemoveAll(clean); err != nil {
		return fmt.Errorf("removing %s: %w", clean, err)
	}
	if err := os.MkdirAll(clean, DirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", clean, err)
	}
	return nil
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, DirPerm); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ValidateExtension checks that the extension is safe for use in file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// ReplaceExt swaps the extension of path for ext (given without the dot).
func ReplaceExt(path, ext string) (string, error) {
	if err := ValidateExtension(ext); err != nil {
		return "", err
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext, nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (name)
//   - "./layout.html" -> true (relative path)
//   - "/srv/site/template.html" -> true (absolute)
//   - "sub/dir" -> true (contains separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// Walk calls fn for every regular file below root whose name ends in ext,
// passing the path relative to root.
func Walk(root, ext string, fn func(rel string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ext) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		return fn(rel)
	})
}
