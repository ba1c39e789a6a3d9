package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ErrInvalidBasePath indicates a base path that is not an absolute URL path.
var ErrInvalidBasePath = errors.New("invalid base path")

// rewrittenAttrs lists the attributes whose root-relative values get the base path.
var rewrittenAttrs = map[string]bool{
	"href": true,
	"src":  true,
}

// NormalizeBasePath validates basePath and ensures it ends with "/".
// An empty base path means "/".
func NormalizeBasePath(basePath string) (string, error) {
	if basePath == "" {
		return "/", nil
	}
	if !strings.HasPrefix(basePath, "/") && !isAbsoluteURL(basePath) {
		return "", fmt.Errorf("%w: %q (must start with / or be an http(s) URL)", ErrInvalidBasePath, basePath)
	}
	if strings.ContainsAny(basePath, "\"'<> \t\n") {
		return "", fmt.Errorf("%w: %q contains forbidden characters", ErrInvalidBasePath, basePath)
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return basePath, nil
}

// RewriteBasePath prefixes root-relative href and src values with basePath,
// so a page linking to "/blog/" is served correctly under "/repo/blog/".
// A base path of "/" returns the markup unchanged.
//
// Does NOT rewrite:
//   - URLs (http, https, mailto, data) or protocol-relative "//host" values
//   - anchors and relative paths
//
// The leading "/" of each rewritten value is replaced by basePath in place;
// all other bytes, including quoting and character references, are copied
// verbatim.
func RewriteBasePath(markup, basePath string) (string, error) {
	basePath, err := NormalizeBasePath(basePath)
	if err != nil {
		return "", err
	}
	if basePath == "/" {
		return markup, nil
	}

	var out bytes.Buffer
	out.Grow(len(markup))

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				return out.String(), nil
			}
			return "", z.Err()
		}

		raw := z.Raw()
		if tt == html.StartTagToken || tt == html.SelfClosingTagToken {
			raw = rewriteTag(raw, basePath)
		}
		out.Write(raw)
	}
}

// rewriteTag splices basePath into the root-relative href and src values of
// the raw start tag. raw is returned as is when nothing matches.
func rewriteTag(raw []byte, basePath string) []byte {
	var out []byte
	last := 0

	i := 1 // past '<'
	for i < len(raw) && !isTagSpace(raw[i]) && raw[i] != '/' && raw[i] != '>' {
		i++
	}
	for i < len(raw) {
		for i < len(raw) && (isTagSpace(raw[i]) || raw[i] == '/') {
			i++
		}
		if i >= len(raw) || raw[i] == '>' {
			break
		}

		nameStart := i
		for i < len(raw) && !isTagSpace(raw[i]) && raw[i] != '/' && raw[i] != '>' && (raw[i] != '=' || i == nameStart) {
			i++
		}
		name := strings.ToLower(string(raw[nameStart:i]))

		j := skipTagSpace(raw, i)
		if j >= len(raw) || raw[j] != '=' {
			i = j
			continue
		}
		j = skipTagSpace(raw, j+1)

		var valStart, valEnd int
		if j < len(raw) && (raw[j] == '"' || raw[j] == '\'') {
			valStart = j + 1
			if k := bytes.IndexByte(raw[valStart:], raw[j]); k >= 0 {
				valEnd = valStart + k
				i = valEnd + 1
			} else {
				valEnd, i = len(raw), len(raw)
			}
		} else {
			valStart = j
			for j < len(raw) && !isTagSpace(raw[j]) && raw[j] != '>' {
				j++
			}
			valEnd, i = j, j
		}

		val := string(raw[valStart:valEnd])
		if !rewrittenAttrs[name] || !isRootRelative(val) || !isRootRelative(html.UnescapeString(val)) {
			continue
		}
		out = append(out, raw[last:valStart]...)
		out = append(out, basePath...)
		last = valStart + 1
	}

	if out == nil {
		return raw
	}
	return append(out, raw[last:]...)
}

func isTagSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func skipTagSpace(raw []byte, i int) int {
	for i < len(raw) && isTagSpace(raw[i]) {
		i++
	}
	return i
}

// isRootRelative returns true for "/path" values but not "//host" ones.
func isRootRelative(path string) bool {
	return strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//")
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
