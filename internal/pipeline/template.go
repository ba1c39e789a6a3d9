package pipeline

import (
	"errors"
	"strings"
)

// Template markers substituted by RenderPage.
const (
	TitleMarker   = "{{ Title }}"
	ContentMarker = "{{ Content }}"
)

// ErrTemplateMissingContent indicates a page template without a content marker.
var ErrTemplateMissingContent = errors.New("template has no " + ContentMarker + " marker")

// ValidateTemplate checks that tmpl can receive page content.
func ValidateTemplate(tmpl string) error {
	if !strings.Contains(tmpl, ContentMarker) {
		return ErrTemplateMissingContent
	}
	return nil
}

// RenderPage replaces every title and content marker in tmpl. Markers are
// replaced in a single pass, so marker text inside title or content is kept
// literally.
func RenderPage(tmpl, title, content string) (string, error) {
	if err := ValidateTemplate(tmpl); err != nil {
		return "", err
	}
	r := strings.NewReplacer(TitleMarker, title, ContentMarker, content)
	return r.Replace(tmpl), nil
}
