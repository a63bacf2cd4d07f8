// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/niklasfasching/go-org/org"
	nethtml "golang.org/x/net/html"
)

var (
	errTestBoom         = errors.New("boom")
	errTestWriteFailed  = errors.New("write failed")
	errTestParseFailed  = errors.New("parse failed")
	errTestRenderFailed = errors.New("render failed")
)

func TestParseOrgToHTML(t *testing.T) {
	t.Parallel()

	content := "* Heading\nSome text"

	rendered, err := ParseOrgToHTML(content)
	if err != nil {
		t.Fatalf("ParseOrgToHTML failed: %v", err)
	}

	if !strings.Contains(rendered, "Heading") {
		t.Fatalf("expected heading in output, got %s", rendered)
	}
}

func TestParseOrgToHTMLEmpty(t *testing.T) {
	t.Parallel()

	if _, err := ParseOrgToHTML("  \n"); !errors.Is(err, ErrEmptyOrgDocument) {
		t.Fatalf("expected ErrEmptyOrgDocument, got %v", err)
	}
}

func TestParseOrgToHTMLAnnotatesExternalLinks(t *testing.T) {
	t.Parallel()

	content := "See [[https://www.who.int/tools/child-growth-standards][WHO standards]] and [[/nutrition/1-3][toddlers]]."

	rendered, err := ParseOrgToHTML(content)
	if err != nil {
		t.Fatalf("ParseOrgToHTML failed: %v", err)
	}

	for _, want := range []string{
		`href="https://www.who.int/tools/child-growth-standards"`,
		`target="_blank"`,
		`rel="noopener noreferrer"`,
		ExternalLinkPrefix + "WHO standards",
		`href="/nutrition/1-3"`,
	} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("expected %q in output, got %s", want, rendered)
		}
	}

	if strings.Contains(rendered, ExternalLinkPrefix+"toddlers") {
		t.Fatalf("internal link should not be prefixed, got %s", rendered)
	}
}

func TestParseOrgToHTMLHighlightCodeBlocks(t *testing.T) {
	t.Parallel()

	content := strings.Join([]string{
		"Inline src_go{code} example",
		"#+BEGIN_SRC go",
		"fmt.Println(\"hi\")",
		"#+END_SRC",
	}, "\n")

	rendered, err := ParseOrgToHTML(content)
	if err != nil {
		t.Fatalf("ParseOrgToHTML failed: %v", err)
	}

	if !strings.Contains(rendered, "inline-code") {
		t.Fatalf("expected inline-code in output, got %s", rendered)
	}

	if !strings.Contains(rendered, "code-block") {
		t.Fatalf("expected code-block in output, got %s", rendered)
	}
}

func TestAddExternalLinkPrefix(t *testing.T) {
	t.Parallel()

	input := `<p><a href="https://example.com">Example</a> ` +
		`<a href="/history">Internal</a> ` +
		`<a href="#section">Anchor</a> ` +
		`<a href="https://example.com/already">↗ Already</a></p>`

	output, err := addExternalLinkPrefix(input)
	if err != nil {
		t.Fatalf("addExternalLinkPrefix failed: %v", err)
	}

	if !strings.Contains(output, ">↗ Example</a>") {
		t.Fatalf("expected prefix inserted for external link, got %s", output)
	}

	if strings.Contains(output, "↗ ↗") {
		t.Fatalf("expected existing prefix to be kept once, got %s", output)
	}

	if strings.Contains(output, ">↗ Internal") || strings.Contains(output, ">↗ Anchor") {
		t.Fatalf("expected internal links untouched, got %s", output)
	}
}

func TestAddExternalLinkPrefixEmpty(t *testing.T) {
	t.Parallel()

	output, err := addExternalLinkPrefix("   ")
	if err != nil {
		t.Fatalf("addExternalLinkPrefix failed: %v", err)
	}

	if output != "   " {
		t.Fatalf("expected whitespace passthrough, got %q", output)
	}
}

func TestAddExternalLinkPrefixEmptyAnchor(t *testing.T) {
	t.Parallel()

	output, err := addExternalLinkPrefix(`<a href="https://example.com"></a>`)
	if err != nil {
		t.Fatalf("addExternalLinkPrefix failed: %v", err)
	}

	if !strings.Contains(output, ">↗ </a>") {
		t.Fatalf("expected prefix appended to empty anchor, got %s", output)
	}
}

func TestIsExternalLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		href string
		want bool
	}{
		{"", false},
		{"#top", false},
		{"/history", false},
		{"relative/path", false},
		{"https://example.com", true},
		{"http://example.com/x", true},
		{"//cdn.example.com/x.js", true},
	}

	for _, tt := range tests {
		if got := isExternalLink(tt.href); got != tt.want {
			t.Fatalf("isExternalLink(%q) = %v, want %v", tt.href, got, tt.want)
		}
	}
}

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	if got := ExtractTitle("#+TITLE: Toddlers\n* Heading"); got != "Toddlers" {
		t.Fatalf("expected directive title, got %q", got)
	}

	if got := ExtractTitle("intro\n** Iron sources\ntext"); got != "Iron sources" {
		t.Fatalf("expected headline fallback, got %q", got)
	}

	if got := ExtractTitle("plain text"); got != "" {
		t.Fatalf("expected empty title, got %q", got)
	}
}

//nolint:paralleltest // overrides package-level function vars
func TestParseOrgToHTMLParseError(t *testing.T) {
	origParseOrg := parseOrg
	parseOrg = func(_ *org.Configuration, _ io.Reader) *org.Document {
		return &org.Document{Error: errTestBoom}
	}

	defer func() {
		parseOrg = origParseOrg
	}()

	if _, err := ParseOrgToHTML("content"); err == nil {
		t.Fatalf("expected parse error")
	}
}

//nolint:paralleltest // overrides package-level function vars
func TestParseOrgToHTMLWriteError(t *testing.T) {
	origWriteOrg := writeOrg
	writeOrg = func(_ *org.Document, _ *org.HTMLWriter) (string, error) {
		return "", errTestWriteFailed
	}

	defer func() {
		writeOrg = origWriteOrg
	}()

	if _, err := ParseOrgToHTML("content"); err == nil {
		t.Fatalf("expected write error")
	}
}

//nolint:paralleltest // overrides package-level function vars
func TestParseOrgToHTMLAnnotateError(t *testing.T) {
	origParseFragment := parseHTMLFragment
	parseHTMLFragment = func(_ io.Reader, _ *nethtml.Node) ([]*nethtml.Node, error) {
		return nil, errTestParseFailed
	}

	defer func() {
		parseHTMLFragment = origParseFragment
	}()

	if _, err := ParseOrgToHTML("content"); err == nil {
		t.Fatalf("expected annotation error")
	}
}

//nolint:paralleltest // overrides package-level function vars
func TestAddExternalLinkPrefixRenderError(t *testing.T) {
	origRender := renderHTML
	renderHTML = func(_ io.Writer, _ *nethtml.Node) error {
		return errTestRenderFailed
	}

	defer func() {
		renderHTML = origRender
	}()

	if _, err := addExternalLinkPrefix("<p>Hi</p>"); err == nil {
		t.Fatalf("expected render error")
	}
}
