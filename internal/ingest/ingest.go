// Package ingest decodes local files into the plain text the extraction core
// consumes. Plain-text files pass through verbatim; HTML is reduced to its
// visible text. PDF and DOCX decoding is an upstream concern — callers with
// such sources are expected to supply pre-decoded text carrying page markers.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// Result holds the decoded text plus an advisory warning for near-empty
// sources (typically scanned or image-only documents).
type Result struct {
	Text    string
	Source  string // Base file name, used as the source label downstream
	Warning string
}

const minUsefulChars = 40

// ReadFile decodes a file by extension and returns its text. Unknown
// extensions are treated as plain text.
func ReadFile(path string) (*Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	source := filepath.Base(path)
	var text string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = visibleText(string(raw))
		if err != nil {
			return nil, fmt.Errorf("parse html %s: %w", path, err)
		}
	default:
		text = string(raw)
	}

	res := &Result{Text: text, Source: source}
	if len(strings.TrimSpace(text)) < minUsefulChars {
		res.Warning = "decoded text is nearly empty; the source may be scanned or image-only"
	}
	return res, nil
}

// visibleText walks the HTML tree and collects text nodes, skipping script,
// style and other non-content tags.
func visibleText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return buf.String(), nil
}
