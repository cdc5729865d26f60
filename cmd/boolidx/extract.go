package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/KochevDmitry/mai-ir/internal/config"
	"github.com/KochevDmitry/mai-ir/internal/source"
	"github.com/KochevDmitry/mai-ir/pkg/pathutil"
)

// discoverFiles resolves the ordered list of article files a build or
// tokens dump should read. When pattern is non-empty it takes precedence
// over cfg.Source and is matched directly against root with doublestar -
// the CLI's own multi-file glob selection, independent of the project's
// configured include/exclude rules. Otherwise cfg.Source drives an
// internal/source.Scanner walk.
func discoverFiles(root string, cfg *config.Config, pattern string) ([]string, error) {
	if pattern == "" {
		return source.New(cfg).Scan()
	}

	matches, err := doublestar.Glob(os.DirFS(root), pattern)
	if err != nil {
		return nil, err
	}
	full := make([]string, len(matches))
	for i, m := range matches {
		full[i] = filepath.Join(root, m)
	}
	sort.Strings(full)
	return full, nil
}

// extractText turns raw file bytes into the plain text handed to the
// tokenizer, and derives the document's URL. Per the core's content
// boundary, this extraction lives entirely in the driver: the core only
// ever sees the returned text buffer.
//
// Source files may embed a single <url>...</url> element (the corpus's
// XML-like wrapper); when present its contents become the document URL
// and the element itself is excluded from the indexed text. Otherwise the
// URL falls back to the file's path relative to root. Every other tag is
// stripped to whitespace so tag names never pollute the term dictionary.
func extractText(path, root string, raw []byte) (text []byte, url string) {
	s := string(raw)
	url = relativeURL(path, root)

	if start := strings.Index(s, "<url>"); start >= 0 {
		if end := strings.Index(s[start:], "</url>"); end >= 0 {
			end += start
			inner := strings.TrimSpace(s[start+len("<url>") : end])
			if inner != "" {
				url = inner
			}
			s = s[:start] + s[end+len("</url>"):]
		}
	}

	return stripTags(s), url
}

func relativeURL(path, root string) string {
	return filepath.ToSlash(pathutil.ToRelative(path, root))
}

// stripTags blanks out every "<...>" run so tag delimiters and attribute
// text never reach the tokenizer, while leaving byte offsets (and thus
// the surrounding prose) otherwise untouched.
func stripTags(s string) []byte {
	out := []byte(s)
	depth := 0
	for i, b := range out {
		switch {
		case b == '<':
			depth++
			out[i] = ' '
		case b == '>':
			if depth > 0 {
				depth--
			}
			out[i] = ' '
		case depth > 0:
			out[i] = ' '
		}
	}
	return out
}
