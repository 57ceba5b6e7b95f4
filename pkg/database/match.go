package database

import (
	"path/filepath"
	"strings"
)

// IsMatch reports whether keywords, already lowercased, match the entry's
// path. The last keyword must appear in the final path segment, and every
// keyword must appear in the lowercased path in order without overlapping
// the previous one. No keywords matches every path.
func (e *Entry) IsMatch(keywords []string) bool {
	path := strings.ToLower(e.Path)

	if len(keywords) > 0 {
		queryName, okQuery := finalSegment(keywords[len(keywords)-1])
		dirName, okDir := finalSegment(path)
		if okQuery && okDir && !strings.Contains(dirName, queryName) {
			return false
		}
	}

	rest := path
	for _, kw := range keywords {
		idx := strings.Index(rest, kw)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(kw):]
	}

	return true
}

// finalSegment returns the last named component of p. Roots, empty strings
// and paths ending in "." or ".." have none.
func finalSegment(p string) (string, bool) {
	p = strings.TrimRight(filepath.ToSlash(p), "/")
	for strings.HasSuffix(p, "/.") {
		p = strings.TrimRight(strings.TrimSuffix(p, "/."), "/")
	}

	name := p[strings.LastIndexByte(p, '/')+1:]
	if name == "" || name == "." || name == ".." {
		return "", false
	}
	return name, true
}
