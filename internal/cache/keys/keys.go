// Package keys builds cache keys for covering results.
package keys

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
)

// Cover builds the cache key for a covering request. The geometry is
// identified by the xxhash of its canonical encoding, so syntactically
// different requests for the same shape share an entry while the key
// stays bounded in size.
func Cover(kind string, canonical []byte, res int) string {
	sum := xxhash.Sum64(canonical)
	return fmt.Sprintf("cover:%s:%d:%016x", sanitizeKind(strings.TrimSpace(kind)), res, sum)
}

func sanitizeKind(s string) string {
	if s == "" {
		return "unknown"
	}
	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	for _, r := range s {
		out := rune(0)
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f':
			out = '_'
		case isAlphaNum(r) || r == '_' || r == '-':
			out = unicode.ToLower(r)
		default:
			out = '-'
		}
		if (out == '_' || out == '-') && out == prev {
			continue
		}
		b.WriteRune(out)
		prev = out
	}
	return b.String()
}

func isAlphaNum(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		unicode.IsDigit(r)
}
