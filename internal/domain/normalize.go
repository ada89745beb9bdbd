package domain

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	// Compress multiple spaces into one.
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// TermHex fingerprints a term for class-based batch addressing. Every token
// sharing the same normalized form carries the same hex, so one status change
// fans out to all of them. NFC keeps composed and decomposed spellings of the
// same term on one fingerprint.
func TermHex(term string) string {
	normalized := norm.NFC.String(NormalizeText(term))
	return fmt.Sprintf("%016x", xxhash.Sum64String(normalized))
}
