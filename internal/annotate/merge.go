// Package annotate attaches saved per-occurrence translations onto the token
// they were recorded for. Matching is positional plus word-id; text matching
// is delimiter-segment based, never loose substring.
package annotate

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/myreader-engine/internal/domain"
)

// maxConstituentOffset caps the even-offset scan for expression constituents:
// annotations saved up to eight words past the head are still found.
const maxConstituentOffset = 16

var bracketSuffix = regexp.MustCompile(` \[.*$`)

// Merge returns a copy of tokens with annotations applied. For each word
// token the annotation at its position wins; multi-word tokens additionally
// scan the even constituent offsets and stop at the first word-id match.
// Merging the same set twice leaves translations unchanged.
func Merge(tokens []domain.Token, anns domain.AnnotationSet, delimiters string) []domain.Token {
	out := make([]domain.Token, len(tokens))
	copy(out, tokens)
	if len(anns) == 0 {
		return out
	}

	for i := range out {
		tok := &out[i]
		if tok.IsNotWord || tok.WordID == nil {
			continue
		}
		ann, ok := findAnnotation(*tok, anns)
		if !ok || ann.Text == "" {
			continue
		}

		tok.Ann = ann.Text

		old := bracketSuffix.ReplaceAllString(tok.Translation, "")
		if old == "" {
			tok.Translation = ann.Text
			continue
		}
		if segmentPattern(ann.Text, delimiters).MatchString(old) {
			continue
		}
		merged := ann.Text + " / " + tok.Translation
		tok.Translation = strings.ReplaceAll(merged, " / *", "")
	}
	return out
}

func findAnnotation(tok domain.Token, anns domain.AnnotationSet) (domain.Annotation, bool) {
	last := 0
	if tok.IsMultiWord {
		last = maxConstituentOffset
	}
	for off := 0; off <= last; off += 2 {
		ann, ok := anns.At(tok.Position + off)
		if ok && ann.WordID == *tok.WordID {
			return ann, true
		}
	}
	return domain.Annotation{}, false
}

// segmentPattern matches text as a whole segment bounded by the configured
// delimiter characters or the string ends. Without delimiters the whole
// translation is the only segment.
func segmentPattern(text, delimiters string) *regexp.Regexp {
	if delimiters == "" {
		return regexp.MustCompile(`^ *` + regexp.QuoteMeta(text) + ` *$`)
	}
	class := "[" + escapeClass(delimiters) + "]"
	return regexp.MustCompile(`(^|` + class + `) *` + regexp.QuoteMeta(text) + ` *($|` + class + `)`)
}

func escapeClass(chars string) string {
	var b strings.Builder
	for _, r := range chars {
		switch r {
		case '\\', ']', '^', '-':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
