package render

// Fixed character sets deciding which punctuation fillers glue to a
// neighbouring word inside one non-breaking group. Quotes appear in both
// sets; the trailing set is checked first, so after a word they close.

var leadingPunct = runeSet(`([{"'«‹“‘„‚¿¡（［｛「『【〈《〔｟`)

var trailingPunct = runeSet(`)]}"'»›”’.,;:!?%…。、，．！？）］｝」』】〉》〕｠：；`)

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

// attachesTrailing reports whether a filler glues to the word before it:
// non-empty, no whitespace, every rune in the trailing set.
func attachesTrailing(text string) bool {
	return allIn(text, trailingPunct)
}

// attachesLeading reports whether a filler glues to the word after it.
func attachesLeading(text string) bool {
	return allIn(text, leadingPunct)
}

func allIn(text string, set map[rune]struct{}) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if _, ok := set[r]; !ok {
			return false
		}
	}
	return true
}
