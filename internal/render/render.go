// Package render turns a token sequence into the markup string every
// downstream patching function addresses. Node ids, class names and data
// attributes are a contract: ID-{position}-{wordCount}, classes word|mword,
// status{N} and TERM{hex}. Changing any of them is a breaking change.
package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/heartmarshall/myreader-engine/internal/domain"
)

// Settings carries the display switches the renderer honours.
type Settings struct {
	// ShowAll replaces a multi-word expression's surface with its
	// constituent count so covered words stay readable underneath.
	ShowAll bool
}

// ParagraphMark is the filler text standing in for a paragraph break.
const ParagraphMark = domain.ParagraphMark

// Render is a pure function from tokens to markup. Tokens must arrive the
// way a document snapshot orders them: position ascending, each multi-word
// expression directly ahead of its covered run.
func Render(tokens []domain.Token, settings Settings) string {
	var b strings.Builder
	b.Grow(len(tokens) * 64)

	units := collect(tokens)
	openSid := -1
	for _, u := range units {
		if u.sid != openSid {
			if openSid >= 0 {
				b.WriteString("</span>")
			}
			fmt.Fprintf(&b, `<span class="sent" id="sent_%d">`, u.sid)
			openSid = u.sid
		}
		if u.nobr {
			b.WriteString(`<span class="nobr">`)
		}
		for _, tok := range u.toks {
			writeToken(&b, tok, settings)
		}
		if u.nobr {
			b.WriteString("</span>")
		}
	}
	if openSid >= 0 {
		b.WriteString("</span>")
	}
	return b.String()
}

// unit is one run of tokens emitted together: a word with its glued
// punctuation, or a standalone filler.
type unit struct {
	sid  int
	toks []domain.Token
	nobr bool
}

func collect(tokens []domain.Token) []unit {
	units := make([]unit, 0, len(tokens))
	var pending []domain.Token // leading punctuation waiting for its word

	flushPending := func() {
		for _, p := range pending {
			units = append(units, unit{sid: p.SentenceID, toks: []domain.Token{p}})
		}
		pending = nil
	}

	i := 0
	for i < len(tokens) {
		tok := tokens[i]

		if tok.IsNotWord {
			switch {
			case tok.Hidden:
				flushPending()
				units = append(units, unit{sid: tok.SentenceID, toks: []domain.Token{tok}})
			case attachesLeading(tok.Text) && nextIsWord(tokens, i, tok.SentenceID):
				pending = append(pending, tok)
			default:
				flushPending()
				units = append(units, unit{sid: tok.SentenceID, toks: []domain.Token{tok}})
			}
			i++
			continue
		}

		u := unit{sid: tok.SentenceID}
		if len(pending) > 0 && pending[0].SentenceID == tok.SentenceID {
			u.toks = append(u.toks, pending...)
			u.nobr = true
			pending = nil
		} else {
			flushPending()
		}
		u.toks = append(u.toks, tok)
		i++

		if tok.IsMultiWord {
			end := tok.EndPosition()
			for i < len(tokens) && !tokens[i].IsMultiWord && tokens[i].Position <= end {
				u.toks = append(u.toks, tokens[i])
				i++
			}
		}

		last := u.toks[len(u.toks)-1]
		for i < len(tokens) {
			next := tokens[i]
			if !next.IsNotWord || next.Hidden || next.SentenceID != tok.SentenceID {
				break
			}
			if next.Position != lastPosition(last)+1 || !attachesTrailing(next.Text) {
				break
			}
			u.toks = append(u.toks, next)
			u.nobr = true
			last = next
			i++
		}

		units = append(units, u)
	}
	flushPending()
	return units
}

func nextIsWord(tokens []domain.Token, i int, sid int) bool {
	if i+1 >= len(tokens) {
		return false
	}
	next := tokens[i+1]
	return !next.IsNotWord && !next.Hidden && next.SentenceID == sid &&
		next.Position == tokens[i].Position+1
}

func lastPosition(tok domain.Token) int {
	if tok.IsMultiWord {
		return tok.EndPosition()
	}
	return tok.Position
}

func writeToken(b *strings.Builder, tok domain.Token, settings Settings) {
	if tok.IsNotWord {
		writeFiller(b, tok)
		return
	}

	classes := make([]string, 0, 6)
	if tok.Hidden {
		classes = append(classes, "hide")
	}
	classes = append(classes, "click")
	if tok.IsMultiWord {
		classes = append(classes, "mword")
	} else {
		classes = append(classes, "word")
	}
	if tok.WordID != nil {
		classes = append(classes, "word"+tok.WordID.String())
	}
	classes = append(classes, tok.Status.CSSClass(), "TERM"+tok.Hex)

	fmt.Fprintf(b, `<span id="ID-%d-%d" class="%s"`, tok.Position, tok.WordCount, strings.Join(classes, " "))
	fmt.Fprintf(b, ` data-order="%d" data-code="%d" data-status="%d" data-charpos="%d"`,
		tok.Position, tok.WordCount, tok.Status, tok.CharPos)
	if tok.WordID != nil {
		fmt.Fprintf(b, ` data-wid="%s"`, tok.WordID)
	}
	if tok.Translation != "" {
		fmt.Fprintf(b, ` data-trans="%s"`, html.EscapeString(tok.Translation))
	}
	if tok.Romanization != "" {
		fmt.Fprintf(b, ` data-rom="%s"`, html.EscapeString(tok.Romanization))
	}
	if tok.Ann != "" {
		fmt.Fprintf(b, ` data-ann="%s"`, html.EscapeString(tok.Ann))
	}
	b.WriteString(">")

	text := tok.Text
	if tok.IsMultiWord && settings.ShowAll {
		text = "[" + strconv.Itoa(tok.WordCount) + "]"
	}
	b.WriteString(html.EscapeString(text))
	b.WriteString("</span>")
}

func writeFiller(b *strings.Builder, tok domain.Token) {
	if tok.Text == ParagraphMark && !tok.Hidden {
		b.WriteString("<br />")
		return
	}
	class := "punct"
	if tok.Hidden {
		class = "hide punct"
	}
	fmt.Fprintf(b, `<span id="ID-%d-1" class="%s">%s</span>`, tok.Position, class, html.EscapeString(tok.Text))
}
