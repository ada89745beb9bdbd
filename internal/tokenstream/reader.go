// Package tokenstream materializes the position-addressed token sequence
// from the external tokenizer line format: one token per line, a blank line
// closing the sentence and marking a paragraph break.
//
// Tokenization itself stays with the upstream parser. This reader only
// classifies lines, assigns interleaved positions (words odd, fillers even),
// and tracks sentence ids and character offsets.
package tokenstream

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/myreader-engine/internal/domain"
)

// sentenceEnders close a sentence when they appear in a filler.
const sentenceEnders = ".!?…。！？"

// Read consumes one-token-per-line input and returns the token sequence.
// Consecutive non-word lines collapse into a single filler so every pair of
// neighbouring words keeps exactly one even slot between them. Paragraph
// marks take an even slot of their own, skipping the word slot after it.
func Read(r io.Reader) ([]domain.Token, error) {
	var (
		tokens     []domain.Token
		pending    strings.Builder
		evenSlot   int
		charPos    int
		sentenceID = 1
	)

	flushFiller := func() {
		if pending.Len() == 0 {
			return
		}
		text := pending.String()
		pending.Reset()
		tokens = append(tokens, domain.Token{
			Position:   evenSlot,
			Text:       text,
			IsNotWord:  true,
			SentenceID: sentenceID,
			CharPos:    charPos,
		})
		charPos += utf8.RuneCountInString(text)
		if strings.ContainsAny(text, sentenceEnders) {
			sentenceID++
		}
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		switch {
		case line == "":
			closing := sentenceID
			if pending.Len() > 0 {
				flushFiller()
				evenSlot += 2
			}
			ended := sentenceID != closing
			tokens = append(tokens, domain.Token{
				Position:   evenSlot,
				Text:       domain.ParagraphMark,
				IsNotWord:  true,
				SentenceID: closing,
				CharPos:    charPos,
			})
			charPos++
			evenSlot += 2
			if !ended {
				sentenceID++
			}
		case isWord(line):
			flushFiller()
			tokens = append(tokens, domain.Token{
				Position:   evenSlot + 1,
				Text:       line,
				WordCount:  1,
				SentenceID: sentenceID,
				CharPos:    charPos,
			})
			charPos += utf8.RuneCountInString(line)
			evenSlot += 2
		default:
			pending.WriteString(line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tokenstream: read: %w", err)
	}
	flushFiller()
	return tokens, nil
}

// isWord reports whether a stream line carries learning state: it contains
// at least one letter. Everything else becomes filler.
func isWord(line string) bool {
	for _, r := range line {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
