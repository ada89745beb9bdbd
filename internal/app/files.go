package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/heartmarshall/myreader-engine/internal/domain"
)

// termEntry is the stored wire shape of one saved term.
type termEntry struct {
	TermID       string `json:"termId"`
	Text         string `json:"text"`
	WordCount    int    `json:"wordCount"`
	Status       int    `json:"status"`
	Translation  string `json:"translation,omitempty"`
	Romanization string `json:"romanization,omitempty"`
}

// annotationEntry is the stored wire shape of one annotation, keyed by the
// string form of the token position it was saved at.
type annotationEntry struct {
	Term   string `json:"term"`
	TermID string `json:"termId"`
	Text   string `json:"text"`
}

// ReadTerms loads saved terms from a JSON file for ApplyTerms. An empty path
// returns no terms.
func ReadTerms(path string) ([]domain.Token, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("app: read terms: %w", err)
	}
	var entries []termEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("app: decode terms %s: %w", path, err)
	}

	terms := make([]domain.Token, 0, len(entries))
	for i, e := range entries {
		tok := domain.Token{
			Text:         e.Text,
			WordCount:    e.WordCount,
			Status:       domain.Status(e.Status),
			Translation:  e.Translation,
			Romanization: e.Romanization,
		}
		if !tok.Status.IsValid() {
			return nil, fmt.Errorf("app: terms[%d]: invalid status %d", i, e.Status)
		}
		if e.TermID != "" {
			id, err := uuid.Parse(e.TermID)
			if err != nil {
				return nil, fmt.Errorf("app: terms[%d]: parse termId: %w", i, err)
			}
			tok.WordID = &id
		}
		terms = append(terms, tok)
	}
	return terms, nil
}

// ReadAnnotations loads a position-keyed annotation set from a JSON file.
// An empty path returns an empty set.
func ReadAnnotations(path string) (domain.AnnotationSet, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("app: read annotations: %w", err)
	}
	var entries map[string]annotationEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("app: decode annotations %s: %w", path, err)
	}

	set := make(domain.AnnotationSet, len(entries))
	for pos, e := range entries {
		id, err := uuid.Parse(e.TermID)
		if err != nil {
			return nil, fmt.Errorf("app: annotations[%s]: parse termId: %w", pos, err)
		}
		set[pos] = domain.Annotation{Term: e.Term, WordID: id, Text: e.Text}
	}
	return set, nil
}
