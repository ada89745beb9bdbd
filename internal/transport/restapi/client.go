// Package restapi is the HTTP implementation of the term action API that the
// word action service drives. Responses carrying an error field become
// domain.APIError so callers can surface the server's message verbatim.
// Nothing is retried: a failed action is re-invoked by the user.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myreader-engine/internal/domain"
)

const defaultTimeout = 10 * time.Second

// Client calls the term action API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the given base URL. A zero timeout falls
// back to the default.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	log := logger.With("adapter", "restapi")
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: Chain(RequestID(), Logger(log))(http.DefaultTransport),
		},
		log: log,
	}
}

// ---------------------------------------------------------------------------
// Term actions
// ---------------------------------------------------------------------------

// SetStatus updates an existing term's status.
func (c *Client) SetStatus(ctx context.Context, wordID uuid.UUID, status domain.Status) error {
	var out actionResponse
	if err := c.do(ctx, http.MethodPost, "/terms/"+wordID.String()+"/status", setStatusRequest{Status: int(status)}, &out); err != nil {
		return err
	}
	return apiError(out.Error)
}

// CreateQuick persists an unknown term directly at the given status.
func (c *Client) CreateQuick(ctx context.Context, textID, position int, status domain.Status) (domain.QuickCreateResult, error) {
	in := quickCreateRequest{TextID: textID, Position: position, Status: int(status)}
	var out quickCreateResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/texts/%d/terms", textID), in, &out); err != nil {
		return domain.QuickCreateResult{}, err
	}
	if err := apiError(out.Error); err != nil {
		return domain.QuickCreateResult{}, err
	}
	termID, err := uuid.Parse(out.TermID)
	if err != nil {
		return domain.QuickCreateResult{}, fmt.Errorf("restapi: parse term id: %w", err)
	}
	return domain.QuickCreateResult{TermID: termID, Hex: out.Hex}, nil
}

// Delete removes a term entirely.
func (c *Client) Delete(ctx context.Context, wordID uuid.UUID) error {
	var out actionResponse
	if err := c.do(ctx, http.MethodDelete, "/terms/"+wordID.String(), nil, &out); err != nil {
		return err
	}
	return apiError(out.Error)
}

// IncrementStatus moves a term one level up or down. The server clamps the
// result and reports the counter delta actually applied.
func (c *Client) IncrementStatus(ctx context.Context, wordID uuid.UUID, up bool) (domain.IncrementResult, error) {
	var out incrementResponse
	if err := c.do(ctx, http.MethodPost, "/terms/"+wordID.String()+"/increment", incrementRequest{Up: up}, &out); err != nil {
		return domain.IncrementResult{}, err
	}
	if err := apiError(out.Error); err != nil {
		return domain.IncrementResult{}, err
	}
	return domain.IncrementResult{Set: domain.Status(out.Set), Increment: out.Increment}, nil
}

// CreateMultiWord persists a new multi-word expression.
func (c *Client) CreateMultiWord(ctx context.Context, draft domain.MultiWordDraft, status domain.Status, translation string) (domain.MultiWordResult, error) {
	in := multiWordCreateRequest{
		TextID:      draft.TextID,
		Position:    draft.Position,
		Text:        draft.Text,
		WordCount:   draft.WordCount,
		Status:      int(status),
		Translation: translation,
	}
	var out multiWordCreateResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/texts/%d/multiwords", draft.TextID), in, &out); err != nil {
		return domain.MultiWordResult{}, err
	}
	if err := apiError(out.Error); err != nil {
		return domain.MultiWordResult{}, err
	}
	termID, err := uuid.Parse(out.TermID)
	if err != nil {
		return domain.MultiWordResult{}, fmt.Errorf("restapi: parse term id: %w", err)
	}
	return domain.MultiWordResult{TermID: termID, TermLc: out.TermLc}, nil
}

// UpdateMultiWord applies a partial edit to a saved expression.
func (c *Client) UpdateMultiWord(ctx context.Context, wordID uuid.UUID, update domain.MultiWordUpdate) error {
	in := multiWordUpdateRequest{
		Translation:  update.Translation,
		Romanization: update.Romanization,
	}
	if update.Status != nil {
		st := int(*update.Status)
		in.Status = &st
	}
	var out actionResponse
	if err := c.do(ctx, http.MethodPatch, "/terms/"+wordID.String()+"/multiword", in, &out); err != nil {
		return err
	}
	return apiError(out.Error)
}

// ---------------------------------------------------------------------------
// HTTP plumbing
// ---------------------------------------------------------------------------

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("restapi: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("restapi: create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.DebugContext(ctx, "api request",
		slog.String("method", method),
		slog.String("path", path),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "api request failed",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("restapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("restapi: read body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var envelope errorEnvelope
		if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error != "" {
			return &domain.APIError{Message: envelope.Error}
		}
		return fmt.Errorf("restapi: unexpected status %d", resp.StatusCode)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("restapi: decode json: %w", err)
	}
	return nil
}

func apiError(message string) error {
	if message == "" {
		return nil
	}
	return &domain.APIError{Message: message}
}
