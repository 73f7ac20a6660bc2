package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/defensoria-df/solar-transcricao/internal/domain/entities"
	"github.com/defensoria-df/solar-transcricao/pkg/callcontext"
	"github.com/defensoria-df/solar-transcricao/pkg/config"
)

const (
	StepLookup        = "consultar_processo"
	StepTranscription = "transcrever_video"
	StepSubmission    = "enviar_solar"

	maxErrorBody = 512
)

// ErrEmptyBody is returned when a webhook answers 2xx without a JSON body
var ErrEmptyBody = errors.New("empty response body")

// StatusError is returned for non-2xx webhook responses
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("n8n returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("n8n returned status %d: %s", e.StatusCode, e.Body)
}

// Retryable reports whether the webhook may succeed on a later attempt
func (e *StatusError) Retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// Client calls the n8n webhooks that front the case lookup, transcription and
// SOLAR submission workflows.
type Client struct {
	cfg    config.N8NConfig
	client *http.Client
	logger *zap.Logger
}

// NewClient creates an n8n client. Timeouts are applied per call from cfg.
func NewClient(cfg config.N8NConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{},
		logger: logger,
	}
}

// LookupCase posts {numero_processo} and returns the decoded video listing
func (c *Client) LookupCase(ctx context.Context, caseNumber string) (any, error) {
	ctx, cancel := callcontext.Begin(ctx, StepLookup, c.cfg.LookupTimeout)
	defer cancel()

	var result any
	err := callcontext.Do(ctx, c.cfg.LookupRetries, func(ctx context.Context) error {
		var err error
		result, err = c.post(ctx, c.cfg.LookupURL, map[string]string{"numero_processo": caseNumber})
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Transcribe posts the video reference and returns the decoded transcription result
func (c *Client) Transcribe(ctx context.Context, req entities.TranscriptionRequest) (any, error) {
	ctx, cancel := callcontext.Begin(ctx, StepTranscription, c.cfg.TranscriptionTimeout)
	defer cancel()

	return c.post(ctx, c.cfg.TranscriptionURL, req)
}

// SubmitTranscript posts {transcricao} to the SOLAR workflow and returns its decoded answer
func (c *Client) SubmitTranscript(ctx context.Context, transcript string) (any, error) {
	ctx, cancel := callcontext.Begin(ctx, StepSubmission, c.cfg.SubmissionTimeout)
	defer cancel()

	return c.post(ctx, c.cfg.SubmissionURL, map[string]string{"transcricao": transcript})
}

func (c *Client) post(ctx context.Context, endpoint string, payload any) (any, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	md := callcontext.GetMetadata(ctx)
	c.logger.Debug("n8n.request",
		zap.String("step", md.Step),
		zap.Int("attempt", md.RetryAttempt),
		zap.String("endpoint", endpoint),
	)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("n8n.request.failed",
			zap.String("step", md.Step),
			zap.Duration("elapsed", callcontext.Elapsed(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Info("n8n.response",
		zap.String("step", md.Step),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", callcontext.Elapsed(ctx)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(body), maxErrorBody)}
	}

	return decodeBody(body)
}

// decodeBody decodes a JSON document keeping numbers as json.Number
func decodeBody(body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyBody
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return v, nil
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
