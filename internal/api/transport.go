package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"licboard/internal/config"
	"licboard/internal/session"
)

// Transport issues single HTTP calls against the management backend. It owns
// header attachment, the per-request timeout and the 401 session-clear side
// effect. It never retries and never inspects response envelopes.
type Transport struct {
	client  *http.Client
	baseURL string // origin + /api/ + version
	sess    session.Store
}

func NewTransport(cfg config.APICfg, sess session.Store) *Transport {
	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Transport{
		client:  &http.Client{Timeout: timeout},
		baseURL: fmt.Sprintf("%s/api/%s", cfg.BaseURL, cfg.Version),
		sess:    sess,
	}
}

// Response is the raw HTTP result handed to the normalization pipeline.
type Response struct {
	StatusCode int
	StatusText string
	Headers    http.Header
	Body       []byte
}

// IsSuccess checks if the response indicates success (2xx status code)
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// do makes one request. endpoint is relative to the versioned base URL.
// body, when non-nil, is JSON-encoded. The returned error is a raw transport
// failure; status handling belongs to the caller.
func (t *Transport) do(ctx context.Context, method, endpoint string, params url.Values, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON payload: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	u := t.baseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	t.setCommonHeaders(req)

	log.Debug().
		Str("method", method).
		Str("url", u).
		Msg("making HTTP request")

	resp, err := t.client.Do(req)
	if err != nil {
		log.Error().
			Str("method", method).
			Str("url", u).
			Err(err).
			Msg("HTTP request failed")
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	return t.handleResponse(resp)
}

// upload makes a multipart POST. The form reader must already be framed;
// contentType carries the multipart boundary.
func (t *Transport) upload(ctx context.Context, endpoint string, form io.Reader, contentType string) (*Response, error) {
	u := t.baseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, form)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	t.setCommonHeaders(req)

	log.Debug().
		Str("method", http.MethodPost).
		Str("url", u).
		Msg("uploading multipart request")

	resp, err := t.client.Do(req)
	if err != nil {
		log.Error().Str("url", u).Err(err).Msg("upload failed")
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	return t.handleResponse(resp)
}

// setCommonHeaders attaches auth and audit headers. The bearer token comes
// from the session store when one is present; the user-identity header is
// always sent for audit attribution.
func (t *Transport) setCommonHeaders(req *http.Request) {
	if token := t.sess.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	userID := t.sess.UserID()
	if userID == "" {
		userID = "anonymous"
	}
	req.Header.Set("X-User-ID", userID)
	req.Header.Set("X-Request-ID", uuid.NewString())
}

// handleResponse reads the body and applies the 401 side effect: the session
// is cleared so later requests proceed unauthenticated. Clearing is
// idempotent, so concurrent 401s are harmless. No redirect happens here.
func (t *Transport) handleResponse(resp *http.Response) (*Response, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		log.Warn().Msg("received 401, clearing session")
		t.sess.Clear()
	}

	log.Debug().
		Int("status_code", resp.StatusCode).
		Int("body_length", len(body)).
		Msg("received HTTP response")

	return &Response{
		StatusCode: resp.StatusCode,
		StatusText: resp.Status,
		Headers:    resp.Header,
		Body:       body,
	}, nil
}
