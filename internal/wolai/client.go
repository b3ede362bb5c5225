// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wolai fetches block trees from the wolai open API.
package wolai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/wolai2md/internal/httputil"
	"github.com/pdiddy/wolai2md/pkg/types"
)

// DefaultBaseURL is the public wolai open API root.
const DefaultBaseURL = "https://openapi.wolai.com"

var (
	// ErrTransport reports a request that did not yield a readable response:
	// network failure, non-2xx status without an API error body, or a body
	// that is not the expected JSON.
	ErrTransport = errors.New("wolai transport error")

	// ErrAPI reports an error returned by the wolai API itself.
	ErrAPI = errors.New("wolai API error")

	// ErrEmptyBlockID is returned before any request is made for a blank id.
	ErrEmptyBlockID = errors.New("empty block id")
)

// APIError carries the error fields of a wolai response envelope.
type APIError struct {
	HTTPStatus int
	StatusCode int
	ErrorCode  int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "no message"
	}
	s := fmt.Sprintf("wolai API error %d (status %d): %s", e.ErrorCode, e.StatusCode, msg)
	if e.RequestID != "" {
		s += " [request " + e.RequestID + "]"
	}
	return s
}

func (e *APIError) Unwrap() error { return ErrAPI }

// Client fetches blocks over HTTP. Token is sent verbatim as the
// Authorization header.
type Client struct {
	HTTP   *http.Client
	Config types.APIConfig
	Token  string
	Log    logrus.FieldLogger
}

// NewClient builds a Client from cfg, filling in the default base URL.
func NewClient(cfg types.APIConfig, token string, log logrus.FieldLogger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
		Token:  token,
		Log:    log,
	}
}

// Children fetches the direct children of blockID. Only the first page is
// returned; when the API reports more pages a warning is logged.
func (c *Client) Children(ctx context.Context, blockID string) (*types.BlocksResponse, error) {
	if strings.TrimSpace(blockID) == "" {
		return nil, ErrEmptyBlockID
	}
	reqURL := strings.TrimRight(c.Config.BaseURL, "/") + "/v1/blocks/" + url.PathEscape(blockID) + "/children"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", c.Token)
	req.Header.Set("Accept", "application/json")
	if c.Config.UserAgent != "" {
		req.Header.Set("User-Agent", c.Config.UserAgent)
	}

	log := c.Log.WithField("block_id", blockID)
	log.WithField("url", reqURL).Debug("fetching block children")

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, c.Config.MaxRetries, log)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrTransport, reqURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}

	var br types.BlocksResponse
	decodeErr := json.Unmarshal(body, &br)

	if apiErr := envelopeError(resp.StatusCode, &br, decodeErr); apiErr != nil {
		return nil, apiErr
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s returned HTTP %d", ErrTransport, reqURL, resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: parsing response: %v", ErrTransport, decodeErr)
	}

	fields := logrus.Fields{"request_id": br.RequestID, "blocks": len(br.Data)}
	if br.HasMore {
		cursor := ""
		if br.NextCursor != nil {
			cursor = *br.NextCursor
		}
		fields["next_cursor"] = cursor
		log.WithFields(fields).Warn("more blocks are available; only the first page is converted")
	} else {
		log.WithFields(fields).Debug("fetched block children")
	}
	return &br, nil
}

// envelopeError returns an APIError when a decoded body carries wolai
// error fields.
func envelopeError(httpStatus int, br *types.BlocksResponse, decodeErr error) error {
	if decodeErr != nil {
		return nil
	}
	if br.ErrorCode == 0 && (br.StatusCode == 0 || br.StatusCode == http.StatusOK) {
		return nil
	}
	return &APIError{
		HTTPStatus: httpStatus,
		StatusCode: br.StatusCode,
		ErrorCode:  br.ErrorCode,
		Message:    br.Message,
		RequestID:  br.RequestID,
	}
}
