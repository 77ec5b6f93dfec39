// Package api is the HTTP client for the paged applications endpoint.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/appbrowser/internal/application"
	"github.com/rshade/appbrowser/internal/logging"
)

// Query parameter and header names.
const (
	ParamPage       = "page"
	ParamLimit      = "limit"
	HeaderRequestID = "X-Request-ID"
)

// maxErrorBodyBytes bounds how much of a failed response body is logged.
const maxErrorBodyBytes = 512

// ErrUnexpectedStatus is wrapped when the endpoint answers with a non-2xx status.
var ErrUnexpectedStatus = constError("unexpected HTTP status")

type constError string

func (e constError) Error() string { return string(e) }

// Client fetches pages of applications with GET <BaseURL>?page=N&limit=M.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
	logger     zerolog.Logger
}

// NewClient returns a Client for baseURL. A zero timeout disables the client timeout.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
		logger:     logging.ComponentLogger(logger, "api"),
	}
}

// FetchPage implements loader.PageSource.
//
// Transport errors, non-2xx statuses and bodies that are not a JSON array of
// records are returned as errors.
func (c *Client) FetchPage(ctx context.Context, page, limit int) ([]application.Record, error) {
	reqURL, err := c.pageURL(page, limit)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for page %d: %w", page, err)
	}
	requestID := logging.NewTraceID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, requestID)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page %d: %w", page, err)
	}
	defer resp.Body.Close()

	log := c.logger.With().
		Str("request_id", requestID).
		Int("page", page).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Logger()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		log.Debug().Ctx(ctx).Str("body", string(snippet)).Msg("applications endpoint returned error status")
		return nil, fmt.Errorf("fetching page %d: %w: %d", page, ErrUnexpectedStatus, resp.StatusCode)
	}

	records, err := application.DecodePage(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", page, err)
	}

	log.Debug().Ctx(ctx).Int("count", len(records)).Msg("fetched applications page")
	return records, nil
}

// pageURL appends page and limit to BaseURL, keeping any existing query.
func (c *Client) pageURL(page, limit int) (string, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base URL %q: %w", c.BaseURL, err)
	}
	q := u.Query()
	q.Set(ParamPage, strconv.Itoa(page))
	q.Set(ParamLimit, strconv.Itoa(limit))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
