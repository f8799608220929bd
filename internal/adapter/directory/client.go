package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/tapnote/tapnote/internal/domain/model"
)

// UpstreamError signals that the directory service could not serve a request:
// transport failure, non-success status, or an unparseable body.
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("directory request failed: status %d", e.Status)
	}
	return fmt.Sprintf("directory request failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Client exposes brewery directory lookups.
type Client interface {
	Search(ctx context.Context, searchType, query string) ([]model.Brewery, error)
	GetByID(ctx context.Context, id string) (model.Brewery, error)
}

// HTTPClient implements Client against an openbrewerydb-compatible API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates HTTP directory client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse directory url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("directory url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Search issues GET /breweries?{searchType}={query} and returns the decoded
// body verbatim. The result structure is owned by the directory service.
func (c *HTTPClient) Search(ctx context.Context, searchType, query string) ([]model.Brewery, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/breweries")
	endpoint.RawQuery = url.Values{searchType: []string{query}}.Encode()

	var breweries []model.Brewery
	if err := c.get(ctx, endpoint.String(), &breweries); err != nil {
		return nil, err
	}
	return breweries, nil
}

// GetByID issues GET /breweries/{id} and returns the decoded object verbatim.
func (c *HTTPClient) GetByID(ctx context.Context, id string) (model.Brewery, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/breweries/", id)

	var brewery model.Brewery
	if err := c.get(ctx, endpoint.String(), &brewery); err != nil {
		return nil, err
	}
	return brewery, nil
}

func (c *HTTPClient) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &UpstreamError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("directory request failed",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return &UpstreamError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &UpstreamError{Err: err}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &UpstreamError{Err: err}
	}
	return nil
}
