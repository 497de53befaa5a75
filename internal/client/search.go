package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/git-217/go-carDealership/internal/model"
)

// ErrServerError is returned when the search endpoint answers with a non-2xx status.
var ErrServerError = errors.New("server error")

// SearchClient performs the search form's single GET against the search endpoint.
type SearchClient struct {
	httpClient *http.Client
}

// NewSearchClient creates a client. A nil httpClient uses a client without a
// timeout; the request is bounded only by its context.
func NewSearchClient(httpClient *http.Client) *SearchClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &SearchClient{httpClient: httpClient}
}

// Search fetches url once and decodes the body as a list of results.
// A JSON null body yields an empty list.
func (c *SearchClient) Search(ctx context.Context, url string) ([]model.SearchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %d", ErrServerError, resp.StatusCode)
	}

	var results []model.SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	if results == nil {
		results = []model.SearchResult{}
	}
	return results, nil
}
