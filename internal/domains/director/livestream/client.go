package livestream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mkigikm/director-api/internal/config"
	"github.com/mkigikm/director-api/internal/domains/director"
)

// Client talks to the livestream accounts API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.LivestreamConfig) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *Client) accountURL(livestreamID string) string {
	return c.baseURL + "/accounts/" + livestreamID
}

// FindByID fetches an account. The remote status code is always returned
// when the API was reachable; the account is populated only on 200.
func (c *Client) FindByID(ctx context.Context, livestreamID string) (int, *director.Account, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.accountURL(livestreamID), nil)
	if err != nil {
		return 0, nil, fmt.Errorf("build accounts request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("livestream api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// drain so the connection can be reused
		io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil, nil
	}

	var account director.Account
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return resp.StatusCode, nil, fmt.Errorf("decode accounts response: %w", err)
	}

	return resp.StatusCode, &account, nil
}
