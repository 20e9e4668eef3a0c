package leaguehttp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"league-stats-service/internal/domain/league"
	"league-stats-service/internal/providers"
)

// Config controls how the client reaches the upstream season API.
type Config struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches a completed season document and maps it to domain models.
type Client struct {
	baseURL    string
	token      string
	httpClient httpDoer
}

// NewClient constructs a season API client with the provided configuration.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil && cfg.Timeout > 0 {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		token:      cfg.Token,
		httpClient: resolveHTTPClient(httpClient),
	}
}

// Name reports the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// FetchTeams retrieves the season document from the upstream API.
func (c *Client) FetchTeams(ctx context.Context) ([]league.Team, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/season", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.UpstreamError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var payload seasonResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return mapSeason(payload)
}
