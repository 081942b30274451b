// Package datasource provides the rate-limited HTTP client for the live data
// provider. It is only used by the refresh scheduler; the request path never
// touches the network.
package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/Ajinkyaa2004/Copascore/internal/config"
	"github.com/Ajinkyaa2004/Copascore/internal/liveform"
)

// ProviderClient fetches team payloads from the live data provider with
// retries and client-side rate limiting
type ProviderClient struct {
	client  *retryablehttp.Client
	limiter *rate.Limiter
	baseURL string
	token   string
	logger  *logrus.Logger
}

// NewProviderClient creates a provider client from configuration
func NewProviderClient(cfg config.ProviderConfig, logger *logrus.Logger) *ProviderClient {
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient.Timeout = cfg.Timeout()
	retryClient.RetryMax = cfg.MaxRetries
	retryClient.Logger = nil

	limit := cfg.RateLimit
	if limit <= 0 {
		limit = 3.0
	}

	return &ProviderClient{
		client:  retryClient,
		limiter: rate.NewLimiter(rate.Limit(limit), 1),
		baseURL: cfg.BaseURL,
		token:   cfg.APIToken,
		logger:  logger,
	}
}

// teamEnvelope is the provider's response wrapper
type teamEnvelope struct {
	Data liveform.TeamData `json:"data"`
}

// FetchTeam retrieves one team payload including its latest matches, scores,
// statistics and xG entries
func (c *ProviderClient) FetchTeam(ctx context.Context, teamID int) (*liveform.TeamData, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	url := fmt.Sprintf(
		"%s/football/teams/%d?api_token=%s&include=latest.scores;latest.statistics.type;latest.xgfixture.type",
		c.baseURL, teamID, c.token,
	)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d for team %d", resp.StatusCode, teamID)
	}

	var envelope teamEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode provider payload: %w", err)
	}
	if envelope.Data.Name == "" {
		return nil, fmt.Errorf("provider payload for team %d has no name", teamID)
	}

	c.logger.WithFields(logrus.Fields{
		"team_id": teamID,
		"team":    envelope.Data.Name,
		"matches": len(envelope.Data.Latest),
	}).Debug("Fetched provider team payload")

	return &envelope.Data, nil
}
