// Package domains proxies domain-availability lookups to the GoDaddy
// reseller API.
package domains

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	apperrors "github.com/smallbizniz/support-portal/pkg/util"
)

var domainPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?(\.[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?)*$`)

// Availability is the reseller's answer for one domain.
type Availability struct {
	Domain    string  `json:"domain"`
	Available bool    `json:"available"`
	Price     float64 `json:"price,omitempty"`
	Currency  string  `json:"currency,omitempty"`
	Period    int     `json:"period,omitempty"`
}

// Client calls the GoDaddy availability endpoint with sso-key auth.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiSecret  string
}

// NewClient constructs a client; credentials may be empty, in which case
// Check fails with a dependency error.
func NewClient(baseURL, apiKey, apiSecret string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     strings.TrimSpace(apiKey),
		apiSecret:  strings.TrimSpace(apiSecret),
	}
}

// Check normalizes and validates the domain, then queries availability.
func (c *Client) Check(ctx context.Context, domain string) (*Availability, error) {
	clean := normalizeDomain(domain)
	if !domainPattern.MatchString(clean) {
		return nil, apperrors.NewValidationError("invalid domain name format", nil)
	}
	if c.apiKey == "" || c.apiSecret == "" {
		return nil, apperrors.NewDependencyUnavailable("domain search service")
	}

	endpoint := fmt.Sprintf("%s/v1/domains/available?domain=%s", c.baseURL, url.QueryEscape(clean))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("sso-key %s:%s", c.apiKey, c.apiSecret))
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewExternalServiceError("godaddy", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, apperrors.NewExternalServiceError("godaddy", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewExternalServiceError("godaddy",
			fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var result struct {
		Domain    string `json:"domain"`
		Available bool   `json:"available"`
		Price     int64  `json:"price"`
		Currency  string `json:"currency"`
		Period    int    `json:"period"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, apperrors.NewExternalServiceError("godaddy", err)
	}

	availability := &Availability{
		Domain:    result.Domain,
		Available: result.Available,
		Currency:  result.Currency,
		Period:    result.Period,
	}
	// GoDaddy reports price in micro-units of the currency.
	if result.Price > 0 {
		availability.Price = float64(result.Price) / 1_000_000
	}
	return availability, nil
}

func normalizeDomain(domain string) string {
	clean := strings.ToLower(strings.TrimSpace(domain))
	clean = strings.TrimPrefix(clean, "https://")
	clean = strings.TrimPrefix(clean, "http://")
	return strings.TrimRight(clean, "/")
}
