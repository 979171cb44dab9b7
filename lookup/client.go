// Package lookup is a client for the marketplace endpoints the sell-item form
// uses to fill its brand, year and model pickers and the owned-bikes list.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"bikenode/utils"
)

// OwnedBike is one entry of a user's garage
type OwnedBike struct {
	ID      int    `json:"id"`
	Year    int    `json:"year"`
	Brand   string `json:"brand"`
	Model   string `json:"model"`
	Mileage int    `json:"mileage"`
	Photo   string `json:"photo"`
}

// Client calls the lookup API. Failed calls log a warning and return an empty result.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	logger  *utils.Logger
}

// NewClient creates a client allowing at most ratePerSec requests per second
func NewClient(baseURL string, ratePerSec int, logger *utils.Logger) *Client {
	if ratePerSec <= 0 {
		ratePerSec = 1
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec),
		logger:  logger,
	}
}

// Makes lists brands offered for a listing category, e.g. "motorcycles" or "bicycles"
func (c *Client) Makes(ctx context.Context, category string) []string {
	return c.stringList(ctx, "/api/makes", url.Values{"category": {category}})
}

// Years lists model years known for a brand
func (c *Client) Years(ctx context.Context, brand string) []string {
	return c.stringList(ctx, "/api/years", url.Values{"make": {brand}})
}

// Models lists models for a brand and year
func (c *Client) Models(ctx context.Context, brand, year string) []string {
	return c.stringList(ctx, "/api/models", url.Values{"make": {brand}, "year": {year}})
}

// OwnedBikes lists the current user's bikes
func (c *Client) OwnedBikes(ctx context.Context) []OwnedBike {
	var bikes []OwnedBike
	if err := c.getJSON(ctx, "/api/user/bikes", nil, &bikes); err != nil {
		c.logger.Warn("Owned bikes lookup failed: %v", err)
		return []OwnedBike{}
	}
	if bikes == nil {
		return []OwnedBike{}
	}
	return bikes
}

func (c *Client) stringList(ctx context.Context, path string, q url.Values) []string {
	var out []string
	if err := c.getJSON(ctx, path, q, &out); err != nil {
		c.logger.Warn("Lookup %s failed: %v", path, err)
		return []string{}
	}
	if out == nil {
		return []string{}
	}
	return out
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, dst interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// MissingBrands returns the catalogue brands the marketplace does not offer in category.
// Matching ignores case.
func MissingBrands(ctx context.Context, c *Client, category string, brands []string) []string {
	offered := make(map[string]bool)
	for _, m := range c.Makes(ctx, category) {
		offered[strings.ToLower(m)] = true
	}
	missing := make([]string, 0)
	for _, b := range brands {
		if !offered[strings.ToLower(b)] {
			missing = append(missing, b)
		}
	}
	return missing
}
