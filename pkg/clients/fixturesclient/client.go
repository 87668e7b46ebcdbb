// Package fixturesclient fetches upcoming match schedules from a
// football-data style API. Authentication uses an X-Auth-Token header;
// the key comes from the environment, never from config files.
package fixturesclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	HTTP        *http.Client
	BaseURL     string
	APIKey      string
	UserAgent   string
	NameMapping map[string]string // API team name -> FPL team name
}

// NewClient creates a fixtures client. nameMapping translates the API's
// club names to the names the prediction pipeline uses; unmapped names
// pass through unchanged.
func NewClient(baseURL, apiKey string, nameMapping map[string]string) *Client {
	return &Client{
		HTTP:        &http.Client{Timeout: 20 * time.Second},
		BaseURL:     baseURL,
		APIKey:      apiKey,
		UserAgent:   "fpl-squad-picker/1.0",
		NameMapping: nameMapping,
	}
}

// Match is one scheduled fixture for the requested matchday
type Match struct {
	HomeTeam string
	AwayTeam string
	UTCDate  string
	Status   string
}

// TeamFixture is a single club's view of a match, one row per club per
// match (the shape the prediction pipeline consumes)
type TeamFixture struct {
	TeamName         string
	OpponentTeamName string
	WasHome          bool
}

type apiTeam struct {
	Name string `json:"name"`
}

type apiMatch struct {
	HomeTeam apiTeam `json:"homeTeam"`
	AwayTeam apiTeam `json:"awayTeam"`
	UTCDate  string  `json:"utcDate"`
	Status   string  `json:"status"`
}

type matchesResponse struct {
	Matches []apiMatch `json:"matches"`
}

// Matches fetches the schedule for the given matchday
func (c *Client) Matches(ctx context.Context, matchday int) ([]Match, error) {
	url := fmt.Sprintf("%s?matchday=%d", c.BaseURL, matchday)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")
	if c.APIKey != "" {
		req.Header.Set("X-Auth-Token", c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matchday %d: %w", matchday, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s failed: %d body=%s", url, resp.StatusCode, string(body))
	}

	var decoded matchesResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode matchday %d response: %w", matchday, err)
	}

	matches := make([]Match, len(decoded.Matches))
	for i, m := range decoded.Matches {
		matches[i] = Match{
			HomeTeam: c.mapName(m.HomeTeam.Name),
			AwayTeam: c.mapName(m.AwayTeam.Name),
			UTCDate:  m.UTCDate,
			Status:   m.Status,
		}
	}

	return matches, nil
}

// TeamFixtures fetches the matchday schedule and expands it to one row
// per club, home and away perspectives both included
func (c *Client) TeamFixtures(ctx context.Context, matchday int) ([]TeamFixture, error) {
	matches, err := c.Matches(ctx, matchday)
	if err != nil {
		return nil, err
	}

	fixtures := make([]TeamFixture, 0, len(matches)*2)
	for _, m := range matches {
		fixtures = append(fixtures, TeamFixture{TeamName: m.HomeTeam, OpponentTeamName: m.AwayTeam, WasHome: true})
	}
	for _, m := range matches {
		fixtures = append(fixtures, TeamFixture{TeamName: m.AwayTeam, OpponentTeamName: m.HomeTeam, WasHome: false})
	}

	return fixtures, nil
}

func (c *Client) mapName(apiName string) string {
	if mapped, ok := c.NameMapping[apiName]; ok {
		return mapped
	}
	return apiName
}
