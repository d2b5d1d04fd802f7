package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/frankuxui/pokemon-fight/internal/entities"
)

// Client is the HTTP implementation of Catalog backed by the PokeAPI.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ Catalog = (*Client)(nil)

// NewClient constructs a catalog client for the given API base URL, e.g.
// "https://pokeapi.co/api/v2".
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type listResponse struct {
	Results []struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"results"`
}

type detailResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Abilities []struct {
		Ability struct {
			Name string `json:"name"`
		} `json:"ability"`
	} `json:"abilities"`
	Stats []struct {
		BaseStat int `json:"base_stat"`
		Stat     struct {
			Name string `json:"name"`
		} `json:"stat"`
	} `json:"stats"`
}

// List fetches one page of the creature index.
func (c *Client) List(ctx context.Context, offset, limit int) ([]PageEntry, error) {
	u := fmt.Sprintf("%s/pokemon?offset=%d&limit=%d", c.baseURL, offset, limit)
	var body listResponse
	if err := c.get(ctx, u, &body); err != nil {
		return nil, err
	}

	entries := make([]PageEntry, 0, len(body.Results))
	for _, r := range body.Results {
		entries = append(entries, PageEntry{
			ID:        idFromURL(r.URL),
			Name:      r.Name,
			DetailURL: r.URL,
		})
	}
	return entries, nil
}

// Detail fetches and validates a single creature record.
func (c *Client) Detail(ctx context.Context, id string) (*CreatureDetail, error) {
	u := fmt.Sprintf("%s/pokemon/%s", c.baseURL, url.PathEscape(id))
	var body detailResponse
	if err := c.get(ctx, u, &body); err != nil {
		return nil, err
	}
	if body.ID == 0 || body.Name == "" {
		return nil, fmt.Errorf("%w: malformed record for %q", entities.ErrCatalogUnavailable, id)
	}

	detail := &CreatureDetail{
		ID:        body.ID,
		Name:      body.Name,
		SpriteURL: body.Sprites.Other.OfficialArtwork.FrontDefault,
	}
	if detail.SpriteURL == "" {
		detail.SpriteURL = body.Sprites.FrontDefault
	}
	for _, t := range body.Types {
		detail.Types = append(detail.Types, t.Type.Name)
	}
	for _, a := range body.Abilities {
		detail.Abilities = append(detail.Abilities, a.Ability.Name)
	}
	for _, s := range body.Stats {
		switch s.Stat.Name {
		case "hp":
			detail.Stats.HP = s.BaseStat
		case "attack":
			detail.Stats.Attack = s.BaseStat
		case "defense":
			detail.Stats.Defense = s.BaseStat
		case "speed":
			detail.Stats.Speed = s.BaseStat
		}
	}
	return detail, nil
}

func (c *Client) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", entities.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return entities.ErrCreatureNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: unexpected status %d", entities.ErrCatalogUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", entities.ErrCatalogUnavailable, err)
	}
	return nil
}

// idFromURL extracts the numeric identity from a detail URL like
// ".../api/v2/pokemon/25/". Zero means the URL carried no id.
func idFromURL(u string) int {
	parts := strings.Split(strings.TrimRight(u, "/"), "/")
	if len(parts) == 0 {
		return 0
	}
	id, _ := strconv.Atoi(parts[len(parts)-1])
	return id
}
