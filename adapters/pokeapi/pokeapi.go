package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"pokedex/core"
)

const (
	maxAttempts  = 3
	defaultRPS   = 5
	defaultBurst = 5
)

// errServer marks 5xx replies, the only status class worth retrying.
var errServer = errors.New("server error")

type Client struct {
	log        *slog.Logger
	baseURL    string
	limiter    *rate.Limiter
	retryDelay time.Duration
	http       *http.Client
}

func NewClient(baseURL string, timeout time.Duration, rps float64, log *slog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("empty base url")
	}
	if rps <= 0 {
		rps = defaultRPS
	}
	return &Client{
		log:        log,
		baseURL:    strings.TrimRight(baseURL, "/"),
		limiter:    rate.NewLimiter(rate.Limit(rps), defaultBurst),
		retryDelay: 500 * time.Millisecond,
		http:       &http.Client{Timeout: timeout},
	}, nil
}

type pokemonResp struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Height  int    `json:"height"`
	Weight  int    `json:"weight"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
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
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
		} else {
			lastErr = c.decode(resp, out)
			if lastErr == nil {
				return nil
			}
			if !errors.Is(lastErr, errServer) {
				return lastErr
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt+1) * c.retryDelay):
		}
	}
	return lastErr
}

func (c *Client) decode(resp *http.Response, out any) error {
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warn("close response body failed", "error", cerr)
		}
	}()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return core.ErrNotFound
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s", errServer, resp.Status)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Get fetches one record by lowercase name or numeric ID. Height and
// weight arrive in decimetres and hectograms and are converted here.
func (c *Client) Get(ctx context.Context, query string) (core.Record, error) {
	var pr pokemonResp
	if err := c.getJSON(ctx, fmt.Sprintf("%s/pokemon/%s", c.baseURL, url.PathEscape(query)), &pr); err != nil {
		return core.Record{}, err
	}

	rec := core.Record{
		ID:        pr.ID,
		Name:      pr.Name,
		SpriteURL: pr.Sprites.FrontDefault,
		HeightM:   float64(pr.Height) / 10,
		WeightKG:  float64(pr.Weight) / 10,
	}
	for _, t := range pr.Types {
		rec.Types = append(rec.Types, t.Type.Name)
	}
	for _, a := range pr.Abilities {
		rec.Abilities = append(rec.Abilities, a.Ability.Name)
	}
	return rec, nil
}

// Ping checks upstream reachability with the cheapest known record.
func (c *Client) Ping(ctx context.Context) error {
	var pr pokemonResp
	return c.getJSON(ctx, fmt.Sprintf("%s/pokemon/1", c.baseURL), &pr)
}
