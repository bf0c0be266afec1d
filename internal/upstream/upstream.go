// Package upstream fetches the event collection from the backend endpoint.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"eventBoard/internal/config"
	"eventBoard/internal/models"
)

type Client struct {
	eventsURL string
	http      *http.Client
	validate  *validator.Validate
}

func New(cfg config.Upstream) *Client {
	return &Client{
		eventsURL: cfg.EventsURL,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
		validate: validator.New(),
	}
}

// FetchEvents performs a single GET for the full event collection. One
// attempt, no retry: a non-2xx status or an undecodable body fails the
// whole load.
func (c *Client) FetchEvents(ctx context.Context) ([]models.Event, error) {
	const op = "upstream.FetchEvents"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.eventsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s: unexpected status %d from %s", op, resp.StatusCode, c.eventsURL)
	}

	var events []models.Event
	if err = json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("%s: failed to decode events: %w", op, err)
	}

	for i, event := range events {
		if err = c.validate.Struct(event); err != nil {
			return nil, fmt.Errorf("%s: invalid event at index %d: %w", op, i, err)
		}
	}

	return events, nil
}

// Refresh runs FetchEvents with a deadline derived from the client timeout,
// for callers without a request context (the startup load and the
// background refresher).
func (c *Client) Refresh() ([]models.Event, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.http.Timeout+time.Second)
	defer cancel()

	return c.FetchEvents(ctx)
}
