// Package console is an HTTP client for the console's own REST API. The
// campaign wizard uses it the way the web UI does.
package console

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"wa-console/internal/observability"
	"wa-console/internal/store"

	"github.com/go-resty/resty/v2"
)

var ErrNotFound = errors.New("console resource not found")

type Client struct {
	httpClient *resty.Client
	logger     *observability.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *observability.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *Client) ListTemplates(ctx context.Context) ([]store.Template, error) {
	var templates []store.Template
	if err := c.do(ctx, http.MethodGet, "/api/templates", nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (c *Client) ListCampaigns(ctx context.Context) ([]store.Campaign, error) {
	var campaigns []store.Campaign
	if err := c.do(ctx, http.MethodGet, "/api/campaigns", nil, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (c *Client) GetCampaign(ctx context.Context, id string) (store.Campaign, error) {
	var campaign store.Campaign
	if err := c.do(ctx, http.MethodGet, "/api/campaigns/"+id, nil, &campaign); err != nil {
		return store.Campaign{}, err
	}
	return campaign, nil
}

func (c *Client) CreateCampaign(ctx context.Context, campaign store.Campaign) (store.Campaign, error) {
	var created store.Campaign
	if err := c.do(ctx, http.MethodPost, "/api/campaigns", campaign, &created); err != nil {
		return store.Campaign{}, err
	}
	return created, nil
}

func (c *Client) UpdateCampaign(ctx context.Context, id string, campaign store.Campaign) (store.Campaign, error) {
	var updated store.Campaign
	if err := c.do(ctx, http.MethodPut, "/api/campaigns/"+id, campaign, &updated); err != nil {
		return store.Campaign{}, err
	}
	return updated, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) error {
	req := c.httpClient.R().
		SetContext(ctx).
		SetResult(result)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	case resp.IsError():
		err := fmt.Errorf("%s %s failed with status %d: %s", method, path, resp.StatusCode(), resp.String())
		c.logger.Error(ctx, "console API call failed", err)
		return err
	}
	return nil
}
