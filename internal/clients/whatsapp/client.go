package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wa-console/internal/config"
	"wa-console/internal/observability"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

var ErrNotConfigured = errors.New("whatsapp gateway is not configured")

// Client talks to the WhatsApp Cloud (Graph) API. Calls share one circuit
// breaker so a failing provider is skipped quickly.
type Client struct {
	cfg        config.WhatsAppConfig
	httpClient *resty.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *observability.Logger
}

func NewClient(cfg config.WhatsAppConfig, logger *observability.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/") + "/" + cfg.APIVersion

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.AccessToken).
		SetHeader("Content-Type", "application/json")

	c := &Client{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     logger,
	}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "whatsapp-graph-api",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			ctx := observability.WithFields(context.Background(),
				observability.Field{Key: "breaker", Value: name},
				observability.Field{Key: "from", Value: from.String()},
				observability.Field{Key: "to", Value: to.String()},
			)
			c.logger.Warn(ctx, "gateway circuit breaker changed state")
		},
	})
	return c
}

// TemplatesConfigured reports whether template listing can reach the provider.
func (c *Client) TemplatesConfigured() bool {
	return c.cfg.AccessToken != "" && c.cfg.BusinessAccountID != ""
}

// SendConfigured reports whether messages can be sent through the provider.
func (c *Client) SendConfigured() bool {
	return c.cfg.AccessToken != "" && c.cfg.PhoneNumberID != ""
}

// GetTemplates fetches the message templates of the business account.
func (c *Client) GetTemplates(ctx context.Context) ([]Template, error) {
	if !c.TemplatesConfigured() {
		return nil, ErrNotConfigured
	}

	out, err := c.call(ctx, "get_templates", func() (interface{}, error) {
		var result templateListResponse
		var apiErr GraphError
		resp, err := c.httpClient.R().
			SetContext(ctx).
			SetQueryParam("limit", "100").
			SetResult(&result).
			SetError(&apiErr).
			Get(fmt.Sprintf("/%s/message_templates", c.cfg.BusinessAccountID))
		if err != nil {
			return nil, fmt.Errorf("failed to query message templates: %w", err)
		}
		if resp.IsError() {
			return nil, graphError("message templates", resp, apiErr)
		}
		return result.Data, nil
	})
	if err != nil {
		return nil, err
	}
	return out.([]Template), nil
}

// SendText sends a plain text message to a phone number.
func (c *Client) SendText(ctx context.Context, to, body string) (SendResult, error) {
	return c.send(ctx, GenericMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text:             &TextObj{Body: body},
	})
}

// SendTemplate sends an approved template with no parameters.
func (c *Client) SendTemplate(ctx context.Context, to, templateName, languageCode string) (SendResult, error) {
	return c.send(ctx, GenericMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "template",
		Template: &TemplateObj{
			Name:     templateName,
			Language: LanguageObj{Code: languageCode},
		},
	})
}

func (c *Client) send(ctx context.Context, msg GenericMessage) (SendResult, error) {
	if !c.SendConfigured() {
		return SendResult{}, ErrNotConfigured
	}

	out, err := c.call(ctx, "send_message", func() (interface{}, error) {
		var result SendResult
		var apiErr GraphError
		resp, err := c.httpClient.R().
			SetContext(ctx).
			SetBody(msg).
			SetResult(&result).
			SetError(&apiErr).
			Post(fmt.Sprintf("/%s/messages", c.cfg.PhoneNumberID))
		if err != nil {
			return nil, fmt.Errorf("failed to send message: %w", err)
		}
		if resp.IsError() {
			return nil, graphError("send message", resp, apiErr)
		}
		return result, nil
	})
	if err != nil {
		return SendResult{}, err
	}
	return out.(SendResult), nil
}

// call runs fn through the breaker and records the outcome.
func (c *Client) call(ctx context.Context, operation string, fn func() (interface{}, error)) (interface{}, error) {
	start := time.Now()
	out, err := c.breaker.Execute(fn)
	observability.RecordGatewayCall(operation, err, time.Since(start))
	if err != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "gateway_operation", Value: operation})
		c.logger.Error(ctx, "whatsapp gateway call failed", err)
		return nil, err
	}
	return out, nil
}

func graphError(what string, resp *resty.Response, apiErr GraphError) error {
	if apiErr.Error.Message != "" {
		return fmt.Errorf("%s failed (status %d, code %d): %s", what, resp.StatusCode(), apiErr.Error.Code, apiErr.Error.Message)
	}
	return fmt.Errorf("%s failed (status %d): %s", what, resp.StatusCode(), resp.String())
}
