package outbound

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=outbound

import (
	"context"
	"errors"
	"fmt"

	"wa-console/internal/clients/whatsapp"
	"wa-console/internal/observability"
	"wa-console/internal/ratelimit"
	"wa-console/internal/workers"
)

// gatewayLimitKey is the single window all deliveries share.
const gatewayLimitKey = "gateway"

var ErrRateLimited = errors.New("gateway send rate limit exceeded")

// Sender is the part of the gateway client the outbound processor needs.
type Sender interface {
	SendConfigured() bool
	SendText(ctx context.Context, to, body string) (whatsapp.SendResult, error)
	SendTemplate(ctx context.Context, to, templateName, languageCode string) (whatsapp.SendResult, error)
}

// Limiter decides whether one more send fits under the per-minute cap.
type Limiter interface {
	CheckRateLimit(ctx context.Context, key string) (ratelimit.RateLimitResult, error)
}

// Processor delivers recorded outbound messages through the gateway.
type Processor struct {
	sender  Sender
	limiter Limiter
	logger  *observability.Logger
}

var _ workers.JobProcessor = (*Processor)(nil)

// New builds the processor. A nil limiter sends without a cap.
func New(sender Sender, limiter Limiter, logger *observability.Logger) *Processor {
	return &Processor{sender: sender, limiter: limiter, logger: logger}
}

func (p *Processor) Name() string {
	return "outbound"
}

// Process sends one job. An unconfigured gateway is not an error: the
// console then only records messages locally.
func (p *Processor) Process(ctx context.Context, job workers.OutboundJob) error {
	if !p.sender.SendConfigured() {
		p.logger.Debug(ctx, "gateway not configured, skipping send")
		return nil
	}

	if p.limiter != nil {
		res, err := p.limiter.CheckRateLimit(ctx, gatewayLimitKey)
		if err != nil {
			return fmt.Errorf("failed to check rate limit for message %s: %w", job.ID, err)
		}
		if !res.Allowed {
			return fmt.Errorf("message %s not sent, retry after %s: %w", job.ID, res.RetryAfter, ErrRateLimited)
		}
	}

	var (
		res whatsapp.SendResult
		err error
	)
	if job.TemplateName != "" {
		res, err = p.sender.SendTemplate(ctx, job.To, job.TemplateName, job.LanguageCode)
	} else {
		res, err = p.sender.SendText(ctx, job.To, job.Body)
	}
	if err != nil {
		return fmt.Errorf("failed to send message %s: %w", job.ID, err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "provider_message_id", Value: res.MessageID()})
	p.logger.Info(ctx, "message handed to gateway")
	return nil
}
