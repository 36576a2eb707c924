package processor

import (
	"context"
	"errors"
	"fmt"

	"wa-console/internal/observability"
	"wa-console/internal/store"

	"github.com/shopspring/decimal"
)

// OrderStore defines the store operations required by OrderProcessor
type OrderStore interface {
	ListOrders(ctx context.Context) ([]store.Order, error)
	CreateOrder(ctx context.Context, params store.CreateOrderParams) (store.Order, error)
	AppendOrderHistory(ctx context.Context, id string, params store.AppendOrderHistoryParams) (store.Order, error)
}

var ErrOrderNotFound = fmt.Errorf("order %w", store.ErrNotFound)

// TaxRate is applied to the order subtotal.
var TaxRate = decimal.NewFromFloat(0.15)

// CreateOrderParams is an order as submitted by an agent, before pricing
type CreateOrderParams struct {
	CustomerName  string
	CustomerPhone string
	Items         []store.OrderItem
	CreatedBy     string
}

type UpdateStatusParams struct {
	Action string
	Note   string
	By     string
}

type OrderProcessor struct {
	store  OrderStore
	logger *observability.Logger
}

func New(store OrderStore, logger *observability.Logger) OrderProcessor {
	return OrderProcessor{
		store:  store,
		logger: logger,
	}
}

// Totals is the priced breakdown of an item list
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// PriceItems sums the line totals and applies TaxRate.
func PriceItems(items []store.OrderItem) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(decimal.NewFromFloat(item.Total))
	}
	tax := subtotal.Mul(TaxRate)
	return Totals{Subtotal: subtotal, Tax: tax, Total: subtotal.Add(tax)}
}

func (p *OrderProcessor) ListOrders(ctx context.Context) ([]store.Order, error) {
	orders, err := p.store.ListOrders(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list orders", err)
		return nil, err
	}
	return orders, nil
}

func (p *OrderProcessor) CreateOrder(ctx context.Context, params CreateOrderParams) (store.Order, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "customer_phone", Value: params.CustomerPhone},
		observability.Field{Key: "item_count", Value: len(params.Items)},
	)

	totals := PriceItems(params.Items)
	order, err := p.store.CreateOrder(ctx, store.CreateOrderParams{
		CustomerName:  params.CustomerName,
		CustomerPhone: params.CustomerPhone,
		Items:         params.Items,
		Subtotal:      totals.Subtotal.InexactFloat64(),
		Tax:           totals.Tax.InexactFloat64(),
		Total:         totals.Total.InexactFloat64(),
		CreatedBy:     params.CreatedBy,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create order", err)
		return store.Order{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "order_id", Value: order.ID},
		observability.Field{Key: "total", Value: totals.Total.StringFixed(2)},
	)
	p.logger.Info(ctx, "order created")
	return order, nil
}

// UpdateStatus records an action on an order. approve and reject change the
// approval state; every other action is kept in the history only.
func (p *OrderProcessor) UpdateStatus(ctx context.Context, orderID string, params UpdateStatusParams) (store.Order, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "order_id", Value: orderID},
		observability.Field{Key: "action", Value: params.Action},
	)

	entry := store.AppendOrderHistoryParams{Action: params.Action, Note: params.Note, By: params.By}
	switch params.Action {
	case store.OrderActionApprove:
		approved := store.OrderApprovalApproved
		entry.ApprovalStatus = &approved
	case store.OrderActionReject:
		rejected := store.OrderApprovalRejected
		entry.ApprovalStatus = &rejected
	default:
		p.logger.Warn(ctx, "unrecognized order action recorded without a status change")
	}

	order, err := p.store.AppendOrderHistory(ctx, orderID, entry)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Order{}, ErrOrderNotFound
		}
		p.logger.Error(ctx, "failed to update order status", err)
		return store.Order{}, err
	}
	return order, nil
}
