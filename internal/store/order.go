package store

import (
	"context"
	"time"
)

// Order is a commerce order captured from a conversation
type Order struct {
	ID             string         `json:"id"`
	CustomerName   string         `json:"customerName"`
	CustomerPhone  string         `json:"customerPhone"`
	Items          []OrderItem    `json:"items"`
	Subtotal       float64        `json:"subtotal"`
	Tax            float64        `json:"tax"`
	Total          float64        `json:"total"`
	Status         string         `json:"status"`
	ApprovalStatus string         `json:"approvalStatus"`
	History        []OrderHistory `json:"history"`
	CreatedAt      time.Time      `json:"createdAt"`
}

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}

type OrderHistory struct {
	Action string    `json:"action"`
	Note   string    `json:"note,omitempty"`
	By     string    `json:"by,omitempty"`
	At     time.Time `json:"at"`
}

// CreateOrderParams carries an already priced order. The store sets the
// initial status, approval state and the "created" history entry.
type CreateOrderParams struct {
	CustomerName  string
	CustomerPhone string
	Items         []OrderItem
	Subtotal      float64
	Tax           float64
	Total         float64
	CreatedBy     string
}

// AppendOrderHistoryParams records one action on an order. ApprovalStatus,
// when set, replaces the current approval state.
type AppendOrderHistoryParams struct {
	Action         string
	Note           string
	By             string
	ApprovalStatus *string
}

func (s *Store) ListOrders(ctx context.Context) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.clone()
	}
	return out, nil
}

func (s *Store) GetOrderByID(ctx context.Context, id string) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.orderIndex(id)
	if i < 0 {
		return Order{}, ErrNotFound
	}
	return s.orders[i].clone(), nil
}

func (s *Store) CreateOrder(ctx context.Context, params CreateOrderParams) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	order := Order{
		ID:             s.newID(),
		CustomerName:   params.CustomerName,
		CustomerPhone:  params.CustomerPhone,
		Items:          append([]OrderItem{}, params.Items...),
		Subtotal:       params.Subtotal,
		Tax:            params.Tax,
		Total:          params.Total,
		Status:         OrderStatusPendingPayment,
		ApprovalStatus: OrderApprovalPending,
		History: []OrderHistory{
			{Action: OrderActionCreated, By: params.CreatedBy, At: now},
		},
		CreatedAt: now,
	}
	s.orders = append(s.orders, order)
	return order.clone(), nil
}

func (s *Store) AppendOrderHistory(ctx context.Context, id string, params AppendOrderHistoryParams) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.orderIndex(id)
	if i < 0 {
		return Order{}, ErrNotFound
	}
	o := &s.orders[i]
	if params.ApprovalStatus != nil {
		o.ApprovalStatus = *params.ApprovalStatus
	}
	o.History = append(o.History, OrderHistory{
		Action: params.Action,
		Note:   params.Note,
		By:     params.By,
		At:     s.now(),
	})
	return o.clone(), nil
}

func (s *Store) orderIndex(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}

func (o Order) clone() Order {
	o.Items = append([]OrderItem{}, o.Items...)
	o.History = append([]OrderHistory{}, o.History...)
	return o
}
