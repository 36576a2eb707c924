package handler

import (
	"net/http"

	"wa-console/internal/apierrors"
	"wa-console/internal/observability"
	"wa-console/internal/orders/processor"
	"wa-console/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.OrderProcessor
	logger    *observability.Logger
}

func New(processor processor.OrderProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type OrderItemRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}

// CreateOrderRequest represents the HTTP request for creating an order.
// Totals are always computed server side.
type CreateOrderRequest struct {
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	Items         []OrderItemRequest `json:"items"`
	CreatedBy     string             `json:"createdBy"`
}

type UpdateStatusRequest struct {
	Action string `json:"action"`
	Note   string `json:"note"`
	By     string `json:"by"`
}

func (h *Handler) HandleListOrders(c *gin.Context) {
	orders, err := h.processor.ListOrders(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *Handler) HandleCreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithBindError(c, err)
		return
	}

	items := make([]store.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, store.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Total:    item.Total,
		})
	}

	order, err := h.processor.CreateOrder(c.Request.Context(), processor.CreateOrderParams{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Items:         items,
		CreatedBy:     req.CreatedBy,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *Handler) HandleUpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithBindError(c, err)
		return
	}

	order, err := h.processor.UpdateStatus(c.Request.Context(), c.Param("id"), processor.UpdateStatusParams{
		Action: req.Action,
		Note:   req.Note,
		By:     req.By,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	apierrors.RespondWithError(c, err)
}
