package handler

import (
	"net/http"

	"wa-console/internal/apierrors"
	"wa-console/internal/contacts/processor"
	"wa-console/internal/observability"
	"wa-console/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.ContactProcessor
	logger    *observability.Logger
}

func New(processor processor.ContactProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateContactRequest represents the HTTP request for creating a contact
type CreateContactRequest struct {
	FirstName  string            `json:"firstName"`
	LastName   string            `json:"lastName"`
	Phone      string            `json:"phone"`
	Email      string            `json:"email"`
	Tags       []string          `json:"tags"`
	Lists      []string          `json:"lists"`
	Attributes map[string]string `json:"attributes"`
	Status     string            `json:"status"`
}

// UpdateContactRequest represents the HTTP request for updating a contact.
// The phone number identifies the conversation and cannot be changed.
type UpdateContactRequest struct {
	FirstName  *string            `json:"firstName,omitempty"`
	LastName   *string            `json:"lastName,omitempty"`
	Email      *string            `json:"email,omitempty"`
	Tags       *[]string          `json:"tags,omitempty"`
	Lists      *[]string          `json:"lists,omitempty"`
	Attributes *map[string]string `json:"attributes,omitempty"`
	Status     *string            `json:"status,omitempty"`
}

type CreateTagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (h *Handler) HandleListContacts(c *gin.Context) {
	contacts, err := h.processor.ListContacts(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, contacts)
}

func (h *Handler) HandleCountContacts(c *gin.Context) {
	count, err := h.processor.CountContacts(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *Handler) HandleCreateContact(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithBindError(c, err)
		return
	}

	created, err := h.processor.CreateContact(c.Request.Context(), store.CreateContactParams{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Email:      req.Email,
		Tags:       req.Tags,
		Lists:      req.Lists,
		Attributes: req.Attributes,
		Status:     req.Status,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	if !created.ContactCreated {
		c.JSON(http.StatusOK, created.Contact)
		return
	}
	c.JSON(http.StatusCreated, created.Contact)
}

func (h *Handler) HandleUpdateContact(c *gin.Context) {
	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithBindError(c, err)
		return
	}

	contact, err := h.processor.UpdateContact(c.Request.Context(), c.Param("id"), store.UpdateContactParams{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Tags:       req.Tags,
		Lists:      req.Lists,
		Attributes: req.Attributes,
		Status:     req.Status,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

func (h *Handler) HandleListContactLists(c *gin.Context) {
	lists, err := h.processor.ListContactLists(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, lists)
}

func (h *Handler) HandleListTags(c *gin.Context) {
	tags, err := h.processor.ListTags(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}

func (h *Handler) HandleCreateTag(c *gin.Context) {
	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithBindError(c, err)
		return
	}

	tag, err := h.processor.CreateTag(c.Request.Context(), store.CreateTagParams{Name: req.Name, Color: req.Color})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tag)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	apierrors.RespondWithError(c, err)
}
