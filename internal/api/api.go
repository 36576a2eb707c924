package api

import (
	"net/http"

	analyticsHandler "wa-console/internal/analytics/handler"
	campaignHandler "wa-console/internal/campaign/handler"
	contactsHandler "wa-console/internal/contacts/handler"
	inboxHandler "wa-console/internal/inbox/handler"
	notificationsHandler "wa-console/internal/notifications/handler"
	ordersHandler "wa-console/internal/orders/handler"
	systemHandler "wa-console/internal/system/handler"
	teamHandler "wa-console/internal/team/handler"
	templatesHandler "wa-console/internal/templates/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles every domain handler the console serves
type Handlers struct {
	Team          teamHandler.Handler
	Templates     templatesHandler.Handler
	Notifications notificationsHandler.Handler
	Campaigns     campaignHandler.Handler
	Contacts      contactsHandler.Handler
	Inbox         inboxHandler.Handler
	Orders        ordersHandler.Handler
	Analytics     analyticsHandler.Handler
	System        systemHandler.Handler
}

type API struct {
	router   *gin.RouterGroup
	handlers Handlers
	liveFeed gin.HandlerFunc
}

func New(router *gin.RouterGroup, handlers Handlers, liveFeed gin.HandlerFunc) API {
	return API{
		router:   router,
		handlers: handlers,
		liveFeed: liveFeed,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := a.handlers
	apiGroup := a.router.Group("/api")
	{
		apiGroup.GET("/health", health)
		if a.liveFeed != nil {
			apiGroup.GET("/ws", a.liveFeed)
		}
	}
	teamGroup := apiGroup.Group("/team")
	{
		teamGroup.GET("", h.Team.HandleListMembers)
		teamGroup.POST("", h.Team.HandleAddMember)
		teamGroup.PUT("/:id", h.Team.HandleUpdateMember)
		teamGroup.DELETE("/:id", h.Team.HandleRemoveMember)
	}
	apiGroup.GET("/templates", h.Templates.HandleListTemplates)
	notificationsGroup := apiGroup.Group("/internal-notifications")
	{
		notificationsGroup.GET("", h.Notifications.HandleListNotifications)
		notificationsGroup.POST("", h.Notifications.HandleCreateNotification)
		notificationsGroup.POST("/:id/read", h.Notifications.HandleMarkRead)
	}
	campaignsGroup := apiGroup.Group("/campaigns")
	{
		campaignsGroup.GET("", h.Campaigns.HandleListCampaigns)
		campaignsGroup.POST("", h.Campaigns.HandleCreateCampaign)
		campaignsGroup.GET("/:id", h.Campaigns.HandleGetCampaign)
		campaignsGroup.PUT("/:id", h.Campaigns.HandleUpdateCampaign)
		campaignsGroup.POST("/:id/toggle", h.Campaigns.HandleToggleCampaign)
	}
	contactsGroup := apiGroup.Group("/contacts")
	{
		contactsGroup.GET("", h.Contacts.HandleListContacts)
		contactsGroup.POST("", h.Contacts.HandleCreateContact)
		contactsGroup.GET("/count", h.Contacts.HandleCountContacts)
		contactsGroup.PUT("/:id", h.Contacts.HandleUpdateContact)
	}
	apiGroup.GET("/contact-lists", h.Contacts.HandleListContactLists)
	apiGroup.GET("/contact-tags", h.Contacts.HandleListTags)
	apiGroup.POST("/contact-tags", h.Contacts.HandleCreateTag)
	conversationsGroup := apiGroup.Group("/conversations")
	{
		conversationsGroup.GET("", h.Inbox.HandleListConversations)
		conversationsGroup.POST("/bulk-assign", h.Inbox.HandleBulkAssign)
		conversationsGroup.GET("/:id/messages", h.Inbox.HandleListMessages)
		conversationsGroup.POST("/:id/messages", h.Inbox.HandleSendMessage)
		conversationsGroup.POST("/:id/lock", h.Inbox.HandleLockConversation)
		conversationsGroup.POST("/:id/unlock", h.Inbox.HandleUnlockConversation)
	}
	ordersGroup := apiGroup.Group("/orders")
	{
		ordersGroup.GET("", h.Orders.HandleListOrders)
		ordersGroup.POST("", h.Orders.HandleCreateOrder)
		ordersGroup.PUT("/:id/status", h.Orders.HandleUpdateStatus)
	}
	analyticsGroup := apiGroup.Group("/analytics")
	{
		analyticsGroup.GET("/summary", h.Analytics.HandleGetSummary)
		analyticsGroup.GET("/timeline", h.Analytics.HandleGetTimeline)
	}
	apiGroup.GET("/system/queue-stats", h.System.HandleGetQueueStats)
	apiGroup.GET("/settings/protection", h.System.HandleGetProtection)
	apiGroup.PUT("/settings/protection", h.System.HandleUpdateProtection)
}

func (a *API) Health() {
	a.router.GET("/health", health)
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
