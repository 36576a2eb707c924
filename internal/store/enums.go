package store

// Team member ENUMs
const (
	UserRoleAdmin      = "admin"
	UserRoleSupervisor = "supervisor"
	UserRoleAgent      = "agent"
)

const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// Contact ENUMs
const (
	ContactStatusSubscribed   = "SUBSCRIBED"
	ContactStatusUnsubscribed = "UNSUBSCRIBED"
)

// Conversation ENUMs
const (
	ConversationStatusOpen   = "open"
	ConversationStatusClosed = "closed"
)

// Message ENUMs
const (
	MessageDirectionInbound  = "inbound"
	MessageDirectionOutbound = "outbound"
)

const (
	MessageTypeText     = "text"
	MessageTypeTemplate = "template"
	MessageTypeImage    = "image"
)

const (
	MessageStatusSent      = "sent"
	MessageStatusDelivered = "delivered"
	MessageStatusRead      = "read"
	MessageStatusFailed    = "failed"
	MessageStatusReceived  = "received"
)

// Campaign ENUMs
const (
	CampaignStatusDraft     = "DRAFT"
	CampaignStatusRunning   = "RUNNING"
	CampaignStatusPaused    = "PAUSED"
	CampaignStatusCompleted = "COMPLETED"
)

const (
	CampaignTypeBroadcast     = "BROADCAST"
	CampaignTypeTransactional = "TRANSACTIONAL"
)

// Order ENUMs
const (
	OrderStatusPendingPayment = "pending-payment"
)

const (
	OrderApprovalPending  = "pending"
	OrderApprovalApproved = "approved"
	OrderApprovalRejected = "rejected"
)

const (
	OrderActionCreated = "created"
	OrderActionApprove = "approve"
	OrderActionReject  = "reject"
)

// Template ENUMs
const (
	TemplateStatusApproved = "APPROVED"
	TemplateStatusPending  = "PENDING"
	TemplateStatusRejected = "REJECTED"
)

const (
	TemplateComponentHeader = "HEADER"
	TemplateComponentBody   = "BODY"
	TemplateComponentFooter = "FOOTER"
	TemplateComponentButton = "BUTTONS"
)

// Internal notification ENUMs
const (
	NotificationTypeSystem   = "system"
	NotificationTypeCampaign = "campaign"
	NotificationTypeOrder    = "order"
	NotificationTypeInbox    = "inbox"
)

const (
	NotificationPriorityLow    = "low"
	NotificationPriorityNormal = "normal"
	NotificationPriorityHigh   = "high"
)
