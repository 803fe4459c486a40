package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusCleaning    = "cleaning"
	RoomStatusMaintenance = "maintenance"
	RoomStatusOutOfOrder  = "out_of_order"
)

const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusCheckedIn  = "checked_in"
	BookingStatusCheckedOut = "checked_out"
	BookingStatusCancelled  = "cancelled"
)

const (
	SyncActionSyncInventory = "sync_inventory"
	SyncActionPushBooking   = "push_booking"
	SyncActionCancelBooking = "cancel_booking"
	SyncActionInboundEvent  = "inbound_event"

	SyncDirectionInbound  = "inbound"
	SyncDirectionOutbound = "outbound"

	SyncOutcomeSuccess = "success"
	SyncOutcomeFailed  = "failed"
	SyncOutcomeSkipped = "skipped"
)

const (
	WebhookEventBookingCancelled  = "booking.cancelled"
	WebhookEventRoomStatusChanged = "room.status_changed"
	WebhookEventInventoryUpdated  = "inventory.updated"
	WebhookEventBookingCreated    = "booking.created"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID       = "id"
	RequestParamCheckIn  = "check_in"
	RequestParamCheckOut = "check_out"
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

// SystemActor is recorded as created_by/modified_by on rows written by
// background processes rather than an authenticated user.
const SystemActor = "system"

// CacheKeyAvailability prefixes every cached availability result. Writers
// that change room commitments invalidate this whole prefix.
const CacheKeyAvailability = "availability"

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation  = "23505"
	PqErrorCodeFkViolation      = "23503"
	PqErrorCodeLockNotAvailable = "55P03"
	PqErrorCodeQueryCanceled    = "57014"
)

const (
	DateFormat     = time.RFC3339
	StayDateFormat = "2006-01-02"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelPMSScopeName      = "pms"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderWebhookSignature   = "X-Webhook-Signature"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorRequestLimitExceeded = "request limit exceeded"
	ResponseErrorPrepareShutdown      = "server is preparing to shut down"
	ResponseErrorUnhealthy            = "server is unhealthy"
)

const (
	Empty = ""
)

// BookingActiveStatuses are the lifecycle states that hold inventory: any
// booking in one of these states participates in the overlap invariant.
var BookingActiveStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCheckedIn,
}

// BookingCommittedStatuses are the states the read-path availability query
// counts as commitments. Pending bookings are only re-checked under the
// write-path lock.
var BookingCommittedStatuses = []string{
	BookingStatusConfirmed,
	BookingStatusCheckedIn,
}

// RoomBookableStatuses gate availability at the room level regardless of
// dates.
var RoomBookableStatuses = []string{
	RoomStatusAvailable,
	RoomStatusCleaning,
}
