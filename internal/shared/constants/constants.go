package constants

const (
	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Ticket status
	TicketStatusActive  = "active"
	TicketStatusDeleted = "deleted"

	// Relationship kinds
	RelationshipTypeRelated = "related"
	RelationshipTypeContext = "context"

	// Database table names
	TableTickets             = "tickets"
	TableTicketTemplates     = "ticket_templates"
	TableTicketRelationships = "ticket_relationships"

	// Field limits
	MaxTitleLength     = 200
	MaxUserInputLength = 10000

	// Title used when the title model produces nothing usable
	FallbackTicketTitle = "Untitled Ticket"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
