package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default list parameters
	DefaultLimit = 20
	MaxLimit     = 100

	// Featured tools shown on the landing page
	FeaturedToolsLimit = 6

	// Tool comparison bounds
	MinCompareTools = 1
	MaxCompareTools = 3

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeySessionID = "session_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers           = "users"
	TableSessions        = "sessions"
	TableCategories      = "categories"
	TableTools           = "tools"
	TableReviews         = "reviews"
	TableUserFavorites   = "user_favorites"
	TableToolComparisons = "tool_comparisons"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
