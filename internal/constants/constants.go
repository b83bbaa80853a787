package constants

const (
	// Session keys
	SessionKeyUserID   = "user_id"
	SessionKeyUserName = "user_name"
	SessionKeyIsAdmin  = "is_admin"

	// ContextKeyPrincipal is the gin context key holding the request principal
	ContextKeyPrincipal = "principal"

	// ContextKeyRequestID is the gin context key holding the request id
	ContextKeyRequestID = "request_id"

	HeaderRequestID = "X-Request-ID"

	DefaultSessionCookieName = "tracker_session"
	DefaultUserName          = "User"

	// DateLayout is the ISO calendar date accepted on part updates
	DateLayout = "2006-01-02"

	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)
