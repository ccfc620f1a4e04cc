package constants

// Session cookie contract. The cookie value is an opaque UUID issued by the
// create-transaction path; max-age is advisory, nothing expires server side.
const (
	SessionCookieName   = "sessionId"
	SessionCookiePath   = "/"
	SessionCookieMaxAge = 60 * 60 * 24 * 7 // 7 days

	// SessionContextKey is the echo context key the session guard stores
	// the resolved session identifier under
	SessionContextKey = "session_id"
)
