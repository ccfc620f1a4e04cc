package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prasetia/dompet/internal/pkg/constants"
	"github.com/prasetia/dompet/internal/utils"
)

// RequireSession guards read routes: the request must carry a non-empty
// session cookie. The cookie value is taken verbatim, no format check is
// performed here. The create path resolves its own session and must not
// use this middleware.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				return utils.UnauthorizedResponse(c, "Missing session cookie")
			}

			c.Set(constants.SessionContextKey, cookie.Value)
			return next(c)
		}
	}
}

// SessionID returns the session identifier stored by RequireSession,
// or an empty string when none is present
func SessionID(c echo.Context) string {
	if v, ok := c.Get(constants.SessionContextKey).(string); ok {
		return v
	}
	return ""
}

// OptionalSessionID reads the session cookie directly, for paths where the
// session may be absent. Returns an empty string when no cookie is set.
func OptionalSessionID(c echo.Context) string {
	cookie, err := c.Cookie(constants.SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SetSessionCookie instructs the client to store a newly issued session
func SetSessionCookie(c echo.Context, sessionID string) {
	c.SetCookie(&http.Cookie{
		Name:   constants.SessionCookieName,
		Value:  sessionID,
		Path:   constants.SessionCookiePath,
		MaxAge: constants.SessionCookieMaxAge,
	})
}
