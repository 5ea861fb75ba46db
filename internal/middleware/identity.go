package middleware

// identity.go reads the caller identity that JWTAuth stores under
// "user_id".  The admin handlers use it to attribute catalog reloads.

import (
    "fmt"

    "github.com/labstack/echo/v4"
)

// UserID returns the authenticated subject, or "anonymous" on routes
// without JWTAuth.
func UserID(c echo.Context) string {
    switch v := c.Get("user_id").(type) {
    case string:
        if v != "" {
            return v
        }
    case nil:
    default:
        return fmt.Sprint(v)
    }
    return "anonymous"
}
