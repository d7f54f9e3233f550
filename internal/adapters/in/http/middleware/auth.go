// Package middleware provides echo middleware for the HTTP adapter:
// JWT authentication, role gating, and request logging.
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"bestcat/internal/core/domain/model/kernel"
)

// Context keys set by Auth and read by handlers and RequireRoles.
const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)

// Roles recognized in token claims.
const (
	RoleMaster   = "MASTER"
	RoleManager  = "MANAGER"
	RoleOwner    = "OWNER"
	RoleCustomer = "CUSTOMER"
)

// Auth returns middleware that authenticates requests via a Bearer token
// signed with the given HMAC secret. On success the caller's ID (sub claim)
// and role are stored on the echo context; on failure the request is
// rejected with 401.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			subject, err := claims.GetSubject()
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
			}
			userID, err := kernel.UUIDFromString(subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
			}

			role, _ := claims["role"].(string)
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing role claim")
			}

			c.Set(ContextKeyUserID, userID)
			c.Set(ContextKeyRole, role)
			return next(c)
		}
	}
}

// RequireRoles returns middleware that rejects authenticated callers whose
// role is not in the given list. Must run after Auth.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextKeyRole).(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

// CallerID returns the authenticated caller's ID set by Auth.
func CallerID(c echo.Context) (kernel.UUID, error) {
	userID, ok := c.Get(ContextKeyUserID).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return userID, nil
}
