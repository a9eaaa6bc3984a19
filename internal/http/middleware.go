package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"bhavesh/backend/internal/handler"
	"bhavesh/backend/internal/model"
	"bhavesh/backend/internal/ratelimit"
	"bhavesh/backend/internal/service"
	"bhavesh/backend/pkg/logger"
)

// AuthCookieName is the session cookie read by the auth middleware.
const AuthCookieName = "enquiry_auth"

// JWTAuthMiddleware guards back-office routes. The token comes from the
// Authorization header or the session cookie; a valid token without the
// admin role is forbidden rather than unauthorized.
func JWTAuthMiddleware(auth service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return handler.Error(c, http.StatusUnauthorized, "unauthorized")
			}

			claims, err := auth.ValidateToken(token)
			if err != nil {
				return handler.Error(c, http.StatusUnauthorized, "unauthorized")
			}
			if claims.Role != model.RoleAdmin {
				return handler.Error(c, http.StatusForbidden, "forbidden")
			}

			c.Set(handler.ContextKeyAdmin, claims)
			return next(c)
		}
	}
}

// RateLimitMiddleware enforces a sliding window per operation class and
// client. Denied requests get a Retry-After hint; allowed ones carry the
// remaining quota.
func RateLimitMiddleware(limiter *ratelimit.Limiter, class string, cfg ratelimit.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := class + ":" + ratelimit.ClientID(c.Request())
			result := limiter.Check(key, cfg)

			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			if !result.Allowed {
				retryAfter := int((result.RetryAfter + time.Second - 1) / time.Second)
				if retryAfter < 1 {
					retryAfter = 1
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":             "too many requests",
					"retryAfterSeconds": retryAfter,
				})
			}
			return next(c)
		}
	}
}

// RequestLoggerMiddleware logs each request with a level matching the
// response class.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			status := c.Response().Status

			fields := []interface{}{
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"duration", time.Since(start).String(),
			}
			switch {
			case status >= http.StatusInternalServerError:
				logger.Error("request", fields...)
			case status >= http.StatusBadRequest:
				logger.Warn("request", fields...)
			default:
				logger.Info("request", fields...)
			}
			return err
		}
	}
}

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(AuthCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
