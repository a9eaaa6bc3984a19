package http

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"bhavesh/backend/internal/config"
	"bhavesh/backend/internal/handler"
	"bhavesh/backend/internal/ratelimit"
	"bhavesh/backend/internal/service"
)

// NewRouter wires the HTTP surface: the public enquiry and upload
// endpoints under /api, the back-office endpoints under /api/admin, and
// the optional static frontend at the root.
func NewRouter(
	enquiryHandler *handler.EnquiryHandler,
	uploadHandler *handler.UploadHandler,
	authHandler *handler.AuthHandler,
	authService service.AuthService,
	limiter *ratelimit.Limiter,
	cfg config.Config,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(RequestLoggerMiddleware())

	api := e.Group("/api", RateLimitMiddleware(limiter, "api", limitConfig(cfg.APILimit)))

	// Enquiry submission is public; its per-client form limit lives in
	// the service, not here.
	enquiryHandler.RegisterPublicRoutes(api)

	uploads := api.Group("", RateLimitMiddleware(limiter, "upload", limitConfig(cfg.UploadLimit)))
	uploadHandler.RegisterRoutes(uploads)

	auth := api.Group("/auth", RateLimitMiddleware(limiter, "auth", limitConfig(cfg.AuthLimit)))
	authHandler.RegisterPublicRoutes(auth)

	admin := api.Group("/admin", JWTAuthMiddleware(authService))
	enquiryHandler.RegisterAdminRoutes(admin)
	authHandler.RegisterAdminRoutes(admin)

	registerStatic(e, staticDir)

	return e
}

func limitConfig(rl config.RateLimit) ratelimit.Config {
	return ratelimit.Config{MaxRequests: rl.MaxRequests, Window: rl.Window}
}
