package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"bhavesh/backend/internal/model"
	"bhavesh/backend/internal/service"
)

// ContextKeyAdmin is where the auth middleware stores the verified
// service.Claims for the request.
const ContextKeyAdmin = "admin"

const authCookieName = "enquiry_auth"

type AuthHandler struct {
	auth     service.AuthService
	tokenTTL time.Duration
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Token string        `json:"token"`
	Admin adminResponse `json:"admin"`
}

func NewAuthHandler(auth service.AuthService, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, tokenTTL: tokenTTL}
}

func (h *AuthHandler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)
}

func (h *AuthHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/me", h.Me)
}

// Login verifies credentials and returns a session token, also set as
// an HTTP-only cookie for browser clients.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	token, admin, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(h.tokenTTL),
	})

	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		Admin: adminResponse{ID: admin.ID, Email: admin.Email, Role: admin.Role},
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	return c.NoContent(http.StatusNoContent)
}

// Me returns the identity attached by the auth middleware.
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := c.Get(ContextKeyAdmin).(service.Claims)
	if !ok || claims.Role != model.RoleAdmin {
		return Error(c, http.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(http.StatusOK, adminResponse{ID: claims.AdminID, Email: claims.Email, Role: claims.Role})
}
