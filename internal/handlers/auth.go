package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-tracker/internal/constants"
	"github.com/yukikurage/project-tracker/internal/dto"
	apierrors "github.com/yukikurage/project-tracker/internal/errors"
	"github.com/yukikurage/project-tracker/internal/middleware"
	"github.com/yukikurage/project-tracker/internal/services"
)

const (
	msgAdminRegistered   = "Administrator registered successfully. You can now log in."
	msgPendingRegistered = "Registration submitted. Wait for an administrator to approve your account."
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Index sends signed-in users to the dashboard and everyone else to login.
func (h *AuthHandler) Index(c *gin.Context) {
	if _, ok := middleware.GetPrincipal(c); ok {
		c.Redirect(http.StatusFound, constants.DashboardPath)
		return
	}
	c.Redirect(http.StatusFound, constants.LoginPath)
}

// RegisterPage serves the registration screen.
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FormPageResponse{Flashes: popFlashes(c)})
}

// Register creates a new account.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Email           string `form:"email" json:"email"`
		Name            string `form:"name" json:"name"`
		Password        string `form:"password" json:"password"`
		PasswordConfirm string `form:"password_confirm" json:"password_confirm"`
	}

	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "", "Invalid request body")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Email:           req.Email,
		Name:            req.Name,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	message := msgPendingRegistered
	if user.IsAdmin {
		message = msgAdminRegistered
	}
	addFlash(c, flashSuccess, message)

	userDTO := dto.ToUserDTO(*user)
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: message, User: &userDTO})
}

// LoginPage serves the login screen.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FormPageResponse{Flashes: popFlashes(c)})
}

// Login authenticates a user and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `form:"email" json:"email"`
		Password string `form:"password" json:"password"`
	}

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "", "Invalid request body")
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Clear()
	session.Set(constants.SessionKeyUserID, user.ID)
	session.Set(constants.SessionKeyUserName, user.Name)
	session.Set(constants.SessionKeyIsAdmin, user.IsAdmin)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		User:     dto.ToUserDTO(*user),
		Redirect: constants.DashboardPath,
	})
}

// Logout clears the session and returns to the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.Redirect(http.StatusFound, constants.LoginPath)
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingFields):
		apierrors.BadRequest(c, apierrors.ErrCodeMissingField, err.Error())
	case errors.Is(err, services.ErrPasswordMismatch):
		apierrors.BadRequest(c, "", err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.BadRequest(c, apierrors.ErrCodeAlreadyExists, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, apierrors.ErrCodeInvalidCredentials, err.Error())
	case errors.Is(err, services.ErrNotApproved):
		apierrors.Forbidden(c, apierrors.ErrCodeNotApproved, err.Error())
	default:
		_ = c.Error(err)
		apierrors.InternalError(c, "")
	}
}
