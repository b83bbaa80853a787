package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-tracker/internal/dto"
	apierrors "github.com/yukikurage/project-tracker/internal/errors"
	"github.com/yukikurage/project-tracker/internal/middleware"
	"github.com/yukikurage/project-tracker/internal/services"
)

var actionMessages = map[services.AdminAction]string{
	services.ActionApprove:     "User approved.",
	services.ActionRevoke:      "User approval revoked.",
	services.ActionMakeAdmin:   "Administrator rights granted.",
	services.ActionRemoveAdmin: "Administrator rights removed.",
	services.ActionDelete:      "User deleted.",
}

// AdminHandler serves the user management screen.
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// ListUsers returns all accounts ordered by id.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AdminUsersResponse{
		Users:   dto.ToUserDTOs(users),
		Flashes: popFlashes(c),
	})
}

// ApplyAction runs one account action (approve, revoke, make_admin,
// remove_admin, delete) against user_id.
func (h *AdminHandler) ApplyAction(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		apierrors.Unauthorized(c, "", "")
		return
	}

	type ActionRequest struct {
		UserID uint64 `form:"user_id" json:"user_id"`
		Action string `form:"action" json:"action"`
	}

	var req ActionRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "", "Invalid request body")
		return
	}
	if req.UserID == 0 || req.Action == "" {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingField, "user_id and action are required")
		return
	}

	action := services.AdminAction(req.Action)
	user, err := h.adminService.ApplyAction(c.Request.Context(), p.UserID, req.UserID, action)
	if err != nil {
		respondAdminError(c, err)
		return
	}

	message := actionMessages[action]
	addFlash(c, flashSuccess, message)

	resp := dto.MessageResponse{Message: message}
	if user != nil {
		userDTO := dto.ToUserDTO(*user)
		resp.User = &userDTO
	}
	c.JSON(http.StatusOK, resp)
}

func respondAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCannotDemoteSelf),
		errors.Is(err, services.ErrCannotDeleteSelf):
		addFlash(c, flashWarning, err.Error())
		apierrors.Conflict(c, apierrors.ErrCodeInvalidOperation, err.Error())
	case errors.Is(err, services.ErrUnknownAction):
		apierrors.BadRequest(c, "", err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		_ = c.Error(err)
		apierrors.InternalError(c, "")
	}
}
