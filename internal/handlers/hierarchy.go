package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-tracker/internal/constants"
	"github.com/yukikurage/project-tracker/internal/dto"
	apierrors "github.com/yukikurage/project-tracker/internal/errors"
	"github.com/yukikurage/project-tracker/internal/middleware"
	"github.com/yukikurage/project-tracker/internal/services"
)

const msgPartUpdated = "Part updated."

// HierarchyHandler serves the object, section and part screens.
type HierarchyHandler struct {
	hierarchyService *services.HierarchyService
}

// NewHierarchyHandler creates a new HierarchyHandler.
func NewHierarchyHandler(hierarchyService *services.HierarchyService) *HierarchyHandler {
	return &HierarchyHandler{
		hierarchyService: hierarchyService,
	}
}

// Dashboard lists every object.
func (h *HierarchyHandler) Dashboard(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)

	dashboard, err := h.hierarchyService.GetDashboard(c.Request.Context())
	if err != nil {
		respondHierarchyError(c, err)
		return
	}

	resp := dto.DashboardResponse{
		UserName:     constants.DefaultUserName,
		Objects:      dto.ToObjectDTOs(dashboard.Objects),
		TotalTasks:   dashboard.TotalTasks,
		OverdueTasks: dashboard.OverdueTasks,
		DoneTasks:    dashboard.DoneTasks,
		Flashes:      popFlashes(c),
	}
	if p != nil {
		if p.UserName != "" {
			resp.UserName = p.UserName
		}
		resp.IsAdmin = p.IsAdmin
	}

	c.JSON(http.StatusOK, resp)
}

// ObjectDetail returns an object with its sections.
func (h *HierarchyHandler) ObjectDetail(c *gin.Context) {
	objectID, ok := parseIDParam(c)
	if !ok {
		return
	}

	obj, sections, err := h.hierarchyService.GetObjectDetail(c.Request.Context(), objectID)
	if err != nil {
		respondHierarchyError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ObjectDetailResponse{
		Object:   dto.ToObjectDTO(*obj),
		Sections: dto.ToSectionDTOs(sections),
	})
}

// SectionDetail returns a section with its parts and their overdue flags.
func (h *HierarchyHandler) SectionDetail(c *gin.Context) {
	sectionID, ok := parseIDParam(c)
	if !ok {
		return
	}

	detail, err := h.hierarchyService.GetSectionDetail(c.Request.Context(), sectionID)
	if err != nil {
		respondHierarchyError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSectionDetailResponse(detail, popFlashes(c)))
}

// UpdatePart edits one part of the section. Only submitted fields change. A
// submission without part_id changes nothing and returns the section screen.
func (h *HierarchyHandler) UpdatePart(c *gin.Context) {
	sectionID, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdatePartRequest struct {
		PartID       uint64  `form:"part_id" json:"part_id"`
		StartDate    *string `form:"start_date" json:"start_date"`
		EndDate      *string `form:"end_date" json:"end_date"`
		AssigneeName *string `form:"assignee_name" json:"assignee_name"`
		AlbumLink    *string `form:"album_link" json:"album_link"`
		Status       *string `form:"status" json:"status"`
	}

	var req UpdatePartRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "", "Invalid request body")
		return
	}
	if req.PartID == 0 {
		// nothing to edit, show the section as is
		h.SectionDetail(c)
		return
	}

	part, err := h.hierarchyService.UpdatePart(c.Request.Context(), sectionID, services.UpdatePartInput{
		PartID:       req.PartID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		AssigneeName: req.AssigneeName,
		AlbumLink:    req.AlbumLink,
		Status:       req.Status,
	})
	if err != nil {
		respondHierarchyError(c, err)
		return
	}

	addFlash(c, flashSuccess, msgPartUpdated)
	c.JSON(http.StatusOK, dto.PartUpdateResponse{
		Message: msgPartUpdated,
		Part:    dto.ToPartDTO(*part, h.hierarchyService.IsOverdue(part)),
	})
}

// parseIDParam reads the :id path parameter. Non-numeric ids are unknown
// resources and answer 404.
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "")
		return 0, false
	}
	return id, true
}

func respondHierarchyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrObjectNotFound),
		errors.Is(err, services.ErrSectionNotFound),
		errors.Is(err, services.ErrPartNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrPartNotInSection):
		apierrors.BadRequest(c, "", err.Error())
	default:
		_ = c.Error(err)
		apierrors.InternalError(c, "")
	}
}
