package dto

import (
	"github.com/yukikurage/project-tracker/internal/models"
	"github.com/yukikurage/project-tracker/internal/services"
	"github.com/yukikurage/project-tracker/internal/utils"
)

// ObjectDTO represents a project object in API responses
type ObjectDTO struct {
	ID        uint64 `json:"id"`
	Code      string `json:"code"`
	ShortName string `json:"short_name"`
	FullName  string `json:"full_name"`
}

// SectionDTO represents a project section in API responses
type SectionDTO struct {
	ID         uint64 `json:"id"`
	ObjectID   uint64 `json:"object_id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	OrderIndex int    `json:"order_index"`
}

// PartDTO represents a project part; dates are YYYY-MM-DD
type PartDTO struct {
	ID           uint64            `json:"id"`
	SectionID    uint64            `json:"section_id"`
	Name         string            `json:"name"`
	OrderIndex   int               `json:"order_index"`
	StartDate    *string           `json:"start_date"`
	EndDate      *string           `json:"end_date"`
	Status       models.PartStatus `json:"status"`
	StatusLabel  string            `json:"status_label"`
	AssigneeName *string           `json:"assignee_name"`
	AlbumLink    *string           `json:"album_link"`
	IsOverdue    bool              `json:"is_overdue"`
}

// StatusChoiceDTO is one selectable part status
type StatusChoiceDTO struct {
	Value models.PartStatus `json:"value"`
	Label string            `json:"label"`
}

// DashboardResponse is the content of the dashboard screen
type DashboardResponse struct {
	UserName     string      `json:"user_name"`
	IsAdmin      bool        `json:"is_admin"`
	Objects      []ObjectDTO `json:"objects"`
	TotalTasks   int         `json:"total_tasks"`
	OverdueTasks int         `json:"overdue_tasks"`
	DoneTasks    int         `json:"done_tasks"`
	Flashes      []FlashDTO  `json:"flashes"`
}

// ObjectDetailResponse is the content of the object screen
type ObjectDetailResponse struct {
	Object   ObjectDTO    `json:"object"`
	Sections []SectionDTO `json:"sections"`
}

// SectionDetailResponse is the content of the section screen
type SectionDetailResponse struct {
	Section       SectionDTO        `json:"section"`
	Object        ObjectDTO         `json:"object"`
	Parts         []PartDTO         `json:"parts"`
	StatusChoices []StatusChoiceDTO `json:"status_choices"`
	Flashes       []FlashDTO        `json:"flashes"`
}

// PartUpdateResponse confirms a part mutation
type PartUpdateResponse struct {
	Message string  `json:"message"`
	Part    PartDTO `json:"part"`
}

// ToObjectDTO converts a ProjectObject model
func ToObjectDTO(obj models.ProjectObject) ObjectDTO {
	return ObjectDTO{
		ID:        obj.ID,
		Code:      obj.Code,
		ShortName: obj.ShortName,
		FullName:  obj.FullName,
	}
}

// ToObjectDTOs converts a list of objects
func ToObjectDTOs(objects []models.ProjectObject) []ObjectDTO {
	out := make([]ObjectDTO, len(objects))
	for i, obj := range objects {
		out[i] = ToObjectDTO(obj)
	}
	return out
}

// ToSectionDTO converts a ProjectSection model
func ToSectionDTO(section models.ProjectSection) SectionDTO {
	return SectionDTO{
		ID:         section.ID,
		ObjectID:   section.ObjectID,
		Code:       section.Code,
		Name:       section.Name,
		OrderIndex: section.OrderIndex,
	}
}

// ToSectionDTOs converts a list of sections
func ToSectionDTOs(sections []models.ProjectSection) []SectionDTO {
	out := make([]SectionDTO, len(sections))
	for i, s := range sections {
		out[i] = ToSectionDTO(s)
	}
	return out
}

// ToPartDTO converts a ProjectPart model with its overdue flag
func ToPartDTO(part models.ProjectPart, isOverdue bool) PartDTO {
	return PartDTO{
		ID:           part.ID,
		SectionID:    part.SectionID,
		Name:         part.Name,
		OrderIndex:   part.OrderIndex,
		StartDate:    utils.FormatDate(part.StartDate),
		EndDate:      utils.FormatDate(part.EndDate),
		Status:       part.Status,
		StatusLabel:  part.Status.Label(),
		AssigneeName: part.AssigneeName,
		AlbumLink:    part.AlbumLink,
		IsOverdue:    isOverdue,
	}
}

// StatusChoices lists every part status with its label
func StatusChoices() []StatusChoiceDTO {
	out := make([]StatusChoiceDTO, len(models.PartStatuses))
	for i, s := range models.PartStatuses {
		out[i] = StatusChoiceDTO{Value: s, Label: s.Label()}
	}
	return out
}

// ToSectionDetailResponse converts a section detail
func ToSectionDetailResponse(detail *services.SectionDetail, flashes []FlashDTO) SectionDetailResponse {
	parts := make([]PartDTO, len(detail.Parts))
	for i, p := range detail.Parts {
		parts[i] = ToPartDTO(p.ProjectPart, p.IsOverdue)
	}

	return SectionDetailResponse{
		Section:       ToSectionDTO(detail.Section),
		Object:        ToObjectDTO(detail.Object),
		Parts:         parts,
		StatusChoices: StatusChoices(),
		Flashes:       flashes,
	}
}
