package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/project-tracker/internal/models"
	"github.com/yukikurage/project-tracker/internal/repository"
	"github.com/yukikurage/project-tracker/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrObjectNotFound   = errors.New("object not found")
	ErrSectionNotFound  = errors.New("section not found")
	ErrPartNotFound     = errors.New("part not found")
	ErrPartNotInSection = errors.New("part does not belong to this section")
)

// HierarchyService serves the object/section/part tree.
type HierarchyService struct {
	objectRepo  repository.ObjectRepository
	sectionRepo repository.SectionRepository
	partRepo    repository.PartRepository
	now         func() time.Time
}

// NewHierarchyService creates a new HierarchyService.
func NewHierarchyService(objectRepo repository.ObjectRepository, sectionRepo repository.SectionRepository, partRepo repository.PartRepository) *HierarchyService {
	return &HierarchyService{
		objectRepo:  objectRepo,
		sectionRepo: sectionRepo,
		partRepo:    partRepo,
		now:         time.Now,
	}
}

// WithClock replaces the clock used for overdue checks.
func (s *HierarchyService) WithClock(now func() time.Time) *HierarchyService {
	s.now = now
	return s
}

// Dashboard is the landing screen content. The task counters are not
// aggregated and always report zero.
type Dashboard struct {
	Objects      []models.ProjectObject
	TotalTasks   int
	OverdueTasks int
	DoneTasks    int
}

// PartView is a part with its read-time overdue flag.
type PartView struct {
	models.ProjectPart
	IsOverdue bool
}

// SectionDetail is a section with its owning object and its parts.
type SectionDetail struct {
	Section models.ProjectSection
	Object  models.ProjectObject
	Parts   []PartView
}

// UpdatePartInput carries a part mutation. A nil field was not submitted and
// is left untouched.
type UpdatePartInput struct {
	PartID       uint64
	StartDate    *string
	EndDate      *string
	AssigneeName *string
	AlbumLink    *string
	Status       *string
}

// GetDashboard lists all objects for the landing screen.
func (s *HierarchyService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	objects, err := s.ListObjects(ctx)
	if err != nil {
		return nil, err
	}
	return &Dashboard{Objects: objects}, nil
}

// ListObjects returns all objects ordered by id.
func (s *HierarchyService) ListObjects(ctx context.Context) ([]models.ProjectObject, error) {
	objects, err := s.objectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}
	return objects, nil
}

// GetObjectDetail returns an object and its sections in display order.
func (s *HierarchyService) GetObjectDetail(ctx context.Context, objectID uint64) (*models.ProjectObject, []models.ProjectSection, error) {
	obj, err := s.objectRepo.FindByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrObjectNotFound
		}
		return nil, nil, fmt.Errorf("failed to find object: %w", err)
	}

	sections, err := s.sectionRepo.ListByObject(ctx, obj.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sections: %w", err)
	}

	return obj, sections, nil
}

// GetSectionDetail returns a section, its object and its parts with the
// overdue flag computed against the current date.
func (s *HierarchyService) GetSectionDetail(ctx context.Context, sectionID uint64) (*SectionDetail, error) {
	section, err := s.findSection(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	obj, err := s.objectRepo.GetObjectOfSection(ctx, section.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find object of section: %w", err)
	}

	parts, err := s.partRepo.ListBySection(ctx, section.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}

	now := s.now()
	views := make([]PartView, len(parts))
	for i := range parts {
		views[i] = PartView{
			ProjectPart: parts[i],
			IsOverdue:   parts[i].IsOverdue(now),
		}
	}

	return &SectionDetail{
		Section: *section,
		Object:  *obj,
		Parts:   views,
	}, nil
}

// UpdatePart applies the submitted fields to a part of the given section.
//
// Dates that are empty or not YYYY-MM-DD are stored as unset, empty assignee
// and album values are stored as unset, and an unknown status is ignored.
func (s *HierarchyService) UpdatePart(ctx context.Context, sectionID uint64, input UpdatePartInput) (*models.ProjectPart, error) {
	section, err := s.findSection(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	part, err := s.partRepo.FindByID(ctx, input.PartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartNotFound
		}
		return nil, fmt.Errorf("failed to find part: %w", err)
	}

	if part.SectionID != section.ID {
		return nil, ErrPartNotInSection
	}

	if input.StartDate != nil {
		part.StartDate = utils.ParseDate(*input.StartDate)
	}
	if input.EndDate != nil {
		part.EndDate = utils.ParseDate(*input.EndDate)
	}
	if input.AssigneeName != nil {
		part.AssigneeName = utils.NullableString(*input.AssigneeName)
	}
	if input.AlbumLink != nil {
		part.AlbumLink = utils.NullableString(*input.AlbumLink)
	}
	if input.Status != nil {
		if status := models.PartStatus(*input.Status); status.Valid() {
			part.Status = status
		}
	}

	if err := s.partRepo.Update(ctx, part); err != nil {
		return nil, fmt.Errorf("failed to update part: %w", err)
	}

	return part, nil
}

// IsOverdue evaluates the overdue flag of a part against the service clock.
func (s *HierarchyService) IsOverdue(part *models.ProjectPart) bool {
	return part.IsOverdue(s.now())
}

func (s *HierarchyService) findSection(ctx context.Context, sectionID uint64) (*models.ProjectSection, error) {
	section, err := s.sectionRepo.FindByID(ctx, sectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("failed to find section: %w", err)
	}
	return section, nil
}
