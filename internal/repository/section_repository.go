package repository

import (
	"context"

	"github.com/yukikurage/project-tracker/internal/database"
	"github.com/yukikurage/project-tracker/internal/models"
	"gorm.io/gorm"
)

// GormSectionRepository is a GORM implementation of SectionRepository
type GormSectionRepository struct {
	db *gorm.DB
}

// NewSectionRepository creates a new SectionRepository
func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &GormSectionRepository{db: db}
}

// FindByID finds a section by ID
func (r *GormSectionRepository) FindByID(ctx context.Context, id uint64) (*models.ProjectSection, error) {
	var section models.ProjectSection
	if err := r.db.WithContext(ctx).First(&section, id).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// ListByObject lists the sections of an object in display order
func (r *GormSectionRepository) ListByObject(ctx context.Context, objectID uint64) ([]models.ProjectSection, error) {
	var sections []models.ProjectSection
	if err := r.db.WithContext(ctx).
		Where("object_id = ?", objectID).
		Scopes(database.InOrder).
		Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}
