package repository

import (
	"context"

	"github.com/yukikurage/project-tracker/internal/database"
	"github.com/yukikurage/project-tracker/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPartRepository is a GORM implementation of PartRepository
type GormPartRepository struct {
	db *gorm.DB
}

// NewPartRepository creates a new PartRepository
func NewPartRepository(db *gorm.DB) PartRepository {
	return &GormPartRepository{db: db}
}

// FindByID finds a part by ID
func (r *GormPartRepository) FindByID(ctx context.Context, id uint64) (*models.ProjectPart, error) {
	var part models.ProjectPart
	if err := r.db.WithContext(ctx).First(&part, id).Error; err != nil {
		return nil, err
	}
	return &part, nil
}

// ListBySection lists the parts of a section in display order
func (r *GormPartRepository) ListBySection(ctx context.Context, sectionID uint64) ([]models.ProjectPart, error) {
	var parts []models.ProjectPart
	if err := r.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Scopes(database.InOrder).
		Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}

// Update saves the whole part record
func (r *GormPartRepository) Update(ctx context.Context, part *models.ProjectPart) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(part).Error
}
