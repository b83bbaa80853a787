package repository

import (
	"context"

	"github.com/yukikurage/project-tracker/internal/database"
	"github.com/yukikurage/project-tracker/internal/models"
	"gorm.io/gorm"
)

// GormObjectRepository is a GORM implementation of ObjectRepository
type GormObjectRepository struct {
	db *gorm.DB
}

// NewObjectRepository creates a new ObjectRepository
func NewObjectRepository(db *gorm.DB) ObjectRepository {
	return &GormObjectRepository{db: db}
}

// FindByID finds an object by ID
func (r *GormObjectRepository) FindByID(ctx context.Context, id uint64) (*models.ProjectObject, error) {
	var obj models.ProjectObject
	if err := r.db.WithContext(ctx).First(&obj, id).Error; err != nil {
		return nil, err
	}
	return &obj, nil
}

// List returns every object ordered by id
func (r *GormObjectRepository) List(ctx context.Context) ([]models.ProjectObject, error) {
	var objects []models.ProjectObject
	if err := r.db.WithContext(ctx).Scopes(database.ByID).Find(&objects).Error; err != nil {
		return nil, err
	}
	return objects, nil
}

// GetObjectOfSection finds the object that owns a section
func (r *GormObjectRepository) GetObjectOfSection(ctx context.Context, sectionID uint64) (*models.ProjectObject, error) {
	var obj models.ProjectObject
	err := r.db.WithContext(ctx).
		Select("project_objects.*").
		Joins("JOIN project_sections ON project_sections.object_id = project_objects.id").
		Where("project_sections.id = ?", sectionID).
		First(&obj).Error
	if err != nil {
		return nil, err
	}
	return &obj, nil
}
