package repository

import (
	"context"

	"github.com/yukikurage/project-tracker/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Register creates a user, promoting it to an approved admin when the
	// user table is empty. Count and insert run in one transaction.
	Register(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByEmail finds a user by exact (already normalised) email
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// List returns all users ordered by id
	List(ctx context.Context) ([]models.User, error)

	// Update persists every field of the user
	Update(ctx context.Context, user *models.User) error

	// Delete permanently removes a user
	Delete(ctx context.Context, id uint64) error
}

// ObjectRepository defines read access to project objects
type ObjectRepository interface {
	FindByID(ctx context.Context, id uint64) (*models.ProjectObject, error)
	List(ctx context.Context) ([]models.ProjectObject, error)

	// GetObjectOfSection returns the object owning the given section
	GetObjectOfSection(ctx context.Context, sectionID uint64) (*models.ProjectObject, error)
}

// SectionRepository defines read access to project sections
type SectionRepository interface {
	FindByID(ctx context.Context, id uint64) (*models.ProjectSection, error)

	// ListByObject returns the sections of an object ordered by order_index
	ListByObject(ctx context.Context, objectID uint64) ([]models.ProjectSection, error)
}

// PartRepository defines data access to project parts
type PartRepository interface {
	FindByID(ctx context.Context, id uint64) (*models.ProjectPart, error)

	// ListBySection returns the parts of a section ordered by order_index
	ListBySection(ctx context.Context, sectionID uint64) ([]models.ProjectPart, error)

	// Update persists every field of the part
	Update(ctx context.Context, part *models.ProjectPart) error
}
