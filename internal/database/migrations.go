package database

import (
	"fmt"

	"github.com/yukikurage/project-tracker/internal/models"
	"gorm.io/gorm"
)

// EnsureIndexes adds the ordering indexes used by the hierarchy listings.
func EnsureIndexes(db *gorm.DB) error {
	indexes := []struct {
		model   interface{}
		name    string
		columns string
	}{
		{&models.ProjectSection{}, "idx_project_sections_object_order", "object_id, order_index"},
		{&models.ProjectPart{}, "idx_project_parts_section_order", "section_id, order_index"},
		{&models.ProjectPart{}, "idx_project_parts_status", "status"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			continue
		}

		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(idx.model); err != nil {
			return fmt.Errorf("failed to parse model for index %s: %w", idx.name, err)
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, stmt.Schema.Table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
