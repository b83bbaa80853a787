package seed

import (
	"context"
	"fmt"

	"github.com/yukikurage/project-tracker/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const batchSize = 100

// Seeder populates the object/section/part hierarchy once.
//
// Each table is guarded by an emptiness check: a table that already holds a
// row is skipped entirely, so deleting some rows later is never backfilled.
type Seeder struct {
	db      *gorm.DB
	catalog *Catalog
	log     *zap.Logger
}

// NewSeeder creates a new Seeder.
func NewSeeder(db *gorm.DB, catalog *Catalog, log *zap.Logger) *Seeder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Seeder{db: db, catalog: catalog, log: log}
}

// Run seeds objects, then sections, then parts.
func (s *Seeder) Run(ctx context.Context) error {
	steps := []struct {
		table string
		model interface{}
		fn    func(tx *gorm.DB) (int, error)
	}{
		{"project_objects", &models.ProjectObject{}, s.seedObjects},
		{"project_sections", &models.ProjectSection{}, s.seedSections},
		{"project_parts", &models.ProjectPart{}, s.seedParts},
	}

	for _, step := range steps {
		var count int64
		if err := s.db.WithContext(ctx).Model(step.model).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count %s: %w", step.table, err)
		}
		if count > 0 {
			s.log.Sugar().Debugw("seed skipped, table not empty", "table", step.table, "rows", count)
			continue
		}

		var inserted int
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			n, err := step.fn(tx)
			inserted = n
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", step.table, err)
		}
		s.log.Sugar().Infow("seeded table", "table", step.table, "rows", inserted)
	}

	return nil
}

func (s *Seeder) seedObjects(tx *gorm.DB) (int, error) {
	objects := make([]models.ProjectObject, 0, len(s.catalog.Objects))
	for _, item := range s.catalog.Objects {
		objects = append(objects, models.ProjectObject{
			Code:      item.Code,
			ShortName: item.ShortName,
			FullName:  item.FullName,
		})
	}
	if len(objects) == 0 {
		return 0, nil
	}
	return len(objects), tx.CreateInBatches(&objects, batchSize).Error
}

func (s *Seeder) seedSections(tx *gorm.DB) (int, error) {
	var objectIDs []uint64
	if err := tx.Model(&models.ProjectObject{}).Order("id ASC").Pluck("id", &objectIDs).Error; err != nil {
		return 0, err
	}
	if len(objectIDs) == 0 {
		return 0, nil
	}

	sections := make([]models.ProjectSection, 0, len(objectIDs)*len(s.catalog.Sections))
	for _, objectID := range objectIDs {
		for i, item := range s.catalog.Sections {
			sections = append(sections, models.ProjectSection{
				ObjectID:   objectID,
				Code:       item.Code,
				Name:       item.Name,
				OrderIndex: i + 1,
			})
		}
	}
	if len(sections) == 0 {
		return 0, nil
	}
	return len(sections), tx.CreateInBatches(&sections, batchSize).Error
}

func (s *Seeder) seedParts(tx *gorm.DB) (int, error) {
	var sectionIDs []uint64
	if err := tx.Model(&models.ProjectSection{}).Order("id ASC").Pluck("id", &sectionIDs).Error; err != nil {
		return 0, err
	}
	if len(sectionIDs) == 0 {
		return 0, nil
	}

	parts := make([]models.ProjectPart, 0, len(sectionIDs)*len(s.catalog.Parts))
	for _, sectionID := range sectionIDs {
		for i, name := range s.catalog.Parts {
			parts = append(parts, models.ProjectPart{
				SectionID:  sectionID,
				Name:       name,
				OrderIndex: i + 1,
				Status:     models.PartStatusPending,
			})
		}
	}
	if len(parts) == 0 {
		return 0, nil
	}
	return len(parts), tx.CreateInBatches(&parts, batchSize).Error
}
