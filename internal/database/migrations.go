package database

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/folio-dev/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// AddIndexes adds the composite indexes the listing queries rely on.
// Single-column indexes come from the model tags.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model   interface{}
		name    string
		columns []string
	}{
		// category filter + last_updated sort on GET /api/projects
		{&models.Project{}, "idx_projects_category_last_updated", []string{"category", "last_updated"}},
		// experiences are always listed by display order
		{&models.Experience{}, "idx_experiences_display_order", []string{"display_order"}},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			slog.Debug("index already exists, skipping", "index", idx.name)
			continue
		}

		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(idx.model); err != nil {
			return fmt.Errorf("failed to parse model for index %s: %w", idx.name, err)
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, stmt.Schema.Table, strings.Join(idx.columns, ", "))
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		slog.Info("created index", "index", idx.name, "table", stmt.Schema.Table)
	}

	return nil
}
