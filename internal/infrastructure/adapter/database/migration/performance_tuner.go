package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/cupcakes/internal/domain/port/core"
	"gorm.io/gorm"
)

// PerformanceTuner applies PostgreSQL storage settings to the cupcakes table
type PerformanceTuner struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPerformanceTuner creates a new performance tuner
func NewPerformanceTuner(db *gorm.DB, logger coreport.Logger) *PerformanceTuner {
	return &PerformanceTuner{
		db:     db,
		logger: logger,
	}
}

// Apply sets the table storage parameters. Failures are logged, not returned.
func (t *PerformanceTuner) Apply(ctx context.Context) {
	t.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Updates rewrite the whole row, free space on the page keeps them HOT
	if err := t.db.WithContext(ctx).Exec(`ALTER TABLE cupcakes SET (fillfactor = 90)`).Error; err != nil {
		t.logger.Warn("Failed to set fillfactor for cupcakes table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := t.db.WithContext(ctx).Exec(`ALTER TABLE cupcakes SET (autovacuum_vacuum_scale_factor = 0.05)`).Error; err != nil {
		t.logger.Warn("Failed to set autovacuum scale factor for cupcakes table", map[string]any{
			"error": err.Error(),
		})
	}
}
