package migration

import (
	"context"
	"errors"

	coreport "github.com/amirhossein-jamali/cupcakes/internal/domain/port/core"
	"github.com/amirhossein-jamali/cupcakes/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"

	// BaseSchemaVersion is the first schema that shipped the cupcakes table
	BaseSchemaVersion = "1.0.0"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	tuner        *PerformanceTuner
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		tuner:        NewPerformanceTuner(db, logger),
	}
}

// MigrateAll brings the schema up to CurrentSchemaVersion
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.WithContext(ctx).AutoMigrate(&model.SchemaVersion{}); err != nil {
		m.logger.Error("Failed to create schema version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	if currentVersion != "" && !isKnownVersion(currentVersion) {
		m.logger.Warn("Database schema is newer than this build, leaving it untouched", map[string]any{
			"version":        currentVersion,
			"target_version": CurrentSchemaVersion,
		})
		return nil
	}

	m.logger.Info("Current database version", map[string]any{
		"version": currentVersion,
	})

	// Data fixes run before AutoMigrate tightens column constraints
	if err := m.runVersionedMigrations(ctx, currentVersion); err != nil {
		m.logger.Error("Failed to run versioned migrations", map[string]any{
			"error":           err.Error(),
			"current_version": currentVersion,
			"target_version":  CurrentSchemaVersion,
		})
		return err
	}

	if err := m.CreateSchema(ctx); err != nil {
		m.logger.Error("Failed to create schema", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.tuner.Apply(ctx)

	if err := m.setVersion(ctx, CurrentSchemaVersion, "Full schema migration"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// CreateSchema creates every table the service needs. It is idempotent.
func (m *MigrationManager) CreateSchema(ctx context.Context) error {
	m.logger.Info("Auto-migrating database models", nil)

	return m.db.WithContext(ctx).AutoMigrate(
		&model.SchemaVersion{},
		&model.Cupcake{},
	)
}

// DropSchema drops every table the service owns. It is idempotent.
func (m *MigrationManager) DropSchema(ctx context.Context) error {
	m.logger.Warn("Dropping database schema", nil)

	return m.db.WithContext(ctx).Migrator().DropTable(
		&model.Cupcake{},
		&model.SchemaVersion{},
	)
}

// GetCurrentVersion returns the last applied schema version, or "" on a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.SchemaVersion
	result := m.db.WithContext(ctx).Order("applied_at desc, id desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	schemaVersion := model.SchemaVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}

	return m.db.WithContext(ctx).Create(&schemaVersion).Error
}

// runVersionedMigrations runs the steps between currentVersion and CurrentSchemaVersion
func (m *MigrationManager) runVersionedMigrations(ctx context.Context, currentVersion string) error {
	m.logger.Info("Running versioned migrations", map[string]any{
		"from": currentVersion,
		"to":   CurrentSchemaVersion,
	})

	switch currentVersion {
	case "":
		// Tables created before versioning was introduced have the 1.0.0 shape
		if !m.db.WithContext(ctx).Migrator().HasTable(&model.Cupcake{}) {
			return nil
		}
		m.logger.Info("Found unversioned cupcakes table, treating it as the base schema", map[string]any{
			"version": BaseSchemaVersion,
		})
		return NewBackfillDefaultImage(m.db, m.logger).Run(ctx)
	case BaseSchemaVersion:
		return NewBackfillDefaultImage(m.db, m.logger).Run(ctx)
	}

	return nil
}

func isKnownVersion(version string) bool {
	switch version {
	case BaseSchemaVersion, CurrentSchemaVersion:
		return true
	}
	return false
}
