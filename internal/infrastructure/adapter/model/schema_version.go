package model

import (
	"time"
)

// SchemaVersion records each schema version applied to the database
type SchemaVersion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"type:varchar(20);not null;index"`
	AppliedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Details   string    `gorm:"type:text"`
}

// TableName specifies the table name for SchemaVersion
func (SchemaVersion) TableName() string {
	return "schema_versions"
}
