package model

// Cupcake represents the database model for cupcakes
type Cupcake struct {
	ID     uint64  `gorm:"primaryKey;autoIncrement"`
	Flavor string  `gorm:"type:text;not null"`
	Size   string  `gorm:"type:text;not null"`
	Rating float64 `gorm:"not null"`
	Image  string  `gorm:"type:text;not null;default:'https://tinyurl.com/demo-cupcake'"`
}

// TableName specifies the table name for Cupcake
func (Cupcake) TableName() string {
	return "cupcakes"
}
