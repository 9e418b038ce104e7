package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CarModel is the GORM-specific struct for the 'cars' table.
// Features and Images are PostgreSQL text[] columns; images is capped at 10 by a check constraint.
type CarModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Model        string         `gorm:"type:varchar(255);not null"`
	Price        float64        `gorm:"not null"`
	Year         int            `gorm:"not null"`
	Mileage      float64        `gorm:"not null;default:0"`
	FuelType     string         `gorm:"type:varchar(50);not null"`
	Transmission string         `gorm:"type:varchar(50);not null"`
	Description  string         `gorm:"type:text"`
	Features     pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Images       pq.StringArray `gorm:"type:text[];not null;default:'{}';check:chk_cars_images_max,cardinality(images) <= 10"`
	CreatedAt    time.Time      `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CarModel) TableName() string {
	return "cars"
}
