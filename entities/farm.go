package entities

import (
	"time"

	"gorm.io/gorm"
)

type Farm struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	Name           string    `json:"name"`
	City           string    `json:"city"`
	State          string    `gorm:"index" json:"state"`
	TotalArea      float64   `json:"totalArea"`
	ArableArea     float64   `json:"arableArea"`
	VegetationArea float64   `json:"vegetationArea"`
	ProducerID     string    `gorm:"size:36;index" json:"producerId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (f *Farm) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = newID()
	}
	return nil
}
