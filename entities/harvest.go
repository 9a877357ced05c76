package entities

import (
	"time"

	"gorm.io/gorm"
)

type Harvest struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Year      int       `json:"year"`
	FarmID    string    `gorm:"size:36;index" json:"farmId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (h *Harvest) BeforeCreate(*gorm.DB) error {
	if h.ID == "" {
		h.ID = newID()
	}
	return nil
}
