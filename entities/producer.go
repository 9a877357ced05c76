package entities

import (
	"time"

	"gorm.io/gorm"
)

type Producer struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `json:"name"`
	Document  string    `gorm:"size:14;uniqueIndex" json:"document"` // digits only (CPF|CNPJ)
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Producer) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = newID()
	}
	return nil
}
