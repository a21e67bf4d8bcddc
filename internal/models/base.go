package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model carries the string UUID primary key shared by every record.
type Model struct {
	ID string `json:"id" gorm:"type:uuid;primaryKey"`
}

func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
