package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrintOrderFile struct {
	ID           string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	PrintOrderID string    `gorm:"size:36;index;not null" json:"print_order_id"`
	Path         string    `gorm:"size:255;not null" json:"path"`
	OriginalName string    `gorm:"size:255;not null" json:"original_name"`
	CreatedAt    time.Time `json:"uploaded_at"`
}

func (f *PrintOrderFile) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return
}
