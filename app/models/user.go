package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID          string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Username    string `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Email       string `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Password    string `gorm:"size:255;not null" json:"-"`
	FullName    string `gorm:"size:255" json:"full_name"`
	PhoneNumber string `gorm:"size:20" json:"phone_number"`
	IsVerified  bool   `gorm:"default:false" json:"is_verified"`
	IsStaff     bool   `gorm:"default:false" json:"-"`

	ResetCodeHash    *string    `gorm:"size:255" json:"-"`
	ResetCodeExpires *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
