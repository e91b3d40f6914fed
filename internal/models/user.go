package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User owns every other record in the system.
type User struct {
	ID             uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Username       string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	HashedPassword string    `gorm:"not null" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
