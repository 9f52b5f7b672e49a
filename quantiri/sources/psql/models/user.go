package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name           *string    `json:"name,omitempty" gorm:"type:varchar(80)"`
	Email          string     `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	HashedPassword string     `json:"-" gorm:"type:varchar(255);not null"`
	EmailVerified  *time.Time `json:"emailVerified,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
