package models

import (
	"time"

	"Atrium/types"
)

type User struct {
	ID           int64      `gorm:"column:id;primary_key" json:"id"`
	Email        string     `gorm:"column:email;type:varchar(150);not null;uniqueIndex:uk_email" json:"email"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(150);not null" json:"-"`
	FirstName    string     `gorm:"column:first_name;type:varchar(150);not null;default:''" json:"first_name"`
	Role         types.Role `gorm:"column:role;not null;default:1" json:"role"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
