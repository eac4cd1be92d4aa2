package models

import (
	"time"
)

type ContactMessage struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(150);not null" json:"name"`
	Email     string    `gorm:"column:email;type:varchar(150);not null" json:"email"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
