package models

import (
	"time"
)

// Visitor is one recorded page visit; the counter is COUNT(*) over this table.
type Visitor struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	IP        string    `gorm:"column:ip;type:varchar(45);not null;default:''" json:"ip"`
	UserAgent string    `gorm:"column:user_agent;type:varchar(255);not null;default:''" json:"user_agent"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Visitor) TableName() string {
	return "visitors"
}
