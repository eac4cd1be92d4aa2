package models

import (
	"time"
)

type Note struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	Data      string    `gorm:"column:data;type:varchar(10000);not null" json:"data"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Note) TableName() string {
	return "notes"
}
