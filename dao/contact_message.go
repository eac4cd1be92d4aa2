package dao

import (
	"gorm.io/gorm"

	"Atrium/models"
)

type ContactMessageDAO struct {
	Repo[models.ContactMessage]
}

func NewContactMessageDAO(db *gorm.DB) *ContactMessageDAO {
	return &ContactMessageDAO{Repo: NewRepo[models.ContactMessage](db)}
}
