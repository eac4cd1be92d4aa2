package service

import (
	"context"
	"fmt"

	"Atrium/dao"
	"Atrium/models"
	"Atrium/pkg/log"
	"Atrium/pkg/mail"
	"Atrium/pkg/snowflake"
	"Atrium/types"

	"go.uber.org/zap"
)

var _ IContactService = (*ContactService)(nil)

type IContactService interface {
	// Submit persists the message and then tries to email the owner.
	// The two failure domains are independent: a store failure is only
	// logged, and emailed reports whether the notification went out.
	Submit(ctx context.Context, req *types.ContactRequest) (emailed bool)
	ListMessages(ctx context.Context) ([]*models.ContactMessage, error)
}

type ContactService struct {
	ContactDAO *dao.ContactMessageDAO
	Notifier   mail.Notifier
}

func (s *ContactService) Submit(ctx context.Context, req *types.ContactRequest) bool {
	log.L.Info("contact form submission",
		zap.String("name", req.Name),
		zap.String("email", req.Email),
	)

	msg := &models.ContactMessage{
		ID:      snowflake.GenID(),
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := s.ContactDAO.Create(ctx, msg); err != nil {
		// the insert rolls back on its own; the notification still goes out
		log.L.Error("store contact message failed", zap.Error(err))
	}

	subject := fmt.Sprintf("New contact message from %s", req.Name)
	body := fmt.Sprintf("From: %s <%s>\n\n%s", req.Name, req.Email, req.Message)
	if err := s.Notifier.Notify(ctx, subject, body); err != nil {
		log.L.Error("email notification failed", zap.String("email", req.Email), zap.Error(err))
		return false
	}
	return true
}

func (s *ContactService) ListMessages(ctx context.Context) ([]*models.ContactMessage, error) {
	return s.ContactDAO.FindAll(ctx)
}
