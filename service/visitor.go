package service

import (
	"context"

	"Atrium/dao"
	"Atrium/models"
	"Atrium/pkg/log"
	"Atrium/pkg/snowflake"

	"go.uber.org/zap"
)

var _ IVisitorService = (*VisitorService)(nil)

type IVisitorService interface {
	// Record is best-effort; a failed insert only logs.
	Record(ctx context.Context, ip, userAgent string)
	Count(ctx context.Context) (int64, error)
}

type VisitorService struct {
	VisitorDAO *dao.VisitorDAO
}

func (s *VisitorService) Record(ctx context.Context, ip, userAgent string) {
	visitor := &models.Visitor{
		ID:        snowflake.GenID(),
		IP:        ip,
		UserAgent: userAgent,
	}
	if err := s.VisitorDAO.Create(ctx, visitor); err != nil {
		log.L.Warn("record visitor failed", zap.Error(err))
	}
}

func (s *VisitorService) Count(ctx context.Context) (int64, error) {
	return s.VisitorDAO.Count(ctx)
}
