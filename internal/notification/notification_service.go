package notification

import (
	"context"

	"go.uber.org/zap"
)

type Service interface {
	ListPending(ctx context.Context, staffID int64) ([]NotificationResponse, error)
	Acknowledge(ctx context.Context, id, staffID int64) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) ListPending(ctx context.Context, staffID int64) ([]NotificationResponse, error) {
	items, err := s.repo.ListPendingByStaff(ctx, staffID)
	if err != nil {
		s.logger.Error("list pending notifications failed",
			zap.Int64("staff_id", staffID),
			zap.Error(err),
		)
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) Acknowledge(ctx context.Context, id, staffID int64) error {
	if err := s.repo.AcknowledgeGuarded(ctx, id, staffID); err != nil {
		return err
	}
	s.logger.Debug("notification acknowledged",
		zap.Int64("notification_id", id),
		zap.Int64("staff_id", staffID),
	)
	return nil
}
