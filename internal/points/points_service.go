package points

import (
	"context"

	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/settings"

	"go.uber.org/zap"
)

type Service interface {
	SummaryFor(ctx context.Context, staffID int64, snap settings.Snapshot) (Summary, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("points.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("points.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) SummaryFor(ctx context.Context, staffID int64, snap settings.Snapshot) (Summary, error) {
	from, to := FiscalYearRange(snap.CurrentFiscalYear)

	counts, err := s.repo.CountConsumingByLevel(ctx, staffID, from, to)
	if err != nil {
		s.logger.Error("count consuming applications failed",
			zap.Int64("staff_id", staffID),
			zap.Error(err),
		)
		return Summary{}, err
	}

	return Consumed(counts, snap), nil
}
