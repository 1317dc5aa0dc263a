package settings

import (
	"context"
	"errors"

	settingserrors "github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/settings/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("settings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Snapshot(ctx context.Context) (Snapshot, error) {
	row, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Snapshot{}, settingserrors.ErrSettingsNotConfigured
		}
		s.logger.Error("load settings failed", zap.Error(err))
		return Snapshot{}, err
	}
	return NewSnapshot(*row), nil
}
