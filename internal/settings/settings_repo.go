package settings

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Get(ctx context.Context) (*Settings, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context) (*Settings, error) {
	var s Settings
	err := r.db.WithContext(ctx).
		Order("id").
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}
