package application

import (
	"context"
	"time"
)

// PriorityAssigner decides the initial rank of a new application within the
// competing set for its date. It is pluggable: the ranking policy can change
// (e.g. to a random draw) without touching the lifecycle code.
type PriorityAssigner interface {
	AssignInitialPriority(ctx context.Context, repo Repository, date time.Time) (int, error)
}

// DenseRankAssigner appends the new application at the end of the current
// per-date ranking: highest live priority + 1, starting at 1.
type DenseRankAssigner struct{}

func NewDenseRankAssigner() *DenseRankAssigner {
	return &DenseRankAssigner{}
}

func (DenseRankAssigner) AssignInitialPriority(ctx context.Context, repo Repository, date time.Time) (int, error) {
	max, err := repo.MaxPriorityForDate(ctx, date)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
