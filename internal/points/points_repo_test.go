package points_test

import (
	"context"
	"testing"
	"time"

	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/points"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupPointsRepository(t *testing.T) (points.Repository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)

	return points.NewRepository(gormDB), mock, func() { db.Close() }
}

func TestPointsRepository_CountConsumingByLevel(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2027, 3, 31, 0, 0, 0, 0, time.UTC)

	t.Run("success pending cancellation still consumes", func(t *testing.T) {
		repo, mock, closeDB := setupPointsRepository(t)
		defer closeDB()

		mock.ExpectQuery(`SELECT level, COUNT\(\*\) AS count FROM "applications"`).
			WithArgs(
				int64(101), from, to,
				"before_lottery",
				"after_lottery",
				"pending_approval",
				"pending_cancellation",
				"confirmed",
				"cancelled_after_lottery",
			).
			WillReturnRows(sqlmock.NewRows([]string{"level", "count"}).AddRow(1, 1))

		counts, err := repo.CountConsumingByLevel(ctx, 101, from, to)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), counts.Level1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success maps per-level rows", func(t *testing.T) {
		repo, mock, closeDB := setupPointsRepository(t)
		defer closeDB()

		mock.ExpectQuery(`SELECT level, COUNT\(\*\) AS count FROM "applications"`).
			WillReturnRows(sqlmock.NewRows([]string{"level", "count"}).
				AddRow(1, 2).
				AddRow(2, 1).
				AddRow(3, 4))

		counts, err := repo.CountConsumingByLevel(ctx, 101, from, to)

		assert.NoError(t, err)
		assert.Equal(t, int64(2), counts.Level1)
		assert.Equal(t, int64(1), counts.Level2)
		assert.Equal(t, int64(4), counts.Level3)
	})
}
