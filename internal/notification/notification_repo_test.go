package notification_test

import (
	"context"
	"testing"

	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/notification"
	notificationerrors "github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/notification/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupNotificationRepository(t *testing.T) (notification.Repository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)

	return notification.NewRepository(gormDB), mock, func() { db.Close() }
}

func TestNotificationRepository_AcknowledgeGuarded(t *testing.T) {
	ctx := context.Background()

	t.Run("success first acknowledge", func(t *testing.T) {
		repo, mock, closeDB := setupNotificationRepository(t)
		defer closeDB()

		mock.ExpectExec(`UPDATE "notifications" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.AcknowledgeGuarded(ctx, 5, 101))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success re-acknowledge is a no-op", func(t *testing.T) {
		repo, mock, closeDB := setupNotificationRepository(t)
		defer closeDB()

		mock.ExpectExec(`UPDATE "notifications" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications"`).
			WithArgs(int64(5), int64(101)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		assert.NoError(t, repo.AcknowledgeGuarded(ctx, 5, 101))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative someone else's entry", func(t *testing.T) {
		repo, mock, closeDB := setupNotificationRepository(t)
		defer closeDB()

		mock.ExpectExec(`UPDATE "notifications" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		err := repo.AcknowledgeGuarded(ctx, 5, 202)
		assert.ErrorIs(t, err, notificationerrors.ErrNotificationNotFound)
	})
}
