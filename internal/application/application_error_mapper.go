package application

import (
	"errors"
	"strings"

	applicationerrors "github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/application/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return applicationerrors.ErrApplicationNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_applications_live" {
			return applicationerrors.ErrDuplicateApplication
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_applications_live") {
		return applicationerrors.ErrDuplicateApplication
	}

	return err
}
