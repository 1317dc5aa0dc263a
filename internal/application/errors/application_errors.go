package applicationerrors

import (
	"net/http"

	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrDuplicateApplication = apperror.New(
		apperror.CodeConflict,
		"an application for this date already exists",
		http.StatusConflict,
	)
	ErrOutsideLotteryPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"level 1 and 2 applications can only be submitted during the lottery period",
		http.StatusBadRequest,
	)
	ErrBeforeLotteryPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"the lottery period for this date has not opened yet",
		http.StatusBadRequest,
	)
	ErrInsufficientPoints = apperror.New(
		apperror.CodeInvalidInput,
		"insufficient points for this application",
		http.StatusBadRequest,
	)
	ErrCapacityFull = apperror.New(
		apperror.CodeConflict,
		"the capacity for this date is already full",
		http.StatusConflict,
	)
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"application not found",
		http.StatusNotFound,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"you can only act on your own applications",
		http.StatusForbidden,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid application status transition",
		http.StatusBadRequest,
	)
	ErrStaleState = apperror.New(
		apperror.CodeConflict,
		"the application changed while processing, please retry",
		http.StatusConflict,
	)
)
