package exchangeerrors

import (
	"net/http"

	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/shared/apperror"
)

var (
	ErrExchangeNotFound = apperror.New(
		apperror.CodeNotFound,
		"exchange request not found",
		http.StatusNotFound,
	)
	ErrSameStaff = apperror.New(
		apperror.CodeInvalidInput,
		"cannot exchange priority with your own application",
		http.StatusBadRequest,
	)
	ErrDateMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"both applications must be for the same vacation date",
		http.StatusBadRequest,
	)
	ErrNotExchangeable = apperror.New(
		apperror.CodeInvalidState,
		"both applications must be past the lottery and still hold a priority",
		http.StatusConflict,
	)
	ErrPairAlreadyOpen = apperror.New(
		apperror.CodeConflict,
		"an exchange request between these applications is already in progress",
		http.StatusConflict,
	)
	ErrNotTarget = apperror.New(
		apperror.CodeForbidden,
		"only the targeted staff member may respond to this request",
		http.StatusForbidden,
	)
	ErrTargetAlreadyResponded = apperror.New(
		apperror.CodeInvalidState,
		"the target has already responded to this request",
		http.StatusConflict,
	)
	ErrNotAwaitingAdmin = apperror.New(
		apperror.CodeInvalidState,
		"the request is not awaiting administrator review",
		http.StatusConflict,
	)
	ErrSwapConflict = apperror.New(
		apperror.CodeConflict,
		"an application changed while the swap was being applied; nothing was exchanged",
		http.StatusConflict,
	)
)
