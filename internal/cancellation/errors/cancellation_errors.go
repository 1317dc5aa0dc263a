package cancellationerrors

import (
	"net/http"

	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/shared/apperror"
)

var (
	ErrNotCancellable = apperror.New(
		apperror.CodeInvalidState,
		"only applications awaiting or past the lottery can be cancelled by their owner",
		http.StatusConflict,
	)
	ErrCancellationAlreadyPending = apperror.New(
		apperror.CodeConflict,
		"a cancellation request for this application is already awaiting review",
		http.StatusConflict,
	)
	ErrCancellationNotFound = apperror.New(
		apperror.CodeNotFound,
		"cancellation request not found",
		http.StatusNotFound,
	)
	ErrCancellationResolved = apperror.New(
		apperror.CodeInvalidState,
		"cancellation request has already been resolved",
		http.StatusConflict,
	)
)
