package notificationerrors

import (
	"net/http"

	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/shared/apperror"
)

var (
	ErrNotificationNotFound = apperror.New(
		apperror.CodeNotFound,
		"notification not found or already acknowledged",
		http.StatusNotFound,
	)
)
