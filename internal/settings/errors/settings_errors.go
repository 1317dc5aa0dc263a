package settingserrors

import (
	"net/http"

	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/shared/apperror"
)

var (
	ErrSettingsNotConfigured = apperror.New(
		apperror.CodeServiceUnavailable,
		"organization settings have not been configured",
		http.StatusServiceUnavailable,
	)
)
