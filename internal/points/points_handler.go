package points

import (
	"net/http"

	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/settings"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/shared/apperror"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service     Service
	settingsSvc settings.Service
	logger      *zap.Logger
}

func NewHandler(service Service, settingsSvc settings.Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("points.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("points.handler")
	}
	return &Handler{service: service, settingsSvc: settingsSvc, logger: l}
}

func (h *Handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()
	staffID := c.GetInt64("staff_id")

	snap, err := h.settingsSvc.Snapshot(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	summary, err := h.service.SummaryFor(ctx, staffID, snap)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, mapToResponse(summary, snap.CurrentFiscalYear), nil)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("points request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
