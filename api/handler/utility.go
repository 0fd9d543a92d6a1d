package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/brainboard/backend/api/transport"
	"github.com/brainboard/backend/pkg/httpcontext"
	messageUC "github.com/brainboard/backend/usecase/message"
	notificationUC "github.com/brainboard/backend/usecase/notification"
	statsUC "github.com/brainboard/backend/usecase/stats"
)

// UtilityHandler serves the dashboard-wide endpoints: aggregate stats and
// mark-all-read.
type UtilityHandler struct {
	baseHandler
	stats         *statsUC.UseCase
	notifications *notificationUC.UseCase
	messages      *messageUC.UseCase
}

func NewUtilityHandler(
	stats *statsUC.UseCase,
	notifications *notificationUC.UseCase,
	messages *messageUC.UseCase,
	adapter *httpcontext.Adapter,
	logger *zap.Logger,
) *UtilityHandler {
	return &UtilityHandler{
		baseHandler:   newBaseHandler(adapter, logger),
		stats:         stats,
		notifications: notifications,
		messages:      messages,
	}
}

func (h *UtilityHandler) Stats(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	s, err := h.stats.Collect(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, s)
}

func (h *UtilityHandler) MarkAllRead(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.notifications.MarkAllRead(stdCtx); err != nil {
		h.respondError(ctx, err)
		return
	}
	if err := h.messages.MarkAllRead(stdCtx); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NoticeResponse{
		Message: "All notifications and messages marked as read",
	})
}
