package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/brainboard/backend/internal/infrastructure/jsonstore"
	"github.com/brainboard/backend/pkg/httpcontext"
)

type HealthHandler struct {
	baseHandler
	store   *jsonstore.Store
	started time.Time
}

func NewHealthHandler(store *jsonstore.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       store,
		started:     time.Now(),
	}
}

func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	payload := map[string]interface{}{
		"status":    "OK",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(h.started).Seconds(),
		"storage":   h.store.Stats(),
	}
	h.respondJSON(ctx, http.StatusOK, payload)
}
