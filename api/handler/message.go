package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/brainboard/backend/api/transport"
	"github.com/brainboard/backend/internal/services"
	"github.com/brainboard/backend/pkg/httpcontext"
	messageUC "github.com/brainboard/backend/usecase/message"
)

type MessageHandler struct {
	baseHandler
	uc        *messageUC.UseCase
	assistant *services.Assistant
}

func NewMessageHandler(uc *messageUC.UseCase, assistant *services.Assistant, adapter *httpcontext.Adapter, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		assistant:   assistant,
	}
}

func (h *MessageHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	items, err := h.uc.List(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, items)
}

func (h *MessageHandler) Get(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	id, _ := ctx.UserValue("id").(string)
	m, err := h.uc.Get(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, m)
}

func (h *MessageHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.CreateMessageRequest
	if !h.bind(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	m, err := h.uc.Create(stdCtx, req.Sender, req.Message)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusCreated, m)
}

func (h *MessageHandler) Update(ctx *fasthttp.RequestCtx) {
	var req transport.UpdateMessageRequest
	if !h.bind(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	id, _ := ctx.UserValue("id").(string)
	m, err := h.uc.Update(stdCtx, id, messageUC.UpdateInput{
		Sender: req.Sender,
		Body:   req.Message,
		IsRead: req.IsRead,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, m)
}

func (h *MessageHandler) Delete(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	id, _ := ctx.UserValue("id").(string)
	if err := h.uc.Delete(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusNoContent, nil)
}

func (h *MessageHandler) MarkRead(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	id, _ := ctx.UserValue("id").(string)
	m, err := h.uc.MarkRead(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, m)
}

// TriggerReminder generates an assistant message on demand, still subject to
// the active-window and dedup rules.
func (h *MessageHandler) TriggerReminder(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	m, err := h.assistant.TriggerNow(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.TriggerResponse{
		Success:   true,
		Message:   "AI reminder generated successfully",
		AIMessage: m,
	})
}

func (h *MessageHandler) ReminderStatus(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	status, err := h.assistant.Status(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, status)
}
