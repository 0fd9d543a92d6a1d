package handler

import (
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/brainboard/backend/api/transport"
	"github.com/brainboard/backend/pkg/httpcontext"
	searchUC "github.com/brainboard/backend/usecase/search"
)

type SearchHandler struct {
	baseHandler
	uc *searchUC.UseCase
}

func NewSearchHandler(uc *searchUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

func (h *SearchHandler) Query(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	args := ctx.QueryArgs()
	results, err := h.uc.Search(stdCtx,
		string(args.Peek("q")),
		string(args.Peek("category")),
		string(args.Peek("type")),
	)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, results)
}

func (h *SearchHandler) AddItem(ctx *fasthttp.RequestCtx) {
	var req transport.CreateSearchItemRequest
	if !h.bind(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	item, err := h.uc.AddItem(stdCtx, req.Title, req.Category, req.Type)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusCreated, item)
}

func (h *SearchHandler) DeleteItem(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	raw, _ := ctx.UserValue("id").(string)
	id, err := strconv.Atoi(raw)
	if err != nil {
		h.respondJSON(ctx, http.StatusNotFound, transport.ErrorResponse{Error: "Search item not found"})
		return
	}
	if err := h.uc.DeleteItem(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusNoContent, nil)
}
