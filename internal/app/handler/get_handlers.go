package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/recollect/recollect/internal/app/service"
	"github.com/recollect/recollect/internal/response"
	"github.com/recollect/recollect/internal/validation"
)

// defaultPageSize applies when the limit query parameter is absent.
const defaultPageSize = 50

type GetHandler struct {
	service service.BookmarkServiceIface
	logger  *zap.Logger
}

func NewGet(s service.BookmarkServiceIface, l *zap.Logger) *GetHandler {
	return &GetHandler{
		service: s,
		logger:  l,
	}
}

// ListURLs handles GET /api/urls. An out-of-range or non-numeric limit
// is a 400, never a silent clamp, and storage is not touched in that
// case.
func (h *GetHandler) ListURLs(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	query := req.URL.Query()

	limit := defaultPageSize
	if raw := query.Get("limit"); raw != "" {
		n, err := validation.BoundedNumber(raw, "limit", validation.NumberOptions{Min: 1, Max: 100, Integer: true})
		if err != nil {
			response.FromError(res, err)
			return
		}
		limit = n
	}

	result, err := h.service.ListBookmarks(ctx, limit, query.Get("lastKey"))
	if err != nil {
		h.logger.Error("cannot list URLs", zap.Error(err))
		response.FromError(res, err)
		return
	}

	response.JSON(res, http.StatusOK, result)
}

// PingDB reports storage health.
func (h *GetHandler) PingDB(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	if err := h.service.PingContext(ctx); err != nil {
		h.logger.Error("storage ping failed", zap.Error(err))
		response.InternalServerError(res, "Internal server error")
		return
	}

	res.WriteHeader(http.StatusOK)
}
