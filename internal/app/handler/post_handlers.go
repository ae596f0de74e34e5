package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/recollect/recollect/internal/app/service"
	"github.com/recollect/recollect/internal/models"
	"github.com/recollect/recollect/internal/response"
)

type PostHandler struct {
	service service.BookmarkServiceIface
	logger  *zap.Logger
}

func NewPost(s service.BookmarkServiceIface, l *zap.Logger) *PostHandler {
	return &PostHandler{
		service: s,
		logger:  l,
	}
}

// SaveURL handles POST /api/urls. Identity and the save timestamp are
// assigned server-side; anything the client sends for them is ignored.
func (h *PostHandler) SaveURL(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	var request models.SaveURLRequest

	if err := decodeJSONBody(res, req, &request); err != nil {
		var mr *malformedRequest
		if errors.As(err, &mr) {
			response.BadRequest(res, mr.msg)
			return
		}

		h.logger.Error("cannot decode request body", zap.Error(err))
		response.InternalServerError(res, "Internal server error")
		return
	}

	record, err := h.service.CreateBookmark(ctx, service.SaveInput{
		URL:        request.URL,
		Title:      request.Title,
		FaviconURL: request.FaviconURL,
	})
	if err != nil {
		h.logger.Error("cannot save URL", zap.Error(err))
		response.FromError(res, err)
		return
	}

	response.JSON(res, http.StatusCreated, models.SaveURLResponse{
		ID:         record.ID,
		URL:        record.Original,
		Title:      record.Title,
		FaviconURL: record.FaviconURL,
		SavedAt:    record.SavedAt,
	})
}
