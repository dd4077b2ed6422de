package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
	"github.com/SergeyBogomolovv/restaurant-pos/pkg/utils"
)

func statusOf(err error) int {
	switch entities.KindOf(err) {
	case entities.ErrNotFound:
		return http.StatusNotFound
	case entities.ErrInvalidTransition, entities.ErrConflict:
		return http.StatusConflict
	case entities.ErrValidationFailed:
		return http.StatusUnprocessableEntity
	case entities.ErrUnauthorized:
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	code := entities.CodeOf(err)
	if status == http.StatusInternalServerError {
		// детали ошибок хранилища наружу не отдаём
		h.logger.ErrorContext(r.Context(), "request failed", slog.Any("error", err), slog.String("path", r.URL.Path))
		if !errors.Is(err, entities.ErrPersistenceFailure) {
			code = "internal"
		}
	}
	utils.WriteError(w, code, h.messages.Message(r, code), status)
}

func (h *HTTPHandler) writeBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	utils.WriteValidationError(w, h.messages.Message(r, "request.invalid"), err)
}
