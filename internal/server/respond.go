package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ukaji3/excelviz-go/internal/session"
	"github.com/ukaji3/excelviz-go/pkg/excelviz"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/logging"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/render"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps pipeline and store errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, excelviz.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, excelviz.ErrUnsupportedType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, excelviz.ErrEmptyWorkbook),
		errors.Is(err, excelviz.ErrDecode),
		errors.Is(err, render.ErrNothingToRender):
		return http.StatusUnprocessableEntity
	case errors.Is(err, excelviz.ErrRead),
		errors.Is(err, excelviz.ErrUnknownColumn),
		errors.Is(err, excelviz.ErrUnsupportedKind):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNotFound),
		errors.Is(err, session.ErrChartNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Logger().Error("encode response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
