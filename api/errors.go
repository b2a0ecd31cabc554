package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/apperror"
)

type errorBody struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
	Stack   string            `json:"stack,omitempty"`
}

type notFoundBody struct {
	Error string `json:"error"`
	Path  string `json:"path"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError is the single translator for handler errors. Each tagged kind
// maps to a fixed status and body; untagged errors become a generic 500.
func (r *Rest) WriteError(w http.ResponseWriter, req *http.Request, err error) {
	statusCode := http.StatusInternalServerError
	body := errorBody{Error: "Internal server error"}

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperror.KindValidation:
			statusCode = http.StatusBadRequest
			body.Error = appErr.Message
			body.Details = appErr.Details
		case apperror.KindConflict:
			statusCode = http.StatusConflict
			body.Error = appErr.Message
		case apperror.KindMalformed:
			statusCode = http.StatusBadRequest
			body.Error = appErr.Message
		default:
			if appErr.Status != 0 {
				statusCode = appErr.Status
			}
			if appErr.Message != "" {
				body.Error = appErr.Message
			}
		}
	}

	if appErr != nil && appErr.Kind == apperror.KindValidation {
		// Validation failures never log above warning.
		r.Logger.WithFields(logrus.Fields{
			"method":  req.Method,
			"path":    req.URL.Path,
			"details": appErr.Details,
		}).Warn("Request validation failed")
	} else {
		r.Logger.WithError(err).
			WithField("stack", fmt.Sprintf("%+v", err)).
			Error("Request error")
	}

	if r.DevMode {
		body.Stack = fmt.Sprintf("%+v", err)
	}

	writeJSON(w, statusCode, body)
}
