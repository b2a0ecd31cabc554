package status

import (
	"encoding/json"
	"net/http"

	"github.com/carson-networks/expense-server/internal/logging"
)

// Handler serves the liveness probe.
type Handler struct{}

func NewHandler() Handler {
	return Handler{}
}

func (h *Handler) Handle(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
