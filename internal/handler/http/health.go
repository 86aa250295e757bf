package http

import (
	"net/http"

	"github.com/avdeyev/go-signup/internal/logger"
	"github.com/avdeyev/go-signup/internal/utils"
)

// health reports liveness of the process and reachability of the database.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.db.Ping(r.Context()); err != nil {
		log.Err(err).Msg("database is unreachable")
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
