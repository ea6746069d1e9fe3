package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"photoapp/internal/service"
)

// TestHandler обслуживает /test, /test/info и /test/counts.
// Неизвестный параметр после /test/ - ошибка клиента.
func (h *Handlers) TestHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	param := mux.Vars(r)["p1"]
	if param == "" {
		param = "info"
	}

	switch param {
	case "info":
		info, err := h.InfoService.GetSchemaInfo(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("ошибка при получении SchemaInfo")
			if errors.Is(err, service.ErrMissingSchemaInfo) {
				WriteError(w, "Missing SchemaInfo", http.StatusInternalServerError)
				return
			}
			WriteError(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		WriteSuccess(w, info, http.StatusOK)

	case "counts":
		counts, err := h.InfoService.GetCollectionCounts(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("ошибка при подсчёте коллекций")
			WriteError(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		WriteSuccess(w, counts, http.StatusOK)

	default:
		WriteError(w, "Bad param "+param, http.StatusBadRequest)
	}
}
