package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"photoapp/internal/service"
)

// GetPhotosOfUser отдаёт фотографии пользователя с комментариями и их
// авторами. Любая ошибка сборки отменяет весь ответ целиком.
func (h *Handlers) GetPhotosOfUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := mux.Vars(r)["id"]

	if err := h.Validate.Var(userID, "required,uuid4"); err != nil {
		WriteError(w, "Bad user id "+userID, http.StatusBadRequest)
		return
	}

	photos, err := h.PhotoService.GetPhotosOfUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoPhotos) {
			WriteError(w, "Not found", http.StatusBadRequest)
			return
		}
		// сюда попадают и ошибки запросов, и битые ссылки на авторов
		log.Error().Err(err).Str("user_id", userID).Msg("ошибка при сборке фотографий пользователя")
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, photos, http.StatusOK)
}
