package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"photoapp/internal/repository"
	"photoapp/internal/service"
)

func (h *Handlers) GetUserList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	users, err := h.UserService.GetUserList(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("ошибка при получении списка пользователей")
		// пустая коллекция пользователей - тоже серверная ошибка по контракту
		if errors.Is(err, service.ErrNoUsers) {
			WriteError(w, "Missing User", http.StatusInternalServerError)
			return
		}
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, users, http.StatusOK)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := mux.Vars(r)["id"]

	// некорректный идентификатор отсекаем до похода в базу
	if err := h.Validate.Var(userID, "required,uuid4"); err != nil {
		WriteError(w, "Bad user id "+userID, http.StatusBadRequest)
		return
	}

	user, err := h.UserService.GetUserDetail(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Not found", http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Str("user_id", userID).Msg("ошибка при получении пользователя")
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, user, http.StatusOK)
}
