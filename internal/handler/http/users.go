package http

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mzhalilov/go-user-registry/internal/logger"
	"github.com/mzhalilov/go-user-registry/internal/store"
	"github.com/mzhalilov/go-user-registry/internal/utils"
	"github.com/mzhalilov/go-user-registry/models"
)

// userIDPattern accepts only all-digit path identifiers. Checked against the
// raw path segment before any parsing or store lookup.
var userIDPattern = regexp.MustCompile(`^\d+$`)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.List(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during user listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if len(users) == 0 {
		utils.WriteJSON(w, models.Response{Message: models.MessageUserNotFound}, http.StatusNotFound)
		return
	}

	profiles := make([]models.Profile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, user.Profile())
	}

	utils.WriteJSON(w, models.Response{
		Message: models.MessageSuccess,
		Data:    profiles,
	}, http.StatusOK)
}

func (h *Handler) getUserByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	rawID := chi.URLParam(r, "userID")
	if !userIDPattern.MatchString(rawID) {
		log.Debug().Str("userID", rawID).Msg("non-numeric user identifier")
		utils.WriteJSON(w, models.Response{
			Message: models.MessageValidationError,
			Detail:  map[string]string{"userId": "must be numeric"},
		}, http.StatusBadRequest)
		return
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		// all-digit but out of int64 range; no stored user can match
		utils.WriteJSON(w, models.Response{Message: models.MessageUserNotFound}, http.StatusNotFound)
		return
	}

	user, err := h.services.UserService.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			utils.WriteJSON(w, models.Response{Message: models.MessageUserNotFound}, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.Response{
		Message: models.MessageSuccess,
		Data:    user.Profile(),
	}, http.StatusOK)
}
