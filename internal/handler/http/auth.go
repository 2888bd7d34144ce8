package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mzhalilov/go-user-registry/internal/logger"
	"github.com/mzhalilov/go-user-registry/internal/service"
	"github.com/mzhalilov/go-user-registry/internal/utils"
	"github.com/mzhalilov/go-user-registry/internal/validators"
	"github.com/mzhalilov/go-user-registry/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, fieldErrors, err := h.services.UserService.Register(ctx, user)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during user registration")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if len(fieldErrors) > 0 {
		log.Debug().Any("field_errors", fieldErrors).Msg("registration validation failed")
		utils.WriteJSON(w, models.Response{
			Message: models.MessageValidationError,
			Detail:  validators.Detail(fieldErrors),
		}, http.StatusBadRequest)
		return
	}

	log.Debug().Int64("id", registeredUser.ID).Msg("user successfully registered")

	utils.WriteJSON(w, models.Response{Message: models.MessageSuccess}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, fieldErrors, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAuthFailed):
			log.Debug().Str("email", req.Email).Msg("login failed")
			utils.WriteJSON(w, models.Response{Message: models.MessageLoginFailed}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if len(fieldErrors) > 0 {
		log.Debug().Any("field_errors", fieldErrors).Msg("login validation failed")
		utils.WriteJSON(w, models.Response{
			Message: models.MessageValidationError,
			Detail:  validators.Detail(fieldErrors),
		}, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.Response{
		Message: models.MessageSuccess,
		Data:    models.TokenData{Token: token.SignedString},
	}, http.StatusOK)
}
