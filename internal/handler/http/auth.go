package http

import (
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-calorie-keeper/internal/app"
	"github.com/MKhiriev/go-calorie-keeper/internal/logger"
	"github.com/MKhiriev/go-calorie-keeper/internal/service"
	"github.com/MKhiriev/go-calorie-keeper/internal/store"
	"github.com/MKhiriev/go-calorie-keeper/internal/utils"
	"github.com/MKhiriev/go-calorie-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.UserCredentials
	if err := decodeJSON(r, &credentials); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteError(w, app.MsgRegisterInvalidCredentials, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			utils.WriteError(w, app.MsgRegisterUserAlreadyExists, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	log.Info().Int64("id", registeredUser.ID).Msg("user registered")
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

// login accepts either an OAuth2 password form (username, password) or a
// JSON body with email and password, and answers with a bearer token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials, err := readLoginCredentials(r)
	if err != nil {
		log.Err(err).Msg("invalid login request body")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusUnprocessableEntity)
			return
		case errors.Is(err, service.ErrWrongPassword) || errors.Is(err, service.ErrUserInactive):
			log.Err(err).Msg("wrong credentials/inactive user")
			utils.WriteError(w, app.MsgLoginBadCredentials, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   models.TokenTypeBearer,
	}, http.StatusOK)
}

func readLoginCredentials(r *http.Request) (models.UserCredentials, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodySize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return models.UserCredentials{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
		}
		return models.UserCredentials{
			Email:    r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		}, nil
	default:
		var credentials models.UserCredentials
		if err := decodeJSON(r, &credentials); err != nil {
			return models.UserCredentials{}, err
		}
		return credentials, nil
	}
}
