package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avdeyev/go-signup/internal/logger"
	"github.com/avdeyev/go-signup/internal/store"
	"github.com/avdeyev/go-signup/internal/utils"
	"github.com/avdeyev/go-signup/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	email, err := models.NewEmail(request.Email)
	if err != nil {
		writeValidationError(w, log, err)
		return
	}

	password, err := models.NewPassword(request.Password)
	if err != nil {
		writeValidationError(w, log, err)
		return
	}

	user := models.NewUser(email, password)
	if err = h.services.Register.Execute(ctx, user); err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email is already taken")
			http.Error(w, "email is already taken", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", user.ID()).Str("email", email.String()).Msg("user created")

	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write([]byte("User created"))
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email, password, ok := r.BasicAuth()
	if !ok {
		log.Warn().Msg("missing or malformed `Authorization` header")
		utils.WriteJSON(w, &models.ValidationError{Prop: "authorization", Reason: ErrMalformedAuthHeader.Error()}, http.StatusUnprocessableEntity)
		return
	}

	var request models.ActivateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.Auth.AuthenticateInactive(ctx, email, password)
	if err != nil {
		log.Err(err).Msg("activation was rejected")
		http.Error(w, "activation was rejected", statusFromError(err))
		return
	}

	if err = h.services.Activate.Execute(ctx, foundUser.ID, request.Code); err != nil {
		log.Err(err).Msg("error redeeming activation code")
		http.Error(w, "error redeeming activation code", statusFromError(err))
		return
	}

	log.Debug().Int64("id", foundUser.ID).Str("email", foundUser.Email).Msg("user activated")

	utils.WriteJSON(w, foundUser.ID, http.StatusOK)
}

// writeValidationError renders a domain validation failure as the JSON body
// of a 422 response, e.g. {"prop":"email","reason":"invalid email format"}.
func writeValidationError(w http.ResponseWriter, log *logger.Logger, err error) {
	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		log.Err(err).Msg("unexpected validation failure")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Warn().Str("prop", validationErr.Prop).Str("reason", validationErr.Reason).Msg("validation failed")
	utils.WriteJSON(w, validationErr, http.StatusUnprocessableEntity)
}
