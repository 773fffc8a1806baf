package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rvieira/portfolio-cms/auth"
	"github.com/rvieira/portfolio-cms/database"
	"github.com/rvieira/portfolio-cms/errs"
)

type accountHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	tokens    auth.TokenService
}

func newAccountHandler(userRepo *database.UserRepo, tokens auth.TokenService) accountHandler {
	logger := log.With().Str("handlerName", "accountHandler").Logger()

	return accountHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		tokens:    tokens,
	}
}

// LoginResult carries a signed session token
type LoginResult struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// login verifies credentials and issues a session token
// @Summary Log in
// @Tags Account
// @Accept json
// @Produce json
// @Success 200 {object} LoginResult "Signed session token"
// @Failure 401 {object} ErrorResponse "Unauthorized - Bad credentials"
// @Router /auth/login [post]
func (h accountHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}
		if payload.Email == "" || payload.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email/password"))
			return
		}

		user, err := h.userRepo.FindByEmail(payload.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		// Same response for unknown email and wrong password
		if user == nil || !auth.CheckPassword(user.Password, payload.Password) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		token, exp, err := h.tokens.Sign(user)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to sign session token")
			h.responder.WriteError(w, errs.NewInternalError("failed to issue session token"))
			return
		}

		h.responder.WriteJSON(w, LoginResult{Token: token, ExpiresAt: exp.Unix()})
	}
}

// updatePassword changes the authenticated user's password
// @Summary Update password
// @Tags Account
// @Accept json
// @Produce json
// @Success 200 {object} MutationResult "Password updated"
// @Failure 400 {object} ErrorResponse "Bad Request - Current password incorrect"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /account/password [post]
func (h accountHandler) updatePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		email, err := ctxUserEmail(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var payload struct {
			CurrentPassword string `json:"currentPassword"`
			NewPassword     string `json:"newPassword"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("update-password", err))
			return
		}
		if payload.CurrentPassword == "" || payload.NewPassword == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("currentPassword/newPassword"))
			return
		}

		user, err := h.userRepo.FindByEmail(email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("user not found"))
			return
		}

		if !auth.CheckPassword(user.Password, payload.CurrentPassword) {
			h.responder.WriteError(w, errs.NewBadRequestError("current password is incorrect"))
			return
		}

		hash, err := auth.HashPassword(payload.NewPassword)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to hash password"))
			return
		}

		if err := h.userRepo.UpdatePassword(email, hash); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update password for", "user", err))
			return
		}

		h.responder.WriteJSON(w, MutationResult{Success: true})
	}
}
