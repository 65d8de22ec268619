package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/app"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	input, err := decodeJSON(w, r)
	if err != nil {
		badRequest(w, r, err)
		return
	}

	registration, err := h.services.UserService.Register(r.Context(), input)
	if err != nil {
		h.fail(w, r, opRegister, err)
		return
	}

	respond(w, r, http.StatusCreated, app.MsgUserCreated, registration)
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.Activate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, opActivate, err)
		return
	}

	respond(w, r, http.StatusOK, app.MsgUserActivated, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	input, err := decodeJSON(w, r)
	if err != nil {
		badRequest(w, r, err)
		return
	}

	session, err := h.services.UserService.Login(r.Context(), input)
	if err != nil {
		h.fail(w, r, opLogin, err)
		return
	}

	respond(w, r, http.StatusOK, app.MsgLoginSuccess, session)
}

// refresh exchanges the refresh token from the Authorization header for a
// new token pair.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := bearerToken(r)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("no refresh token")
		respondErrors(w, r, http.StatusBadRequest, app.MsgRefreshFailed, app.ErrRefreshTokenNotFound)
		return
	}

	session, err := h.services.UserService.Refresh(r.Context(), refreshToken)
	if err != nil {
		// a refresh for a vanished account is a bad request, not a missing resource
		if errors.Is(err, service.ErrUserNotFound) {
			respondErrors(w, r, http.StatusBadRequest, app.MsgRefreshFailed, app.ErrUserNotFound)
			return
		}
		h.fail(w, r, opRefresh, err)
		return
	}

	respond(w, r, http.StatusOK, app.MsgRefreshSuccess, session)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		h.fail(w, r, opListUsers, err)
		return
	}

	respond(w, r, http.StatusOK, app.MsgUsersRetrieved, users)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	input, err := decodeJSON(w, r)
	if err != nil {
		badRequest(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		h.fail(w, r, opUpdateUser, err)
		return
	}

	respond(w, r, http.StatusOK, app.MsgUserUpdated, user)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if err := h.services.UserService.DeleteUser(r.Context(), userID); err != nil {
		h.fail(w, r, opDeleteUser, err)
		return
	}

	respond(w, r, http.StatusOK, app.MsgUserDeleted, nil)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	input, err := decodeJSON(w, r)
	if err != nil {
		badRequest(w, r, err)
		return
	}

	if err := h.services.UserService.ForgotPassword(r.Context(), input); err != nil {
		h.fail(w, r, opForgotPassword, err)
		return
	}

	respond(w, r, http.StatusOK, app.MsgForgotPasswordSuccess, nil)
}
