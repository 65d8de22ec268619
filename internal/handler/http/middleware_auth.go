package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/app"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the bearer token from the "Authorization" header, verifies it
// as an access token and stores the identity it carries in the request
// context under [utils.IdentityCtxKey]. The request logger gains a
// "user_id" field.
//
// Requests are rejected with 401 Unauthorized when:
//   - the header is absent or has no token part ("Token not found");
//   - the token fails signature, issuer, type or expiry checks
//     ("Invalid token");
//   - the token verifies but its claims are unusable
//     ("Token verification failed").
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := bearerToken(r)
		if err != nil {
			log.Debug().Err(err).Msg("no access token")
			unauthorized(w, r, app.ErrTokenNotFound)
			return
		}

		ctx := r.Context()
		token, err := h.services.TokenService.ParseAccessToken(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenVerificationFailed) {
				log.Warn().Err(err).Msg("token claims rejected")
				unauthorized(w, r, app.ErrTokenVerificationFailed)
				return
			}
			log.Debug().Err(err).Msg("invalid access token")
			unauthorized(w, r, app.ErrInvalidToken)
			return
		}

		ctx = utils.WithIdentity(ctx, token.Claims.Identity)
		ctx = logger.WithUserID(ctx, token.Claims.Identity.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token of an "Authorization: Bearer <token>"
// header.
func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}
	return utils.ParseBearerToken(authHeader)
}

func unauthorized(w http.ResponseWriter, r *http.Request, reason string) {
	respondErrors(w, r, http.StatusUnauthorized, app.MsgAuthenticationFailed, reason)
}
