package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// tokenService is the concrete implementation of TokenService.
// Access and refresh tokens are signed with different keys, so a token of
// one kind never verifies as the other.
type tokenService struct {
	accessSignKey  string
	refreshSignKey string
	issuer         string

	accessDuration  time.Duration
	refreshDuration time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the auth configuration.
func NewTokenService(cfg config.Auth, logger *logger.Logger) TokenService {
	return &tokenService{
		accessSignKey:   cfg.AccessTokenSignKey,
		refreshSignKey:  cfg.RefreshTokenSignKey,
		issuer:          cfg.TokenIssuer,
		accessDuration:  cfg.AccessTokenDuration,
		refreshDuration: cfg.RefreshTokenDuration,
		logger:          logger,
	}
}

// IssuePair signs a fresh access and refresh token for identity.
func (s *tokenService) IssuePair(ctx context.Context, identity models.Identity) (models.Session, error) {
	log := logger.FromContext(ctx)

	access, err := utils.GenerateJWTToken(identity, models.AccessToken, s.issuer, s.accessDuration, s.accessSignKey)
	if err != nil {
		log.Err(err).Str("func", "*tokenService.IssuePair").Str("user_id", identity.UserID).Msg("error generating access token")
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refresh, err := utils.GenerateJWTToken(identity, models.RefreshToken, s.issuer, s.refreshDuration, s.refreshSignKey)
	if err != nil {
		log.Err(err).Str("func", "*tokenService.IssuePair").Str("user_id", identity.UserID).Msg("error generating refresh token")
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Session{
		Identity:     identity,
		AccessToken:  access.String(),
		RefreshToken: refresh.String(),
	}, nil
}

// ParseAccessToken verifies an access token. Signature, issuer, expiry and
// type failures yield ErrTokenIsExpiredOrInvalid; a verified token without
// a usable identity yields ErrTokenVerificationFailed.
func (s *tokenService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.accessSignKey, s.issuer, models.AccessToken)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("access token rejected")
		if errors.Is(err, utils.ErrTokenClaims) {
			return models.Token{}, ErrTokenVerificationFailed
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ParseRefreshToken verifies a refresh token. Every failure yields
// ErrInvalidRefreshToken.
func (s *tokenService) ParseRefreshToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.refreshSignKey, s.issuer, models.RefreshToken)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("refresh token rejected")
		return models.Token{}, ErrInvalidRefreshToken
	}

	return token, nil
}
