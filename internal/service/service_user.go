package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// generatedPasswordBits is the entropy of passwords issued by
// ForgotPassword.
const generatedPasswordBits = 60

// userService is the concrete implementation of UserService.
//
// Registration and password reset send mail from inside the database
// transaction: a failed delivery rolls the write back. A delivery that
// succeeds right before a failed commit is not undone.
type userService struct {
	userRepository store.UserRepository
	transactor     store.Transactor
	notifier       adapter.Notifier
	tokens         TokenService
	validator      validators.Validator

	activationWindow time.Duration
	bcryptCost       int

	newID func() string
	now   func() time.Time

	logger *logger.Logger
}

// NewUserService constructs a UserService.
func NewUserService(
	userRepository store.UserRepository,
	transactor store.Transactor,
	notifier adapter.Notifier,
	tokens TokenService,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepository:   userRepository,
		transactor:       transactor,
		notifier:         notifier,
		tokens:           tokens,
		validator:        validator,
		activationWindow: cfg.ActivationWindow,
		bcryptCost:       cfg.BcryptCost,
		newID:            utils.NewUUIDGenerator().Generate,
		now:              time.Now,
		logger:           logger,
	}
}

// Register creates a pending account and mails its activation link.
//
// An address that is already active, or pending inside its activation
// window, is refused. A pending registration whose window has closed is
// replaced by the new one in the same transaction.
func (s *userService) Register(ctx context.Context, input map[string]any) (models.Registration, error) {
	log := logger.FromContext(ctx)

	result := s.validator.Validate(ctx, registerRules, input)
	if result.String("password") != result.String("confirmPassword") {
		result.AddMessage("Password does not match")
	}
	if !result.Valid() {
		return models.Registration{}, validators.NewError(result.Messages, nil)
	}

	var req models.RegisterRequest
	if err := validators.Decode(result.Data, &req); err != nil {
		return models.Registration{}, err
	}

	now := s.now()
	existing, err := s.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
	case err != nil:
		return models.Registration{}, fmt.Errorf("error looking up user by email: %w", err)
	case existing.IsActive:
		return models.Registration{}, ErrEmailAlreadyActivated
	case existing.IsPending(now):
		return models.Registration{}, ErrEmailAlreadyRegistered
	}
	supersede := err == nil

	hash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return models.Registration{}, err
	}

	expire := now.Add(s.activationWindow)
	user := models.User{
		UserID:     s.newID(),
		Name:       req.Name,
		Email:      req.Email,
		Password:   hash,
		ExpireTime: &expire,
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if supersede {
			log.Info().Str("user_id", existing.UserID).Msg("replacing expired registration")
			if err := s.userRepository.DeleteUser(ctx, existing.UserID); err != nil && !errors.Is(err, store.ErrNoUserWasFound) {
				return err
			}
		}

		created, err := s.userRepository.CreateUser(ctx, user)
		if err != nil {
			if errors.Is(err, store.ErrEmailAlreadyExists) {
				return ErrEmailAlreadyRegistered
			}
			return err
		}
		user = created

		mail := models.ActivationMail{To: user.Email, Name: user.Name, UserID: user.UserID, ExpireTime: expire}
		if err := s.notifier.SendActivation(ctx, mail); err != nil {
			return fmt.Errorf("%w: %w", ErrSendEmailFailed, err)
		}
		return nil
	})
	if err != nil {
		return models.Registration{}, err
	}

	log.Info().Str("user_id", user.UserID).Msg("user registered")

	return models.Registration{
		UserID:     user.UserID,
		Name:       user.Name,
		Email:      user.Email,
		ExpireTime: expire,
	}, nil
}

// Activate turns a pending registration into an active account. Unknown,
// malformed, expired and already active ids are all reported as
// ErrUserNotFoundOrExpired.
func (s *userService) Activate(ctx context.Context, userID string) (models.ActivatedUser, error) {
	if !utils.IsValidUUID(userID) {
		return models.ActivatedUser{}, ErrUserNotFoundOrExpired
	}

	user, err := s.userRepository.ActivateUser(ctx, userID, s.now())
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.ActivatedUser{}, ErrUserNotFoundOrExpired
		}
		return models.ActivatedUser{}, fmt.Errorf("error activating user: %w", err)
	}

	logger.FromContext(ctx).Info().Str("user_id", user.UserID).Msg("user activated")

	return models.ActivatedUser{Name: user.Name, Email: user.Email}, nil
}

// Login checks the credentials of an active account and issues a token
// pair. An unknown address and a wrong password are indistinguishable.
func (s *userService) Login(ctx context.Context, input map[string]any) (models.Session, error) {
	result := s.validator.Validate(ctx, loginRules, input)
	if !result.Valid() {
		return models.Session{}, validators.NewError(result.Messages, nil)
	}

	var req models.LoginRequest
	if err := validators.Decode(result.Data, &req); err != nil {
		return models.Session{}, err
	}

	user, err := s.userRepository.FindActiveUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Session{}, ErrInvalidCredentials
		}
		return models.Session{}, fmt.Errorf("error looking up user by email: %w", err)
	}

	if !utils.ComparePassword(user.Password, req.Password) {
		logger.FromContext(ctx).Debug().Str("user_id", user.UserID).Msg("wrong password")
		return models.Session{}, ErrInvalidCredentials
	}

	return s.tokens.IssuePair(ctx, user.Identity())
}

// Refresh exchanges a valid refresh token of an active account for a new
// token pair.
func (s *userService) Refresh(ctx context.Context, refreshToken string) (models.Session, error) {
	token, err := s.tokens.ParseRefreshToken(ctx, refreshToken)
	if err != nil {
		return models.Session{}, err
	}

	user, err := s.userRepository.FindUserByID(ctx, token.Claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Session{}, ErrUserNotFound
		}
		return models.Session{}, fmt.Errorf("error looking up user by id: %w", err)
	}
	if !user.IsActive {
		return models.Session{}, ErrUserNotFound
	}

	return s.tokens.IssuePair(ctx, user.Identity())
}

// ListUsers returns every account, active or pending.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

// UpdateUser changes the fields present in input. A new password must be
// confirmed and is stored hashed.
func (s *userService) UpdateUser(ctx context.Context, userID string, input map[string]any) (models.User, error) {
	result := s.validator.Validate(ctx, updateRules(input), input)
	if result.Has("password") && result.String("password") != result.String("confirmPassword") {
		result.AddMessage("Password not match")
	}
	if !result.Valid() {
		return models.User{}, validators.NewError(result.Messages, nil)
	}

	var update models.UserUpdate
	if err := validators.Decode(result.Data, &update); err != nil {
		return models.User{}, err
	}
	if update.IsEmpty() {
		return models.User{}, ErrNothingToUpdate
	}
	if !utils.IsValidUUID(userID) {
		return models.User{}, ErrUserNotFound
	}

	if update.Password != nil {
		hash, err := utils.HashPassword(*update.Password, s.bcryptCost)
		if err != nil {
			return models.User{}, err
		}
		update.Password = &hash
		update.ConfirmPassword = nil
	}

	user, err := s.userRepository.UpdateUser(ctx, userID, update)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return models.User{}, ErrUserNotFound
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.User{}, ErrEmailAlreadyUsed
	case err != nil:
		return models.User{}, fmt.Errorf("error updating user: %w", err)
	}

	logger.FromContext(ctx).Info().Str("user_id", userID).Msg("user updated")
	return user, nil
}

// DeleteUser removes the account together with its contacts.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if !utils.IsValidUUID(userID) {
		return ErrUserNotFound
	}

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("error deleting user: %w", err)
	}

	logger.FromContext(ctx).Info().Str("user_id", userID).Msg("user deleted")
	return nil
}

// ForgotPassword replaces the password of the account with a generated one
// and mails it. When the mail cannot be sent the old password stays.
func (s *userService) ForgotPassword(ctx context.Context, input map[string]any) error {
	result := s.validator.Validate(ctx, forgotPasswordRules, input)
	if !result.Valid() {
		return validators.NewError(result.Messages, nil)
	}

	var req models.ForgotPasswordRequest
	if err := validators.Decode(result.Data, &req); err != nil {
		return err
	}

	user, err := s.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("error looking up user by email: %w", err)
	}

	password, err := utils.GenerateRandomPassword(generatedPasswordBits)
	if err != nil {
		return err
	}
	hash, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.userRepository.UpdatePassword(ctx, user.UserID, hash); err != nil {
			return err
		}

		mail := models.PasswordMail{To: user.Email, Name: user.Name, Password: password}
		if err := s.notifier.SendPassword(ctx, mail); err != nil {
			return fmt.Errorf("%w: %w", ErrEmailNotSent, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("user_id", user.UserID).Msg("password reset")
	return nil
}
