package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
	"golang.org/x/sync/errgroup"
)

type contactService struct {
	contactRepository store.ContactRepository
	transactor        store.Transactor
	validator         validators.Validator

	logger *logger.Logger
}

// NewContactService constructs a ContactService.
func NewContactService(
	contactRepository store.ContactRepository,
	transactor store.Transactor,
	validator validators.Validator,
	logger *logger.Logger,
) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		transactor:        transactor,
		validator:         validator,
		logger:            logger,
	}
}

// CreateContact validates the contact and all its addresses before touching
// the database. Messages are reported contact first, then addresses in
// submission order. On success the contact and every address are written
// in one transaction.
func (s *contactService) CreateContact(ctx context.Context, userID string, input map[string]any) (models.Contact, error) {
	log := logger.FromContext(ctx)

	contact, messages := s.validateContact(ctx, userID, input)
	if len(messages) > 0 {
		log.Debug().Strs("messages", messages).Msg("contact did not pass validation")
		return models.Contact{}, validators.NewError(messages, contact)
	}

	var created models.Contact
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.contactRepository.CreateContact(ctx, contact)
		if err != nil {
			return err
		}

		created.Addresses, err = s.contactRepository.CreateAddresses(ctx, created.ContactID, contact.Addresses)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrContactNotSaved) || errors.Is(err, store.ErrAddressNotSaved) {
			return models.Contact{}, fmt.Errorf("%w: %w", ErrContactNotSaved, err)
		}
		return models.Contact{}, fmt.Errorf("error creating contact: %w", err)
	}

	log.Info().
		Str("user_id", userID).
		Int64("contact_id", created.ContactID).
		Int("addresses", len(created.Addresses)).
		Msg("contact created")

	return created, nil
}

// validateContact returns the cleaned contact, owned by userID, together
// with every validation message. The contact is returned even when
// messages are present.
func (s *contactService) validateContact(ctx context.Context, userID string, input map[string]any) (models.Contact, []string) {
	var messages []string

	items, err := addressItems(input)
	if err != nil {
		messages = append(messages, err.Error())
	}

	contactResult := s.validator.Validate(ctx, contactRules, input)
	messages = append(contactResult.Messages, messages...)

	results := make([]validators.Result, len(items))
	var g errgroup.Group
	for i, item := range items {
		g.Go(func() error {
			fields, ok := item.(map[string]any)
			if !ok {
				results[i] = validators.Result{
					Data:     map[string]any{},
					Messages: []string{fmt.Sprintf("%s[%d] must be an object", addressesField, i)},
				}
				return nil
			}
			results[i] = s.validator.Validate(ctx, addressRules, fields)
			return nil
		})
	}
	_ = g.Wait()

	var contact models.Contact
	if err := validators.Decode(contactResult.Data, &contact); err != nil {
		messages = append(messages, err.Error())
	}
	contact.UserID = userID
	contact.Addresses = make([]models.Address, len(results))

	for i, result := range results {
		messages = append(messages, result.Messages...)
		if err := validators.Decode(result.Data, &contact.Addresses[i]); err != nil {
			messages = append(messages, err.Error())
		}
	}

	return contact, messages
}

// addressItems extracts the raw address list. A missing or null list means
// no addresses. Lists longer than maxAddresses are rejected.
func addressItems(input map[string]any) ([]any, error) {
	raw, ok := input[addressesField]
	if !ok || raw == nil {
		return nil, nil
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be a list", addressesField)
	}
	if len(items) > maxAddresses {
		return nil, fmt.Errorf("%s must not contain more than %d items", addressesField, maxAddresses)
	}
	return items, nil
}
