package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/vinovest/sqlx"
)

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository].
type contactRepository struct {
	*DB
	logger *logger.Logger
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateContact inserts the contact for contact.UserID and returns the
// stored row. An insert that returns nothing yields [ErrContactNotSaved];
// a missing owner yields [ErrNoUserWasFound].
func (c *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.builder.
		Insert(tableContacts).
		Columns("first_name", "last_name", "email", "phone", "user_id").
		Values(contact.FirstName, contact.LastName, contact.Email, contact.Phone, contact.UserID).
		Suffix(returning(contactColumns)).
		ToSql()
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Contact
	if err = sqlx.GetContext(ctx, c.executor(ctx), &created, query, args...); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Contact{}, ErrContactNotSaved
		case postgresError(err) == pgerrcode.ForeignKeyViolation:
			return models.Contact{}, ErrNoUserWasFound
		}

		log.Err(err).
			Str("func", "*contactRepository.CreateContact").
			Str("user_id", contact.UserID).
			Bool("retryable", c.retryable(err)).
			Msg("error inserting contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// CreateAddresses inserts all addresses for contactID with one multi-row
// statement and returns the stored rows in submission order.
func (c *contactRepository) CreateAddresses(ctx context.Context, contactID int64, addresses []models.Address) ([]models.Address, error) {
	if len(addresses) == 0 {
		return []models.Address{}, nil
	}

	log := logger.FromContext(ctx)

	builder := c.builder.
		Insert(tableAddresses).
		Columns("address_type", "street", "city", "province", "country", "postal_code", "contact_id")
	for _, a := range addresses {
		builder = builder.Values(a.AddressType, a.Street, a.City, a.Province, a.Country, a.PostalCode, contactID)
	}

	query, args, err := builder.
		Suffix(returning(addressColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created := make([]models.Address, 0, len(addresses))
	if err = sqlx.SelectContext(ctx, c.executor(ctx), &created, query, args...); err != nil {
		log.Err(err).
			Str("func", "*contactRepository.CreateAddresses").
			Int64("contact_id", contactID).
			Int("addresses", len(addresses)).
			Bool("retryable", c.retryable(err)).
			Msg("error inserting addresses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if len(created) != len(addresses) {
		log.Error().
			Str("func", "*contactRepository.CreateAddresses").
			Int64("contact_id", contactID).
			Int("submitted", len(addresses)).
			Int("saved", len(created)).
			Msg("not every address was saved")
		return nil, ErrAddressNotSaved
	}

	return created, nil
}
