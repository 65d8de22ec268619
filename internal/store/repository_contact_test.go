package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContactRepo(t *testing.T) (*contactRepository, *DB, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &contactRepository{DB: db, logger: logger.Nop()}, db, mock
}

func TestCreateContact(t *testing.T) {
	repo, _, mock := newTestContactRepo(t)
	now := time.Now().UTC()
	contact := models.Contact{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+44 20 0000 0000",
		UserID:    testUserID,
	}

	mock.ExpectQuery(`INSERT INTO contacts \(first_name,last_name,email,phone,user_id\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING`).
		WithArgs(contact.FirstName, contact.LastName, contact.Email, contact.Phone, contact.UserID).
		WillReturnRows(sqlmock.NewRows(contactColumns).
			AddRow(int64(42), contact.FirstName, contact.LastName, contact.Email, contact.Phone, contact.UserID, now, now))

	created, err := repo.CreateContact(context.Background(), contact)
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ContactID)
	assert.Equal(t, contact.Email, created.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContact_Errors(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "no row returned",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO contacts").WillReturnRows(sqlmock.NewRows(contactColumns))
			},
			wantErr: ErrContactNotSaved,
		},
		{
			name: "owner does not exist",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO contacts").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
			},
			wantErr: ErrNoUserWasFound,
		},
		{
			name: "driver error",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO contacts").WillReturnError(errors.New("broken pipe"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := newTestContactRepo(t)
			tt.prepare(mock)

			_, err := repo.CreateContact(context.Background(), models.Contact{UserID: testUserID})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateAddresses(t *testing.T) {
	repo, _, mock := newTestContactRepo(t)
	now := time.Now().UTC()
	addresses := []models.Address{
		{AddressType: "home", Street: "1 Main St", City: "Springfield", Province: "IL", Country: "US", PostalCode: "62701"},
		{AddressType: "work", Street: "2 Side St", City: "Springfield", Province: "IL", Country: "US", PostalCode: "62702"},
	}

	rows := sqlmock.NewRows(addressColumns)
	for i, a := range addresses {
		rows.AddRow(int64(i+1), a.AddressType, a.Street, a.City, a.Province, a.Country, a.PostalCode, int64(42), now, now)
	}

	mock.ExpectQuery(`INSERT INTO addresses (.+) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7\),\(\$8,\$9,\$10,\$11,\$12,\$13,\$14\) RETURNING`).
		WithArgs(
			"home", "1 Main St", "Springfield", "IL", "US", "62701", int64(42),
			"work", "2 Side St", "Springfield", "IL", "US", "62702", int64(42),
		).
		WillReturnRows(rows)

	created, err := repo.CreateAddresses(context.Background(), 42, addresses)
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, int64(42), created[0].ContactID)
	assert.Equal(t, "work", created[1].AddressType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAddresses_Empty(t *testing.T) {
	repo, _, mock := newTestContactRepo(t)

	created, err := repo.CreateAddresses(context.Background(), 42, nil)
	require.NoError(t, err)
	assert.NotNil(t, created)
	assert.Empty(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAddresses_CountMismatch(t *testing.T) {
	repo, _, mock := newTestContactRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO addresses").
		WillReturnRows(sqlmock.NewRows(addressColumns).
			AddRow(int64(1), "home", "s", "c", "p", "US", "1", int64(42), now, now))

	_, err := repo.CreateAddresses(context.Background(), 42, []models.Address{{AddressType: "home"}, {AddressType: "work"}})
	assert.ErrorIs(t, err, ErrAddressNotSaved)
}

// TestContactWithAddresses_RollsBack checks that a failed address insert
// undoes the contact insert made in the same transaction.
func TestContactWithAddresses_RollsBack(t *testing.T) {
	repo, db, mock := newTestContactRepo(t)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO contacts").
		WillReturnRows(sqlmock.NewRows(contactColumns).
			AddRow(int64(7), "Ada", "Lovelace", "ada@example.com", "1", testUserID, now, now))
	mock.ExpectQuery("INSERT INTO addresses").
		WillReturnError(pgError(pgerrcode.NotNullViolation))
	mock.ExpectRollback()

	err := db.WithinTransaction(context.Background(), func(ctx context.Context) error {
		contact, err := repo.CreateContact(ctx, models.Contact{UserID: testUserID})
		if err != nil {
			return err
		}
		_, err = repo.CreateAddresses(ctx, contact.ContactID, []models.Address{{AddressType: "home"}})
		return err
	})

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
