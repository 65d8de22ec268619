package store

import "strings"

const (
	tableUsers     = "users"
	tableContacts  = "contacts"
	tableAddresses = "addresses"
)

var (
	userColumns = []string{
		"user_id", "name", "email", "password", "is_active", "expire_time", "created_at", "updated_at",
	}

	contactColumns = []string{
		"contact_id", "first_name", "last_name", "email", "phone", "user_id", "created_at", "updated_at",
	}

	addressColumns = []string{
		"address_id", "address_type", "street", "city", "province", "country", "postal_code", "contact_id", "created_at", "updated_at",
	}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}
