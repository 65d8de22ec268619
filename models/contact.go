package models

import "time"

// Contact is an address-book entry owned by exactly one user.
type Contact struct {
	ContactID int64  `json:"contactId,omitempty" db:"contact_id"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Email     string `json:"email" db:"email"`
	Phone     string `json:"phone" db:"phone"`
	UserID    string `json:"userId" db:"user_id"`

	// Addresses keeps the capitalized key used by API clients.
	Addresses []Address `json:"Addresses" db:"-"`

	CreatedAt time.Time `json:"createdAt,omitzero" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt,omitzero" db:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}

// Address is a postal address owned by exactly one contact.
type Address struct {
	AddressID   int64  `json:"addressId,omitempty" db:"address_id"`
	AddressType string `json:"addressType" db:"address_type"`
	Street      string `json:"street" db:"street"`
	City        string `json:"city" db:"city"`
	Province    string `json:"province" db:"province"`
	Country     string `json:"country" db:"country"`
	PostalCode  string `json:"postalCode" db:"postal_code"`
	ContactID   int64  `json:"contactId,omitempty" db:"contact_id"`

	CreatedAt time.Time `json:"createdAt,omitzero" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt,omitzero" db:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Address model.
func (a Address) TableName() string {
	return "addresses"
}
