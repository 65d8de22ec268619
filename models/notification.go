package models

import "time"

// ActivationMail carries what is needed to tell a freshly registered user
// how to activate the account.
type ActivationMail struct {
	To         string
	Name       string
	UserID     string
	ExpireTime time.Time
}

// PasswordMail carries a newly generated plain-text password to its owner.
type PasswordMail struct {
	To       string
	Name     string
	Password string
}
