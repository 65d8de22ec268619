package models

import "time"

// User represents an account entity used for authentication and authorization.
// Password holds a bcrypt hash and is never serialized.
type User struct {
	// UserID is a UUIDv7 generated by the application on registration.
	UserID string `json:"userId" db:"user_id"`

	// Name is the display name of the user.
	Name string `json:"name" db:"name"`

	// Email is unique across all users, pending or active.
	Email string `json:"email" db:"email"`

	// Password is the bcrypt hash of the user's password.
	Password string `json:"-" db:"password"`

	// IsActive becomes true once the activation link is followed.
	IsActive bool `json:"isActive" db:"is_active"`

	// ExpireTime is the deadline for activation. It is nil for active users.
	ExpireTime *time.Time `json:"expireTime,omitempty" db:"expire_time"`

	CreatedAt time.Time `json:"createdAt,omitzero" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt,omitzero" db:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsPending reports whether the user is inactive and still inside the
// activation window at moment now.
func (u User) IsPending(now time.Time) bool {
	return !u.IsActive && u.ExpireTime != nil && u.ExpireTime.After(now)
}

// Identity returns the public identity of the user as carried in tokens.
func (u User) Identity() Identity {
	return Identity{UserID: u.UserID, Name: u.Name, Email: u.Email}
}

// RegisterRequest is the cleaned registration payload.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the cleaned login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest is the cleaned forgot-password payload.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// UserUpdate is a partial update of a user. Only non-nil fields are
// written. Password must already be hashed when it reaches the store.
type UserUpdate struct {
	Name            *string `json:"name,omitempty"`
	Email           *string `json:"email,omitempty"`
	Password        *string `json:"password,omitempty"`
	ConfirmPassword *string `json:"confirmPassword,omitempty"`
}

// IsEmpty reports whether the update carries no field to write.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Password == nil
}

// Registration is returned to the client after a successful registration.
type Registration struct {
	UserID     string    `json:"userId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ExpireTime time.Time `json:"expireTime"`
}

// ActivatedUser is returned to the client after activation.
type ActivatedUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
