package user

import (
	"regexp"
	"strings"
	"time"

	"github.com/lendaround/service-sharing/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

const (
	maxNameLength  = 255
	maxEmailLength = 512
)

// User is the aggregate root for a registered account.
type User struct {
	id        int64
	name      string
	email     string
	createdAt time.Time
	updatedAt time.Time
}

// NewUser creates a new User with validated fields.
func NewUser(name, email string) (*User, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &User{
		name:      name,
		email:     email,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a User from persistence data (no validation).
func Reconstruct(id int64, name, email string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:        id,
		name:      name,
		email:     email,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the store-assigned identifier (zero until saved).
func (u *User) ID() int64 { return u.id }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Email returns the unique account email.
func (u *User) Email() string { return u.email }

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// Update applies a partial update: nil fields are left untouched, provided
// fields are validated the same way as at creation.
func (u *User) Update(name, email *string) error {
	if name != nil {
		if err := validateName(*name); err != nil {
			return err
		}
		u.name = *name
	}
	if email != nil {
		if err := validateEmail(*email); err != nil {
			return err
		}
		u.email = *email
	}
	u.updatedAt = time.Now().UTC()
	return nil
}

func validateName(name string) error {
	if name == "" {
		return domain.NewValidationError("name is required")
	}
	if name != strings.TrimSpace(name) {
		return domain.NewValidationError("name must not contain leading or trailing whitespace")
	}
	if len(name) > maxNameLength {
		return domain.NewValidationError("name must not exceed 255 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return domain.NewValidationError("email is required")
	}
	if len(email) > maxEmailLength || !emailPattern.MatchString(email) {
		return domain.NewValidationError("email format is invalid")
	}
	return nil
}
