package user

import (
	"context"

	"github.com/lendaround/service-sharing/internal/domain"
)

// Repository defines the persistence contract for user aggregates.
type Repository interface {
	// FindByID retrieves a user by its identifier.
	FindByID(ctx context.Context, id int64) (*User, error)

	// Exists reports whether a user with the given identifier exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// List retrieves users ordered by id ascending.
	List(ctx context.Context, page domain.Page) ([]*User, error)

	// Save persists a new user and assigns its identifier. A duplicate email
	// surfaces as a conflict error.
	Save(ctx context.Context, u *User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, u *User) error

	// Delete removes a user by its identifier.
	Delete(ctx context.Context, id int64) error
}
