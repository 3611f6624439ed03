package auth

import (
	"context"

	"github.com/nvasilev/product-catalog-service/internal/model"
)

type Repository interface {
	CreateUser(ctx context.Context, user *model.User) error
	// AttachRoles links the user to the given seeded roles. It runs after
	// CreateUser without a wrapping transaction: a failure here leaves the
	// account in place without roles.
	AttachRoles(ctx context.Context, userID string, roles []model.Role) error
	// FindByEmail returns the user with role memberships populated, or nil
	// without error when no account matches.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}
