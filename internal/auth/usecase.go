package auth

import (
	"context"

	"github.com/nvasilev/product-catalog-service/internal/auth/dto"
)

type UseCase interface {
	Register(ctx context.Context, input *dto.RegisterInput) error
	// Login verifies the credentials and returns a signed bearer token.
	Login(ctx context.Context, input *dto.LoginInput) (string, error)
}
