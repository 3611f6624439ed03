package usecase

import (
	"context"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nvasilev/product-catalog-service/internal/auth"
	"github.com/nvasilev/product-catalog-service/internal/auth/dto"
	"github.com/nvasilev/product-catalog-service/internal/auth/token"
	"github.com/nvasilev/product-catalog-service/internal/model"
)

type authUseCase struct {
	repo   auth.Repository
	issuer *token.Issuer
	logger *zap.Logger
}

func NewAuthUseCase(repo auth.Repository, issuer *token.Issuer, log *zap.Logger) auth.UseCase {
	return &authUseCase{
		repo:   repo,
		issuer: issuer,
		logger: log,
	}
}

// Register creates the identity and attaches the requested roles. Every
// failure collapses to ErrRegistration; callers learn nothing about the
// cause. Role attachment runs after the identity insert and is not rolled
// back on failure, so a partially registered account keeps its identity.
// Success requires at least one role attached: a role-less registration
// still creates the account but reports the generic failure.
func (uc *authUseCase) Register(ctx context.Context, input *dto.RegisterInput) error {
	if !passwordMeetsPolicy(input.Password) {
		uc.logger.Debug("registration rejected: password policy", zap.String("username", input.Username))
		return auth.ErrRegistration
	}

	roles := make([]model.Role, 0, len(input.Roles))
	for _, name := range input.Roles {
		role, ok := model.ParseRole(name)
		if !ok {
			uc.logger.Debug("registration rejected: unknown role",
				zap.String("username", input.Username),
				zap.String("role", name),
			)
			return auth.ErrRegistration
		}
		roles = append(roles, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("failed to hash password", zap.Error(err))
		return auth.ErrRegistration
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Username:     input.Username,
		Email:        input.Username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		uc.logger.Warn("failed to create user", zap.String("username", input.Username), zap.Error(err))
		return auth.ErrRegistration
	}

	if len(roles) == 0 {
		// The account stays, but without roles the registration is not
		// reported as a success.
		uc.logger.Debug("registration without roles", zap.String("username", input.Username))
		return auth.ErrRegistration
	}

	if err := uc.repo.AttachRoles(ctx, user.ID, roles); err != nil {
		uc.logger.Warn("failed to attach roles", zap.String("username", input.Username), zap.Error(err))
		return auth.ErrRegistration
	}

	return nil
}

func (uc *authUseCase) Login(ctx context.Context, input *dto.LoginInput) (string, error) {
	user, err := uc.repo.FindByEmail(ctx, input.Username)
	if err != nil {
		uc.logger.Error("failed to look up user", zap.Error(err))
		return "", auth.ErrInvalidCredentials
	}
	if user == nil {
		return "", auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return "", auth.ErrInvalidCredentials
	}

	signed, err := uc.issuer.Issue(user)
	if err != nil {
		uc.logger.Error("failed to issue token", zap.Error(err))
		return "", auth.ErrInvalidCredentials
	}
	return signed, nil
}

// passwordMeetsPolicy requires at least 8 characters with an upper-case
// letter, a lower-case letter and a digit.
func passwordMeetsPolicy(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}
