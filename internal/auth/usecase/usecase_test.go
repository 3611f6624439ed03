package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nvasilev/product-catalog-service/internal/auth"
	"github.com/nvasilev/product-catalog-service/internal/auth/dto"
	"github.com/nvasilev/product-catalog-service/internal/auth/token"
	"github.com/nvasilev/product-catalog-service/internal/model"
)

type fakeRepo struct {
	usersByEmail map[string]*model.User
	rolesByUser  map[string][]model.Role

	failAttachRoles bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		usersByEmail: map[string]*model.User{},
		rolesByUser:  map[string][]model.Role{},
	}
}

func (r *fakeRepo) CreateUser(_ context.Context, user *model.User) error {
	if _, exists := r.usersByEmail[user.Email]; exists {
		return errors.New("duplicate key value violates unique constraint")
	}
	clone := *user
	r.usersByEmail[user.Email] = &clone
	return nil
}

func (r *fakeRepo) AttachRoles(_ context.Context, userID string, roles []model.Role) error {
	if r.failAttachRoles {
		return errors.New("role attachment failed")
	}
	r.rolesByUser[userID] = append(r.rolesByUser[userID], roles...)
	return nil
}

func (r *fakeRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := r.usersByEmail[email]
	if !ok {
		return nil, nil
	}
	clone := *user
	clone.Roles = r.rolesByUser[user.ID]
	return &clone, nil
}

func newUseCase(repo auth.Repository) (auth.UseCase, *token.Issuer) {
	issuer := token.NewIssuer("test-secret", time.Hour)
	return NewAuthUseCase(repo, issuer, zap.NewNop()), issuer
}

const strongPassword = "Sup3rSecret"

func TestRegister(t *testing.T) {
	repo := newFakeRepo()
	uc, _ := newUseCase(repo)

	err := uc.Register(context.Background(), &dto.RegisterInput{
		Username: "writer@example.com",
		Password: strongPassword,
		Roles:    []string{"Reader", "Writer"},
	})
	require.NoError(t, err)

	user := repo.usersByEmail["writer@example.com"]
	require.NotNil(t, user)
	require.Equal(t, "writer@example.com", user.Username)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(strongPassword)))
	require.ElementsMatch(t, []model.Role{model.RoleReader, model.RoleWriter}, repo.rolesByUser[user.ID])
}

func TestRegister_NoRolesKeepsAccountButFails(t *testing.T) {
	repo := newFakeRepo()
	uc, _ := newUseCase(repo)

	err := uc.Register(context.Background(), &dto.RegisterInput{
		Username: "norole@example.com",
		Password: strongPassword,
	})
	require.ErrorIs(t, err, auth.ErrRegistration)

	// The identity is created anyway; only the reported outcome is a failure.
	user := repo.usersByEmail["norole@example.com"]
	require.NotNil(t, user)
	require.Empty(t, repo.rolesByUser[user.ID])
}

func TestRegister_WeakPassword(t *testing.T) {
	repo := newFakeRepo()
	uc, _ := newUseCase(repo)

	for _, password := range []string{"short", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
		err := uc.Register(context.Background(), &dto.RegisterInput{
			Username: "weak@example.com",
			Password: password,
		})
		require.ErrorIs(t, err, auth.ErrRegistration)
	}
	require.Empty(t, repo.usersByEmail)
}

func TestRegister_DuplicateUser(t *testing.T) {
	repo := newFakeRepo()
	uc, _ := newUseCase(repo)

	input := &dto.RegisterInput{
		Username: "dupe@example.com",
		Password: strongPassword,
		Roles:    []string{"Reader"},
	}
	require.NoError(t, uc.Register(context.Background(), input))
	require.ErrorIs(t, uc.Register(context.Background(), input), auth.ErrRegistration)
}

func TestRegister_UnknownRole(t *testing.T) {
	repo := newFakeRepo()
	uc, _ := newUseCase(repo)

	err := uc.Register(context.Background(), &dto.RegisterInput{
		Username: "admin@example.com",
		Password: strongPassword,
		Roles:    []string{"Admin"},
	})
	require.ErrorIs(t, err, auth.ErrRegistration)
}

func TestRegister_RoleAttachFailureKeepsAccount(t *testing.T) {
	repo := newFakeRepo()
	repo.failAttachRoles = true
	uc, _ := newUseCase(repo)

	err := uc.Register(context.Background(), &dto.RegisterInput{
		Username: "partial@example.com",
		Password: strongPassword,
		Roles:    []string{"Reader"},
	})
	require.ErrorIs(t, err, auth.ErrRegistration)

	// No rollback: the identity survives without roles.
	user := repo.usersByEmail["partial@example.com"]
	require.NotNil(t, user)
	require.Empty(t, repo.rolesByUser[user.ID])
}

func TestLogin_ReturnsTokenWithCurrentRoles(t *testing.T) {
	repo := newFakeRepo()
	uc, issuer := newUseCase(repo)

	require.NoError(t, uc.Register(context.Background(), &dto.RegisterInput{
		Username: "reader@example.com",
		Password: strongPassword,
		Roles:    []string{"Reader"},
	}))

	signed, err := uc.Login(context.Background(), &dto.LoginInput{
		Username: "reader@example.com",
		Password: strongPassword,
	})
	require.NoError(t, err)

	claims, err := issuer.Parse(signed)
	require.NoError(t, err)
	require.Equal(t, "reader@example.com", claims.Email)
	require.Equal(t, []model.Role{model.RoleReader}, claims.Roles)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeRepo()
	uc, _ := newUseCase(repo)

	require.NoError(t, uc.Register(context.Background(), &dto.RegisterInput{
		Username: "reader@example.com",
		Password: strongPassword,
		Roles:    []string{"Reader"},
	}))

	signed, err := uc.Login(context.Background(), &dto.LoginInput{
		Username: "reader@example.com",
		Password: "Wr0ngPassword",
	})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	require.Empty(t, signed)
}

func TestLogin_UnknownUserIsIndistinguishable(t *testing.T) {
	repo := newFakeRepo()
	uc, _ := newUseCase(repo)

	_, err := uc.Login(context.Background(), &dto.LoginInput{
		Username: "nobody@example.com",
		Password: strongPassword,
	})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
