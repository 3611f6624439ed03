package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nvasilev/product-catalog-service/internal/model"
)

func testUser() *model.User {
	return &model.User{
		ID:       "2a0ff5c4-9f2e-4f0a-a9a1-1b7a9a2d9a11",
		Username: "reader@example.com",
		Email:    "reader@example.com",
		Roles:    []model.Role{model.RoleReader, model.RoleWriter},
	}
}

func TestIssueAndParse(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	signed, err := issuer.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := issuer.Parse(signed)
	require.NoError(t, err)
	require.Equal(t, "2a0ff5c4-9f2e-4f0a-a9a1-1b7a9a2d9a11", claims.Subject)
	require.Equal(t, "reader@example.com", claims.Email)
	require.Equal(t, []model.Role{model.RoleReader, model.RoleWriter}, claims.Roles)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParse_RejectsWrongSecret(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	other := NewIssuer("another-secret", time.Hour)

	signed, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = other.Parse(signed)
	require.Error(t, err)
}

func TestParse_RejectsExpiredToken(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)

	signed, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = issuer.Parse(signed)
	require.Error(t, err)
}

func TestParse_RejectsGarbage(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	_, err := issuer.Parse("not-a-token")
	require.Error(t, err)
}
