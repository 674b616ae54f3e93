package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/golden-store/internal/application/auth"
	"github.com/jhoicas/golden-store/internal/application/dto"
	"github.com/jhoicas/golden-store/internal/domain"
	"github.com/jhoicas/golden-store/internal/domain/entity"
	"github.com/jhoicas/golden-store/internal/infrastructure/memory"
	"github.com/jhoicas/golden-store/pkg/jwt"
)

var jwtCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "golden-store-test"}

func newAuth(t *testing.T) (*auth.AuthUseCase, *memory.AdminRepo) {
	t.Helper()
	repo := memory.NewAdminRepository(memory.New())
	for _, u := range []struct{ id, name, pwd string }{{"a1", "admin", "admin123"}, {"a2", "editor", "editor123"}} {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.pwd), bcrypt.MinCost)
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), &entity.Admin{
			ID: u.id, Username: u.name, PasswordHash: string(hash), Role: entity.RoleAdmin,
		}))
	}
	return auth.NewAuthUseCase(repo, jwtCfg).WithBcryptCost(bcrypt.MinCost), repo
}

func TestLogin_TokenAceptadoPorElGuard(t *testing.T) {
	uc, _ := newAuth(t)

	res, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "a1", res.User.ID)
	assert.Equal(t, entity.RoleAdmin, res.User.Role)

	claims, err := jwt.Parse(jwtCfg.Secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, "a1", claims.Subject)
	assert.Equal(t, "admin", claims.Username)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newAuth(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuth(t)

	res, err := uc.UpdateProfile(ctx, "a1", dto.ProfileInput{Username: "owner", Password: "nueva-clave"})
	require.NoError(t, err)
	assert.Equal(t, "owner", res.User.Username)
	claims, err := jwt.Parse(jwtCfg.Secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, "owner", claims.Username)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "owner", Password: "nueva-clave"})
	assert.NoError(t, err)

	// sin password se conserva la anterior
	_, err = uc.UpdateProfile(ctx, "a1", dto.ProfileInput{Username: "owner2"})
	require.NoError(t, err)
	_, err = uc.Login(ctx, dto.LoginRequest{Username: "owner2", Password: "nueva-clave"})
	assert.NoError(t, err)
}

func TestUpdateProfile_UsernameDuplicado(t *testing.T) {
	uc, _ := newAuth(t)
	_, err := uc.UpdateProfile(context.Background(), "a1", dto.ProfileInput{Username: "editor"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProfile_AdminEliminado(t *testing.T) {
	uc, _ := newAuth(t)
	_, err := uc.Profile(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	p, err := uc.Profile(context.Background(), "a2")
	require.NoError(t, err)
	assert.Equal(t, "editor", p.Username)
}
