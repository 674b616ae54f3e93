package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/golden-store/internal/application/dto"
	"github.com/jhoicas/golden-store/internal/domain"
	"github.com/jhoicas/golden-store/internal/domain/entity"
	"github.com/jhoicas/golden-store/internal/domain/repository"
	"github.com/jhoicas/golden-store/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y perfil del admin.
type AuthUseCase struct {
	adminRepo  repository.AdminRepository
	jwtCfg     JWTConfig
	bcryptCost int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(adminRepo repository.AdminRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{adminRepo: adminRepo, jwtCfg: jwtCfg, bcryptCost: bcrypt.DefaultCost}
}

// WithBcryptCost cambia el coste de bcrypt (los tests usan bcrypt.MinCost).
func (uc *AuthUseCase) WithBcryptCost(cost int) *AuthUseCase {
	uc.bcryptCost = cost
	return uc
}

// Login verifica username/password, genera JWT y retorna token + admin.
// Usuario inexistente y password incorrecto devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := uc.adminRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issue(admin)
}

// Profile devuelve el admin adminID. ErrNotFound si ya no existe.
func (uc *AuthUseCase) Profile(ctx context.Context, adminID string) (*dto.AdminResponse, error) {
	admin, err := uc.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrNotFound
	}
	return toAdminResponse(admin), nil
}

// UpdateProfile cambia username y, si viene, la contraseña. Devuelve un token nuevo
// porque el username viaja en los claims. ErrDuplicate si el username ya está en uso.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, adminID string, in dto.ProfileInput) (*dto.LoginResponse, error) {
	admin, err := uc.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrNotFound
	}
	admin.Username = in.Username
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = string(hash)
	}
	admin.UpdatedAt = time.Now()
	if err := uc.adminRepo.Update(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrDuplicate
		}
		return nil, err
	}
	return uc.issue(admin)
}

func (uc *AuthUseCase) issue(admin *entity.Admin) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.ID, admin.Username, admin.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toAdminResponse(admin),
	}, nil
}

func toAdminResponse(a *entity.Admin) *dto.AdminResponse {
	return &dto.AdminResponse{
		ID:       a.ID,
		Username: a.Username,
		Role:     a.Role,
	}
}
