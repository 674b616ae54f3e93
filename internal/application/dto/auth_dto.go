package dto

import (
	"strings"

	"github.com/jhoicas/golden-store/internal/domain"
)

// MinPasswordLength longitud mínima de contraseña al actualizar el perfil.
const MinPasswordLength = 6

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate recorta el username y exige ambos campos. La contraseña no se recorta.
func (r LoginRequest) Validate() (LoginRequest, error) {
	r.Username = strings.TrimSpace(r.Username)
	if r.Username == "" || r.Password == "" {
		return r, domain.NewValidationError("username y password son requeridos")
	}
	return r, nil
}

// AdminResponse salida de un admin (sin hash).
type AdminResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse token JWT + admin autenticado.
type LoginResponse struct {
	Token string        `json:"token"`
	User  AdminResponse `json:"user"`
}

// UpdateProfileRequest entrada de PUT /api/admin/me. Password vacío o ausente no la cambia.
type UpdateProfileRequest struct {
	Username string  `json:"username"`
	Password *string `json:"password"`
}

// ProfileInput perfil validado. Password vacío = sin cambio.
type ProfileInput struct {
	Username string
	Password string
}

// Validate aplica las reglas del perfil: username requerido, password >= 6 tras recortar.
func (r UpdateProfileRequest) Validate() (ProfileInput, error) {
	in := ProfileInput{Username: strings.TrimSpace(r.Username)}
	if in.Username == "" {
		return in, domain.NewValidationError("username es requerido")
	}
	if r.Password != nil && *r.Password != "" {
		pwd := strings.TrimSpace(*r.Password)
		if len(pwd) < MinPasswordLength {
			return in, domain.NewValidationError("password debe tener al menos 6 caracteres")
		}
		in.Password = pwd
	}
	return in, nil
}
