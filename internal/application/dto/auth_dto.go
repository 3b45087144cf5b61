package dto

import "github.com/jhoicas/Flota-api/internal/domain/entity"

// RegisterRequest alta de empresa + usuario administrador inicial.
type RegisterRequest struct {
	CompanyName string `json:"companyName"`
	NIT         string `json:"nit"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Password    string `json:"password"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse token + usuario + empresa tras login o registro.
type AuthResponse struct {
	Token   string          `json:"token"`
	User    *entity.User    `json:"user"`
	Company *entity.Company `json:"company"`
}

// UpdateProfileRequest campos editables del perfil propio. Punteros para
// distinguir ausencia de valor vacío.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}
