package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Flota-api/internal/application/dto"
	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
	"github.com/jhoicas/Flota-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y perfil propio.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, companyRepo: companyRepo, jwtCfg: jwtCfg}
}

// Register crea la empresa y su usuario administrador inicial, y devuelve el
// token de la sesión recién abierta. Email ya registrado devuelve
// ErrEmailAlreadyExists.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if in.CompanyName == "" || in.Email == "" || len(in.Password) < 6 {
		return nil, domain.ErrInvalidInput
	}
	email := strings.ToLower(in.Email)
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	now := time.Now()
	company := &entity.Company{
		Name:      in.CompanyName,
		NIT:       in.NIT,
		Email:     email,
		Phone:     in.Phone,
		Address:   in.Address,
		Status:    entity.CompanyStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Status:       entity.UserStatusActive,
		CompanyID:    company.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID.Hex(), company.ID.Hex(), user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: user, Company: company}, nil
}

// Login verifica email/password y genera el JWT. Credenciales inválidas
// devuelven ErrUnauthorized sin distinguir usuario inexistente de password
// incorrecto.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(ctx, user.CompanyID.Hex())
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID.Hex(), user.CompanyID.Hex(), user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: user, Company: company}, nil
}

// Profile devuelve el usuario autenticado. Devuelve (nil, nil) si ya no existe.
func (uc *AuthUseCase) Profile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// UpdateProfile aplica los campos presentes sobre el perfil propio. Cambiar el
// password exige al menos 6 caracteres y rehashea con bcrypt.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileRequest) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Email != nil {
		user.Email = strings.ToLower(*in.Email)
	}
	if in.Password != nil {
		if len(*in.Password) < 6 {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
