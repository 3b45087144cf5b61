package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Flota-api/internal/application/dto"
	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

// UserUseCase casos de uso de usuarios del back-office. Todas las operaciones
// están acotadas a la empresa del solicitante.
type UserUseCase struct {
	repo      repository.UserRepository
	companies repository.CompanyRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, companies repository.CompanyRepository) *UserUseCase {
	return &UserUseCase{repo: repo, companies: companies}
}

// Create crea un usuario en la empresa dada. Email ya registrado devuelve
// domain.ErrEmailAlreadyExists.
func (uc *UserUseCase) Create(ctx context.Context, companyID string, in dto.CreateUserRequest) (*entity.User, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || len(in.Password) < 6 {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        strings.ToLower(in.Email),
		PasswordHash: string(hash),
		Role:         role,
		Status:       entity.UserStatusActive,
		CompanyID:    company.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID obtiene un usuario de la empresa dada. Devuelve (nil, nil) si no
// existe o pertenece a otra empresa.
func (uc *UserUseCase) GetByID(ctx context.Context, id, companyID string) (*entity.User, error) {
	return uc.repo.GetByIDAndCompany(ctx, id, companyID)
}

// List lista los usuarios de la empresa.
func (uc *UserUseCase) List(ctx context.Context, companyID string) ([]*entity.User, error) {
	return uc.repo.ListByCompany(ctx, companyID)
}

// Update aplica los campos permitidos. El handler ya rechazó cualquier campo
// fuera de la whitelist; aquí solo se validan los valores.
func (uc *UserUseCase) Update(ctx context.Context, id, companyID string, in dto.UpdateUserRequest) (*entity.User, error) {
	user, err := uc.repo.GetByIDAndCompany(ctx, id, companyID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
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
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Status != nil {
		if *in.Status != entity.UserStatusActive && *in.Status != entity.UserStatusInactive {
			return nil, domain.ErrInvalidInput
		}
		user.Status = *in.Status
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete elimina un usuario de la empresa. Id inexistente (o de otra empresa)
// devuelve domain.ErrUserNotFound.
func (uc *UserUseCase) Delete(ctx context.Context, id, companyID string) error {
	return uc.repo.DeleteByIDAndCompany(ctx, id, companyID)
}
