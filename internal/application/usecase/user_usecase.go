package usecase

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// UserUseCase consultas de usuarios y sus empresas.
type UserUseCase struct {
	repo        repository.UserRepository
	companyRepo repository.CompanyRepository
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(repo repository.UserRepository, companyRepo repository.CompanyRepository) *UserUseCase {
	return &UserUseCase{repo: repo, companyRepo: companyRepo}
}

// GetByID obtiene un usuario por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.UserResponse{Email: user.Email, ID: user.ID}, nil
}

// ListCompanies empresas del usuario (lista vacía si no tiene).
func (uc *UserUseCase) ListCompanies(ctx context.Context, userID string) ([]dto.CompanyResponse, error) {
	list, err := uc.companyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toCompanyResponses(list), nil
}
