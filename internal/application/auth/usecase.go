package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
	"github.com/jhoicas/Finanzas-api/pkg/password"
)

// AuthUseCase casos de uso de credenciales: signup y signin por email/password.
type AuthUseCase struct {
	userRepo repository.UserRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo}
}

// SignUp crea un usuario con hash PBKDF2 + salt. Devuelve domain.ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) SignUp(ctx context.Context, in dto.CredentialsRequest) (*dto.UserIDResponse, error) {
	email := normalizeEmail(in.Email)
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, salt, err := password.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
		PasswordSalt: salt,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.UserIDResponse{UserID: user.ID}, nil
}

// SignIn verifica email/password. Devuelve domain.ErrUserNotFound si el email no existe
// y domain.ErrInvalidPassword si la contraseña no coincide.
func (uc *AuthUseCase) SignIn(ctx context.Context, in dto.CredentialsRequest) (*dto.UserIDResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !password.Verify(in.Password, user.PasswordHash, user.PasswordSalt) {
		return nil, domain.ErrInvalidPassword
	}
	return &dto.UserIDResponse{UserID: user.ID}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
