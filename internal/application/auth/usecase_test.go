package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Finanzas-api/internal/application/auth"
	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/memory"
)

func newAuth() (*auth.AuthUseCase, *memory.UserRepo) {
	repo := memory.NewUserRepository(memory.NewStore())
	return auth.NewAuthUseCase(repo), repo
}

func TestSignUpLuegoSignIn(t *testing.T) {
	uc, repo := newAuth()
	ctx := context.Background()
	creds := dto.CredentialsRequest{Email: "test@example.com", Password: "mypassword123"}

	up, err := uc.SignUp(ctx, creds)
	require.NoError(t, err)
	require.NotEmpty(t, up.UserID)

	in, err := uc.SignIn(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, up.UserID, in.UserID)

	stored, err := repo.GetByID(ctx, up.UserID)
	require.NoError(t, err)
	assert.NotEqual(t, creds.Password, stored.PasswordHash, "nunca se guarda en plano")
	assert.NotEmpty(t, stored.PasswordSalt)
}

func TestSignIn_PasswordIncorrecto(t *testing.T) {
	uc, _ := newAuth()
	ctx := context.Background()
	_, err := uc.SignUp(ctx, dto.CredentialsRequest{Email: "a@b.com", Password: "bien"})
	require.NoError(t, err)

	_, err = uc.SignIn(ctx, dto.CredentialsRequest{Email: "a@b.com", Password: "mal"})

	assert.ErrorIs(t, err, domain.ErrInvalidPassword, "contraseña errónea no es usuario inexistente")
}

func TestSignIn_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuth()

	_, err := uc.SignIn(context.Background(), dto.CredentialsRequest{Email: "x@y.com", Password: "p"})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSignUp_EmailDuplicado(t *testing.T) {
	uc, _ := newAuth()
	ctx := context.Background()
	_, err := uc.SignUp(ctx, dto.CredentialsRequest{Email: "dup@b.com", Password: "p"})
	require.NoError(t, err)

	_, err = uc.SignUp(ctx, dto.CredentialsRequest{Email: " DUP@b.com ", Password: "q"})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}
