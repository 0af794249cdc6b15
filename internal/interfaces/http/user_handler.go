package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/application/auth"
	"github.com/jhoicas/Finanzas-api/internal/application/dto"
	"github.com/jhoicas/Finanzas-api/internal/application/usecase"
	"github.com/jhoicas/Finanzas-api/internal/domain"
)

// UserHandler registro, acceso y consulta de usuarios.
type UserHandler struct {
	auth *auth.AuthUseCase
	uc   *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(authUC *auth.AuthUseCase, uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{auth: authUC, uc: uc}
}

// SignUp godoc
// @Summary      Registrar usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CredentialsRequest  true  "Email y contraseña"
// @Success      201   {object}  dto.Response{data=dto.UserIDResponse}
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      409   {object}  dto.Response
// @Router       /api/users/signup [post]
func (h *UserHandler) SignUp(c *fiber.Ctx) error {
	var in dto.CredentialsRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.auth.SignUp(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return fail(c, fiber.StatusConflict, "Email already registered")
		}
		return err
	}
	return respond(c, fiber.StatusCreated, "User created successfully", out)
}

// SignIn godoc
// @Summary      Iniciar sesión
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CredentialsRequest  true  "Email y contraseña"
// @Success      201   {object}  dto.Response{data=dto.UserIDResponse}
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      401   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/users/signin [post]
func (h *UserHandler) SignIn(c *fiber.Ctx) error {
	var in dto.CredentialsRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.auth.SignIn(c.UserContext(), in)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return fail(c, fiber.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrInvalidPassword):
		return fail(c, fiber.StatusUnauthorized, "Invalid password")
	case err != nil:
		return err
	}
	return respond(c, fiber.StatusCreated, "User sign in successfully", out)
}

// GetByID godoc
// @Summary      Obtener usuario
// @Tags         users
// @Produce      json
// @Param        userId  path      string  true  "ID del usuario"
// @Success      200     {object}  dto.Response{data=dto.UserResponse}
// @Failure      404     {object}  dto.Response
// @Router       /api/users/{userId} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("userId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "User not found")
		}
		return err
	}
	return respond(c, fiber.StatusOK, "Successfully fetched user", out)
}

// ListCompanies godoc
// @Summary      Empresas de un usuario
// @Tags         users
// @Produce      json
// @Param        userId  path      string  true  "ID del usuario"
// @Success      200     {object}  dto.Response{data=[]dto.CompanyResponse}
// @Router       /api/users/{userId}/companies [get]
func (h *UserHandler) ListCompanies(c *fiber.Ctx) error {
	out, err := h.uc.ListCompanies(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Successfully fetched companies belongs to user", out)
}
