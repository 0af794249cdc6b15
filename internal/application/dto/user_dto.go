package dto

// CredentialsRequest entrada de signup y signin.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserIDResponse salida de signup/signin.
type UserIDResponse struct {
	UserID string `json:"userId"`
}

// UserResponse salida pública de un usuario (sin hash ni salt).
type UserResponse struct {
	Email string `json:"email"`
	ID    string `json:"id"`
}
