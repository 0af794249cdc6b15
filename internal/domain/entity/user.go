package entity

// User representa una cuenta del back-office. La contraseña nunca se guarda en plano:
// se persisten el hash PBKDF2 y su salt (ambos en hex).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	PasswordSalt string
}
