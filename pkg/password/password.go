// Package password implementa el hasheo de credenciales con PBKDF2-HMAC-SHA512.
// Parámetros compatibles con los usuarios ya almacenados: 1000 iteraciones,
// clave de 64 bytes y salt aleatorio de 16 bytes, ambos codificados en hex.
package password

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	Iterations = 1000
	KeyLen     = 64
	SaltLen    = 16
)

// ErrEmptyPassword se devuelve al intentar hashear una contraseña vacía.
var ErrEmptyPassword = errors.New("password vacío")

// Hash genera un salt nuevo y devuelve (hash, salt) en hex.
func Hash(plain string) (hash, salt string, err error) {
	if plain == "" {
		return "", "", ErrEmptyPassword
	}
	raw := make([]byte, SaltLen)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("generar salt: %w", err)
	}
	salt = hex.EncodeToString(raw)
	return derive(plain, salt), salt, nil
}

// Verify compara en tiempo constante plain contra el hash y salt almacenados.
func Verify(plain, hash, salt string) bool {
	if hash == "" || salt == "" {
		return false
	}
	got := derive(plain, salt)
	return subtle.ConstantTimeCompare([]byte(got), []byte(hash)) == 1
}

// El salt se usa como texto (sus caracteres hex), igual que los hashes existentes.
func derive(plain, salt string) string {
	key := pbkdf2.Key([]byte(plain), []byte(salt), Iterations, KeyLen, sha512.New)
	return hex.EncodeToString(key)
}
