package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Los montos viajan como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Mensajes fijos de error.
const (
	MsgInvalidData    = "Invalid data"
	MsgInternalServer = "Internal server error"
)

// Response sobre común de todas las respuestas: {message, data?}.
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorDetail detalle de un campo inválido.
type ErrorDetail struct {
	Message string `json:"message"`
}

// ValidationErrorResponse cuerpo HTTP 400 cuando el payload no pasa la validación.
type ValidationErrorResponse struct {
	Error   string        `json:"error"`
	Details []ErrorDetail `json:"details"`
}

// DateTime acepta RFC 3339 o una fecha simple (2006-01-02, UTC) en JSON.
type DateTime struct {
	time.Time
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// UnmarshalJSON implementa json.Unmarshaler.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("fecha inválida: %w", err)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("fecha inválida: %q", s)
}

// MarshalJSON implementa json.Marshaler (RFC 3339).
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time)
}
