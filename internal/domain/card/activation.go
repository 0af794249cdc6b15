package card

import (
	"time"

	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

// CheckActivation valida que se pueda cambiar el estado de activación de c.
// Devuelve domain.ErrNotFound si la tarjeta no existe y domain.ErrCardExpired si
// su fecha de vencimiento es anterior a now. Debe llamarse antes de mutar.
func CheckActivation(c *entity.Card, now time.Time) error {
	if c == nil {
		return domain.ErrNotFound
	}
	if c.IsExpired(now) {
		return domain.ErrCardExpired
	}
	return nil
}
