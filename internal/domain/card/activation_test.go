package card_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/card"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
)

func TestCheckActivation(t *testing.T) {
	now := time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		card *entity.Card
		want error
	}{
		{"inexistente", nil, domain.ErrNotFound},
		{"vencida", &entity.Card{ExpirationDate: now.Add(-time.Second)}, domain.ErrCardExpired},
		{"vigente", &entity.Card{ExpirationDate: now.AddDate(3, 0, 0)}, nil},
		{"vence justo ahora", &entity.Card{ExpirationDate: now}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := card.CheckActivation(tt.card, now)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
