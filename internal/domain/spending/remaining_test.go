package spending_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/spending"
)

var refNow = time.Date(2025, time.November, 15, 10, 0, 0, 0, time.UTC)

func txn(amount int64, date time.Time) *entity.Transaction {
	return &entity.Transaction{Amount: decimal.NewFromInt(amount), Date: date}
}

func TestRemainingSpend_DescuentaTransaccionDelMes(t *testing.T) {
	got := spending.RemainingSpend(decimal.NewFromInt(10000), []*entity.Transaction{
		txn(-2000, refNow.AddDate(0, 0, -3)),
	}, refNow)

	assert.True(t, got.Used.Equal(decimal.NewFromInt(8000)), "used = %s", got.Used)
	assert.True(t, got.Limit.Equal(decimal.NewFromInt(10000)))
}

// El signo no se interpreta: un abono positivo también descuenta su magnitud.
func TestRemainingSpend_UsaMagnitudSinImportarSigno(t *testing.T) {
	got := spending.RemainingSpend(decimal.NewFromInt(5000), []*entity.Transaction{
		txn(-1000, refNow),
		txn(1500, refNow.AddDate(0, 0, 1)),
	}, refNow)

	assert.True(t, got.Used.Equal(decimal.NewFromInt(2500)), "used = %s", got.Used)
}

func TestRemainingSpend_ExcluyeOtrosMesesYAnios(t *testing.T) {
	txns := []*entity.Transaction{
		txn(-100, refNow),
		txn(-9999, refNow.AddDate(0, -1, 0)),
		txn(-9999, refNow.AddDate(-1, 0, 0)),
		txn(-9999, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)),
		txn(7777, time.Date(2026, time.November, 15, 0, 0, 0, 0, time.UTC)),
	}

	got := spending.RemainingSpend(decimal.NewFromInt(1000), txns, refNow)

	assert.True(t, got.Used.Equal(decimal.NewFromInt(900)), "used = %s", got.Used)
}

// Si el gasto supera el límite el resultado queda negativo (no se acota).
func TestRemainingSpend_PuedeQuedarNegativo(t *testing.T) {
	got := spending.RemainingSpend(decimal.NewFromInt(1000), []*entity.Transaction{
		txn(-800, refNow),
		txn(-700, refNow),
	}, refNow)

	assert.True(t, got.Used.Equal(decimal.NewFromInt(-500)), "used = %s", got.Used)
}

func TestRemainingSpend_SinTransacciones(t *testing.T) {
	got := spending.RemainingSpend(decimal.NewFromInt(20000), nil, refNow)

	assert.True(t, got.Used.Equal(decimal.NewFromInt(20000)))
}

func TestRemainingSpend_DecimalesExactos(t *testing.T) {
	got := spending.RemainingSpend(decimal.RequireFromString("100.10"), []*entity.Transaction{
		txn(0, refNow),
		{Amount: decimal.RequireFromString("-0.10"), Date: refNow},
		{Amount: decimal.RequireFromString("-0.20"), Date: refNow},
	}, refNow)

	assert.Equal(t, "99.8", got.Used.String())
}

// El mes se evalúa en la zona horaria de la referencia.
func TestInMonth_ZonaHorariaDeReferencia(t *testing.T) {
	bogota := time.FixedZone("COT", -5*60*60)
	ref := time.Date(2025, time.November, 1, 12, 0, 0, 0, bogota)
	// 1 nov 02:00 UTC = 31 oct 21:00 en Bogotá.
	d := time.Date(2025, time.November, 1, 2, 0, 0, 0, time.UTC)

	assert.False(t, spending.InMonth(d, ref))
	assert.True(t, spending.InMonth(d, ref.AddDate(0, 0, -1)))
}
