package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemory_BloqueaAlSuperarElLimite(t *testing.T) {
	now := time.Date(2025, 11, 15, 12, 0, 0, 0, time.UTC)
	l := newMemory(func() time.Time { return now })
	defer l.Close()

	assert.True(t, l.Allow("ip:1", 2, time.Minute).Allowed)
	assert.True(t, l.Allow("ip:1", 2, time.Minute).Allowed)
	d := l.Allow("ip:1", 2, time.Minute)
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining(2))

	// otra clave tiene su propia ventana
	assert.True(t, l.Allow("ip:2", 2, time.Minute).Allowed)
}

func TestMemory_ReiniciaAlVencerLaVentana(t *testing.T) {
	now := time.Date(2025, 11, 15, 12, 0, 0, 0, time.UTC)
	l := newMemory(func() time.Time { return now })
	defer l.Close()

	l.Allow("k", 1, time.Minute)
	assert.False(t, l.Allow("k", 1, time.Minute).Allowed)

	now = now.Add(61 * time.Second)
	d := l.Allow("k", 1, time.Minute)
	assert.True(t, d.Allowed)
	assert.Equal(t, 1, d.Count)
}

func TestMemory_LimiteCeroNoRestringe(t *testing.T) {
	l := NewMemory()
	defer l.Close()
	for i := 0; i < 10; i++ {
		assert.True(t, l.Allow("k", 0, time.Minute).Allowed)
	}
}

func TestMemory_SweepEliminaVentanasVencidas(t *testing.T) {
	now := time.Date(2025, 11, 15, 12, 0, 0, 0, time.UTC)
	l := newMemory(func() time.Time { return now })
	defer l.Close()

	l.Allow("k", 5, time.Minute)
	l.sweep(now.Add(2 * time.Minute))

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Empty(t, l.entries)
}
