// Package ratelimit limita peticiones por clave en ventanas fijas, con Redis o en memoria.
package ratelimit

import "time"

// Limiter decide si una clave puede consumir una petición más dentro de la ventana.
type Limiter interface {
	Allow(key string, limit int, window time.Duration) Decision
	Close()
}

// Decision resultado de Allow.
type Decision struct {
	Allowed   bool
	Count     int
	WindowEnd time.Time
}

// Remaining peticiones que quedan en la ventana actual.
func (d Decision) Remaining(limit int) int {
	if r := limit - d.Count; r > 0 {
		return r
	}
	return 0
}
