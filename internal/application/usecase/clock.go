package usecase

import "time"

// Clock fuente de la hora actual; se inyecta para que los cálculos mensuales sean testeables.
type Clock func() time.Time
