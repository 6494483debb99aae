package visits

import "time"

// Visit registra una atención médica de una mascota. PetID y VisitDate son
// obligatorios; VetID, Description y Cost pueden faltar (aún no conocidos).
// Se referencia por id, sin cargar el grafo de objetos.
type Visit struct {
	ID          int64
	PetID       int64
	VetID       *int64
	VisitDate   time.Time // solo fecha, normalizada a medianoche UTC
	Description string
	Cost        *float64
}

// DateOnly descarta hora y zona: las visitas se comparan por fecha calendario.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
