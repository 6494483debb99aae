package specialties

// Specialty es una especialidad médica que puede ejercer un veterinario
// (cardiología, cirugía, dermatología, ...).
type Specialty struct {
	ID   int64
	Name string
}
