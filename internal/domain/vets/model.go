package vets

// Vet es un veterinario de la clínica. Sus especialidades se modelan
// aparte, en el módulo vetspecialties.
type Vet struct {
	ID        int64
	FirstName string
	LastName  string
}
