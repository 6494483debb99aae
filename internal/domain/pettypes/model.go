package pettypes

// PetType es un tipo/categoría de mascota (dog, cat, bird, ...).
type PetType struct {
	ID   int64
	Name string
}
