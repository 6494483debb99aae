package vetspecialties

// Key es la clave compuesta (vetID, specialtyID). El par ES la identidad:
// no hay id sustituto. Al ser un value type comparable sirve directo como
// clave de map y evita el bug de pasar los dos ids sueltos en orden cambiado.
type Key struct {
	VetID       int64
	SpecialtyID int64
}

// VetSpecialty es la entidad de asociación muchos-a-muchos entre Vet y
// Specialty. No tiene atributos más allá de la clave. No se valida que
// vetID/specialtyID apunten a filas existentes: un par colgante es válido.
type VetSpecialty struct {
	VetID       int64
	SpecialtyID int64
}

func (vs VetSpecialty) ID() Key {
	return Key{VetID: vs.VetID, SpecialtyID: vs.SpecialtyID}
}
