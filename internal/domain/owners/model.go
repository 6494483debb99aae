package owners

// Owner representa al propietario de una mascota registrada en la clínica.
// El ID lo asigna el store al crear y es inmutable después.
type Owner struct {
	ID        int64
	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string
}
