package animals

import "time"

// Sex define el sexo del animal.
// @Enum MALE, FEMALE, UNKNOWN
type Sex string

const (
	SexMale    Sex = "MALE"
	SexFemale  Sex = "FEMALE"
	SexUnknown Sex = "UNKNOWN"
)

func (s Sex) Valid() bool {
	switch s {
	case SexMale, SexFemale, SexUnknown:
		return true
	}
	return false
}

// Status define el estado del animal.
type Status string

const (
	StatusAlive       Status = "ALIVE"
	StatusDeceased    Status = "DECEASED"
	StatusTransferred Status = "TRANSFERRED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAlive, StatusDeceased, StatusTransferred:
		return true
	}
	return false
}

// Animal es un individuo registrado por un usuario.
// Los care logs referencian animales por ID; el ownership vive acá.
type Animal struct {
	ID     string
	UserID string

	Name    string
	Species string // etiqueta de especie (el árbol taxonómico es otro subsistema)
	Morph   string
	Sex     Sex

	AcquisitionDate *time.Time
	Status          Status
	Notes           string

	CreatedAt time.Time
	UpdatedAt time.Time
}
