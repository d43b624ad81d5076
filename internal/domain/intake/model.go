package intake

import "strings"

// Los valores enteros de PetType, Size y Age son el contrato con el backend
// de mascotas (v1). No renumerar: agregar valores al final.

// PetType viaja como entero en el campo "type".
type PetType int

const (
	PetTypeDog PetType = 1
	PetTypeCat PetType = 2
)

func (t PetType) String() string {
	switch t {
	case PetTypeDog:
		return "DOG"
	case PetTypeCat:
		return "CAT"
	default:
		return ""
	}
}

// Size es el bucket de tamaño derivado del peso en libras.
type Size int

const (
	SizeSmall      Size = 1
	SizeMedium     Size = 2
	SizeLarge      Size = 3
	SizeExtraLarge Size = 4
)

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "SMALL"
	case SizeMedium:
		return "MEDIUM"
	case SizeLarge:
		return "LARGE"
	case SizeExtraLarge:
		return "EXTRA_LARGE"
	default:
		return ""
	}
}

// Age es el bucket de edad derivado de años + meses.
type Age int

const (
	AgePuppyKitten Age = 1
	AgeYoung       Age = 2
	AgeAdult       Age = 3
	AgeSenior      Age = 4
)

func (a Age) String() string {
	switch a {
	case AgePuppyKitten:
		return "PUPPY_KITTEN"
	case AgeYoung:
		return "YOUNG"
	case AgeAdult:
		return "ADULT"
	case AgeSenior:
		return "SENIOR"
	default:
		return ""
	}
}

// Answer es la respuesta tri-estado de los formularios.
// AnswerUnknown cubre vacío y cualquier texto no reconocido.
type Answer int

const (
	AnswerUnknown Answer = iota
	AnswerYes
	AnswerNo
	AnswerUnsure
)

// ParseAnswer normaliza "Yes"/"yes"/" YES " etc. Las dos pantallas usan casing distinto.
func ParseAnswer(s string) Answer {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return AnswerYes
	case "no":
		return AnswerNo
	case "unsure":
		return AnswerUnsure
	default:
		return AnswerUnknown
	}
}

func (a Answer) String() string {
	switch a {
	case AnswerYes:
		return "yes"
	case AnswerNo:
		return "no"
	case AnswerUnsure:
		return "unsure"
	default:
		return ""
	}
}

// Compatibility es como el backend representa la respuesta tri-estado.
// Nunca GetAlong && IsUnsure.
type Compatibility struct {
	GetAlong bool
	IsUnsure bool
}

// Variant identifica qué pantalla armó el formulario.
type Variant string

const (
	// VariantDetails: peso/edad libres, sexo, microchip, castrado.
	VariantDetails Variant = "details"
	// VariantQuick: tamaño/edad preseleccionados por key.
	VariantQuick Variant = "quick"
)

// EntryContext llega desde la navegación previa. El normalizer solo lee PetType.
type EntryContext struct {
	PetType  string `json:"petType"`
	Dates    string `json:"dates"`
	Location string `json:"location"`
}

// Form es el input crudo tal como lo tipeó el usuario.
// Los campos que no aplican a la Variant se ignoran.
type Form struct {
	Variant Variant

	Name string

	// details
	Breed          string
	Weight         string // libras
	AgeYears       string
	AgeMonths      string
	Sex            string // male | female
	MicroChipped   string // yes | no
	SpayedNeutered string // yes | no
	// Se pregunta en pantalla pero el backend no tiene campo para esto.
	FriendlyWithChildren string

	// quick
	SizeKey string // SMALL, MEDIUM, ...
	AgeKey  string // PUPPY_KITTEN, YOUNG, ...

	FriendlyWithDogs string
	FriendlyWithCats string
}

// Record es el payload canónico que consume el servicio de creación de mascotas.
type Record struct {
	Name                string  `json:"name"`
	Type                PetType `json:"type"`
	Size                Size    `json:"size"`
	Age                 Age     `json:"age"`
	GetAlongWithDogs    bool    `json:"getAlongWithDogs"`
	GetAlongWithCats    bool    `json:"getAlongWithCats"`
	IsUnsureWithDogs    bool    `json:"isUnsureWithDogs"`
	IsUnsureWithCats    bool    `json:"isUnsureWithCats"`
	SpecialInstructions string  `json:"specialInstructions"`
	MedicalConditions   string  `json:"medicalConditions"`
	UserID              string  `json:"userId"`
}

// Choice es una opción seleccionable en la pantalla quick.
type Choice struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value int    `json:"value"`
}

type Options struct {
	Sizes []Choice `json:"sizes"`
	Ages  []Choice `json:"ages"`
}
