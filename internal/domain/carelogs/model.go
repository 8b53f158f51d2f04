package carelogs

import (
	"encoding/json"
	"time"
)

// MaxImages limita la cantidad de imágenes adjuntas por registro.
const MaxImages = 3

// Image es una referencia a una imagen ya subida (las URLs las produce
// el módulo de uploads; acá solo se almacenan).
type Image struct {
	URL     string `json:"url"`
	Order   int    `json:"order"`
	Caption string `json:"caption,omitempty"`
}

// CareLog es un registro de cuidado de un animal.
// user_id y animal_id se estampan al crear y nunca se reasignan.
type CareLog struct {
	ID       string
	AnimalID string
	UserID   string

	LogType LogType
	LogDate time.Time

	// Solo para tipos encadenados (CANDLING / HATCHING); referencia
	// a un registro EGG_LAYING del mismo usuario.
	ParentLogID string

	// Detalle semi-estructurado; su forma depende de LogType y se
	// valida contra el esquema del tipo en cada escritura.
	Details json.RawMessage

	Images []Image
	Notes  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
