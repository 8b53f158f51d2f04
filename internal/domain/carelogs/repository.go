package carelogs

import (
	"context"
	"time"
)

// ListFilter filtra registros por animal o por usuario, tipos y rango
// de fechas (inclusivo) sobre log_date.
type ListFilter struct {
	AnimalID string
	UserID   string

	Types []LogType
	From  *time.Time
	To    *time.Time

	Sort  SortField
	Order SortOrder
}

// PageRequest es la ventana de paginación ya normalizada.
type PageRequest struct {
	Offset int
	Limit  int
}

// Repository es el contrato de persistencia de care logs.
// GetByID devuelve ErrNotFound si el registro no existe; List devuelve
// además el total de registros que matchean el filtro (sin paginar).
type Repository interface {
	Create(ctx context.Context, c CareLog) error
	GetByID(ctx context.Context, id string) (CareLog, error)
	List(ctx context.Context, f ListFilter, p PageRequest) ([]CareLog, int, error)
	Update(ctx context.Context, c CareLog) error
	Delete(ctx context.Context, id string) error

	// HasChildren indica si algún registro referencia a id como parent_log_id.
	HasChildren(ctx context.Context, id string) (bool, error)
}
