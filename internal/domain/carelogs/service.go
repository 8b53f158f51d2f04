package carelogs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"reptile-husbandry/internal/domain/animals"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
)

// OwnershipOracle confirma que el animal existe y pertenece al usuario.
// Se consulta en cada llamada (sin cache): es la autoridad de ownership.
type OwnershipOracle interface {
	AuthorizeOwner(ctx context.Context, animalID, userID string) (animals.Animal, error)
}

type Service struct {
	repo   Repository
	oracle OwnershipOracle
	now    func() time.Time
}

func NewService(repo Repository, oracle OwnershipOracle) *Service {
	return &Service{
		repo:   repo,
		oracle: oracle,
		now:    time.Now,
	}
}

type CreateInput struct {
	LogType     LogType
	LogDate     time.Time
	Details     json.RawMessage
	ParentLogID string
	Images      []Image
	Notes       string
}

// Create registra un care log. Orden de chequeos (corta en el primero
// que falla, sin efectos hasta pasar todos):
// ownership del animal → detalle válido para el tipo → linaje → persistir.
func (s *Service) Create(ctx context.Context, userID, animalID string, in CreateInput) (CareLog, error) {
	userID = strings.TrimSpace(userID)
	animalID = strings.TrimSpace(animalID)
	if userID == "" || animalID == "" {
		return CareLog{}, fmt.Errorf("%w: user and animal are required", ErrInvalidInput)
	}
	if !in.LogType.Valid() {
		return CareLog{}, fmt.Errorf("%w: log_type must be a valid value", ErrInvalidInput)
	}
	if in.LogDate.IsZero() {
		return CareLog{}, fmt.Errorf("%w: log_date is required", ErrInvalidInput)
	}

	if _, err := s.oracle.AuthorizeOwner(ctx, animalID, userID); err != nil {
		return CareLog{}, translateOwnershipErr(err)
	}

	if err := validateDetails(in.LogType, in.Details); err != nil {
		return CareLog{}, err
	}
	if err := validateImages(in.Images); err != nil {
		return CareLog{}, err
	}

	if err := s.checkLineage(ctx, userID, in.LogType, strings.TrimSpace(in.ParentLogID)); err != nil {
		return CareLog{}, err
	}

	now := s.now()
	c := CareLog{
		ID:          uuid.NewString(),
		AnimalID:    animalID,
		UserID:      userID,
		LogType:     in.LogType,
		LogDate:     in.LogDate,
		ParentLogID: strings.TrimSpace(in.ParentLogID),
		Details:     in.Details,
		Images:      in.Images,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return CareLog{}, err
	}
	return c, nil
}

// GetByID devuelve el registro solo si pertenece al usuario.
// NotFound y Forbidden nunca se mezclan: inexistente => NotFound,
// existente de otro usuario => Forbidden.
func (s *Service) GetByID(ctx context.Context, userID, logID string) (CareLog, error) {
	return s.loadOwned(ctx, userID, logID)
}

type UpdateInput struct {
	LogType *LogType
	LogDate *time.Time
	// nil = no tocar el detalle existente.
	Details json.RawMessage
	Images  *[]Image
	Notes   *string
}

// Update aplica un patch parcial. Si cambia el tipo o el detalle, se
// revalida el par resultante tipo/detalle (nunca contra el tipo viejo).
// El linaje no se revalida en updates.
func (s *Service) Update(ctx context.Context, userID, logID string, in UpdateInput) (CareLog, error) {
	c, err := s.loadOwned(ctx, userID, logID)
	if err != nil {
		return CareLog{}, err
	}

	if in.LogType != nil || in.Details != nil {
		t := c.LogType
		if in.LogType != nil {
			t = *in.LogType
		}
		raw := c.Details
		if in.Details != nil {
			raw = in.Details
		}
		if err := validateDetails(t, raw); err != nil {
			return CareLog{}, err
		}
		c.LogType = t
		c.Details = raw
	}

	if in.LogDate != nil {
		if in.LogDate.IsZero() {
			return CareLog{}, fmt.Errorf("%w: log_date is required", ErrInvalidInput)
		}
		c.LogDate = *in.LogDate
	}
	if in.Images != nil {
		if err := validateImages(*in.Images); err != nil {
			return CareLog{}, err
		}
		c.Images = *in.Images
	}
	if in.Notes != nil {
		c.Notes = strings.TrimSpace(*in.Notes)
	}

	c.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, c); err != nil {
		return CareLog{}, err
	}
	return c, nil
}

type RemoveResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// Remove borra el registro (hard delete). Una puesta con registros de
// ovoscopia/eclosión colgando no se puede borrar: primero los hijos.
func (s *Service) Remove(ctx context.Context, userID, logID string) (RemoveResult, error) {
	c, err := s.loadOwned(ctx, userID, logID)
	if err != nil {
		return RemoveResult{}, err
	}

	if c.LogType == LogEggLaying {
		has, err := s.repo.HasChildren(ctx, c.ID)
		if err != nil {
			return RemoveResult{}, err
		}
		if has {
			return RemoveResult{}, fmt.Errorf("%w: log has child logs", ErrInvalidInput)
		}
	}

	if err := s.repo.Delete(ctx, c.ID); err != nil {
		return RemoveResult{}, err
	}
	return RemoveResult{ID: c.ID, Deleted: true}, nil
}

type ListQuery struct {
	Types []LogType
	From  *time.Time
	To    *time.Time

	Page  int
	Limit int
	Sort  string
	Order string
}

type ListResult struct {
	Data []CareLog
	Meta PageMeta
}

// ListByAnimal lista los registros de un animal del usuario.
// La autorización es a nivel animal, antes de tocar el repo de logs.
func (s *Service) ListByAnimal(ctx context.Context, userID, animalID string, q ListQuery) (ListResult, error) {
	animalID = strings.TrimSpace(animalID)
	if _, err := s.oracle.AuthorizeOwner(ctx, animalID, userID); err != nil {
		return ListResult{}, translateOwnershipErr(err)
	}
	return s.list(ctx, ListFilter{AnimalID: animalID}, q)
}

// ListByUser lista todos los registros del usuario, de todos sus animales.
func (s *Service) ListByUser(ctx context.Context, userID string, q ListQuery) (ListResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ListResult{}, fmt.Errorf("%w: user is required", ErrInvalidInput)
	}
	return s.list(ctx, ListFilter{UserID: userID}, q)
}

func (s *Service) list(ctx context.Context, f ListFilter, q ListQuery) (ListResult, error) {
	page, limit := normalizePage(q.Page, q.Limit)
	f.Types = q.Types
	f.From = q.From
	f.To = q.To
	f.Sort, f.Order = normalizeSort(q.Sort, q.Order)

	items, total, err := s.repo.List(ctx, f, PageRequest{
		Offset: (page - 1) * limit,
		Limit:  limit,
	})
	if err != nil {
		return ListResult{}, err
	}

	return ListResult{
		Data: items,
		Meta: buildPageMeta(page, limit, total),
	}, nil
}

func (s *Service) loadOwned(ctx context.Context, userID, logID string) (CareLog, error) {
	userID = strings.TrimSpace(userID)
	logID = strings.TrimSpace(logID)
	if userID == "" || logID == "" {
		return CareLog{}, fmt.Errorf("%w: user and log id are required", ErrInvalidInput)
	}

	c, err := s.repo.GetByID(ctx, logID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return CareLog{}, fmt.Errorf("%w: care log not found", ErrNotFound)
		}
		return CareLog{}, err
	}
	if c.UserID != userID {
		return CareLog{}, fmt.Errorf("%w: no access to care log", ErrForbidden)
	}
	return c, nil
}

func translateOwnershipErr(err error) error {
	switch {
	case errors.Is(err, animals.ErrNotFound):
		return fmt.Errorf("%w: animal not found", ErrNotFound)
	case errors.Is(err, animals.ErrForbidden):
		return fmt.Errorf("%w: no access to animal", ErrForbidden)
	}
	return err
}
