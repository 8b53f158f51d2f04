package animals

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name            string
	Species         string
	Morph           string
	Sex             string
	AcquisitionDate *time.Time
	Notes           string
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Animal, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Animal{}, fmt.Errorf("%w: user is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Name) == "" {
		return Animal{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Species) == "" {
		return Animal{}, fmt.Errorf("%w: species is required", ErrInvalidInput)
	}

	sex := Sex(strings.TrimSpace(in.Sex))
	if sex == "" {
		sex = SexUnknown
	}
	if !sex.Valid() {
		return Animal{}, fmt.Errorf("%w: sex must be a valid value", ErrInvalidInput)
	}

	now := s.now()
	a := Animal{
		ID:              uuid.NewString(),
		UserID:          userID,
		Name:            strings.TrimSpace(in.Name),
		Species:         strings.TrimSpace(in.Species),
		Morph:           strings.TrimSpace(in.Morph),
		Sex:             sex,
		AcquisitionDate: in.AcquisitionDate,
		Status:          StatusAlive,
		Notes:           strings.TrimSpace(in.Notes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, fmt.Errorf("%w: animal id is required", ErrInvalidInput)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, userID string) ([]Animal, error) {
	return s.repo.ListByOwner(ctx, userID)
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name    *string
	Species *string
	Morph   *string
	Sex     *string
	Status  *string
	Notes   *string

	AcquisitionDate *time.Time
}

// Update aplica un patch parcial al perfil. Solo el dueño puede modificar.
func (s *Service) Update(ctx context.Context, animalID, userID string, in UpdateInput) (Animal, error) {
	a, err := s.AuthorizeOwner(ctx, animalID, userID)
	if err != nil {
		return Animal{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Animal{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
		}
		a.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil {
		if strings.TrimSpace(*in.Species) == "" {
			return Animal{}, fmt.Errorf("%w: species is required", ErrInvalidInput)
		}
		a.Species = strings.TrimSpace(*in.Species)
	}
	if in.Morph != nil {
		a.Morph = strings.TrimSpace(*in.Morph)
	}
	if in.Sex != nil {
		sex := Sex(strings.TrimSpace(*in.Sex))
		if !sex.Valid() {
			return Animal{}, fmt.Errorf("%w: sex must be a valid value", ErrInvalidInput)
		}
		a.Sex = sex
	}
	if in.Status != nil {
		st := Status(strings.TrimSpace(*in.Status))
		if !st.Valid() {
			return Animal{}, fmt.Errorf("%w: status must be a valid value", ErrInvalidInput)
		}
		a.Status = st
	}
	if in.AcquisitionDate != nil {
		a.AcquisitionDate = in.AcquisitionDate
	}
	if in.Notes != nil {
		a.Notes = strings.TrimSpace(*in.Notes)
	}

	a.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}
