package animals

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// AuthorizeOwner verifica existencia y ownership de un animal.
// Es el "oráculo" que consume el módulo de care logs antes de escribir:
//   - animal inexistente => ErrNotFound
//   - animal de otro usuario => ErrForbidden
//
// Se revalida en cada llamada; no hay cache entre requests.
func (s *Service) AuthorizeOwner(ctx context.Context, animalID, userID string) (Animal, error) {
	animalID = strings.TrimSpace(animalID)
	userID = strings.TrimSpace(userID)
	if animalID == "" || userID == "" {
		return Animal{}, fmt.Errorf("%w: animal and user are required", ErrInvalidInput)
	}

	a, err := s.repo.GetByID(ctx, animalID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Animal{}, fmt.Errorf("%w: animal not found", ErrNotFound)
		}
		return Animal{}, err
	}
	if a.UserID != userID {
		return Animal{}, fmt.Errorf("%w: no access to animal", ErrForbidden)
	}
	return a, nil
}
