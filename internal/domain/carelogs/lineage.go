package carelogs

import (
	"context"
	"errors"
	"fmt"
)

// checkLineage aplica las reglas de linaje de la cadena de incubación
// (EGG_LAYING → CANDLING/HATCHING), en este orden:
//   - tipo encadenado sin padre => InvalidInput
//   - tipo hoja con padre => InvalidInput
//   - padre inexistente => NotFound
//   - padre de otro usuario => Forbidden
//   - padre que no es EGG_LAYING => InvalidInput
//
// La cadena tiene profundidad fija de un salto: un HATCHING no puede
// ser padre de nada.
func (s *Service) checkLineage(ctx context.Context, userID string, t LogType, parentID string) error {
	if t.Chained() {
		if parentID == "" {
			return fmt.Errorf("%w: parent_log_id is required for %s logs", ErrInvalidInput, t)
		}
	} else if parentID != "" {
		return fmt.Errorf("%w: parent_log_id is not allowed for %s logs", ErrInvalidInput, t)
	}

	if parentID == "" {
		return nil
	}

	parent, err := s.repo.GetByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: parent log not found", ErrNotFound)
		}
		return err
	}

	if parent.UserID != userID {
		return fmt.Errorf("%w: no access to parent log", ErrForbidden)
	}
	if parent.LogType != LogEggLaying {
		return fmt.Errorf("%w: parent of %s must be an EGG_LAYING log", ErrInvalidInput, t)
	}
	return nil
}
