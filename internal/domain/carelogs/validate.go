package carelogs

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"reptile-husbandry/internal/domain/carelogs/details"
)

// validateDetails valida el detalle contra el esquema del tipo declarado.
// El despacho es exhaustivo sobre LogType: agregar un tipo nuevo exige
// agregar su rama acá. Falla con el primer campo inválido (fail-fast).
func validateDetails(t LogType, raw json.RawMessage) error {
	var d interface{ Validate() error }

	switch t {
	case LogFeeding:
		d = &details.Feeding{}
	case LogShedding:
		d = &details.Shedding{}
	case LogDefecation:
		d = &details.Defecation{}
	case LogMating:
		d = &details.Mating{}
	case LogEggLaying:
		d = &details.EggLaying{}
	case LogCandling:
		d = &details.Candling{}
	case LogHatching:
		d = &details.Hatching{}
	default:
		return fmt.Errorf("%w: log_type must be a valid value", ErrInvalidInput)
	}

	if len(raw) == 0 {
		return fmt.Errorf("%w: details is required", ErrInvalidInput)
	}

	if err := json.Unmarshal(raw, d); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return fmt.Errorf("%w: %s must be %s", ErrInvalidInput, typeErr.Field, jsonTypeName(typeErr.Type))
		}
		return fmt.Errorf("%w: details must be a JSON object", ErrInvalidInput)
	}

	if err := d.Validate(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	return nil
}

func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int64, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "a list"
	default:
		return "a string"
	}
}

func validateImages(images []Image) error {
	if len(images) > MaxImages {
		return fmt.Errorf("%w: at most %d images are allowed", ErrInvalidInput, MaxImages)
	}
	for _, img := range images {
		if img.URL == "" {
			return fmt.Errorf("%w: image url is required", ErrInvalidInput)
		}
	}
	return nil
}
