package details

import (
	"errors"
	"time"
)

// IncubationMethod define cómo se incubará la puesta.
type IncubationMethod string

const (
	IncubationIncubator IncubationMethod = "INCUBATOR"
	IncubationMaternal  IncubationMethod = "MATERNAL"
	IncubationNatural   IncubationMethod = "NATURAL"
)

func (m IncubationMethod) Valid() bool {
	switch m {
	case IncubationIncubator, IncubationMaternal, IncubationNatural:
		return true
	}
	return false
}

// EggLaying es el detalle de un registro de puesta.
// Es el único tipo que puede ser padre de CANDLING / HATCHING.
type EggLaying struct {
	EggCount           *int              `json:"egg_count"`
	IncubationPlanned  *bool             `json:"incubation_planned"`
	FertileCount       *int              `json:"fertile_count,omitempty"`
	InfertileCount     *int              `json:"infertile_count,omitempty"`
	ClutchNumber       *int              `json:"clutch_number,omitempty"`
	IncubationMethod   *IncubationMethod `json:"incubation_method,omitempty"`
	IncubationTemp     *float64          `json:"incubation_temp,omitempty"`
	IncubationHumidity *float64          `json:"incubation_humidity,omitempty"`
	// Fecha esperada de eclosión, formato YYYY-MM-DD.
	ExpectedHatchDate *string `json:"expected_hatch_date,omitempty"`
}

func (d EggLaying) Validate() error {
	if d.EggCount == nil || *d.EggCount < 0 {
		return errors.New("egg_count is required and must be a non-negative number")
	}
	if d.IncubationPlanned == nil {
		return errors.New("incubation_planned is required and must be a boolean")
	}
	if d.FertileCount != nil && *d.FertileCount < 0 {
		return errors.New("fertile_count must be a non-negative number")
	}
	if d.InfertileCount != nil && *d.InfertileCount < 0 {
		return errors.New("infertile_count must be a non-negative number")
	}
	if d.ClutchNumber != nil && *d.ClutchNumber < 0 {
		return errors.New("clutch_number must be a non-negative number")
	}
	if d.IncubationMethod != nil && !d.IncubationMethod.Valid() {
		return errors.New("incubation_method must be a valid value")
	}
	if d.ExpectedHatchDate != nil {
		if _, err := time.Parse("2006-01-02", *d.ExpectedHatchDate); err != nil {
			return errors.New("expected_hatch_date must be a valid date (YYYY-MM-DD)")
		}
	}
	return nil
}
