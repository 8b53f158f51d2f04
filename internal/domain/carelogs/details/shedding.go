package details

import "errors"

// ShedCompletion define qué tan completa fue la muda.
type ShedCompletion string

const (
	ShedComplete ShedCompletion = "COMPLETE"
	ShedPartial  ShedCompletion = "PARTIAL"
	ShedRetained ShedCompletion = "RETAINED"
)

func (c ShedCompletion) Valid() bool {
	switch c {
	case ShedComplete, ShedPartial, ShedRetained:
		return true
	}
	return false
}

// Shedding es el detalle de un registro de muda.
type Shedding struct {
	ShedCompletion   *ShedCompletion `json:"shed_completion"`
	ProblemAreas     []string        `json:"problem_areas,omitempty"`
	AssistanceNeeded *bool           `json:"assistance_needed,omitempty"`
	AssistanceMethod *string         `json:"assistance_method,omitempty"`
	HumidityLevel    *float64        `json:"humidity_level,omitempty"`
}

func (d Shedding) Validate() error {
	if d.ShedCompletion == nil || !d.ShedCompletion.Valid() {
		return errors.New("shed_completion is required and must be a valid value")
	}
	return nil
}
