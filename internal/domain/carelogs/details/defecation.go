package details

import "errors"

// FecesConsistency define la consistencia de las heces.
type FecesConsistency string

const (
	FecesNormal FecesConsistency = "NORMAL"
	FecesSoft   FecesConsistency = "SOFT"
	FecesWatery FecesConsistency = "WATERY"
	FecesHard   FecesConsistency = "HARD"
)

func (c FecesConsistency) Valid() bool {
	switch c {
	case FecesNormal, FecesSoft, FecesWatery, FecesHard:
		return true
	}
	return false
}

// UrateCondition define el estado del urato.
type UrateCondition string

const (
	UrateNormal    UrateCondition = "NORMAL"
	UrateYellowish UrateCondition = "YELLOWISH"
	UrateGreenish  UrateCondition = "GREENISH"
	UrateBloody    UrateCondition = "BLOODY"
)

func (c UrateCondition) Valid() bool {
	switch c {
	case UrateNormal, UrateYellowish, UrateGreenish, UrateBloody:
		return true
	}
	return false
}

// Defecation es el detalle de un registro de defecación.
type Defecation struct {
	FecesPresent     *bool             `json:"feces_present"`
	UratePresent     *bool             `json:"urate_present"`
	FecesConsistency *FecesConsistency `json:"feces_consistency,omitempty"`
	FecesColor       *string           `json:"feces_color,omitempty"`
	UrateCondition   *UrateCondition   `json:"urate_condition,omitempty"`
	Abnormalities    *string           `json:"abnormalities,omitempty"`
}

func (d Defecation) Validate() error {
	if d.FecesPresent == nil {
		return errors.New("feces_present is required and must be a boolean")
	}
	if d.UratePresent == nil {
		return errors.New("urate_present is required and must be a boolean")
	}
	if d.FecesConsistency != nil && !d.FecesConsistency.Valid() {
		return errors.New("feces_consistency must be a valid value")
	}
	if d.UrateCondition != nil && !d.UrateCondition.Valid() {
		return errors.New("urate_condition must be a valid value")
	}
	return nil
}
