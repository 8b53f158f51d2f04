package details

import (
	"errors"
	"time"
)

// MatingSuccess define el resultado de un intento de apareamiento.
type MatingSuccess string

const (
	MatingSuccessful MatingSuccess = "SUCCESS"
	MatingAttempt    MatingSuccess = "ATTEMPT"
	MatingRefused    MatingSuccess = "REFUSED"
	MatingUnknown    MatingSuccess = "UNKNOWN"
)

func (s MatingSuccess) Valid() bool {
	switch s {
	case MatingSuccessful, MatingAttempt, MatingRefused, MatingUnknown:
		return true
	}
	return false
}

// Mating es el detalle de un registro de apareamiento.
type Mating struct {
	MatingSuccess   *MatingSuccess `json:"mating_success"`
	PartnerID       *string        `json:"partner_id,omitempty"`
	PartnerName     *string        `json:"partner_name,omitempty"`
	DurationMinutes *float64       `json:"duration_minutes,omitempty"`
	BehaviorNotes   *string        `json:"behavior_notes,omitempty"`
	// Fecha esperada de puesta, formato YYYY-MM-DD.
	ExpectedLayingDate *string `json:"expected_laying_date,omitempty"`
}

func (d Mating) Validate() error {
	if d.MatingSuccess == nil || !d.MatingSuccess.Valid() {
		return errors.New("mating_success is required and must be a valid value")
	}
	if d.ExpectedLayingDate != nil {
		if _, err := time.Parse("2006-01-02", *d.ExpectedLayingDate); err != nil {
			return errors.New("expected_laying_date must be a valid date (YYYY-MM-DD)")
		}
	}
	return nil
}
