package details

import "errors"

// Hatching es el detalle de un registro de eclosión.
type Hatching struct {
	HatchedCount *int     `json:"hatched_count"`
	FailedCount  *int     `json:"failed_count"`
	OffspringIDs []string `json:"offspring_ids,omitempty"`
	HatchNotes   *string  `json:"hatch_notes,omitempty"`
}

func (d Hatching) Validate() error {
	if d.HatchedCount == nil || *d.HatchedCount < 0 {
		return errors.New("hatched_count is required and must be a non-negative number")
	}
	if d.FailedCount == nil || *d.FailedCount < 0 {
		return errors.New("failed_count is required and must be a non-negative number")
	}
	return nil
}
