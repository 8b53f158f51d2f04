package details

import "errors"

// Candling es el detalle de un registro de ovoscopia.
// Todos los campos son requeridos.
type Candling struct {
	DayAfterLaying     *int `json:"day_after_laying"`
	FertileCount       *int `json:"fertile_count"`
	InfertileCount     *int `json:"infertile_count"`
	StoppedDevelopment *int `json:"stopped_development"`
	TotalViable        *int `json:"total_viable"`
}

func (d Candling) Validate() error {
	if d.DayAfterLaying == nil || *d.DayAfterLaying < 0 {
		return errors.New("day_after_laying is required and must be a non-negative number")
	}
	if d.FertileCount == nil || *d.FertileCount < 0 {
		return errors.New("fertile_count is required and must be a non-negative number")
	}
	if d.InfertileCount == nil || *d.InfertileCount < 0 {
		return errors.New("infertile_count is required and must be a non-negative number")
	}
	if d.StoppedDevelopment == nil || *d.StoppedDevelopment < 0 {
		return errors.New("stopped_development is required and must be a non-negative number")
	}
	if d.TotalViable == nil || *d.TotalViable < 0 {
		return errors.New("total_viable is required and must be a non-negative number")
	}
	return nil
}
