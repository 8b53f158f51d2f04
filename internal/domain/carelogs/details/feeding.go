package details

import (
	"errors"
	"strings"
)

// FoodType define los tipos de alimento soportados.
// @Enum LIVE_INSECT, FROZEN_INSECT, LIVE_RODENT, FROZEN_RODENT, VEGETABLE, FRUIT, EGG, FISH, COMMERCIAL_DIET, OTHER
type FoodType string

const (
	FoodLiveInsect     FoodType = "LIVE_INSECT"
	FoodFrozenInsect   FoodType = "FROZEN_INSECT"
	FoodLiveRodent     FoodType = "LIVE_RODENT"
	FoodFrozenRodent   FoodType = "FROZEN_RODENT"
	FoodVegetable      FoodType = "VEGETABLE"
	FoodFruit          FoodType = "FRUIT"
	FoodEgg            FoodType = "EGG"
	FoodFish           FoodType = "FISH"
	FoodCommercialDiet FoodType = "COMMERCIAL_DIET"
	FoodOther          FoodType = "OTHER"
)

func (t FoodType) Valid() bool {
	switch t {
	case FoodLiveInsect, FoodFrozenInsect, FoodLiveRodent, FoodFrozenRodent,
		FoodVegetable, FoodFruit, FoodEgg, FoodFish, FoodCommercialDiet, FoodOther:
		return true
	}
	return false
}

// Unit define la unidad de la cantidad de alimento.
type Unit string

const (
	UnitGram     Unit = "G"
	UnitKilogram Unit = "KG"
	UnitMillilit Unit = "ML"
	UnitCount    Unit = "COUNT"
)

func (u Unit) Valid() bool {
	switch u {
	case UnitGram, UnitKilogram, UnitMillilit, UnitCount:
		return true
	}
	return false
}

// FeedingResponse define cómo reaccionó el animal a la comida.
type FeedingResponse string

const (
	ResponseImmediate    FeedingResponse = "IMMEDIATE"
	ResponseHesitant     FeedingResponse = "HESITANT"
	ResponseRefused      FeedingResponse = "REFUSED"
	ResponseRegurgitated FeedingResponse = "REGURGITATED"
)

func (r FeedingResponse) Valid() bool {
	switch r {
	case ResponseImmediate, ResponseHesitant, ResponseRefused, ResponseRegurgitated:
		return true
	}
	return false
}

// FeedingMethod define cómo se ofreció la comida.
type FeedingMethod string

const (
	MethodTongs       FeedingMethod = "TONGS"
	MethodBowl        FeedingMethod = "BOWL"
	MethodFreeRelease FeedingMethod = "FREE_RELEASE"
	MethodAssist      FeedingMethod = "ASSIST"
)

func (m FeedingMethod) Valid() bool {
	switch m {
	case MethodTongs, MethodBowl, MethodFreeRelease, MethodAssist:
		return true
	}
	return false
}

// Feeding es el detalle de un registro de alimentación.
// Campos requeridos como punteros para distinguir "ausente" de zero-value.
type Feeding struct {
	FoodType        *FoodType        `json:"food_type"`
	FoodItem        *string          `json:"food_item"`
	Quantity        *float64         `json:"quantity,omitempty"`
	Unit            *Unit            `json:"unit,omitempty"`
	Supplements     []string         `json:"supplements,omitempty"`
	FeedingResponse *FeedingResponse `json:"feeding_response,omitempty"`
	FeedingMethod   *FeedingMethod   `json:"feeding_method,omitempty"`
}

func (d Feeding) Validate() error {
	if d.FoodType == nil || !d.FoodType.Valid() {
		return errors.New("food_type is required and must be a valid value")
	}
	if d.FoodItem == nil || strings.TrimSpace(*d.FoodItem) == "" {
		return errors.New("food_item is required and must be a non-empty string")
	}
	if d.Quantity != nil && *d.Quantity < 0 {
		return errors.New("quantity must be a non-negative number")
	}
	if d.Unit != nil && !d.Unit.Valid() {
		return errors.New("unit must be a valid value")
	}
	if d.FeedingResponse != nil && !d.FeedingResponse.Valid() {
		return errors.New("feeding_response must be a valid value")
	}
	if d.FeedingMethod != nil && !d.FeedingMethod.Valid() {
		return errors.New("feeding_method must be a valid value")
	}
	return nil
}
