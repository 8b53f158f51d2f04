package carelogs

// LogType define los tipos de registro de cuidado soportados.
// @Enum FEEDING, SHEDDING, DEFECATION, MATING, EGG_LAYING, CANDLING, HATCHING
type LogType string

const (
	LogFeeding    LogType = "FEEDING"
	LogShedding   LogType = "SHEDDING"
	LogDefecation LogType = "DEFECATION"
	LogMating     LogType = "MATING"
	LogEggLaying  LogType = "EGG_LAYING"
	LogCandling   LogType = "CANDLING"
	LogHatching   LogType = "HATCHING"
)

func (t LogType) Valid() bool {
	switch t {
	case LogFeeding, LogShedding, LogDefecation, LogMating,
		LogEggLaying, LogCandling, LogHatching:
		return true
	}
	return false
}

// Chained indica si el tipo forma parte de una cadena de incubación
// y por lo tanto requiere un registro padre (EGG_LAYING).
func (t LogType) Chained() bool {
	return t == LogCandling || t == LogHatching
}

// SortField define el campo de ordenamiento de los listados.
type SortField string

const (
	SortLogDate   SortField = "log_date"
	SortCreatedAt SortField = "created_at"
)

// SortOrder define la dirección del ordenamiento.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)
