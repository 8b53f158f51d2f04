package carelogs

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"reptile-husbandry/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals/{animalID}/care-logs", func(ar chi.Router) {
		ar.Post("/", createCareLogHandler(svc))
		ar.Get("/", listByAnimalHandler(svc))
	})

	r.Route("/care-logs", func(cr chi.Router) {
		cr.Get("/", listByUserHandler(svc))
		cr.Get("/{logID}", getCareLogHandler(svc))
		cr.Patch("/{logID}", updateCareLogHandler(svc))
		cr.Delete("/{logID}", deleteCareLogHandler(svc))
	})
}

// createCareLogRequest es el cuerpo para registrar un care log.
type createCareLogRequest struct {
	LogType     string          `json:"log_type" enums:"FEEDING,SHEDDING,DEFECATION,MATING,EGG_LAYING,CANDLING,HATCHING"`
	LogDate     string          `json:"log_date"` // RFC3339
	Details     json.RawMessage `json:"details"`
	ParentLogID string          `json:"parent_log_id,omitempty"`
	Images      []Image         `json:"images,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

type updateCareLogRequest struct {
	// Punteros / raw nil para PATCH real: ausente = no tocar.
	LogType *string         `json:"log_type"`
	LogDate *string         `json:"log_date"` // RFC3339
	Details json.RawMessage `json:"details"`
	Images  *[]Image        `json:"images"`
	Notes   *string         `json:"notes"`
}

// careLogResponse representa un care log devuelto por la API.
type careLogResponse struct {
	ID          string          `json:"id"`
	AnimalID    string          `json:"animal_id"`
	UserID      string          `json:"user_id"`
	LogType     LogType         `json:"log_type"`
	LogDate     time.Time       `json:"log_date"`
	ParentLogID string          `json:"parent_log_id,omitempty"`
	Details     json.RawMessage `json:"details"`
	Images      []Image         `json:"images,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type careLogListResponse struct {
	Data       []careLogResponse `json:"data"`
	Pagination PageMeta          `json:"pagination"`
}

// errorResponse lleva un código estable + razón legible.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// createCareLogHandler godoc
// @Summary Registrar care log
// @Description Crea un registro de cuidado para el animal indicado. El detalle debe cumplir el esquema del log_type; CANDLING/HATCHING requieren parent_log_id de un EGG_LAYING propio.
// @Tags care-logs
// @Accept json
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param payload body createCareLogRequest true "Datos del registro; log_date en RFC3339"
// @Success 201 {object} careLogResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /animals/{animalID}/care-logs [post]
func createCareLogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createCareLogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid json")
			return
		}

		logDate, err := parseDateTime(req.LogDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_INPUT", "log_date must be RFC3339 or YYYY-MM-DD")
			return
		}

		c, err := svc.Create(r.Context(), claims.UserID, chi.URLParam(r, "animalID"), CreateInput{
			LogType:     LogType(strings.TrimSpace(req.LogType)),
			LogDate:     logDate,
			Details:     req.Details,
			ParentLogID: req.ParentLogID,
			Images:      req.Images,
			Notes:       req.Notes,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toCareLogResponse(c))
	}
}

// listByAnimalHandler godoc
// @Summary Listar care logs de un animal
// @Description Lista paginada de los registros de un animal propio. Filtros: log_type (CSV), from_date/to_date (inclusivos). Orden: sort=log_date|created_at, order=asc|desc (default log_date desc).
// @Tags care-logs
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param log_type query string false "Tipos CSV (ej: FEEDING,SHEDDING)"
// @Param from_date query string false "Fecha mínima log_date"
// @Param to_date query string false "Fecha máxima log_date"
// @Param page query int false "Página 1-based (default 1)"
// @Param limit query int false "Tamaño de página 1-100 (default 20)"
// @Param sort query string false "log_date | created_at"
// @Param order query string false "asc | desc"
// @Success 200 {object} careLogListResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /animals/{animalID}/care-logs [get]
func listByAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		q, err := parseListQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
			return
		}

		res, err := svc.ListByAnimal(r.Context(), claims.UserID, chi.URLParam(r, "animalID"), q)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toListResponse(res))
	}
}

// listByUserHandler godoc
// @Summary Listar mis care logs
// @Description Lista paginada de todos los registros del usuario autenticado, con los mismos filtros que el listado por animal.
// @Tags care-logs
// @Produce json
// @Param log_type query string false "Tipos CSV (ej: FEEDING,SHEDDING)"
// @Param from_date query string false "Fecha mínima log_date"
// @Param to_date query string false "Fecha máxima log_date"
// @Param page query int false "Página 1-based (default 1)"
// @Param limit query int false "Tamaño de página 1-100 (default 20)"
// @Param sort query string false "log_date | created_at"
// @Param order query string false "asc | desc"
// @Success 200 {object} careLogListResponse
// @Failure 401 {string} string "unauthorized"
// @Router /care-logs [get]
func listByUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		q, err := parseListQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
			return
		}

		res, err := svc.ListByUser(r.Context(), claims.UserID, q)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toListResponse(res))
	}
}

// getCareLogHandler godoc
// @Summary Detalle de un care log
// @Tags care-logs
// @Produce json
// @Param logID path string true "ID del registro"
// @Success 200 {object} careLogResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /care-logs/{logID} [get]
func getCareLogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		c, err := svc.GetByID(r.Context(), claims.UserID, chi.URLParam(r, "logID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toCareLogResponse(c))
	}
}

// updateCareLogHandler godoc
// @Summary Modificar un care log
// @Description Patch parcial. Si se toca log_type o details se revalida el par resultante contra el esquema del tipo.
// @Tags care-logs
// @Accept json
// @Produce json
// @Param logID path string true "ID del registro"
// @Param payload body updateCareLogRequest true "Campos a modificar"
// @Success 200 {object} careLogResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /care-logs/{logID} [patch]
func updateCareLogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateCareLogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid json")
			return
		}

		in := UpdateInput{
			Details: req.Details,
			Images:  req.Images,
			Notes:   req.Notes,
		}
		if req.LogType != nil {
			t := LogType(strings.TrimSpace(*req.LogType))
			in.LogType = &t
		}
		if req.LogDate != nil {
			d, err := parseDateTime(*req.LogDate)
			if err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_INPUT", "log_date must be RFC3339 or YYYY-MM-DD")
				return
			}
			in.LogDate = &d
		}

		c, err := svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "logID"), in)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toCareLogResponse(c))
	}
}

// deleteCareLogHandler godoc
// @Summary Borrar un care log
// @Description Hard delete. Un EGG_LAYING con registros hijos (CANDLING/HATCHING) no se puede borrar.
// @Tags care-logs
// @Produce json
// @Param logID path string true "ID del registro"
// @Success 200 {object} RemoveResult
// @Failure 400 {object} errorResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /care-logs/{logID} [delete]
func deleteCareLogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		res, err := svc.Remove(r.Context(), claims.UserID, chi.URLParam(r, "logID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}

func parseListQuery(r *http.Request) (ListQuery, error) {
	q := ListQuery{}
	qs := r.URL.Query()

	// log_type=FEEDING,SHEDDING
	if v := strings.TrimSpace(qs.Get("log_type")); v != "" {
		parts := strings.Split(v, ",")
		out := make([]LogType, 0, len(parts))
		for _, p := range parts {
			t := LogType(strings.TrimSpace(p))
			if t == "" {
				continue
			}
			out = append(out, t)
		}
		q.Types = out
	}

	if v := strings.TrimSpace(qs.Get("from_date")); v != "" {
		t, err := parseDateTime(v)
		if err != nil {
			return ListQuery{}, errors.New("from_date must be RFC3339 or YYYY-MM-DD")
		}
		q.From = &t
	}
	if v := strings.TrimSpace(qs.Get("to_date")); v != "" {
		t, err := parseDateTime(v)
		if err != nil {
			return ListQuery{}, errors.New("to_date must be RFC3339 or YYYY-MM-DD")
		}
		q.To = &t
	}

	if v := qs.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.Page = n
		}
	}
	if v := qs.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.Limit = n
		}
	}

	q.Sort = qs.Get("sort")
	q.Order = qs.Get("order")

	return q, nil
}

// parseDateTime acepta RFC3339 o fecha simple YYYY-MM-DD.
func parseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func toCareLogResponse(c CareLog) careLogResponse {
	return careLogResponse{
		ID:          c.ID,
		AnimalID:    c.AnimalID,
		UserID:      c.UserID,
		LogType:     c.LogType,
		LogDate:     c.LogDate,
		ParentLogID: c.ParentLogID,
		Details:     c.Details,
		Images:      c.Images,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toListResponse(res ListResult) careLogListResponse {
	out := make([]careLogResponse, 0, len(res.Data))
	for _, c := range res.Data {
		out = append(out, toCareLogResponse(c))
	}
	return careLogListResponse{Data: out, Pagination: res.Meta}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrForbidden):
		writeError(w, http.StatusForbidden, "FORBIDDEN", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
