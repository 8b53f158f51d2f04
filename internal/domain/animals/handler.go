package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"reptile-husbandry/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))
		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Patch("/{animalID}", updateAnimalHandler(svc))
	})
}

type createAnimalRequest struct {
	Name            string `json:"name"`
	Species         string `json:"species"`
	Morph           string `json:"morph"`
	Sex             string `json:"sex" enums:"MALE,FEMALE,UNKNOWN"`
	AcquisitionDate string `json:"acquisition_date"` // YYYY-MM-DD opcional
	Notes           string `json:"notes"`
}

type updateAnimalRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name            *string `json:"name"`
	Species         *string `json:"species"`
	Morph           *string `json:"morph"`
	Sex             *string `json:"sex"`
	Status          *string `json:"status"`
	AcquisitionDate *string `json:"acquisition_date"` // YYYY-MM-DD
	Notes           *string `json:"notes"`
}

type animalResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	Name            string     `json:"name"`
	Species         string     `json:"species"`
	Morph           string     `json:"morph,omitempty"`
	Sex             Sex        `json:"sex"`
	AcquisitionDate *time.Time `json:"acquisition_date,omitempty"`
	Status          Status     `json:"status"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type animalErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// createAnimalHandler godoc
// @Summary Registrar animal
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body createAnimalRequest true "Datos del animal"
// @Success 201 {object} animalResponse
// @Failure 400 {object} animalErrorResponse
// @Failure 401 {string} string "unauthorized"
// @Router /animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeAnimalError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid json")
			return
		}

		var acq *time.Time
		if strings.TrimSpace(req.AcquisitionDate) != "" {
			t, err := time.Parse("2006-01-02", req.AcquisitionDate)
			if err != nil {
				writeAnimalError(w, http.StatusBadRequest, "INVALID_INPUT", "acquisition_date must be YYYY-MM-DD")
				return
			}
			acq = &t
		}

		a, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:            req.Name,
			Species:         req.Species,
			Morph:           req.Morph,
			Sex:             req.Sex,
			AcquisitionDate: acq,
			Notes:           req.Notes,
		})
		if err != nil {
			writeAnimalServiceError(w, err)
			return
		}

		writeAnimalJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// listAnimalsHandler godoc
// @Summary Listar mis animales
// @Tags animals
// @Produce json
// @Success 200 {array} animalResponse
// @Failure 401 {string} string "unauthorized"
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			writeAnimalError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		writeAnimalJSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Detalle de un animal
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {object} animalErrorResponse
// @Failure 404 {object} animalErrorResponse
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		a, err := svc.AuthorizeOwner(r.Context(), chi.URLParam(r, "animalID"), claims.UserID)
		if err != nil {
			writeAnimalServiceError(w, err)
			return
		}

		writeAnimalJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// updateAnimalHandler godoc
// @Summary Modificar un animal
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param payload body updateAnimalRequest true "Campos a modificar"
// @Success 200 {object} animalResponse
// @Failure 400 {object} animalErrorResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {object} animalErrorResponse
// @Failure 404 {object} animalErrorResponse
// @Router /animals/{animalID} [patch]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeAnimalError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid json")
			return
		}

		in := UpdateInput{
			Name:    req.Name,
			Species: req.Species,
			Morph:   req.Morph,
			Sex:     req.Sex,
			Status:  req.Status,
			Notes:   req.Notes,
		}
		if req.AcquisitionDate != nil {
			t, err := time.Parse("2006-01-02", *req.AcquisitionDate)
			if err != nil {
				writeAnimalError(w, http.StatusBadRequest, "INVALID_INPUT", "acquisition_date must be YYYY-MM-DD")
				return
			}
			in.AcquisitionDate = &t
		}

		a, err := svc.Update(r.Context(), chi.URLParam(r, "animalID"), claims.UserID, in)
		if err != nil {
			writeAnimalServiceError(w, err)
			return
		}

		writeAnimalJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:              a.ID,
		UserID:          a.UserID,
		Name:            a.Name,
		Species:         a.Species,
		Morph:           a.Morph,
		Sex:             a.Sex,
		AcquisitionDate: a.AcquisitionDate,
		Status:          a.Status,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func writeAnimalServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeAnimalError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
	case errors.Is(err, ErrNotFound):
		writeAnimalError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrForbidden):
		writeAnimalError(w, http.StatusForbidden, "FORBIDDEN", err.Error())
	default:
		writeAnimalError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}

func writeAnimalError(w http.ResponseWriter, status int, code, msg string) {
	writeAnimalJSON(w, status, animalErrorResponse{Code: code, Message: msg})
}

// writeAnimalJSON está duplicado intencionalmente en handlers de distintos
// módulos para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeAnimalJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
