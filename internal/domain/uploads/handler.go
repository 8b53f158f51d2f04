package uploads

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"reptile-husbandry/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/uploads/care-log-images", uploadCareLogImagesHandler(svc))
}

type uploadResponse struct {
	URLs []string `json:"urls"`
}

type uploadErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// uploadCareLogImagesHandler godoc
// @Summary Subir imágenes de care log
// @Description Multipart form, campo "files". Hasta 3 imágenes de 5MB (jpeg/png/webp/heic). Devuelve las URLs públicas para adjuntar en images[] del care log.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Imágenes a subir"
// @Success 201 {object} uploadResponse
// @Failure 400 {object} uploadErrorResponse
// @Failure 401 {string} string "unauthorized"
// @Router /uploads/care-log-images [post]
func uploadCareLogImagesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// 3 archivos de 5MB + overhead del form.
		if err := r.ParseMultipartForm(16 << 20); err != nil {
			writeUploadError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid multipart form")
			return
		}

		var files []File
		if r.MultipartForm != nil {
			for _, fh := range r.MultipartForm.File["files"] {
				src, err := fh.Open()
				if err != nil {
					writeUploadError(w, http.StatusBadRequest, "INVALID_INPUT", "unreadable file")
					return
				}
				data, err := io.ReadAll(io.LimitReader(src, MaxFileSize+1))
				_ = src.Close()
				if err != nil {
					writeUploadError(w, http.StatusBadRequest, "INVALID_INPUT", "unreadable file")
					return
				}
				files = append(files, File{
					Name:        fh.Filename,
					ContentType: fh.Header.Get("Content-Type"),
					Size:        int64(len(data)),
					Data:        data,
				})
			}
		}

		urls, err := svc.UploadCareLogImages(r.Context(), claims.UserID, files)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeUploadError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
				return
			}
			writeUploadError(w, http.StatusBadGateway, "UPSTREAM", "image upload failed")
			return
		}

		writeUploadJSON(w, http.StatusCreated, uploadResponse{URLs: urls})
	}
}

func writeUploadError(w http.ResponseWriter, status int, code, msg string) {
	writeUploadJSON(w, status, uploadErrorResponse{Code: code, Message: msg})
}

func writeUploadJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
