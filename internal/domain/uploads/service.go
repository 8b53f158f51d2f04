package uploads

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"reptile-husbandry/internal/ports/objstore"

	"github.com/google/uuid"
)

const (
	// MaxFileSize limita cada imagen a 5MB.
	MaxFileSize = 5 << 20
	// MaxCareLogImages limita la cantidad de imágenes por care log.
	MaxCareLogImages = 3
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// allowedTypes mapea content-type permitido => extensión por defecto.
var allowedTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/heic": "heic",
}

type Service struct {
	store objstore.ObjectStore
}

func NewService(store objstore.ObjectStore) *Service {
	return &Service{store: store}
}

// File es un archivo ya leído en memoria, listo para validar y subir.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// UploadCareLogImages valida y sube hasta MaxCareLogImages imágenes,
// devolviendo las URLs públicas en el mismo orden.
func (s *Service) UploadCareLogImages(ctx context.Context, userID string, files []File) ([]string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user is required", ErrInvalidInput)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: at least one file is required", ErrInvalidInput)
	}
	if len(files) > MaxCareLogImages {
		return nil, fmt.Errorf("%w: at most %d images are allowed", ErrInvalidInput, MaxCareLogImages)
	}

	// Validar todo antes de subir nada (sin uploads parciales por archivo inválido).
	for _, f := range files {
		if err := validateFile(f); err != nil {
			return nil, err
		}
	}

	urls := make([]string, 0, len(files))
	for _, f := range files {
		key := fmt.Sprintf("care-logs/%s/%s.%s", userID, uuid.NewString(), fileExt(f))
		url, err := s.store.Put(ctx, key, f.ContentType, f.Data)
		if err != nil {
			return nil, fmt.Errorf("image upload failed: %w", err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func validateFile(f File) error {
	if f.Size > MaxFileSize {
		return fmt.Errorf("%w: file %s exceeds the %dMB limit", ErrInvalidInput, f.Name, MaxFileSize>>20)
	}
	if _, ok := allowedTypes[strings.ToLower(strings.TrimSpace(f.ContentType))]; !ok {
		return fmt.Errorf("%w: content type %s is not allowed", ErrInvalidInput, f.ContentType)
	}
	return nil
}

func fileExt(f File) string {
	if ext := strings.TrimPrefix(path.Ext(f.Name), "."); ext != "" {
		return strings.ToLower(ext)
	}
	return allowedTypes[strings.ToLower(strings.TrimSpace(f.ContentType))]
}
