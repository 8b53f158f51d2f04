package objstore

import "context"

// ObjectStore sube un objeto y devuelve su URL pública.
type ObjectStore interface {
	Put(ctx context.Context, path, contentType string, data []byte) (string, error)
}
