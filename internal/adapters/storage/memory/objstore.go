package memory

import (
	"context"
	"sync"

	"reptile-husbandry/internal/ports/objstore"
)

// ObjectStore guarda objetos en memoria y devuelve URLs ficticias.
// Sirve para desarrollo local sin bucket configurado.
type ObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewObjectStore() *ObjectStore {
	return &ObjectStore{objects: make(map[string][]byte)}
}

var _ objstore.ObjectStore = (*ObjectStore)(nil)

func (s *ObjectStore) Put(ctx context.Context, path, contentType string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(data))
	copy(cp, data)
	s.objects[path] = cp

	return "memory://care-media/" + path, nil
}

// Len devuelve la cantidad de objetos guardados (para tests).
func (s *ObjectStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
