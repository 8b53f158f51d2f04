package memory

import (
	"context"
	"sort"
	"sync"

	"reptile-husbandry/internal/domain/carelogs"
)

// CareLogsRepo es una implementación en memoria de carelogs.Repository.
type CareLogsRepo struct {
	mu    sync.RWMutex
	items map[string]carelogs.CareLog
}

func NewCareLogsRepo() *CareLogsRepo {
	return &CareLogsRepo{items: make(map[string]carelogs.CareLog)}
}

var _ carelogs.Repository = (*CareLogsRepo)(nil)

func (r *CareLogsRepo) Create(ctx context.Context, c carelogs.CareLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[c.ID] = c
	return nil
}

func (r *CareLogsRepo) GetByID(ctx context.Context, id string) (carelogs.CareLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return carelogs.CareLog{}, carelogs.ErrNotFound
	}
	return c, nil
}

func (r *CareLogsRepo) List(
	ctx context.Context,
	f carelogs.ListFilter,
	p carelogs.PageRequest,
) ([]carelogs.CareLog, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]carelogs.CareLog, 0)
	for _, c := range r.items {
		if matches(c, f) {
			matched = append(matched, c)
		}
	}

	sortLogs(matched, f.Sort, f.Order)

	total := len(matched)

	// Ventana de paginación sobre el slice ya ordenado.
	if p.Offset >= total {
		return []carelogs.CareLog{}, total, nil
	}
	end := p.Offset + p.Limit
	if p.Limit <= 0 || end > total {
		end = total
	}
	page := make([]carelogs.CareLog, end-p.Offset)
	copy(page, matched[p.Offset:end])
	return page, total, nil
}

func (r *CareLogsRepo) Update(ctx context.Context, c carelogs.CareLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; !ok {
		return carelogs.ErrNotFound
	}
	r.items[c.ID] = c
	return nil
}

func (r *CareLogsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return carelogs.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *CareLogsRepo) HasChildren(ctx context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.ParentLogID == id {
			return true, nil
		}
	}
	return false, nil
}

func matches(c carelogs.CareLog, f carelogs.ListFilter) bool {
	if f.AnimalID != "" && c.AnimalID != f.AnimalID {
		return false
	}
	if f.UserID != "" && c.UserID != f.UserID {
		return false
	}
	if len(f.Types) > 0 {
		found := false
		for _, t := range f.Types {
			if c.LogType == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.From != nil && c.LogDate.Before(*f.From) {
		return false
	}
	if f.To != nil && c.LogDate.After(*f.To) {
		return false
	}
	return true
}

func sortLogs(logs []carelogs.CareLog, field carelogs.SortField, order carelogs.SortOrder) {
	asc := order == carelogs.OrderAsc
	key := func(c carelogs.CareLog) int64 {
		if field == carelogs.SortCreatedAt {
			return c.CreatedAt.UnixNano()
		}
		return c.LogDate.UnixNano()
	}
	sort.SliceStable(logs, func(i, j int) bool {
		if asc {
			return key(logs[i]) < key(logs[j])
		}
		return key(logs[i]) > key(logs[j])
	})
}
