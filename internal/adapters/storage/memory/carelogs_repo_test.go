package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"reptile-husbandry/internal/domain/carelogs"
)

func seedLogs(t *testing.T, repo *CareLogsRepo, n int) {
	t.Helper()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		err := repo.Create(context.Background(), carelogs.CareLog{
			ID:        fmt.Sprintf("log-%02d", i),
			AnimalID:  "animal-1",
			UserID:    "user-1",
			LogType:   carelogs.LogFeeding,
			LogDate:   base.Add(time.Duration(i) * 24 * time.Hour),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}
}

func TestCareLogsRepo_List_SortAndWindow(t *testing.T) {
	repo := NewCareLogsRepo()
	seedLogs(t, repo, 7)

	// desc por log_date: el más nuevo primero
	items, total, err := repo.List(context.Background(),
		carelogs.ListFilter{AnimalID: "animal-1", Sort: carelogs.SortLogDate, Order: carelogs.OrderDesc},
		carelogs.PageRequest{Offset: 0, Limit: 3},
	)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 7 || len(items) != 3 {
		t.Fatalf("expected total=7 page=3, got total=%d page=%d", total, len(items))
	}
	if items[0].ID != "log-06" {
		t.Fatalf("expected newest first, got %s", items[0].ID)
	}

	// asc con offset
	items, _, err = repo.List(context.Background(),
		carelogs.ListFilter{AnimalID: "animal-1", Sort: carelogs.SortLogDate, Order: carelogs.OrderAsc},
		carelogs.PageRequest{Offset: 5, Limit: 3},
	)
	if err != nil {
		t.Fatalf("list asc: %v", err)
	}
	if len(items) != 2 || items[0].ID != "log-05" {
		t.Fatalf("unexpected asc window: %+v", items)
	}

	// offset más allá del total: página vacía, total intacto
	items, total, err = repo.List(context.Background(),
		carelogs.ListFilter{AnimalID: "animal-1"},
		carelogs.PageRequest{Offset: 50, Limit: 10},
	)
	if err != nil {
		t.Fatalf("list overflow: %v", err)
	}
	if len(items) != 0 || total != 7 {
		t.Fatalf("expected empty page with total=7, got %d items total=%d", len(items), total)
	}
}

func TestCareLogsRepo_List_DateRangeInclusive(t *testing.T) {
	repo := NewCareLogsRepo()
	seedLogs(t, repo, 5)

	from := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	_, total, err := repo.List(context.Background(),
		carelogs.ListFilter{AnimalID: "animal-1", From: &from, To: &to},
		carelogs.PageRequest{Offset: 0, Limit: 10},
	)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	// Los bordes cuentan: log-01, log-02 y log-03
	if total != 3 {
		t.Fatalf("expected 3 logs in inclusive range, got %d", total)
	}
}

func TestCareLogsRepo_HasChildrenAndDelete(t *testing.T) {
	repo := NewCareLogsRepo()
	ctx := context.Background()

	_ = repo.Create(ctx, carelogs.CareLog{ID: "laying-1", UserID: "u", LogType: carelogs.LogEggLaying})
	_ = repo.Create(ctx, carelogs.CareLog{ID: "candling-1", UserID: "u", LogType: carelogs.LogCandling, ParentLogID: "laying-1"})

	has, err := repo.HasChildren(ctx, "laying-1")
	if err != nil || !has {
		t.Fatalf("expected children, got has=%v err=%v", has, err)
	}

	if err := repo.Delete(ctx, "candling-1"); err != nil {
		t.Fatalf("delete child: %v", err)
	}
	has, _ = repo.HasChildren(ctx, "laying-1")
	if has {
		t.Fatalf("expected no children after delete")
	}

	if err := repo.Delete(ctx, "missing"); !errors.Is(err, carelogs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByID(ctx, "candling-1"); !errors.Is(err, carelogs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
