package carelogs

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func candlingDetails() json.RawMessage {
	return json.RawMessage(`{"day_after_laying":7,"fertile_count":5,"infertile_count":1,"stopped_development":0,"total_viable":5}`)
}

func hatchingDetails() json.RawMessage {
	return json.RawMessage(`{"hatched_count":5,"failed_count":0}`)
}

func TestLineage_ChainedWithoutParent_Rejected(t *testing.T) {
	svc, _, oracle := newTestService()
	oracle.owners["animal-1"] = "user-1"

	for _, lt := range []LogType{LogCandling, LogHatching} {
		details := candlingDetails()
		if lt == LogHatching {
			details = hatchingDetails()
		}
		_, err := svc.Create(context.Background(), "user-1", "animal-1", CreateInput{
			LogType: lt,
			LogDate: logDate(),
			Details: details,
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s without parent: expected ErrInvalidInput, got %v", lt, err)
		}
	}
}

func TestLineage_LeafWithParent_Rejected(t *testing.T) {
	svc, _, oracle := newTestService()
	oracle.owners["animal-1"] = "user-1"

	laying, err := svc.Create(context.Background(), "user-1", "animal-1", CreateInput{
		LogType: LogEggLaying,
		LogDate: logDate(),
		Details: eggLayingDetails(),
	})
	if err != nil {
		t.Fatalf("create laying: %v", err)
	}

	_, err = svc.Create(context.Background(), "user-1", "animal-1", CreateInput{
		LogType:     LogFeeding,
		LogDate:     logDate(),
		Details:     feedingDetails(),
		ParentLogID: laying.ID,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for FEEDING with parent, got %v", err)
	}
	if !strings.Contains(err.Error(), "parent_log_id") {
		t.Fatalf("error %q should mention parent_log_id", err.Error())
	}
}

func TestLineage_ParentNotFound(t *testing.T) {
	svc, _, oracle := newTestService()
	oracle.owners["animal-1"] = "user-1"

	_, err := svc.Create(context.Background(), "user-1", "animal-1", CreateInput{
		LogType:     LogCandling,
		LogDate:     logDate(),
		Details:     candlingDetails(),
		ParentLogID: "missing",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLineage_ParentOfAnotherUser_Forbidden(t *testing.T) {
	svc, _, oracle := newTestService()
	oracle.owners["animal-1"] = "user-1"
	oracle.owners["animal-2"] = "user-2"

	laying, err := svc.Create(context.Background(), "user-2", "animal-2", CreateInput{
		LogType: LogEggLaying,
		LogDate: logDate(),
		Details: eggLayingDetails(),
	})
	if err != nil {
		t.Fatalf("create laying: %v", err)
	}

	_, err = svc.Create(context.Background(), "user-1", "animal-1", CreateInput{
		LogType:     LogCandling,
		LogDate:     logDate(),
		Details:     candlingDetails(),
		ParentLogID: laying.ID,
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestLineage_ParentMustBeEggLaying(t *testing.T) {
	svc, _, oracle := newTestService()
	oracle.owners["animal-1"] = "user-1"

	feeding, err := svc.Create(context.Background(), "user-1", "animal-1", CreateInput{
		LogType: LogFeeding,
		LogDate: logDate(),
		Details: feedingDetails(),
	})
	if err != nil {
		t.Fatalf("create feeding: %v", err)
	}

	_, err = svc.Create(context.Background(), "user-1", "animal-1", CreateInput{
		LogType:     LogCandling,
		LogDate:     logDate(),
		Details:     candlingDetails(),
		ParentLogID: feeding.ID,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "EGG_LAYING") {
		t.Fatalf("error %q should name EGG_LAYING", err.Error())
	}
}

// Un HATCHING nunca puede ser padre: la cadena tiene un solo salto.
func TestLineage_HatchingCannotBeParent(t *testing.T) {
	svc, _, oracle := newTestService()
	oracle.owners["animal-1"] = "user-1"

	laying, err := svc.Create(context.Background(), "user-1", "animal-1", CreateInput{
		LogType: LogEggLaying,
		LogDate: logDate(),
		Details: eggLayingDetails(),
	})
	if err != nil {
		t.Fatalf("create laying: %v", err)
	}

	hatching, err := svc.Create(context.Background(), "user-1", "animal-1", CreateInput{
		LogType:     LogHatching,
		LogDate:     logDate().Add(60 * 24 * time.Hour),
		Details:     hatchingDetails(),
		ParentLogID: laying.ID,
	})
	if err != nil {
		t.Fatalf("create hatching: %v", err)
	}

	_, err = svc.Create(context.Background(), "user-1", "animal-1", CreateInput{
		LogType:     LogCandling,
		LogDate:     logDate().Add(61 * 24 * time.Hour),
		Details:     candlingDetails(),
		ParentLogID: hatching.ID,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput chaining under HATCHING, got %v", err)
	}
}

func TestLineage_FullChain_OK(t *testing.T) {
	svc, _, oracle := newTestService()
	oracle.owners["animal-1"] = "user-1"

	laying, err := svc.Create(context.Background(), "user-1", "animal-1", CreateInput{
		LogType: LogEggLaying,
		LogDate: logDate(),
		Details: eggLayingDetails(),
	})
	if err != nil {
		t.Fatalf("create laying: %v", err)
	}

	candling, err := svc.Create(context.Background(), "user-1", "animal-1", CreateInput{
		LogType:     LogCandling,
		LogDate:     logDate().Add(7 * 24 * time.Hour),
		Details:     candlingDetails(),
		ParentLogID: laying.ID,
	})
	if err != nil {
		t.Fatalf("create candling: %v", err)
	}
	if candling.ParentLogID != laying.ID {
		t.Fatalf("candling parent mismatch: %q", candling.ParentLogID)
	}

	hatching, err := svc.Create(context.Background(), "user-1", "animal-1", CreateInput{
		LogType:     LogHatching,
		LogDate:     logDate().Add(60 * 24 * time.Hour),
		Details:     hatchingDetails(),
		ParentLogID: laying.ID,
	})
	if err != nil {
		t.Fatalf("create hatching: %v", err)
	}
	if hatching.ParentLogID != laying.ID {
		t.Fatalf("hatching parent mismatch: %q", hatching.ParentLogID)
	}
}
