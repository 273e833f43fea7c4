package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"temporada_ferias/internal/domain/entities"
	"temporada_ferias/internal/domain/ledger"
	"temporada_ferias/internal/infrastructure/database"
	"temporada_ferias/internal/usecase/interfaces"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.OpenSQL("sqlite", "file:"+name+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestRegistrationGormRepository_CreateAndGet(t *testing.T) {
	repo := NewRegistrationGormRepository(newTestDB(t))
	ctx := context.Background()
	in := sampleRegistration(t)

	if _, err := repo.Create(ctx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, in.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != in.ID || got.Email != in.Email || got.Version != 1 || !got.Fee.Equal(in.Fee) {
		t.Fatalf("unexpected registration: %+v", got)
	}
	if !got.CreatedAt.Equal(testNow) {
		t.Fatalf("created_at changed: %s", got.CreatedAt)
	}
	if len(got.Payment.PaidInstallments) != 1 || got.Payment.PaidInstallments[0].ConfirmedBy != ledger.ActorSystem {
		t.Fatalf("down payment lost: %+v", got.Payment)
	}
	if !got.Payment.TotalPaid.Equal(dec("150")) || got.Details.TeenName != "Maria Souza" {
		t.Fatalf("unexpected payload: %+v", got)
	}

	t.Run("duplicate id", func(t *testing.T) {
		if _, err := repo.Create(ctx, in); err == nil {
			t.Fatalf("expected primary key violation")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "missing")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero value, got %+v (err=%v)", got, err)
		}
	})
}

func TestRegistrationGormRepository_Update(t *testing.T) {
	repo := NewRegistrationGormRepository(newTestDB(t))
	ctx := context.Background()
	in := sampleRegistration(t)
	if _, err := repo.Create(ctx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	// two admins read version 1
	first, _ := repo.GetByID(ctx, in.ID)
	second, _ := repo.GetByID(ctx, in.ID)

	first.Payment, _ = ledger.RecordInstallment(first.Payment, 2, dec("150"), "admin@upa.org", testNow.Add(time.Hour))
	saved, err := repo.Update(ctx, first)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if saved.Version != 2 {
		t.Fatalf("expected version 2, got %d", saved.Version)
	}

	second.IsAdoptee = true
	if _, err := repo.Update(ctx, second); !errors.Is(err, interfaces.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}

	got, _ := repo.GetByID(ctx, in.ID)
	if got.IsAdoptee {
		t.Fatalf("stale write must not land")
	}
	if len(got.Payment.PaidInstallments) != 2 || got.Payment.PaidInstallments[1].Number != 2 {
		t.Fatalf("unexpected installments: %+v", got.Payment.PaidInstallments)
	}
	if !got.Payment.TotalPaid.Equal(dec("300")) {
		t.Fatalf("unexpected total: %s", got.Payment.TotalPaid)
	}

	got.Payment, _ = ledger.Finalize(got.Payment, 3, dec("230"), "admin@upa.org", testNow.Add(2*time.Hour), got.Fee)
	got.PaidAt = got.Payment.ConfirmedAt
	if _, err := repo.Update(ctx, got); err != nil {
		t.Fatalf("finalize update: %v", err)
	}
	final, _ := repo.GetByID(ctx, in.ID)
	if !final.Payment.Confirmed || final.PaidAt == nil || final.Version != 3 || len(final.Payment.PaidInstallments) != 3 {
		t.Fatalf("unexpected final registration: %+v", final)
	}
}

func TestRegistrationGormRepository_List(t *testing.T) {
	repo := NewRegistrationGormRepository(newTestDB(t))
	ctx := context.Background()

	older := sampleRegistration(t)
	older.ID = "older"
	older.CreatedAt = testNow.Add(-time.Hour)
	newer := sampleRegistration(t)
	newer.ID = "newer"
	_, _ = repo.Create(ctx, older)
	_, _ = repo.Create(ctx, newer)

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].ID != "newer" || len(items[1].Payment.PaidInstallments) != 1 {
		t.Fatalf("unexpected list: %+v", items)
	}
}

func TestQuestionGormRepository(t *testing.T) {
	repo := NewQuestionGormRepository(newTestDB(t))
	ctx := context.Background()
	q := entities.Question{ID: "q1", Email: "pai@exemplo.com", Question: "Qual o horário de saída?", Status: entities.QuestionStatusPending, CreatedAt: testNow}

	if _, err := repo.Update(ctx, q); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if _, err := repo.Create(ctx, q); err != nil {
		t.Fatalf("create: %v", err)
	}

	archived := testNow.Add(time.Hour)
	q.Status = entities.QuestionStatusArchived
	q.ArchivedAt = &archived
	q.ArchivedBy = "admin@upa.org"
	if _, err := repo.Update(ctx, q); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetByID(ctx, "q1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != entities.QuestionStatusArchived || got.ArchivedAt == nil || !got.ArchivedAt.Equal(archived) || got.AnsweredAt != nil {
		t.Fatalf("unexpected question: %+v", got)
	}

	items, err := repo.List(ctx)
	if err != nil || len(items) != 1 {
		t.Fatalf("unexpected list: %+v (err=%v)", items, err)
	}
}
