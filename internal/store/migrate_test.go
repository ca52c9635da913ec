package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/kanado/ent/schemamigration"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestMigrateDataRecordsVersions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.MigrateData(ctx); err != nil {
		t.Fatal(err)
	}
	count, err := s.Client().SchemaMigration.Query().Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != len(dataMigrations) {
		t.Errorf("recorded migrations = %d, want %d", count, len(dataMigrations))
	}

	// Re-running applies nothing new.
	if err := s.MigrateData(ctx); err != nil {
		t.Fatal(err)
	}
	count, err = s.Client().SchemaMigration.Query().Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != len(dataMigrations) {
		t.Errorf("migrations after re-run = %d, want %d", count, len(dataMigrations))
	}

	applied, err := s.Client().SchemaMigration.Query().
		Where(schemamigration.Version(2)).
		Exist(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !applied {
		t.Error("version 2 not recorded")
	}
}

func TestRetimeApprenticeIV(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	lastReviewed := now.Add(-10 * time.Hour)

	// Under the old 72h interval this record would wait until now+62h.
	pending, err := s.Client().ReviewRecord.Create().
		SetSymbolID(1).
		SetStage(3).
		SetNextDue(now.Add(62 * time.Hour)).
		SetLastReviewed(lastReviewed).
		Save(ctx)
	if err != nil {
		t.Fatal(err)
	}
	// Already due: left alone.
	overdue, err := s.Client().ReviewRecord.Create().
		SetSymbolID(2).
		SetStage(3).
		SetNextDue(now.Add(-time.Hour)).
		SetLastReviewed(lastReviewed).
		Save(ctx)
	if err != nil {
		t.Fatal(err)
	}

	tx, err := s.Client().Tx(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if err := retimeApprenticeIV(ctx, tx, now); err != nil {
		t.Fatal(err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatal(err)
	}

	got, err := s.Client().ReviewRecord.Get(ctx, pending.ID)
	if err != nil {
		t.Fatal(err)
	}
	want := lastReviewed.Add(48 * time.Hour).Truncate(time.Hour)
	if !got.NextDue.Equal(want) {
		t.Errorf("retimed next_due = %v, want %v", got.NextDue, want)
	}

	got, err = s.Client().ReviewRecord.Get(ctx, overdue.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.NextDue.Equal(now.Add(-time.Hour)) {
		t.Errorf("overdue record was retimed: %v", got.NextDue)
	}
}

func TestRetimeToStageTable(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	// Answered stage-2 record: anchor last_reviewed, 8h interval.
	answered, err := s.Client().ReviewRecord.Create().
		SetSymbolID(1).
		SetStage(2).
		SetNextDue(now.Add(72 * time.Hour)).
		SetLastReviewed(now.Add(-2 * time.Hour)).
		Save(ctx)
	if err != nil {
		t.Fatal(err)
	}
	// Never answered: anchor created_at, stage 0, 2h interval, and the
	// recomputed due date is already past.
	stale, err := s.Client().ReviewRecord.Create().
		SetSymbolID(2).
		SetStage(0).
		SetNextDue(now.Add(48 * time.Hour)).
		SetCreatedAt(now.Add(-30 * time.Hour)).
		Save(ctx)
	if err != nil {
		t.Fatal(err)
	}

	tx, err := s.Client().Tx(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if err := retimeToStageTable(ctx, tx, now); err != nil {
		t.Fatal(err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatal(err)
	}

	got, err := s.Client().ReviewRecord.Get(ctx, answered.ID)
	if err != nil {
		t.Fatal(err)
	}
	want := now.Add(6 * time.Hour) // last_reviewed + 8h, already hour-aligned
	if !got.NextDue.Equal(want) {
		t.Errorf("answered next_due = %v, want %v", got.NextDue, want)
	}

	got, err = s.Client().ReviewRecord.Get(ctx, stale.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.NextDue.Equal(now.Truncate(time.Hour)) {
		t.Errorf("stale next_due = %v, want %v", got.NextDue, now.Truncate(time.Hour))
	}
}
