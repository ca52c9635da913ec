package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/kanado/ent"
	"github.com/abhisek/kanado/ent/reviewrecord"
	"github.com/abhisek/kanado/ent/schemamigration"
	"github.com/abhisek/kanado/internal/srs"
)

// DataMigration is a one-shot transformation over existing rows. Each
// migration runs inside a transaction and is recorded by version, so the
// list is safe to walk on every startup.
type DataMigration struct {
	Version int
	Name    string
	Run     func(ctx context.Context, tx *ent.Tx, now time.Time) error
}

// dataMigrations is the ordered migration list. Versions are append-only.
var dataMigrations = []DataMigration{
	{
		Version: 1,
		Name:    "retime apprentice-iv reviews from 72h to 48h",
		Run:     retimeApprenticeIV,
	},
	{
		Version: 2,
		Name:    "retime all reviews to the current stage intervals",
		Run:     retimeToStageTable,
	},
}

// MigrateData applies any data migrations that have not run yet.
func (s *Store) MigrateData(ctx context.Context) error {
	now := time.Now().UTC()
	for _, m := range dataMigrations {
		applied, err := s.client.SchemaMigration.Query().
			Where(schemamigration.Version(m.Version)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}
		if applied {
			continue
		}

		tx, err := s.client.Tx(ctx)
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.Version, err)
		}
		if err := m.Run(ctx, tx, now); err != nil {
			return rollback(tx, fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err))
		}
		if _, err := tx.SchemaMigration.Create().
			SetVersion(m.Version).
			SetName(m.Name).
			Save(ctx); err != nil {
			return rollback(tx, fmt.Errorf("record migration %d: %w", m.Version, err))
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}
	}
	return nil
}

// retimeApprenticeIV reproduces the historical interval change that cut
// the stage-3 wait from 72h to 48h: answered stage-3 records with a due
// date still in the future are retimed to last_reviewed + 48h, floored
// to the hour, never earlier than now.
func retimeApprenticeIV(ctx context.Context, tx *ent.Tx, now time.Time) error {
	rows, err := tx.ReviewRecord.Query().
		Where(
			reviewrecord.Stage(int(srs.StageApprentice4)),
			reviewrecord.LastReviewedNotNil(),
			reviewrecord.NextDueGT(now),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query stage-3 reviews: %w", err)
	}

	for _, row := range rows {
		due := row.LastReviewed.Add(48 * time.Hour).Truncate(time.Hour)
		if due.Before(now) {
			due = now
		}
		if _, err := tx.ReviewRecord.UpdateOneID(row.ID).
			SetNextDue(due).
			Save(ctx); err != nil {
			return fmt.Errorf("retime review %d: %w", row.ID, err)
		}
	}
	return nil
}

// retimeToStageTable recomputes next_due for every record under the
// current interval table, anchored at last_reviewed (or created_at for
// never-answered records) and floored to the hour. Records whose
// recomputed due date has already passed become due immediately.
func retimeToStageTable(ctx context.Context, tx *ent.Tx, now time.Time) error {
	rows, err := tx.ReviewRecord.Query().All(ctx)
	if err != nil {
		return fmt.Errorf("query reviews: %w", err)
	}

	for _, row := range rows {
		iv, err := srs.Stage(row.Stage).Interval()
		if err != nil {
			return fmt.Errorf("review %d: %w", row.ID, err)
		}
		anchor := row.CreatedAt
		if row.LastReviewed != nil {
			anchor = *row.LastReviewed
		}
		due := anchor.Add(iv).Truncate(time.Hour)
		if due.Before(now) {
			due = now.Truncate(time.Hour)
		}
		if due.Equal(row.NextDue) {
			continue
		}
		if _, err := tx.ReviewRecord.UpdateOneID(row.ID).
			SetNextDue(due).
			Save(ctx); err != nil {
			return fmt.Errorf("retime review %d: %w", row.ID, err)
		}
	}
	return nil
}
