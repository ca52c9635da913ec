package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/kanado/ent"
	"github.com/abhisek/kanado/ent/lessonbatch"
	"github.com/abhisek/kanado/ent/reviewrecord"
)

// lessonBatchRepo implements LessonBatchRepo using the ent client.
type lessonBatchRepo struct {
	client *ent.Client
}

func (r *lessonBatchRepo) All(ctx context.Context) ([]LessonBatch, error) {
	rows, err := r.client.LessonBatch.Query().
		Order(ent.Asc(lessonbatch.FieldBatchNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lesson batches: %w", err)
	}
	out := make([]LessonBatch, len(rows))
	for i, row := range rows {
		out[i] = entBatch(row)
	}
	return out, nil
}

func (r *lessonBatchRepo) Get(ctx context.Context, batchNumber int) (*LessonBatch, error) {
	row, err := r.client.LessonBatch.Query().
		Where(lessonbatch.BatchNumber(batchNumber)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get batch %d: %w", batchNumber, err)
	}
	b := entBatch(row)
	return &b, nil
}

func (r *lessonBatchRepo) NextIncomplete(ctx context.Context) (*LessonBatch, error) {
	row, err := r.client.LessonBatch.Query().
		Where(lessonbatch.Completed(false)).
		Order(ent.Asc(lessonbatch.FieldBatchNumber)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query next batch: %w", err)
	}
	b := entBatch(row)
	return &b, nil
}

func (r *lessonBatchRepo) IncompleteCount(ctx context.Context) (int, error) {
	n, err := r.client.LessonBatch.Query().
		Where(lessonbatch.Completed(false)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count incomplete batches: %w", err)
	}
	return n, nil
}

func (r *lessonBatchRepo) CompleteBatch(ctx context.Context, batchNumber int, completedAt time.Time, seeds []ReviewSeed) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	row, err := tx.LessonBatch.Query().
		Where(lessonbatch.BatchNumber(batchNumber)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return rollback(tx, ErrNotFound)
		}
		return rollback(tx, fmt.Errorf("get batch %d: %w", batchNumber, err))
	}

	// Re-check under the transaction: a completed batch stays untouched
	// so a second call never duplicates or overwrites records.
	if row.Completed {
		_ = tx.Rollback()
		return nil
	}

	if _, err := tx.LessonBatch.UpdateOneID(row.ID).
		SetCompleted(true).
		SetCompletedAt(completedAt).
		Save(ctx); err != nil {
		return rollback(tx, fmt.Errorf("mark batch %d completed: %w", batchNumber, err))
	}

	if err := createMissingReviews(ctx, tx, seeds); err != nil {
		return rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch completion: %w", err)
	}
	return nil
}

// createMissingReviews inserts a review record for every seed whose
// symbol does not already have one.
func createMissingReviews(ctx context.Context, tx *ent.Tx, seeds []ReviewSeed) error {
	if len(seeds) == 0 {
		return nil
	}

	ids := make([]int, len(seeds))
	for i, seed := range seeds {
		ids[i] = seed.SymbolID
	}
	existing, err := tx.ReviewRecord.Query().
		Where(reviewrecord.SymbolIDIn(ids...)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query existing reviews: %w", err)
	}
	have := make(map[int]bool, len(existing))
	for _, rec := range existing {
		have[rec.SymbolID] = true
	}

	var builders []*ent.ReviewRecordCreate
	for _, seed := range seeds {
		if have[seed.SymbolID] {
			continue
		}
		builders = append(builders, tx.ReviewRecord.Create().
			SetSymbolID(seed.SymbolID).
			SetStage(seed.Stage).
			SetNextDue(seed.NextDue).
			SetCorrectCount(seed.CorrectCount).
			SetIncorrectCount(seed.IncorrectCount))
	}
	if len(builders) == 0 {
		return nil
	}
	if _, err := tx.ReviewRecord.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("create reviews: %w", err)
	}
	return nil
}

func (r *lessonBatchRepo) ResetAll(ctx context.Context) error {
	if _, err := r.client.LessonBatch.Update().
		Where(lessonbatch.Completed(true)).
		SetCompleted(false).
		ClearCompletedAt().
		Save(ctx); err != nil {
		return fmt.Errorf("reset batches: %w", err)
	}
	return nil
}

func entBatch(row *ent.LessonBatch) LessonBatch {
	return LessonBatch{
		BatchNumber: row.BatchNumber,
		Name:        row.Name,
		Description: row.Description,
		Completed:   row.Completed,
		CompletedAt: row.CompletedAt,
	}
}
