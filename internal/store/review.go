package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/kanado/ent"
	"github.com/abhisek/kanado/ent/reviewrecord"
	"github.com/abhisek/kanado/ent/symbol"
)

// reviewRepo implements ReviewRepo using the ent client.
type reviewRepo struct {
	client *ent.Client
}

func (r *reviewRepo) Get(ctx context.Context, id int) (*ReviewRecord, error) {
	row, err := r.client.ReviewRecord.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get review %d: %w", id, err)
	}
	rec := entReview(row)
	return &rec, nil
}

func (r *reviewRepo) All(ctx context.Context) ([]ReviewRecord, error) {
	rows, err := r.client.ReviewRecord.Query().
		Order(ent.Asc(reviewrecord.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	out := make([]ReviewRecord, len(rows))
	for i, row := range rows {
		out[i] = entReview(row)
	}
	return out, nil
}

func (r *reviewRepo) Due(ctx context.Context, now time.Time) ([]ReviewWithSymbol, error) {
	rows, err := r.client.ReviewRecord.Query().
		Where(reviewrecord.NextDueLTE(now)).
		Order(ent.Asc(reviewrecord.FieldNextDue)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due reviews: %w", err)
	}
	return r.joinSymbols(ctx, rows)
}

func (r *reviewRepo) joinSymbols(ctx context.Context, rows []*ent.ReviewRecord) ([]ReviewWithSymbol, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]int, len(rows))
	for i, row := range rows {
		ids[i] = row.SymbolID
	}
	syms, err := r.client.Symbol.Query().
		Where(symbol.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query review symbols: %w", err)
	}
	byID := make(map[int]*ent.Symbol, len(syms))
	for _, s := range syms {
		byID[s.ID] = s
	}

	out := make([]ReviewWithSymbol, 0, len(rows))
	for _, row := range rows {
		s, ok := byID[row.SymbolID]
		if !ok {
			// Orphaned record; the catalog is append-only so this
			// should not happen.
			continue
		}
		out = append(out, ReviewWithSymbol{
			ReviewRecord: entReview(row),
			Glyph:        s.Glyph,
			Romaji:       s.Romaji,
			Kind:         string(s.Kind),
		})
	}
	return out, nil
}

func (r *reviewRepo) SymbolsWithReviews(ctx context.Context) ([]SymbolWithReview, error) {
	syms, err := r.client.Symbol.Query().
		Order(ent.Asc(symbol.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query symbols: %w", err)
	}
	recs, err := r.client.ReviewRecord.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	bySymbol := make(map[int]*ent.ReviewRecord, len(recs))
	for _, rec := range recs {
		bySymbol[rec.SymbolID] = rec
	}

	out := make([]SymbolWithReview, len(syms))
	for i, s := range syms {
		item := SymbolWithReview{Symbol: entSymbol(s)}
		if rec, ok := bySymbol[s.ID]; ok {
			rv := entReview(rec)
			item.Review = &rv
		}
		out[i] = item
	}
	return out, nil
}

func (r *reviewRepo) Transition(ctx context.Context, id int, mutate func(*ReviewRecord) error) (*ReviewRecord, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	row, err := tx.ReviewRecord.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, rollback(tx, ErrNotFound)
		}
		return nil, rollback(tx, fmt.Errorf("get review %d: %w", id, err))
	}

	rec := entReview(row)
	if err := mutate(&rec); err != nil {
		return nil, rollback(tx, err)
	}

	upd := tx.ReviewRecord.UpdateOneID(id).
		SetStage(rec.Stage).
		SetNextDue(rec.NextDue).
		SetCorrectCount(rec.CorrectCount).
		SetIncorrectCount(rec.IncorrectCount)
	if rec.LastReviewed != nil {
		upd = upd.SetLastReviewed(*rec.LastReviewed)
	}
	saved, err := upd.Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("update review %d: %w", id, err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit review update: %w", err)
	}
	out := entReview(saved)
	return &out, nil
}

func (r *reviewRepo) DeleteAll(ctx context.Context) (int, error) {
	n, err := r.client.ReviewRecord.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete reviews: %w", err)
	}
	return n, nil
}

func entReview(row *ent.ReviewRecord) ReviewRecord {
	return ReviewRecord{
		ID:             row.ID,
		SymbolID:       row.SymbolID,
		Stage:          row.Stage,
		NextDue:        row.NextDue,
		CorrectCount:   row.CorrectCount,
		IncorrectCount: row.IncorrectCount,
		LastReviewed:   row.LastReviewed,
		CreatedAt:      row.CreatedAt,
	}
}
