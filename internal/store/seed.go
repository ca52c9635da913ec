package store

import (
	"context"
	"fmt"

	"github.com/abhisek/kanado/ent"
	"github.com/abhisek/kanado/ent/symbol"
)

// SeedSymbol is a catalog entry to insert at first startup.
type SeedSymbol struct {
	Glyph       string
	Romaji      string
	Kind        string
	BatchNumber int
}

// SeedBatch is a lesson batch definition to insert at first startup.
type SeedBatch struct {
	BatchNumber int
	Name        string
	Description string
}

// Seed populates the symbol catalog and lesson batches when the tables
// are empty. Re-running against a seeded database is a no-op.
func (s *Store) Seed(ctx context.Context, symbols []SeedSymbol, batches []SeedBatch) error {
	symbolCount, err := s.client.Symbol.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("count symbols: %w", err)
	}
	batchCount, err := s.client.LessonBatch.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("count batches: %w", err)
	}
	if symbolCount > 0 && batchCount > 0 {
		return nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if symbolCount == 0 {
		builders := make([]*ent.SymbolCreate, len(symbols))
		for i, seed := range symbols {
			builders[i] = tx.Symbol.Create().
				SetGlyph(seed.Glyph).
				SetRomaji(seed.Romaji).
				SetKind(symbol.Kind(seed.Kind)).
				SetBatchNumber(seed.BatchNumber)
		}
		if _, err := tx.Symbol.CreateBulk(builders...).Save(ctx); err != nil {
			return rollback(tx, fmt.Errorf("seed symbols: %w", err))
		}
	}

	if batchCount == 0 {
		builders := make([]*ent.LessonBatchCreate, len(batches))
		for i, seed := range batches {
			builders[i] = tx.LessonBatch.Create().
				SetBatchNumber(seed.BatchNumber).
				SetName(seed.Name).
				SetDescription(seed.Description)
		}
		if _, err := tx.LessonBatch.CreateBulk(builders...).Save(ctx); err != nil {
			return rollback(tx, fmt.Errorf("seed batches: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}
