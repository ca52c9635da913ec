package store

import (
	"context"
	"fmt"

	"github.com/abhisek/kanado/ent"
	"github.com/abhisek/kanado/ent/symbol"
)

// symbolRepo implements SymbolRepo using the ent client.
type symbolRepo struct {
	client *ent.Client
}

func (r *symbolRepo) All(ctx context.Context) ([]Symbol, error) {
	rows, err := r.client.Symbol.Query().
		Order(ent.Asc(symbol.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query symbols: %w", err)
	}
	return entSymbols(rows), nil
}

func (r *symbolRepo) Get(ctx context.Context, id int) (*Symbol, error) {
	row, err := r.client.Symbol.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get symbol %d: %w", id, err)
	}
	s := entSymbol(row)
	return &s, nil
}

func (r *symbolRepo) ByBatch(ctx context.Context, batchNumber int) ([]Symbol, error) {
	rows, err := r.client.Symbol.Query().
		Where(symbol.BatchNumber(batchNumber)).
		Order(ent.Asc(symbol.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query batch %d symbols: %w", batchNumber, err)
	}
	return entSymbols(rows), nil
}

func (r *symbolRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Symbol.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count symbols: %w", err)
	}
	return n, nil
}

func entSymbol(row *ent.Symbol) Symbol {
	return Symbol{
		ID:          row.ID,
		Glyph:       row.Glyph,
		Romaji:      row.Romaji,
		Kind:        string(row.Kind),
		BatchNumber: row.BatchNumber,
	}
}

func entSymbols(rows []*ent.Symbol) []Symbol {
	out := make([]Symbol, len(rows))
	for i, row := range rows {
		out[i] = entSymbol(row)
	}
	return out
}
