package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/kanado/ent"
	"github.com/abhisek/kanado/ent/usernote"
)

// noteRepo implements NoteRepo using the ent client.
type noteRepo struct {
	client *ent.Client
}

func (r *noteRepo) Upsert(ctx context.Context, symbolID int, note string) (*UserNote, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	existing, err := tx.UserNote.Query().
		Where(usernote.SymbolID(symbolID)).
		Only(ctx)
	switch {
	case err == nil:
		saved, uerr := tx.UserNote.UpdateOneID(existing.ID).
			SetNote(note).
			SetUpdatedAt(time.Now()).
			Save(ctx)
		if uerr != nil {
			return nil, rollback(tx, fmt.Errorf("update note: %w", uerr))
		}
		if cerr := tx.Commit(); cerr != nil {
			return nil, fmt.Errorf("commit note update: %w", cerr)
		}
		n := entNote(saved)
		return &n, nil
	case ent.IsNotFound(err):
		saved, cerr := tx.UserNote.Create().
			SetSymbolID(symbolID).
			SetNote(note).
			Save(ctx)
		if cerr != nil {
			return nil, rollback(tx, fmt.Errorf("create note: %w", cerr))
		}
		if cerr := tx.Commit(); cerr != nil {
			return nil, fmt.Errorf("commit note create: %w", cerr)
		}
		n := entNote(saved)
		return &n, nil
	default:
		return nil, rollback(tx, fmt.Errorf("query note: %w", err))
	}
}

func (r *noteRepo) Delete(ctx context.Context, symbolID int) error {
	if _, err := r.client.UserNote.Delete().
		Where(usernote.SymbolID(symbolID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

func (r *noteRepo) ForSymbols(ctx context.Context, symbolIDs []int) (map[int]string, error) {
	if len(symbolIDs) == 0 {
		return map[int]string{}, nil
	}
	rows, err := r.client.UserNote.Query().
		Where(usernote.SymbolIDIn(symbolIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	out := make(map[int]string, len(rows))
	for _, row := range rows {
		out[row.SymbolID] = row.Note
	}
	return out, nil
}

func entNote(row *ent.UserNote) UserNote {
	return UserNote{
		ID:        row.ID,
		SymbolID:  row.SymbolID,
		Note:      row.Note,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
