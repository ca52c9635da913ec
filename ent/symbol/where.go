// Code generated by ent, DO NOT EDIT.

package symbol

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/kanado/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Symbol {
	return predicate.Symbol(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Symbol {
	return predicate.Symbol(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Symbol {
	return predicate.Symbol(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Symbol {
	return predicate.Symbol(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Symbol {
	return predicate.Symbol(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Symbol {
	return predicate.Symbol(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Symbol {
	return predicate.Symbol(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Symbol {
	return predicate.Symbol(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Symbol {
	return predicate.Symbol(sql.FieldLTE(FieldID, id))
}

// Glyph applies equality check predicate on the "glyph" field. It's identical to GlyphEQ.
func Glyph(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldEQ(FieldGlyph, v))
}

// Romaji applies equality check predicate on the "romaji" field. It's identical to RomajiEQ.
func Romaji(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldEQ(FieldRomaji, v))
}

// BatchNumber applies equality check predicate on the "batch_number" field. It's identical to BatchNumberEQ.
func BatchNumber(v int) predicate.Symbol {
	return predicate.Symbol(sql.FieldEQ(FieldBatchNumber, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Symbol {
	return predicate.Symbol(sql.FieldEQ(FieldCreatedAt, v))
}

// GlyphEQ applies the EQ predicate on the "glyph" field.
func GlyphEQ(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldEQ(FieldGlyph, v))
}

// GlyphNEQ applies the NEQ predicate on the "glyph" field.
func GlyphNEQ(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldNEQ(FieldGlyph, v))
}

// GlyphIn applies the In predicate on the "glyph" field.
func GlyphIn(vs ...string) predicate.Symbol {
	return predicate.Symbol(sql.FieldIn(FieldGlyph, vs...))
}

// GlyphNotIn applies the NotIn predicate on the "glyph" field.
func GlyphNotIn(vs ...string) predicate.Symbol {
	return predicate.Symbol(sql.FieldNotIn(FieldGlyph, vs...))
}

// GlyphGT applies the GT predicate on the "glyph" field.
func GlyphGT(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldGT(FieldGlyph, v))
}

// GlyphGTE applies the GTE predicate on the "glyph" field.
func GlyphGTE(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldGTE(FieldGlyph, v))
}

// GlyphLT applies the LT predicate on the "glyph" field.
func GlyphLT(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldLT(FieldGlyph, v))
}

// GlyphLTE applies the LTE predicate on the "glyph" field.
func GlyphLTE(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldLTE(FieldGlyph, v))
}

// GlyphContains applies the Contains predicate on the "glyph" field.
func GlyphContains(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldContains(FieldGlyph, v))
}

// GlyphHasPrefix applies the HasPrefix predicate on the "glyph" field.
func GlyphHasPrefix(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldHasPrefix(FieldGlyph, v))
}

// GlyphHasSuffix applies the HasSuffix predicate on the "glyph" field.
func GlyphHasSuffix(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldHasSuffix(FieldGlyph, v))
}

// GlyphEqualFold applies the EqualFold predicate on the "glyph" field.
func GlyphEqualFold(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldEqualFold(FieldGlyph, v))
}

// GlyphContainsFold applies the ContainsFold predicate on the "glyph" field.
func GlyphContainsFold(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldContainsFold(FieldGlyph, v))
}

// RomajiEQ applies the EQ predicate on the "romaji" field.
func RomajiEQ(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldEQ(FieldRomaji, v))
}

// RomajiNEQ applies the NEQ predicate on the "romaji" field.
func RomajiNEQ(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldNEQ(FieldRomaji, v))
}

// RomajiIn applies the In predicate on the "romaji" field.
func RomajiIn(vs ...string) predicate.Symbol {
	return predicate.Symbol(sql.FieldIn(FieldRomaji, vs...))
}

// RomajiNotIn applies the NotIn predicate on the "romaji" field.
func RomajiNotIn(vs ...string) predicate.Symbol {
	return predicate.Symbol(sql.FieldNotIn(FieldRomaji, vs...))
}

// RomajiGT applies the GT predicate on the "romaji" field.
func RomajiGT(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldGT(FieldRomaji, v))
}

// RomajiGTE applies the GTE predicate on the "romaji" field.
func RomajiGTE(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldGTE(FieldRomaji, v))
}

// RomajiLT applies the LT predicate on the "romaji" field.
func RomajiLT(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldLT(FieldRomaji, v))
}

// RomajiLTE applies the LTE predicate on the "romaji" field.
func RomajiLTE(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldLTE(FieldRomaji, v))
}

// RomajiContains applies the Contains predicate on the "romaji" field.
func RomajiContains(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldContains(FieldRomaji, v))
}

// RomajiHasPrefix applies the HasPrefix predicate on the "romaji" field.
func RomajiHasPrefix(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldHasPrefix(FieldRomaji, v))
}

// RomajiHasSuffix applies the HasSuffix predicate on the "romaji" field.
func RomajiHasSuffix(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldHasSuffix(FieldRomaji, v))
}

// RomajiEqualFold applies the EqualFold predicate on the "romaji" field.
func RomajiEqualFold(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldEqualFold(FieldRomaji, v))
}

// RomajiContainsFold applies the ContainsFold predicate on the "romaji" field.
func RomajiContainsFold(v string) predicate.Symbol {
	return predicate.Symbol(sql.FieldContainsFold(FieldRomaji, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.Symbol {
	return predicate.Symbol(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.Symbol {
	return predicate.Symbol(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.Symbol {
	return predicate.Symbol(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.Symbol {
	return predicate.Symbol(sql.FieldNotIn(FieldKind, vs...))
}

// BatchNumberEQ applies the EQ predicate on the "batch_number" field.
func BatchNumberEQ(v int) predicate.Symbol {
	return predicate.Symbol(sql.FieldEQ(FieldBatchNumber, v))
}

// BatchNumberNEQ applies the NEQ predicate on the "batch_number" field.
func BatchNumberNEQ(v int) predicate.Symbol {
	return predicate.Symbol(sql.FieldNEQ(FieldBatchNumber, v))
}

// BatchNumberIn applies the In predicate on the "batch_number" field.
func BatchNumberIn(vs ...int) predicate.Symbol {
	return predicate.Symbol(sql.FieldIn(FieldBatchNumber, vs...))
}

// BatchNumberNotIn applies the NotIn predicate on the "batch_number" field.
func BatchNumberNotIn(vs ...int) predicate.Symbol {
	return predicate.Symbol(sql.FieldNotIn(FieldBatchNumber, vs...))
}

// BatchNumberGT applies the GT predicate on the "batch_number" field.
func BatchNumberGT(v int) predicate.Symbol {
	return predicate.Symbol(sql.FieldGT(FieldBatchNumber, v))
}

// BatchNumberGTE applies the GTE predicate on the "batch_number" field.
func BatchNumberGTE(v int) predicate.Symbol {
	return predicate.Symbol(sql.FieldGTE(FieldBatchNumber, v))
}

// BatchNumberLT applies the LT predicate on the "batch_number" field.
func BatchNumberLT(v int) predicate.Symbol {
	return predicate.Symbol(sql.FieldLT(FieldBatchNumber, v))
}

// BatchNumberLTE applies the LTE predicate on the "batch_number" field.
func BatchNumberLTE(v int) predicate.Symbol {
	return predicate.Symbol(sql.FieldLTE(FieldBatchNumber, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Symbol {
	return predicate.Symbol(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Symbol {
	return predicate.Symbol(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Symbol {
	return predicate.Symbol(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Symbol {
	return predicate.Symbol(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Symbol {
	return predicate.Symbol(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Symbol {
	return predicate.Symbol(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Symbol {
	return predicate.Symbol(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Symbol {
	return predicate.Symbol(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Symbol) predicate.Symbol {
	return predicate.Symbol(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Symbol) predicate.Symbol {
	return predicate.Symbol(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Symbol) predicate.Symbol {
	return predicate.Symbol(sql.NotPredicates(p))
}
