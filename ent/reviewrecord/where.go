// Code generated by ent, DO NOT EDIT.

package reviewrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/kanado/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldID, id))
}

// SymbolID applies equality check predicate on the "symbol_id" field. It's identical to SymbolIDEQ.
func SymbolID(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldSymbolID, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldStage, v))
}

// NextDue applies equality check predicate on the "next_due" field. It's identical to NextDueEQ.
func NextDue(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldNextDue, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldCorrectCount, v))
}

// IncorrectCount applies equality check predicate on the "incorrect_count" field. It's identical to IncorrectCountEQ.
func IncorrectCount(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldIncorrectCount, v))
}

// LastReviewed applies equality check predicate on the "last_reviewed" field. It's identical to LastReviewedEQ.
func LastReviewed(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldLastReviewed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// SymbolIDEQ applies the EQ predicate on the "symbol_id" field.
func SymbolIDEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldSymbolID, v))
}

// SymbolIDNEQ applies the NEQ predicate on the "symbol_id" field.
func SymbolIDNEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldSymbolID, v))
}

// SymbolIDIn applies the In predicate on the "symbol_id" field.
func SymbolIDIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldSymbolID, vs...))
}

// SymbolIDNotIn applies the NotIn predicate on the "symbol_id" field.
func SymbolIDNotIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldSymbolID, vs...))
}

// SymbolIDGT applies the GT predicate on the "symbol_id" field.
func SymbolIDGT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldSymbolID, v))
}

// SymbolIDGTE applies the GTE predicate on the "symbol_id" field.
func SymbolIDGTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldSymbolID, v))
}

// SymbolIDLT applies the LT predicate on the "symbol_id" field.
func SymbolIDLT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldSymbolID, v))
}

// SymbolIDLTE applies the LTE predicate on the "symbol_id" field.
func SymbolIDLTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldSymbolID, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldStage, v))
}

// NextDueEQ applies the EQ predicate on the "next_due" field.
func NextDueEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldNextDue, v))
}

// NextDueNEQ applies the NEQ predicate on the "next_due" field.
func NextDueNEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldNextDue, v))
}

// NextDueIn applies the In predicate on the "next_due" field.
func NextDueIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldNextDue, vs...))
}

// NextDueNotIn applies the NotIn predicate on the "next_due" field.
func NextDueNotIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldNextDue, vs...))
}

// NextDueGT applies the GT predicate on the "next_due" field.
func NextDueGT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldNextDue, v))
}

// NextDueGTE applies the GTE predicate on the "next_due" field.
func NextDueGTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldNextDue, v))
}

// NextDueLT applies the LT predicate on the "next_due" field.
func NextDueLT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldNextDue, v))
}

// NextDueLTE applies the LTE predicate on the "next_due" field.
func NextDueLTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldNextDue, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldCorrectCount, v))
}

// IncorrectCountEQ applies the EQ predicate on the "incorrect_count" field.
func IncorrectCountEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldIncorrectCount, v))
}

// IncorrectCountNEQ applies the NEQ predicate on the "incorrect_count" field.
func IncorrectCountNEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldIncorrectCount, v))
}

// IncorrectCountIn applies the In predicate on the "incorrect_count" field.
func IncorrectCountIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldIncorrectCount, vs...))
}

// IncorrectCountNotIn applies the NotIn predicate on the "incorrect_count" field.
func IncorrectCountNotIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldIncorrectCount, vs...))
}

// IncorrectCountGT applies the GT predicate on the "incorrect_count" field.
func IncorrectCountGT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldIncorrectCount, v))
}

// IncorrectCountGTE applies the GTE predicate on the "incorrect_count" field.
func IncorrectCountGTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldIncorrectCount, v))
}

// IncorrectCountLT applies the LT predicate on the "incorrect_count" field.
func IncorrectCountLT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldIncorrectCount, v))
}

// IncorrectCountLTE applies the LTE predicate on the "incorrect_count" field.
func IncorrectCountLTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldIncorrectCount, v))
}

// LastReviewedEQ applies the EQ predicate on the "last_reviewed" field.
func LastReviewedEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldLastReviewed, v))
}

// LastReviewedNEQ applies the NEQ predicate on the "last_reviewed" field.
func LastReviewedNEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldLastReviewed, v))
}

// LastReviewedIn applies the In predicate on the "last_reviewed" field.
func LastReviewedIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldLastReviewed, vs...))
}

// LastReviewedNotIn applies the NotIn predicate on the "last_reviewed" field.
func LastReviewedNotIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldLastReviewed, vs...))
}

// LastReviewedGT applies the GT predicate on the "last_reviewed" field.
func LastReviewedGT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldLastReviewed, v))
}

// LastReviewedGTE applies the GTE predicate on the "last_reviewed" field.
func LastReviewedGTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldLastReviewed, v))
}

// LastReviewedLT applies the LT predicate on the "last_reviewed" field.
func LastReviewedLT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldLastReviewed, v))
}

// LastReviewedLTE applies the LTE predicate on the "last_reviewed" field.
func LastReviewedLTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldLastReviewed, v))
}

// LastReviewedIsNil applies the IsNil predicate on the "last_reviewed" field.
func LastReviewedIsNil() predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIsNull(FieldLastReviewed))
}

// LastReviewedNotNil applies the NotNil predicate on the "last_reviewed" field.
func LastReviewedNotNil() predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotNull(FieldLastReviewed))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewRecord) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewRecord) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewRecord) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.NotPredicates(p))
}
