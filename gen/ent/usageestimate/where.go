// Code generated by ent, DO NOT EDIT.

package usageestimate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/tbruins/stroomadvies/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldEQ(FieldProfileID, v))
}

// KwhPerMonth applies equality check predicate on the "kwh_per_month" field. It's identical to KwhPerMonthEQ.
func KwhPerMonth(v int) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldEQ(FieldKwhPerMonth, v))
}

// RatePerKwh applies equality check predicate on the "rate_per_kwh" field. It's identical to RatePerKwhEQ.
func RatePerKwh(v float64) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldEQ(FieldRatePerKwh, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldEQ(FieldConfidence, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldEQ(FieldReasoning, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldEQ(FieldCreatedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldNotIn(FieldProfileID, vs...))
}

// KwhPerMonthEQ applies the EQ predicate on the "kwh_per_month" field.
func KwhPerMonthEQ(v int) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldEQ(FieldKwhPerMonth, v))
}

// KwhPerMonthNEQ applies the NEQ predicate on the "kwh_per_month" field.
func KwhPerMonthNEQ(v int) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldNEQ(FieldKwhPerMonth, v))
}

// KwhPerMonthIn applies the In predicate on the "kwh_per_month" field.
func KwhPerMonthIn(vs ...int) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldIn(FieldKwhPerMonth, vs...))
}

// KwhPerMonthNotIn applies the NotIn predicate on the "kwh_per_month" field.
func KwhPerMonthNotIn(vs ...int) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldNotIn(FieldKwhPerMonth, vs...))
}

// KwhPerMonthGT applies the GT predicate on the "kwh_per_month" field.
func KwhPerMonthGT(v int) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldGT(FieldKwhPerMonth, v))
}

// KwhPerMonthGTE applies the GTE predicate on the "kwh_per_month" field.
func KwhPerMonthGTE(v int) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldGTE(FieldKwhPerMonth, v))
}

// KwhPerMonthLT applies the LT predicate on the "kwh_per_month" field.
func KwhPerMonthLT(v int) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldLT(FieldKwhPerMonth, v))
}

// KwhPerMonthLTE applies the LTE predicate on the "kwh_per_month" field.
func KwhPerMonthLTE(v int) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldLTE(FieldKwhPerMonth, v))
}

// RatePerKwhEQ applies the EQ predicate on the "rate_per_kwh" field.
func RatePerKwhEQ(v float64) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldEQ(FieldRatePerKwh, v))
}

// RatePerKwhNEQ applies the NEQ predicate on the "rate_per_kwh" field.
func RatePerKwhNEQ(v float64) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldNEQ(FieldRatePerKwh, v))
}

// RatePerKwhIn applies the In predicate on the "rate_per_kwh" field.
func RatePerKwhIn(vs ...float64) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldIn(FieldRatePerKwh, vs...))
}

// RatePerKwhNotIn applies the NotIn predicate on the "rate_per_kwh" field.
func RatePerKwhNotIn(vs ...float64) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldNotIn(FieldRatePerKwh, vs...))
}

// RatePerKwhGT applies the GT predicate on the "rate_per_kwh" field.
func RatePerKwhGT(v float64) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldGT(FieldRatePerKwh, v))
}

// RatePerKwhGTE applies the GTE predicate on the "rate_per_kwh" field.
func RatePerKwhGTE(v float64) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldGTE(FieldRatePerKwh, v))
}

// RatePerKwhLT applies the LT predicate on the "rate_per_kwh" field.
func RatePerKwhLT(v float64) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldLT(FieldRatePerKwh, v))
}

// RatePerKwhLTE applies the LTE predicate on the "rate_per_kwh" field.
func RatePerKwhLTE(v float64) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldLTE(FieldRatePerKwh, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceContains applies the Contains predicate on the "confidence" field.
func ConfidenceContains(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldContains(FieldConfidence, v))
}

// ConfidenceHasPrefix applies the HasPrefix predicate on the "confidence" field.
func ConfidenceHasPrefix(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldHasPrefix(FieldConfidence, v))
}

// ConfidenceHasSuffix applies the HasSuffix predicate on the "confidence" field.
func ConfidenceHasSuffix(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldHasSuffix(FieldConfidence, v))
}

// ConfidenceEqualFold applies the EqualFold predicate on the "confidence" field.
func ConfidenceEqualFold(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldEqualFold(FieldConfidence, v))
}

// ConfidenceContainsFold applies the ContainsFold predicate on the "confidence" field.
func ConfidenceContainsFold(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldContainsFold(FieldConfidence, v))
}

// AssumptionsIsNil applies the IsNil predicate on the "assumptions" field.
func AssumptionsIsNil() predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldIsNull(FieldAssumptions))
}

// AssumptionsNotNil applies the NotNil predicate on the "assumptions" field.
func AssumptionsNotNil() predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldNotNull(FieldAssumptions))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldNotNull(FieldReasoning))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldContainsFold(FieldReasoning, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.UsageEstimate {
	return predicate.UsageEstimate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.UsageEstimate {
	return predicate.UsageEstimate(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UsageEstimate) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UsageEstimate) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UsageEstimate) predicate.UsageEstimate {
	return predicate.UsageEstimate(sql.NotPredicates(p))
}
