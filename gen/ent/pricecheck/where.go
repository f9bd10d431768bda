// Code generated by ent, DO NOT EDIT.

package pricecheck

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/tbruins/stroomadvies/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEQ(FieldProfileID, v))
}

// CheckedAt applies equality check predicate on the "checked_at" field. It's identical to CheckedAtEQ.
func CheckedAt(v time.Time) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEQ(FieldCheckedAt, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEQ(FieldSource, v))
}

// UsedKwhPerMonth applies equality check predicate on the "used_kwh_per_month" field. It's identical to UsedKwhPerMonthEQ.
func UsedKwhPerMonth(v float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEQ(FieldUsedKwhPerMonth, v))
}

// UsedRatePerKwh applies equality check predicate on the "used_rate_per_kwh" field. It's identical to UsedRatePerKwhEQ.
func UsedRatePerKwh(v float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEQ(FieldUsedRatePerKwh, v))
}

// SnapshotSource applies equality check predicate on the "snapshot_source" field. It's identical to SnapshotSourceEQ.
func SnapshotSource(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEQ(FieldSnapshotSource, v))
}

// Recommendation applies equality check predicate on the "recommendation" field. It's identical to RecommendationEQ.
func Recommendation(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEQ(FieldRecommendation, v))
}

// MonthlySavingsEur applies equality check predicate on the "monthly_savings_eur" field. It's identical to MonthlySavingsEurEQ.
func MonthlySavingsEur(v float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEQ(FieldMonthlySavingsEur, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEQ(FieldReasoning, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNotIn(FieldProfileID, vs...))
}

// CheckedAtEQ applies the EQ predicate on the "checked_at" field.
func CheckedAtEQ(v time.Time) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEQ(FieldCheckedAt, v))
}

// CheckedAtNEQ applies the NEQ predicate on the "checked_at" field.
func CheckedAtNEQ(v time.Time) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNEQ(FieldCheckedAt, v))
}

// CheckedAtIn applies the In predicate on the "checked_at" field.
func CheckedAtIn(vs ...time.Time) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldIn(FieldCheckedAt, vs...))
}

// CheckedAtNotIn applies the NotIn predicate on the "checked_at" field.
func CheckedAtNotIn(vs ...time.Time) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNotIn(FieldCheckedAt, vs...))
}

// CheckedAtGT applies the GT predicate on the "checked_at" field.
func CheckedAtGT(v time.Time) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldGT(FieldCheckedAt, v))
}

// CheckedAtGTE applies the GTE predicate on the "checked_at" field.
func CheckedAtGTE(v time.Time) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldGTE(FieldCheckedAt, v))
}

// CheckedAtLT applies the LT predicate on the "checked_at" field.
func CheckedAtLT(v time.Time) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldLT(FieldCheckedAt, v))
}

// CheckedAtLTE applies the LTE predicate on the "checked_at" field.
func CheckedAtLTE(v time.Time) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldLTE(FieldCheckedAt, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldContainsFold(FieldSource, v))
}

// UsedKwhPerMonthEQ applies the EQ predicate on the "used_kwh_per_month" field.
func UsedKwhPerMonthEQ(v float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEQ(FieldUsedKwhPerMonth, v))
}

// UsedKwhPerMonthNEQ applies the NEQ predicate on the "used_kwh_per_month" field.
func UsedKwhPerMonthNEQ(v float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNEQ(FieldUsedKwhPerMonth, v))
}

// UsedKwhPerMonthIn applies the In predicate on the "used_kwh_per_month" field.
func UsedKwhPerMonthIn(vs ...float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldIn(FieldUsedKwhPerMonth, vs...))
}

// UsedKwhPerMonthNotIn applies the NotIn predicate on the "used_kwh_per_month" field.
func UsedKwhPerMonthNotIn(vs ...float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNotIn(FieldUsedKwhPerMonth, vs...))
}

// UsedKwhPerMonthGT applies the GT predicate on the "used_kwh_per_month" field.
func UsedKwhPerMonthGT(v float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldGT(FieldUsedKwhPerMonth, v))
}

// UsedKwhPerMonthGTE applies the GTE predicate on the "used_kwh_per_month" field.
func UsedKwhPerMonthGTE(v float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldGTE(FieldUsedKwhPerMonth, v))
}

// UsedKwhPerMonthLT applies the LT predicate on the "used_kwh_per_month" field.
func UsedKwhPerMonthLT(v float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldLT(FieldUsedKwhPerMonth, v))
}

// UsedKwhPerMonthLTE applies the LTE predicate on the "used_kwh_per_month" field.
func UsedKwhPerMonthLTE(v float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldLTE(FieldUsedKwhPerMonth, v))
}

// UsedRatePerKwhEQ applies the EQ predicate on the "used_rate_per_kwh" field.
func UsedRatePerKwhEQ(v float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEQ(FieldUsedRatePerKwh, v))
}

// UsedRatePerKwhNEQ applies the NEQ predicate on the "used_rate_per_kwh" field.
func UsedRatePerKwhNEQ(v float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNEQ(FieldUsedRatePerKwh, v))
}

// UsedRatePerKwhIn applies the In predicate on the "used_rate_per_kwh" field.
func UsedRatePerKwhIn(vs ...float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldIn(FieldUsedRatePerKwh, vs...))
}

// UsedRatePerKwhNotIn applies the NotIn predicate on the "used_rate_per_kwh" field.
func UsedRatePerKwhNotIn(vs ...float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNotIn(FieldUsedRatePerKwh, vs...))
}

// UsedRatePerKwhGT applies the GT predicate on the "used_rate_per_kwh" field.
func UsedRatePerKwhGT(v float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldGT(FieldUsedRatePerKwh, v))
}

// UsedRatePerKwhGTE applies the GTE predicate on the "used_rate_per_kwh" field.
func UsedRatePerKwhGTE(v float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldGTE(FieldUsedRatePerKwh, v))
}

// UsedRatePerKwhLT applies the LT predicate on the "used_rate_per_kwh" field.
func UsedRatePerKwhLT(v float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldLT(FieldUsedRatePerKwh, v))
}

// UsedRatePerKwhLTE applies the LTE predicate on the "used_rate_per_kwh" field.
func UsedRatePerKwhLTE(v float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldLTE(FieldUsedRatePerKwh, v))
}

// SnapshotSourceEQ applies the EQ predicate on the "snapshot_source" field.
func SnapshotSourceEQ(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEQ(FieldSnapshotSource, v))
}

// SnapshotSourceNEQ applies the NEQ predicate on the "snapshot_source" field.
func SnapshotSourceNEQ(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNEQ(FieldSnapshotSource, v))
}

// SnapshotSourceIn applies the In predicate on the "snapshot_source" field.
func SnapshotSourceIn(vs ...string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldIn(FieldSnapshotSource, vs...))
}

// SnapshotSourceNotIn applies the NotIn predicate on the "snapshot_source" field.
func SnapshotSourceNotIn(vs ...string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNotIn(FieldSnapshotSource, vs...))
}

// SnapshotSourceGT applies the GT predicate on the "snapshot_source" field.
func SnapshotSourceGT(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldGT(FieldSnapshotSource, v))
}

// SnapshotSourceGTE applies the GTE predicate on the "snapshot_source" field.
func SnapshotSourceGTE(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldGTE(FieldSnapshotSource, v))
}

// SnapshotSourceLT applies the LT predicate on the "snapshot_source" field.
func SnapshotSourceLT(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldLT(FieldSnapshotSource, v))
}

// SnapshotSourceLTE applies the LTE predicate on the "snapshot_source" field.
func SnapshotSourceLTE(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldLTE(FieldSnapshotSource, v))
}

// SnapshotSourceContains applies the Contains predicate on the "snapshot_source" field.
func SnapshotSourceContains(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldContains(FieldSnapshotSource, v))
}

// SnapshotSourceHasPrefix applies the HasPrefix predicate on the "snapshot_source" field.
func SnapshotSourceHasPrefix(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldHasPrefix(FieldSnapshotSource, v))
}

// SnapshotSourceHasSuffix applies the HasSuffix predicate on the "snapshot_source" field.
func SnapshotSourceHasSuffix(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldHasSuffix(FieldSnapshotSource, v))
}

// SnapshotSourceEqualFold applies the EqualFold predicate on the "snapshot_source" field.
func SnapshotSourceEqualFold(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEqualFold(FieldSnapshotSource, v))
}

// SnapshotSourceContainsFold applies the ContainsFold predicate on the "snapshot_source" field.
func SnapshotSourceContainsFold(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldContainsFold(FieldSnapshotSource, v))
}

// Top2IsNil applies the IsNil predicate on the "top2" field.
func Top2IsNil() predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldIsNull(FieldTop2))
}

// Top2NotNil applies the NotNil predicate on the "top2" field.
func Top2NotNil() predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNotNull(FieldTop2))
}

// CheapestIsNil applies the IsNil predicate on the "cheapest" field.
func CheapestIsNil() predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldIsNull(FieldCheapest))
}

// CheapestNotNil applies the NotNil predicate on the "cheapest" field.
func CheapestNotNil() predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNotNull(FieldCheapest))
}

// RecommendationEQ applies the EQ predicate on the "recommendation" field.
func RecommendationEQ(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEQ(FieldRecommendation, v))
}

// RecommendationNEQ applies the NEQ predicate on the "recommendation" field.
func RecommendationNEQ(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNEQ(FieldRecommendation, v))
}

// RecommendationIn applies the In predicate on the "recommendation" field.
func RecommendationIn(vs ...string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldIn(FieldRecommendation, vs...))
}

// RecommendationNotIn applies the NotIn predicate on the "recommendation" field.
func RecommendationNotIn(vs ...string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNotIn(FieldRecommendation, vs...))
}

// RecommendationGT applies the GT predicate on the "recommendation" field.
func RecommendationGT(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldGT(FieldRecommendation, v))
}

// RecommendationGTE applies the GTE predicate on the "recommendation" field.
func RecommendationGTE(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldGTE(FieldRecommendation, v))
}

// RecommendationLT applies the LT predicate on the "recommendation" field.
func RecommendationLT(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldLT(FieldRecommendation, v))
}

// RecommendationLTE applies the LTE predicate on the "recommendation" field.
func RecommendationLTE(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldLTE(FieldRecommendation, v))
}

// RecommendationContains applies the Contains predicate on the "recommendation" field.
func RecommendationContains(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldContains(FieldRecommendation, v))
}

// RecommendationHasPrefix applies the HasPrefix predicate on the "recommendation" field.
func RecommendationHasPrefix(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldHasPrefix(FieldRecommendation, v))
}

// RecommendationHasSuffix applies the HasSuffix predicate on the "recommendation" field.
func RecommendationHasSuffix(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldHasSuffix(FieldRecommendation, v))
}

// RecommendationEqualFold applies the EqualFold predicate on the "recommendation" field.
func RecommendationEqualFold(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEqualFold(FieldRecommendation, v))
}

// RecommendationContainsFold applies the ContainsFold predicate on the "recommendation" field.
func RecommendationContainsFold(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldContainsFold(FieldRecommendation, v))
}

// MonthlySavingsEurEQ applies the EQ predicate on the "monthly_savings_eur" field.
func MonthlySavingsEurEQ(v float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEQ(FieldMonthlySavingsEur, v))
}

// MonthlySavingsEurNEQ applies the NEQ predicate on the "monthly_savings_eur" field.
func MonthlySavingsEurNEQ(v float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNEQ(FieldMonthlySavingsEur, v))
}

// MonthlySavingsEurIn applies the In predicate on the "monthly_savings_eur" field.
func MonthlySavingsEurIn(vs ...float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldIn(FieldMonthlySavingsEur, vs...))
}

// MonthlySavingsEurNotIn applies the NotIn predicate on the "monthly_savings_eur" field.
func MonthlySavingsEurNotIn(vs ...float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNotIn(FieldMonthlySavingsEur, vs...))
}

// MonthlySavingsEurGT applies the GT predicate on the "monthly_savings_eur" field.
func MonthlySavingsEurGT(v float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldGT(FieldMonthlySavingsEur, v))
}

// MonthlySavingsEurGTE applies the GTE predicate on the "monthly_savings_eur" field.
func MonthlySavingsEurGTE(v float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldGTE(FieldMonthlySavingsEur, v))
}

// MonthlySavingsEurLT applies the LT predicate on the "monthly_savings_eur" field.
func MonthlySavingsEurLT(v float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldLT(FieldMonthlySavingsEur, v))
}

// MonthlySavingsEurLTE applies the LTE predicate on the "monthly_savings_eur" field.
func MonthlySavingsEurLTE(v float64) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldLTE(FieldMonthlySavingsEur, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldNotNull(FieldReasoning))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.PriceCheck {
	return predicate.PriceCheck(sql.FieldContainsFold(FieldReasoning, v))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.PriceCheck {
	return predicate.PriceCheck(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.PriceCheck {
	return predicate.PriceCheck(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PriceCheck) predicate.PriceCheck {
	return predicate.PriceCheck(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PriceCheck) predicate.PriceCheck {
	return predicate.PriceCheck(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PriceCheck) predicate.PriceCheck {
	return predicate.PriceCheck(sql.NotPredicates(p))
}
