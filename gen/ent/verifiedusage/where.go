// Code generated by ent, DO NOT EDIT.

package verifiedusage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/tbruins/stroomadvies/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldEQ(FieldProfileID, v))
}

// KwhPerMonth applies equality check predicate on the "kwh_per_month" field. It's identical to KwhPerMonthEQ.
func KwhPerMonth(v float64) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldEQ(FieldKwhPerMonth, v))
}

// RatePerKwh applies equality check predicate on the "rate_per_kwh" field. It's identical to RatePerKwhEQ.
func RatePerKwh(v float64) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldEQ(FieldRatePerKwh, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldEQ(FieldProvider, v))
}

// ContractType applies equality check predicate on the "contract_type" field. It's identical to ContractTypeEQ.
func ContractType(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldEQ(FieldContractType, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldEQ(FieldConfidence, v))
}

// ConfirmedAt applies equality check predicate on the "confirmed_at" field. It's identical to ConfirmedAtEQ.
func ConfirmedAt(v time.Time) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldEQ(FieldConfirmedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldNotIn(FieldProfileID, vs...))
}

// KwhPerMonthEQ applies the EQ predicate on the "kwh_per_month" field.
func KwhPerMonthEQ(v float64) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldEQ(FieldKwhPerMonth, v))
}

// KwhPerMonthNEQ applies the NEQ predicate on the "kwh_per_month" field.
func KwhPerMonthNEQ(v float64) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldNEQ(FieldKwhPerMonth, v))
}

// KwhPerMonthIn applies the In predicate on the "kwh_per_month" field.
func KwhPerMonthIn(vs ...float64) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldIn(FieldKwhPerMonth, vs...))
}

// KwhPerMonthNotIn applies the NotIn predicate on the "kwh_per_month" field.
func KwhPerMonthNotIn(vs ...float64) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldNotIn(FieldKwhPerMonth, vs...))
}

// KwhPerMonthGT applies the GT predicate on the "kwh_per_month" field.
func KwhPerMonthGT(v float64) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldGT(FieldKwhPerMonth, v))
}

// KwhPerMonthGTE applies the GTE predicate on the "kwh_per_month" field.
func KwhPerMonthGTE(v float64) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldGTE(FieldKwhPerMonth, v))
}

// KwhPerMonthLT applies the LT predicate on the "kwh_per_month" field.
func KwhPerMonthLT(v float64) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldLT(FieldKwhPerMonth, v))
}

// KwhPerMonthLTE applies the LTE predicate on the "kwh_per_month" field.
func KwhPerMonthLTE(v float64) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldLTE(FieldKwhPerMonth, v))
}

// RatePerKwhEQ applies the EQ predicate on the "rate_per_kwh" field.
func RatePerKwhEQ(v float64) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldEQ(FieldRatePerKwh, v))
}

// RatePerKwhNEQ applies the NEQ predicate on the "rate_per_kwh" field.
func RatePerKwhNEQ(v float64) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldNEQ(FieldRatePerKwh, v))
}

// RatePerKwhIn applies the In predicate on the "rate_per_kwh" field.
func RatePerKwhIn(vs ...float64) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldIn(FieldRatePerKwh, vs...))
}

// RatePerKwhNotIn applies the NotIn predicate on the "rate_per_kwh" field.
func RatePerKwhNotIn(vs ...float64) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldNotIn(FieldRatePerKwh, vs...))
}

// RatePerKwhGT applies the GT predicate on the "rate_per_kwh" field.
func RatePerKwhGT(v float64) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldGT(FieldRatePerKwh, v))
}

// RatePerKwhGTE applies the GTE predicate on the "rate_per_kwh" field.
func RatePerKwhGTE(v float64) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldGTE(FieldRatePerKwh, v))
}

// RatePerKwhLT applies the LT predicate on the "rate_per_kwh" field.
func RatePerKwhLT(v float64) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldLT(FieldRatePerKwh, v))
}

// RatePerKwhLTE applies the LTE predicate on the "rate_per_kwh" field.
func RatePerKwhLTE(v float64) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldLTE(FieldRatePerKwh, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderIsNil applies the IsNil predicate on the "provider" field.
func ProviderIsNil() predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldIsNull(FieldProvider))
}

// ProviderNotNil applies the NotNil predicate on the "provider" field.
func ProviderNotNil() predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldNotNull(FieldProvider))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldContainsFold(FieldProvider, v))
}

// ContractTypeEQ applies the EQ predicate on the "contract_type" field.
func ContractTypeEQ(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldEQ(FieldContractType, v))
}

// ContractTypeNEQ applies the NEQ predicate on the "contract_type" field.
func ContractTypeNEQ(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldNEQ(FieldContractType, v))
}

// ContractTypeIn applies the In predicate on the "contract_type" field.
func ContractTypeIn(vs ...string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldIn(FieldContractType, vs...))
}

// ContractTypeNotIn applies the NotIn predicate on the "contract_type" field.
func ContractTypeNotIn(vs ...string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldNotIn(FieldContractType, vs...))
}

// ContractTypeGT applies the GT predicate on the "contract_type" field.
func ContractTypeGT(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldGT(FieldContractType, v))
}

// ContractTypeGTE applies the GTE predicate on the "contract_type" field.
func ContractTypeGTE(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldGTE(FieldContractType, v))
}

// ContractTypeLT applies the LT predicate on the "contract_type" field.
func ContractTypeLT(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldLT(FieldContractType, v))
}

// ContractTypeLTE applies the LTE predicate on the "contract_type" field.
func ContractTypeLTE(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldLTE(FieldContractType, v))
}

// ContractTypeContains applies the Contains predicate on the "contract_type" field.
func ContractTypeContains(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldContains(FieldContractType, v))
}

// ContractTypeHasPrefix applies the HasPrefix predicate on the "contract_type" field.
func ContractTypeHasPrefix(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldHasPrefix(FieldContractType, v))
}

// ContractTypeHasSuffix applies the HasSuffix predicate on the "contract_type" field.
func ContractTypeHasSuffix(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldHasSuffix(FieldContractType, v))
}

// ContractTypeEqualFold applies the EqualFold predicate on the "contract_type" field.
func ContractTypeEqualFold(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldEqualFold(FieldContractType, v))
}

// ContractTypeContainsFold applies the ContainsFold predicate on the "contract_type" field.
func ContractTypeContainsFold(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldContainsFold(FieldContractType, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceContains applies the Contains predicate on the "confidence" field.
func ConfidenceContains(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldContains(FieldConfidence, v))
}

// ConfidenceHasPrefix applies the HasPrefix predicate on the "confidence" field.
func ConfidenceHasPrefix(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldHasPrefix(FieldConfidence, v))
}

// ConfidenceHasSuffix applies the HasSuffix predicate on the "confidence" field.
func ConfidenceHasSuffix(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldHasSuffix(FieldConfidence, v))
}

// ConfidenceEqualFold applies the EqualFold predicate on the "confidence" field.
func ConfidenceEqualFold(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldEqualFold(FieldConfidence, v))
}

// ConfidenceContainsFold applies the ContainsFold predicate on the "confidence" field.
func ConfidenceContainsFold(v string) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldContainsFold(FieldConfidence, v))
}

// WarningsIsNil applies the IsNil predicate on the "warnings" field.
func WarningsIsNil() predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldIsNull(FieldWarnings))
}

// WarningsNotNil applies the NotNil predicate on the "warnings" field.
func WarningsNotNil() predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldNotNull(FieldWarnings))
}

// ConfirmedAtEQ applies the EQ predicate on the "confirmed_at" field.
func ConfirmedAtEQ(v time.Time) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldEQ(FieldConfirmedAt, v))
}

// ConfirmedAtNEQ applies the NEQ predicate on the "confirmed_at" field.
func ConfirmedAtNEQ(v time.Time) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldNEQ(FieldConfirmedAt, v))
}

// ConfirmedAtIn applies the In predicate on the "confirmed_at" field.
func ConfirmedAtIn(vs ...time.Time) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldIn(FieldConfirmedAt, vs...))
}

// ConfirmedAtNotIn applies the NotIn predicate on the "confirmed_at" field.
func ConfirmedAtNotIn(vs ...time.Time) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldNotIn(FieldConfirmedAt, vs...))
}

// ConfirmedAtGT applies the GT predicate on the "confirmed_at" field.
func ConfirmedAtGT(v time.Time) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldGT(FieldConfirmedAt, v))
}

// ConfirmedAtGTE applies the GTE predicate on the "confirmed_at" field.
func ConfirmedAtGTE(v time.Time) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldGTE(FieldConfirmedAt, v))
}

// ConfirmedAtLT applies the LT predicate on the "confirmed_at" field.
func ConfirmedAtLT(v time.Time) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldLT(FieldConfirmedAt, v))
}

// ConfirmedAtLTE applies the LTE predicate on the "confirmed_at" field.
func ConfirmedAtLTE(v time.Time) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.FieldLTE(FieldConfirmedAt, v))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.VerifiedUsage {
	return predicate.VerifiedUsage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VerifiedUsage) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VerifiedUsage) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VerifiedUsage) predicate.VerifiedUsage {
	return predicate.VerifiedUsage(sql.NotPredicates(p))
}
