// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/tbruins/stroomadvies/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldID, id))
}

// HouseholdSize applies equality check predicate on the "household_size" field. It's identical to HouseholdSizeEQ.
func HouseholdSize(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldHouseholdSize, v))
}

// DwellingType applies equality check predicate on the "dwelling_type" field. It's identical to DwellingTypeEQ.
func DwellingType(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldDwellingType, v))
}

// WorksFromHome applies equality check predicate on the "works_from_home" field. It's identical to WorksFromHomeEQ.
func WorksFromHome(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldWorksFromHome, v))
}

// HasHeatPump applies equality check predicate on the "has_heat_pump" field. It's identical to HasHeatPumpEQ.
func HasHeatPump(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldHasHeatPump, v))
}

// HasDistrictHeating applies equality check predicate on the "has_district_heating" field. It's identical to HasDistrictHeatingEQ.
func HasDistrictHeating(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldHasDistrictHeating, v))
}

// HasSolarPanels applies equality check predicate on the "has_solar_panels" field. It's identical to HasSolarPanelsEQ.
func HasSolarPanels(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldHasSolarPanels, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldProvider, v))
}

// ContractType applies equality check predicate on the "contract_type" field. It's identical to ContractTypeEQ.
func ContractType(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldContractType, v))
}

// MonthlyCostEur applies equality check predicate on the "monthly_cost_eur" field. It's identical to MonthlyCostEurEQ.
func MonthlyCostEur(v float64) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldMonthlyCostEur, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTier, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// HouseholdSizeEQ applies the EQ predicate on the "household_size" field.
func HouseholdSizeEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldHouseholdSize, v))
}

// HouseholdSizeNEQ applies the NEQ predicate on the "household_size" field.
func HouseholdSizeNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldHouseholdSize, v))
}

// HouseholdSizeIn applies the In predicate on the "household_size" field.
func HouseholdSizeIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldHouseholdSize, vs...))
}

// HouseholdSizeNotIn applies the NotIn predicate on the "household_size" field.
func HouseholdSizeNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldHouseholdSize, vs...))
}

// HouseholdSizeGT applies the GT predicate on the "household_size" field.
func HouseholdSizeGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldHouseholdSize, v))
}

// HouseholdSizeGTE applies the GTE predicate on the "household_size" field.
func HouseholdSizeGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldHouseholdSize, v))
}

// HouseholdSizeLT applies the LT predicate on the "household_size" field.
func HouseholdSizeLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldHouseholdSize, v))
}

// HouseholdSizeLTE applies the LTE predicate on the "household_size" field.
func HouseholdSizeLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldHouseholdSize, v))
}

// HouseholdSizeContains applies the Contains predicate on the "household_size" field.
func HouseholdSizeContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldHouseholdSize, v))
}

// HouseholdSizeHasPrefix applies the HasPrefix predicate on the "household_size" field.
func HouseholdSizeHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldHouseholdSize, v))
}

// HouseholdSizeHasSuffix applies the HasSuffix predicate on the "household_size" field.
func HouseholdSizeHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldHouseholdSize, v))
}

// HouseholdSizeEqualFold applies the EqualFold predicate on the "household_size" field.
func HouseholdSizeEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldHouseholdSize, v))
}

// HouseholdSizeContainsFold applies the ContainsFold predicate on the "household_size" field.
func HouseholdSizeContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldHouseholdSize, v))
}

// DwellingTypeEQ applies the EQ predicate on the "dwelling_type" field.
func DwellingTypeEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldDwellingType, v))
}

// DwellingTypeNEQ applies the NEQ predicate on the "dwelling_type" field.
func DwellingTypeNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldDwellingType, v))
}

// DwellingTypeIn applies the In predicate on the "dwelling_type" field.
func DwellingTypeIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldDwellingType, vs...))
}

// DwellingTypeNotIn applies the NotIn predicate on the "dwelling_type" field.
func DwellingTypeNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldDwellingType, vs...))
}

// DwellingTypeGT applies the GT predicate on the "dwelling_type" field.
func DwellingTypeGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldDwellingType, v))
}

// DwellingTypeGTE applies the GTE predicate on the "dwelling_type" field.
func DwellingTypeGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldDwellingType, v))
}

// DwellingTypeLT applies the LT predicate on the "dwelling_type" field.
func DwellingTypeLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldDwellingType, v))
}

// DwellingTypeLTE applies the LTE predicate on the "dwelling_type" field.
func DwellingTypeLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldDwellingType, v))
}

// DwellingTypeContains applies the Contains predicate on the "dwelling_type" field.
func DwellingTypeContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldDwellingType, v))
}

// DwellingTypeHasPrefix applies the HasPrefix predicate on the "dwelling_type" field.
func DwellingTypeHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldDwellingType, v))
}

// DwellingTypeHasSuffix applies the HasSuffix predicate on the "dwelling_type" field.
func DwellingTypeHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldDwellingType, v))
}

// DwellingTypeEqualFold applies the EqualFold predicate on the "dwelling_type" field.
func DwellingTypeEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldDwellingType, v))
}

// DwellingTypeContainsFold applies the ContainsFold predicate on the "dwelling_type" field.
func DwellingTypeContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldDwellingType, v))
}

// WorksFromHomeEQ applies the EQ predicate on the "works_from_home" field.
func WorksFromHomeEQ(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldWorksFromHome, v))
}

// WorksFromHomeNEQ applies the NEQ predicate on the "works_from_home" field.
func WorksFromHomeNEQ(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldWorksFromHome, v))
}

// HasHeatPumpEQ applies the EQ predicate on the "has_heat_pump" field.
func HasHeatPumpEQ(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldHasHeatPump, v))
}

// HasHeatPumpNEQ applies the NEQ predicate on the "has_heat_pump" field.
func HasHeatPumpNEQ(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldHasHeatPump, v))
}

// HasDistrictHeatingEQ applies the EQ predicate on the "has_district_heating" field.
func HasDistrictHeatingEQ(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldHasDistrictHeating, v))
}

// HasDistrictHeatingNEQ applies the NEQ predicate on the "has_district_heating" field.
func HasDistrictHeatingNEQ(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldHasDistrictHeating, v))
}

// HasSolarPanelsEQ applies the EQ predicate on the "has_solar_panels" field.
func HasSolarPanelsEQ(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldHasSolarPanels, v))
}

// HasSolarPanelsNEQ applies the NEQ predicate on the "has_solar_panels" field.
func HasSolarPanelsNEQ(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldHasSolarPanels, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderIsNil applies the IsNil predicate on the "provider" field.
func ProviderIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldProvider))
}

// ProviderNotNil applies the NotNil predicate on the "provider" field.
func ProviderNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldProvider))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldProvider, v))
}

// ContractTypeEQ applies the EQ predicate on the "contract_type" field.
func ContractTypeEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldContractType, v))
}

// ContractTypeNEQ applies the NEQ predicate on the "contract_type" field.
func ContractTypeNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldContractType, v))
}

// ContractTypeIn applies the In predicate on the "contract_type" field.
func ContractTypeIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldContractType, vs...))
}

// ContractTypeNotIn applies the NotIn predicate on the "contract_type" field.
func ContractTypeNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldContractType, vs...))
}

// ContractTypeGT applies the GT predicate on the "contract_type" field.
func ContractTypeGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldContractType, v))
}

// ContractTypeGTE applies the GTE predicate on the "contract_type" field.
func ContractTypeGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldContractType, v))
}

// ContractTypeLT applies the LT predicate on the "contract_type" field.
func ContractTypeLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldContractType, v))
}

// ContractTypeLTE applies the LTE predicate on the "contract_type" field.
func ContractTypeLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldContractType, v))
}

// ContractTypeContains applies the Contains predicate on the "contract_type" field.
func ContractTypeContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldContractType, v))
}

// ContractTypeHasPrefix applies the HasPrefix predicate on the "contract_type" field.
func ContractTypeHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldContractType, v))
}

// ContractTypeHasSuffix applies the HasSuffix predicate on the "contract_type" field.
func ContractTypeHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldContractType, v))
}

// ContractTypeEqualFold applies the EqualFold predicate on the "contract_type" field.
func ContractTypeEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldContractType, v))
}

// ContractTypeContainsFold applies the ContainsFold predicate on the "contract_type" field.
func ContractTypeContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldContractType, v))
}

// MonthlyCostEurEQ applies the EQ predicate on the "monthly_cost_eur" field.
func MonthlyCostEurEQ(v float64) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldMonthlyCostEur, v))
}

// MonthlyCostEurNEQ applies the NEQ predicate on the "monthly_cost_eur" field.
func MonthlyCostEurNEQ(v float64) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldMonthlyCostEur, v))
}

// MonthlyCostEurIn applies the In predicate on the "monthly_cost_eur" field.
func MonthlyCostEurIn(vs ...float64) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldMonthlyCostEur, vs...))
}

// MonthlyCostEurNotIn applies the NotIn predicate on the "monthly_cost_eur" field.
func MonthlyCostEurNotIn(vs ...float64) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldMonthlyCostEur, vs...))
}

// MonthlyCostEurGT applies the GT predicate on the "monthly_cost_eur" field.
func MonthlyCostEurGT(v float64) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldMonthlyCostEur, v))
}

// MonthlyCostEurGTE applies the GTE predicate on the "monthly_cost_eur" field.
func MonthlyCostEurGTE(v float64) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldMonthlyCostEur, v))
}

// MonthlyCostEurLT applies the LT predicate on the "monthly_cost_eur" field.
func MonthlyCostEurLT(v float64) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldMonthlyCostEur, v))
}

// MonthlyCostEurLTE applies the LTE predicate on the "monthly_cost_eur" field.
func MonthlyCostEurLTE(v float64) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldMonthlyCostEur, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldTier, v))
}

// TierContains applies the Contains predicate on the "tier" field.
func TierContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldTier, v))
}

// TierHasPrefix applies the HasPrefix predicate on the "tier" field.
func TierHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldTier, v))
}

// TierHasSuffix applies the HasSuffix predicate on the "tier" field.
func TierHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldTier, v))
}

// TierEqualFold applies the EqualFold predicate on the "tier" field.
func TierEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldTier, v))
}

// TierContainsFold applies the ContainsFold predicate on the "tier" field.
func TierContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldTier, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasEstimates applies the HasEdge predicate on the "estimates" edge.
func HasEstimates() predicate.Profile {
	return predicate.Profile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EstimatesTable, EstimatesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEstimatesWith applies the HasEdge predicate on the "estimates" edge with a given conditions (other predicates).
func HasEstimatesWith(preds ...predicate.UsageEstimate) predicate.Profile {
	return predicate.Profile(func(s *sql.Selector) {
		step := newEstimatesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVerifiedUsage applies the HasEdge predicate on the "verified_usage" edge.
func HasVerifiedUsage() predicate.Profile {
	return predicate.Profile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, VerifiedUsageTable, VerifiedUsageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVerifiedUsageWith applies the HasEdge predicate on the "verified_usage" edge with a given conditions (other predicates).
func HasVerifiedUsageWith(preds ...predicate.VerifiedUsage) predicate.Profile {
	return predicate.Profile(func(s *sql.Selector) {
		step := newVerifiedUsageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPriceChecks applies the HasEdge predicate on the "price_checks" edge.
func HasPriceChecks() predicate.Profile {
	return predicate.Profile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PriceChecksTable, PriceChecksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPriceChecksWith applies the HasEdge predicate on the "price_checks" edge with a given conditions (other predicates).
func HasPriceChecksWith(preds ...predicate.PriceCheck) predicate.Profile {
	return predicate.Profile(func(s *sql.Selector) {
		step := newPriceChecksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.NotPredicates(p))
}
