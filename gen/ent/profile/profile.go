// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the profile type in the database.
	Label = "profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldHouseholdSize holds the string denoting the household_size field in the database.
	FieldHouseholdSize = "household_size"
	// FieldDwellingType holds the string denoting the dwelling_type field in the database.
	FieldDwellingType = "dwelling_type"
	// FieldWorksFromHome holds the string denoting the works_from_home field in the database.
	FieldWorksFromHome = "works_from_home"
	// FieldHasHeatPump holds the string denoting the has_heat_pump field in the database.
	FieldHasHeatPump = "has_heat_pump"
	// FieldHasDistrictHeating holds the string denoting the has_district_heating field in the database.
	FieldHasDistrictHeating = "has_district_heating"
	// FieldHasSolarPanels holds the string denoting the has_solar_panels field in the database.
	FieldHasSolarPanels = "has_solar_panels"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldContractType holds the string denoting the contract_type field in the database.
	FieldContractType = "contract_type"
	// FieldMonthlyCostEur holds the string denoting the monthly_cost_eur field in the database.
	FieldMonthlyCostEur = "monthly_cost_eur"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeEstimates holds the string denoting the estimates edge name in mutations.
	EdgeEstimates = "estimates"
	// EdgeVerifiedUsage holds the string denoting the verified_usage edge name in mutations.
	EdgeVerifiedUsage = "verified_usage"
	// EdgePriceChecks holds the string denoting the price_checks edge name in mutations.
	EdgePriceChecks = "price_checks"
	// Table holds the table name of the profile in the database.
	Table = "profiles"
	// EstimatesTable is the table that holds the estimates relation/edge.
	EstimatesTable = "usage_estimates"
	// EstimatesInverseTable is the table name for the UsageEstimate entity.
	// It exists in this package in order to avoid circular dependency with the "usageestimate" package.
	EstimatesInverseTable = "usage_estimates"
	// EstimatesColumn is the table column denoting the estimates relation/edge.
	EstimatesColumn = "profile_id"
	// VerifiedUsageTable is the table that holds the verified_usage relation/edge.
	VerifiedUsageTable = "verified_usage"
	// VerifiedUsageInverseTable is the table name for the VerifiedUsage entity.
	// It exists in this package in order to avoid circular dependency with the "verifiedusage" package.
	VerifiedUsageInverseTable = "verified_usage"
	// VerifiedUsageColumn is the table column denoting the verified_usage relation/edge.
	VerifiedUsageColumn = "profile_id"
	// PriceChecksTable is the table that holds the price_checks relation/edge.
	PriceChecksTable = "price_checks"
	// PriceChecksInverseTable is the table name for the PriceCheck entity.
	// It exists in this package in order to avoid circular dependency with the "pricecheck" package.
	PriceChecksInverseTable = "price_checks"
	// PriceChecksColumn is the table column denoting the price_checks relation/edge.
	PriceChecksColumn = "profile_id"
)

// Columns holds all SQL columns for profile fields.
var Columns = []string{
	FieldID,
	FieldHouseholdSize,
	FieldDwellingType,
	FieldWorksFromHome,
	FieldHasHeatPump,
	FieldHasDistrictHeating,
	FieldHasSolarPanels,
	FieldProvider,
	FieldContractType,
	FieldMonthlyCostEur,
	FieldTier,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// HouseholdSizeValidator is a validator for the "household_size" field. It is called by the builders before save.
	HouseholdSizeValidator func(string) error
	// DwellingTypeValidator is a validator for the "dwelling_type" field. It is called by the builders before save.
	DwellingTypeValidator func(string) error
	// DefaultWorksFromHome holds the default value on creation for the "works_from_home" field.
	DefaultWorksFromHome bool
	// DefaultHasHeatPump holds the default value on creation for the "has_heat_pump" field.
	DefaultHasHeatPump bool
	// DefaultHasDistrictHeating holds the default value on creation for the "has_district_heating" field.
	DefaultHasDistrictHeating bool
	// DefaultHasSolarPanels holds the default value on creation for the "has_solar_panels" field.
	DefaultHasSolarPanels bool
	// DefaultContractType holds the default value on creation for the "contract_type" field.
	DefaultContractType string
	// DefaultTier holds the default value on creation for the "tier" field.
	DefaultTier string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Profile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByHouseholdSize orders the results by the household_size field.
func ByHouseholdSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHouseholdSize, opts...).ToFunc()
}

// ByDwellingType orders the results by the dwelling_type field.
func ByDwellingType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDwellingType, opts...).ToFunc()
}

// ByWorksFromHome orders the results by the works_from_home field.
func ByWorksFromHome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorksFromHome, opts...).ToFunc()
}

// ByHasHeatPump orders the results by the has_heat_pump field.
func ByHasHeatPump(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasHeatPump, opts...).ToFunc()
}

// ByHasDistrictHeating orders the results by the has_district_heating field.
func ByHasDistrictHeating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasDistrictHeating, opts...).ToFunc()
}

// ByHasSolarPanels orders the results by the has_solar_panels field.
func ByHasSolarPanels(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasSolarPanels, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByContractType orders the results by the contract_type field.
func ByContractType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractType, opts...).ToFunc()
}

// ByMonthlyCostEur orders the results by the monthly_cost_eur field.
func ByMonthlyCostEur(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlyCostEur, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByEstimatesCount orders the results by estimates count.
func ByEstimatesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEstimatesStep(), opts...)
	}
}

// ByEstimates orders the results by estimates terms.
func ByEstimates(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEstimatesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByVerifiedUsageField orders the results by verified_usage field.
func ByVerifiedUsageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVerifiedUsageStep(), sql.OrderByField(field, opts...))
	}
}

// ByPriceChecksCount orders the results by price_checks count.
func ByPriceChecksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPriceChecksStep(), opts...)
	}
}

// ByPriceChecks orders the results by price_checks terms.
func ByPriceChecks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPriceChecksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEstimatesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EstimatesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EstimatesTable, EstimatesColumn),
	)
}
func newVerifiedUsageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VerifiedUsageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, VerifiedUsageTable, VerifiedUsageColumn),
	)
}
func newPriceChecksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PriceChecksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PriceChecksTable, PriceChecksColumn),
	)
}
