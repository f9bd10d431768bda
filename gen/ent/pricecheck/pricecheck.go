// Code generated by ent, DO NOT EDIT.

package pricecheck

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the pricecheck type in the database.
	Label = "price_check"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProfileID holds the string denoting the profile_id field in the database.
	FieldProfileID = "profile_id"
	// FieldCheckedAt holds the string denoting the checked_at field in the database.
	FieldCheckedAt = "checked_at"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldUsedKwhPerMonth holds the string denoting the used_kwh_per_month field in the database.
	FieldUsedKwhPerMonth = "used_kwh_per_month"
	// FieldUsedRatePerKwh holds the string denoting the used_rate_per_kwh field in the database.
	FieldUsedRatePerKwh = "used_rate_per_kwh"
	// FieldSnapshotSource holds the string denoting the snapshot_source field in the database.
	FieldSnapshotSource = "snapshot_source"
	// FieldTop2 holds the string denoting the top2 field in the database.
	FieldTop2 = "top2"
	// FieldCheapest holds the string denoting the cheapest field in the database.
	FieldCheapest = "cheapest"
	// FieldRecommendation holds the string denoting the recommendation field in the database.
	FieldRecommendation = "recommendation"
	// FieldMonthlySavingsEur holds the string denoting the monthly_savings_eur field in the database.
	FieldMonthlySavingsEur = "monthly_savings_eur"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// EdgeProfile holds the string denoting the profile edge name in mutations.
	EdgeProfile = "profile"
	// Table holds the table name of the pricecheck in the database.
	Table = "price_checks"
	// ProfileTable is the table that holds the profile relation/edge.
	ProfileTable = "price_checks"
	// ProfileInverseTable is the table name for the Profile entity.
	// It exists in this package in order to avoid circular dependency with the "profile" package.
	ProfileInverseTable = "profiles"
	// ProfileColumn is the table column denoting the profile relation/edge.
	ProfileColumn = "profile_id"
)

// Columns holds all SQL columns for pricecheck fields.
var Columns = []string{
	FieldID,
	FieldProfileID,
	FieldCheckedAt,
	FieldSource,
	FieldUsedKwhPerMonth,
	FieldUsedRatePerKwh,
	FieldSnapshotSource,
	FieldTop2,
	FieldCheapest,
	FieldRecommendation,
	FieldMonthlySavingsEur,
	FieldReasoning,
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
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// SnapshotSourceValidator is a validator for the "snapshot_source" field. It is called by the builders before save.
	SnapshotSourceValidator func(string) error
	// RecommendationValidator is a validator for the "recommendation" field. It is called by the builders before save.
	RecommendationValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the PriceCheck queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProfileID orders the results by the profile_id field.
func ByProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileID, opts...).ToFunc()
}

// ByCheckedAt orders the results by the checked_at field.
func ByCheckedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckedAt, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByUsedKwhPerMonth orders the results by the used_kwh_per_month field.
func ByUsedKwhPerMonth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsedKwhPerMonth, opts...).ToFunc()
}

// ByUsedRatePerKwh orders the results by the used_rate_per_kwh field.
func ByUsedRatePerKwh(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsedRatePerKwh, opts...).ToFunc()
}

// BySnapshotSource orders the results by the snapshot_source field.
func BySnapshotSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSnapshotSource, opts...).ToFunc()
}

// ByRecommendation orders the results by the recommendation field.
func ByRecommendation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendation, opts...).ToFunc()
}

// ByMonthlySavingsEur orders the results by the monthly_savings_eur field.
func ByMonthlySavingsEur(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlySavingsEur, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByProfileField orders the results by profile field.
func ByProfileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProfileStep(), sql.OrderByField(field, opts...))
	}
}
func newProfileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProfileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
	)
}
