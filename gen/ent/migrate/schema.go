// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PriceChecksColumns holds the columns for the "price_checks" table.
	PriceChecksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "checked_at", Type: field.TypeTime},
		{Name: "source", Type: field.TypeString},
		{Name: "used_kwh_per_month", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(8,2)"}},
		{Name: "used_rate_per_kwh", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(8,4)"}},
		{Name: "snapshot_source", Type: field.TypeString},
		{Name: "top2", Type: field.TypeJSON, Nullable: true},
		{Name: "cheapest", Type: field.TypeJSON, Nullable: true},
		{Name: "recommendation", Type: field.TypeString},
		{Name: "monthly_savings_eur", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(8,2)"}},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// PriceChecksTable holds the schema information for the "price_checks" table.
	PriceChecksTable = &schema.Table{
		Name:       "price_checks",
		Columns:    PriceChecksColumns,
		PrimaryKey: []*schema.Column{PriceChecksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "price_checks_profiles_price_checks",
				Columns:    []*schema.Column{PriceChecksColumns[11]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pricecheck_profile_id_checked_at",
				Unique:  false,
				Columns: []*schema.Column{PriceChecksColumns[11], PriceChecksColumns[1]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "household_size", Type: field.TypeString},
		{Name: "dwelling_type", Type: field.TypeString},
		{Name: "works_from_home", Type: field.TypeBool, Default: false},
		{Name: "has_heat_pump", Type: field.TypeBool, Default: false},
		{Name: "has_district_heating", Type: field.TypeBool, Default: false},
		{Name: "has_solar_panels", Type: field.TypeBool, Default: false},
		{Name: "provider", Type: field.TypeString, Nullable: true},
		{Name: "contract_type", Type: field.TypeString, Default: "UNKNOWN"},
		{Name: "monthly_cost_eur", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(8,2)"}},
		{Name: "tier", Type: field.TypeString, Default: "FREE"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// UsageEstimatesColumns holds the columns for the "usage_estimates" table.
	UsageEstimatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "kwh_per_month", Type: field.TypeInt},
		{Name: "rate_per_kwh", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(8,4)"}},
		{Name: "confidence", Type: field.TypeString},
		{Name: "assumptions", Type: field.TypeJSON, Nullable: true},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// UsageEstimatesTable holds the schema information for the "usage_estimates" table.
	UsageEstimatesTable = &schema.Table{
		Name:       "usage_estimates",
		Columns:    UsageEstimatesColumns,
		PrimaryKey: []*schema.Column{UsageEstimatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "usage_estimates_profiles_estimates",
				Columns:    []*schema.Column{UsageEstimatesColumns[7]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usageestimate_profile_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsageEstimatesColumns[7], UsageEstimatesColumns[6]},
			},
		},
	}
	// VerifiedUsageColumns holds the columns for the "verified_usage" table.
	VerifiedUsageColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "kwh_per_month", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(8,2)"}},
		{Name: "rate_per_kwh", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(8,4)"}},
		{Name: "provider", Type: field.TypeString, Nullable: true},
		{Name: "contract_type", Type: field.TypeString, Default: "UNKNOWN"},
		{Name: "confidence", Type: field.TypeString},
		{Name: "warnings", Type: field.TypeJSON, Nullable: true},
		{Name: "confirmed_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID, Unique: true},
	}
	// VerifiedUsageTable holds the schema information for the "verified_usage" table.
	VerifiedUsageTable = &schema.Table{
		Name:       "verified_usage",
		Columns:    VerifiedUsageColumns,
		PrimaryKey: []*schema.Column{VerifiedUsageColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "verified_usage_profiles_verified_usage",
				Columns:    []*schema.Column{VerifiedUsageColumns[8]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PriceChecksTable,
		ProfilesTable,
		UsageEstimatesTable,
		VerifiedUsageTable,
	}
)

func init() {
	PriceChecksTable.ForeignKeys[0].RefTable = ProfilesTable
	PriceChecksTable.Annotation = &entsql.Annotation{
		Table: "price_checks",
	}
	ProfilesTable.Annotation = &entsql.Annotation{
		Table: "profiles",
	}
	UsageEstimatesTable.ForeignKeys[0].RefTable = ProfilesTable
	UsageEstimatesTable.Annotation = &entsql.Annotation{
		Table: "usage_estimates",
	}
	VerifiedUsageTable.ForeignKeys[0].RefTable = ProfilesTable
	VerifiedUsageTable.Annotation = &entsql.Annotation{
		Table: "verified_usage",
	}
}
