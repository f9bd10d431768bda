package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/tbruins/stroomadvies/constants"
	"github.com/tbruins/stroomadvies/db/ent/schema/utils"
)

type Profile struct{ ent.Schema }

func (Profile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "profiles"},
	}
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("household_size").NotEmpty().
			Validate(utils.EnumValidator(constants.HouseholdSizes()...)),
		field.String("dwelling_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DwellingTypes()...)),
		field.Bool("works_from_home").Default(false),
		field.Bool("has_heat_pump").Default(false),
		field.Bool("has_district_heating").Default(false),
		field.Bool("has_solar_panels").Default(false),
		field.String("provider").Optional(),
		field.String("contract_type").Default(string(constants.ContractUnknown)),
		field.Float("monthly_cost_eur").
			SchemaType(map[string]string{dialect.Postgres: "numeric(8,2)"}),
		field.String("tier").Default(string(constants.TierFree)),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Profile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("estimates", UsageEstimate.Type),
		edge.To("verified_usage", VerifiedUsage.Type).Unique(),
		edge.To("price_checks", PriceCheck.Type),
	}
}
