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

type VerifiedUsage struct{ ent.Schema }

func (VerifiedUsage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "verified_usage"},
	}
}

func (VerifiedUsage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// one row per profile: verification is terminal
		field.UUID("profile_id", uuid.UUID{}).Unique(),
		field.Float("kwh_per_month").
			SchemaType(map[string]string{dialect.Postgres: "numeric(8,2)"}),
		field.Float("rate_per_kwh").
			SchemaType(map[string]string{dialect.Postgres: "numeric(8,4)"}),
		field.String("provider").Optional(),
		field.String("contract_type").Default(string(constants.ContractUnknown)),
		field.String("confidence").
			Validate(utils.EnumValidator(constants.ConfidenceLevels()...)),
		field.JSON("warnings", []string{}).Optional(),
		field.Time("confirmed_at").Default(time.Now).Immutable(),
	}
}

func (VerifiedUsage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("verified_usage").
			Field("profile_id").
			Required().
			Unique(),
	}
}
