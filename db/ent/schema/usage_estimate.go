package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/tbruins/stroomadvies/constants"
	"github.com/tbruins/stroomadvies/db/ent/schema/utils"
)

type UsageEstimate struct{ ent.Schema }

func (UsageEstimate) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "usage_estimates"},
	}
}

func (UsageEstimate) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("profile_id", uuid.UUID{}),
		field.Int("kwh_per_month").Positive(),
		field.Float("rate_per_kwh").
			SchemaType(map[string]string{dialect.Postgres: "numeric(8,4)"}),
		field.String("confidence").
			Validate(utils.EnumValidator(constants.ConfidenceLevels()...)),
		field.JSON("assumptions", []string{}).Optional(),
		field.String("reasoning").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (UsageEstimate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("estimates").
			Field("profile_id").
			Required().
			Unique(),
	}
}

func (UsageEstimate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "created_at"),
	}
}
