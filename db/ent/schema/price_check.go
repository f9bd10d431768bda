package schema

import (
	"encoding/json"

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

type PriceCheck struct{ ent.Schema }

func (PriceCheck) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "price_checks"},
	}
}

func (PriceCheck) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("profile_id", uuid.UUID{}),
		field.Time("checked_at").Immutable(),
		field.String("source").
			Validate(utils.EnumValidator(string(constants.SourceEstimated), string(constants.SourceVerified))),
		field.Float("used_kwh_per_month").
			SchemaType(map[string]string{dialect.Postgres: "numeric(8,2)"}),
		field.Float("used_rate_per_kwh").
			SchemaType(map[string]string{dialect.Postgres: "numeric(8,4)"}),
		field.String("snapshot_source").
			Validate(utils.EnumValidator(string(constants.SnapshotLive), string(constants.SnapshotFallback))),
		field.JSON("top2", json.RawMessage{}).Optional(),
		field.JSON("cheapest", json.RawMessage{}).Optional(),
		field.String("recommendation").
			Validate(utils.EnumValidator(string(constants.RecommendSwitch), string(constants.RecommendStay))),
		field.Float("monthly_savings_eur").
			SchemaType(map[string]string{dialect.Postgres: "numeric(8,2)"}),
		field.String("reasoning").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (PriceCheck) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("price_checks").
			Field("profile_id").
			Required().
			Unique(),
	}
}

func (PriceCheck) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "checked_at"),
	}
}
