package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoadmapItem is one selected catalog resource on a user's roadmap.
// Rows are replaced on regeneration; COMPLETED items are re-marked by
// matching resource_id.
type RoadmapItem struct {
	ent.Schema
}

func (RoadmapItem) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (RoadmapItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("resource_id").
			NotEmpty().
			Comment("Catalog resource this row instantiates"),
		field.Int("phase"),
		field.Int("position").
			Comment("Order within the phase"),
		field.String("status").
			Default("NOT_STARTED").
			Comment("NOT_STARTED, IN_PROGRESS or COMPLETED"),
	}
}

func (RoadmapItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "resource_id").
			Unique(),
		index.Fields("user_id", "phase", "position"),
	}
}
