package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SkillMastery is the persisted per-skill estimate for one user.
type SkillMastery struct {
	ent.Schema
}

func (SkillMastery) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (SkillMastery) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("skill_key").
			NotEmpty(),
		field.Float("mastery").
			Comment("Estimate in [0,1]"),
		field.Float("confidence").
			Comment("Evidence strength in [0,1]"),
		field.Int("attempts").
			Default(0),
	}
}

func (SkillMastery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_key").
			Unique(),
	}
}
