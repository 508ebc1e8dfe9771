package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentResponse is the stored answer and grade for one step of a
// session. The log is append-only per step: going back and resubmitting
// upserts on (session_id, step_id) rather than adding rows.
type AssessmentResponse struct {
	ent.Schema
}

func (AssessmentResponse) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (AssessmentResponse) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("step_id").
			NotEmpty(),
		field.String("answer").
			NotEmpty().
			Comment("Serialized submission as JSON"),
		field.Float("score"),
		field.Bool("passed"),
		field.String("skill_deltas").
			Default("{}").
			Comment("JSON map of skill key to mastery delta"),
	}
}

func (AssessmentResponse) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "step_id").
			Unique(),
	}
}
