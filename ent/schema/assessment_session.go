package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentSession tracks one learner's walk through the intake
// sequence. At most one IN_PROGRESS session exists per user; starting
// while one exists resumes it.
type AssessmentSession struct {
	ent.Schema
}

func (AssessmentSession) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (AssessmentSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("UUID identifying the session"),
		field.String("user_id").
			NotEmpty(),
		field.String("status").
			Default("IN_PROGRESS").
			Comment("IN_PROGRESS or COMPLETED"),
		field.String("current_step_id").
			NotEmpty().
			Comment("The one step a submission is accepted for"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (AssessmentSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status"),
	}
}
