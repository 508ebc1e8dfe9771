// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentResponsesColumns holds the columns for the "assessment_responses" table.
	AssessmentResponsesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "step_id", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "passed", Type: field.TypeBool},
		{Name: "skill_deltas", Type: field.TypeString, Default: "{}"},
	}
	// AssessmentResponsesTable holds the schema information for the "assessment_responses" table.
	AssessmentResponsesTable = &schema.Table{
		Name:       "assessment_responses",
		Columns:    AssessmentResponsesColumns,
		PrimaryKey: []*schema.Column{AssessmentResponsesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentresponse_session_id_step_id",
				Unique:  true,
				Columns: []*schema.Column{AssessmentResponsesColumns[3], AssessmentResponsesColumns[4]},
			},
		},
	}
	// AssessmentSessionsColumns holds the columns for the "assessment_sessions" table.
	AssessmentSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "IN_PROGRESS"},
		{Name: "current_step_id", Type: field.TypeString},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AssessmentSessionsTable holds the schema information for the "assessment_sessions" table.
	AssessmentSessionsTable = &schema.Table{
		Name:       "assessment_sessions",
		Columns:    AssessmentSessionsColumns,
		PrimaryKey: []*schema.Column{AssessmentSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentsession_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{AssessmentSessionsColumns[4], AssessmentSessionsColumns[5]},
			},
		},
	}
	// RoadmapItemsColumns holds the columns for the "roadmap_items" table.
	RoadmapItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "phase", Type: field.TypeInt},
		{Name: "position", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString, Default: "NOT_STARTED"},
	}
	// RoadmapItemsTable holds the schema information for the "roadmap_items" table.
	RoadmapItemsTable = &schema.Table{
		Name:       "roadmap_items",
		Columns:    RoadmapItemsColumns,
		PrimaryKey: []*schema.Column{RoadmapItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "roadmapitem_user_id_resource_id",
				Unique:  true,
				Columns: []*schema.Column{RoadmapItemsColumns[3], RoadmapItemsColumns[4]},
			},
			{
				Name:    "roadmapitem_user_id_phase_position",
				Unique:  false,
				Columns: []*schema.Column{RoadmapItemsColumns[3], RoadmapItemsColumns[5], RoadmapItemsColumns[6]},
			},
		},
	}
	// SkillMasteriesColumns holds the columns for the "skill_masteries" table.
	SkillMasteriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_key", Type: field.TypeString},
		{Name: "mastery", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
	}
	// SkillMasteriesTable holds the schema information for the "skill_masteries" table.
	SkillMasteriesTable = &schema.Table{
		Name:       "skill_masteries",
		Columns:    SkillMasteriesColumns,
		PrimaryKey: []*schema.Column{SkillMasteriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skillmastery_user_id_skill_key",
				Unique:  true,
				Columns: []*schema.Column{SkillMasteriesColumns[3], SkillMasteriesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentResponsesTable,
		AssessmentSessionsTable,
		RoadmapItemsTable,
		SkillMasteriesTable,
	}
)

func init() {
}
