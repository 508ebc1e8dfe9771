// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Trevorton27/tokuWebDev-sub003/ent/assessmentresponse"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/assessmentsession"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/roadmapitem"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/schema"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/skillmastery"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmentresponseMixin := schema.AssessmentResponse{}.Mixin()
	assessmentresponseMixinFields0 := assessmentresponseMixin[0].Fields()
	_ = assessmentresponseMixinFields0
	assessmentresponseFields := schema.AssessmentResponse{}.Fields()
	_ = assessmentresponseFields
	// assessmentresponseDescCreatedAt is the schema descriptor for created_at field.
	assessmentresponseDescCreatedAt := assessmentresponseMixinFields0[0].Descriptor()
	// assessmentresponse.DefaultCreatedAt holds the default value on creation for the created_at field.
	assessmentresponse.DefaultCreatedAt = assessmentresponseDescCreatedAt.Default.(func() time.Time)
	// assessmentresponseDescUpdatedAt is the schema descriptor for updated_at field.
	assessmentresponseDescUpdatedAt := assessmentresponseMixinFields0[1].Descriptor()
	// assessmentresponse.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	assessmentresponse.DefaultUpdatedAt = assessmentresponseDescUpdatedAt.Default.(func() time.Time)
	// assessmentresponse.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	assessmentresponse.UpdateDefaultUpdatedAt = assessmentresponseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// assessmentresponseDescSessionID is the schema descriptor for session_id field.
	assessmentresponseDescSessionID := assessmentresponseFields[0].Descriptor()
	// assessmentresponse.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	assessmentresponse.SessionIDValidator = assessmentresponseDescSessionID.Validators[0].(func(string) error)
	// assessmentresponseDescStepID is the schema descriptor for step_id field.
	assessmentresponseDescStepID := assessmentresponseFields[1].Descriptor()
	// assessmentresponse.StepIDValidator is a validator for the "step_id" field. It is called by the builders before save.
	assessmentresponse.StepIDValidator = assessmentresponseDescStepID.Validators[0].(func(string) error)
	// assessmentresponseDescAnswer is the schema descriptor for answer field.
	assessmentresponseDescAnswer := assessmentresponseFields[2].Descriptor()
	// assessmentresponse.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	assessmentresponse.AnswerValidator = assessmentresponseDescAnswer.Validators[0].(func(string) error)
	// assessmentresponseDescSkillDeltas is the schema descriptor for skill_deltas field.
	assessmentresponseDescSkillDeltas := assessmentresponseFields[5].Descriptor()
	// assessmentresponse.DefaultSkillDeltas holds the default value on creation for the skill_deltas field.
	assessmentresponse.DefaultSkillDeltas = assessmentresponseDescSkillDeltas.Default.(string)
	assessmentsessionMixin := schema.AssessmentSession{}.Mixin()
	assessmentsessionMixinFields0 := assessmentsessionMixin[0].Fields()
	_ = assessmentsessionMixinFields0
	assessmentsessionFields := schema.AssessmentSession{}.Fields()
	_ = assessmentsessionFields
	// assessmentsessionDescCreatedAt is the schema descriptor for created_at field.
	assessmentsessionDescCreatedAt := assessmentsessionMixinFields0[0].Descriptor()
	// assessmentsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	assessmentsession.DefaultCreatedAt = assessmentsessionDescCreatedAt.Default.(func() time.Time)
	// assessmentsessionDescUpdatedAt is the schema descriptor for updated_at field.
	assessmentsessionDescUpdatedAt := assessmentsessionMixinFields0[1].Descriptor()
	// assessmentsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	assessmentsession.DefaultUpdatedAt = assessmentsessionDescUpdatedAt.Default.(func() time.Time)
	// assessmentsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	assessmentsession.UpdateDefaultUpdatedAt = assessmentsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// assessmentsessionDescSessionID is the schema descriptor for session_id field.
	assessmentsessionDescSessionID := assessmentsessionFields[0].Descriptor()
	// assessmentsession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	assessmentsession.SessionIDValidator = assessmentsessionDescSessionID.Validators[0].(func(string) error)
	// assessmentsessionDescUserID is the schema descriptor for user_id field.
	assessmentsessionDescUserID := assessmentsessionFields[1].Descriptor()
	// assessmentsession.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	assessmentsession.UserIDValidator = assessmentsessionDescUserID.Validators[0].(func(string) error)
	// assessmentsessionDescStatus is the schema descriptor for status field.
	assessmentsessionDescStatus := assessmentsessionFields[2].Descriptor()
	// assessmentsession.DefaultStatus holds the default value on creation for the status field.
	assessmentsession.DefaultStatus = assessmentsessionDescStatus.Default.(string)
	// assessmentsessionDescCurrentStepID is the schema descriptor for current_step_id field.
	assessmentsessionDescCurrentStepID := assessmentsessionFields[3].Descriptor()
	// assessmentsession.CurrentStepIDValidator is a validator for the "current_step_id" field. It is called by the builders before save.
	assessmentsession.CurrentStepIDValidator = assessmentsessionDescCurrentStepID.Validators[0].(func(string) error)
	roadmapitemMixin := schema.RoadmapItem{}.Mixin()
	roadmapitemMixinFields0 := roadmapitemMixin[0].Fields()
	_ = roadmapitemMixinFields0
	roadmapitemFields := schema.RoadmapItem{}.Fields()
	_ = roadmapitemFields
	// roadmapitemDescCreatedAt is the schema descriptor for created_at field.
	roadmapitemDescCreatedAt := roadmapitemMixinFields0[0].Descriptor()
	// roadmapitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	roadmapitem.DefaultCreatedAt = roadmapitemDescCreatedAt.Default.(func() time.Time)
	// roadmapitemDescUpdatedAt is the schema descriptor for updated_at field.
	roadmapitemDescUpdatedAt := roadmapitemMixinFields0[1].Descriptor()
	// roadmapitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	roadmapitem.DefaultUpdatedAt = roadmapitemDescUpdatedAt.Default.(func() time.Time)
	// roadmapitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	roadmapitem.UpdateDefaultUpdatedAt = roadmapitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// roadmapitemDescUserID is the schema descriptor for user_id field.
	roadmapitemDescUserID := roadmapitemFields[0].Descriptor()
	// roadmapitem.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	roadmapitem.UserIDValidator = roadmapitemDescUserID.Validators[0].(func(string) error)
	// roadmapitemDescResourceID is the schema descriptor for resource_id field.
	roadmapitemDescResourceID := roadmapitemFields[1].Descriptor()
	// roadmapitem.ResourceIDValidator is a validator for the "resource_id" field. It is called by the builders before save.
	roadmapitem.ResourceIDValidator = roadmapitemDescResourceID.Validators[0].(func(string) error)
	// roadmapitemDescStatus is the schema descriptor for status field.
	roadmapitemDescStatus := roadmapitemFields[4].Descriptor()
	// roadmapitem.DefaultStatus holds the default value on creation for the status field.
	roadmapitem.DefaultStatus = roadmapitemDescStatus.Default.(string)
	skillmasteryMixin := schema.SkillMastery{}.Mixin()
	skillmasteryMixinFields0 := skillmasteryMixin[0].Fields()
	_ = skillmasteryMixinFields0
	skillmasteryFields := schema.SkillMastery{}.Fields()
	_ = skillmasteryFields
	// skillmasteryDescCreatedAt is the schema descriptor for created_at field.
	skillmasteryDescCreatedAt := skillmasteryMixinFields0[0].Descriptor()
	// skillmastery.DefaultCreatedAt holds the default value on creation for the created_at field.
	skillmastery.DefaultCreatedAt = skillmasteryDescCreatedAt.Default.(func() time.Time)
	// skillmasteryDescUpdatedAt is the schema descriptor for updated_at field.
	skillmasteryDescUpdatedAt := skillmasteryMixinFields0[1].Descriptor()
	// skillmastery.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	skillmastery.DefaultUpdatedAt = skillmasteryDescUpdatedAt.Default.(func() time.Time)
	// skillmastery.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	skillmastery.UpdateDefaultUpdatedAt = skillmasteryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// skillmasteryDescUserID is the schema descriptor for user_id field.
	skillmasteryDescUserID := skillmasteryFields[0].Descriptor()
	// skillmastery.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	skillmastery.UserIDValidator = skillmasteryDescUserID.Validators[0].(func(string) error)
	// skillmasteryDescSkillKey is the schema descriptor for skill_key field.
	skillmasteryDescSkillKey := skillmasteryFields[1].Descriptor()
	// skillmastery.SkillKeyValidator is a validator for the "skill_key" field. It is called by the builders before save.
	skillmastery.SkillKeyValidator = skillmasteryDescSkillKey.Validators[0].(func(string) error)
	// skillmasteryDescAttempts is the schema descriptor for attempts field.
	skillmasteryDescAttempts := skillmasteryFields[4].Descriptor()
	// skillmastery.DefaultAttempts holds the default value on creation for the attempts field.
	skillmastery.DefaultAttempts = skillmasteryDescAttempts.Default.(int)
}
