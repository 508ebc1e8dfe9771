// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AssessmentResponse is the predicate function for assessmentresponse builders.
type AssessmentResponse func(*sql.Selector)

// AssessmentSession is the predicate function for assessmentsession builders.
type AssessmentSession func(*sql.Selector)

// RoadmapItem is the predicate function for roadmapitem builders.
type RoadmapItem func(*sql.Selector)

// SkillMastery is the predicate function for skillmastery builders.
type SkillMastery func(*sql.Selector)
