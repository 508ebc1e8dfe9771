package roadmap

// ResourceType identifies what kind of work a catalog resource is. The
// set is closed: validation rejects anything else at load time.
type ResourceType string

const (
	TypeReading   ResourceType = "READING"
	TypeExercise  ResourceType = "EXERCISE"
	TypeProject   ResourceType = "PROJECT"
	TypeDesign    ResourceType = "DESIGN"
	TypeCourse    ResourceType = "COURSE"
	TypeMilestone ResourceType = "MILESTONE"
)

// AllTypes returns every resource type.
func AllTypes() []ResourceType {
	return []ResourceType{
		TypeReading, TypeExercise, TypeProject,
		TypeDesign, TypeCourse, TypeMilestone,
	}
}

// Phase is one of the three sequential roadmap stages.
type Phase int

const (
	PhaseFoundations  Phase = 1
	PhaseIntermediate Phase = 2
	PhaseAdvanced     Phase = 3
)

// AllPhases returns the phases in roadmap order.
func AllPhases() []Phase {
	return []Phase{PhaseFoundations, PhaseIntermediate, PhaseAdvanced}
}

// PhaseName returns the display name for a phase.
func PhaseName(p Phase) string {
	switch p {
	case PhaseFoundations:
		return "Foundations"
	case PhaseIntermediate:
		return "Intermediate"
	case PhaseAdvanced:
		return "Advanced"
	}
	return "Unknown"
}

// Resource is one static catalog entry a roadmap can assign.
type Resource struct {
	ID             string
	Title          string
	Description    string
	Type           ResourceType
	Phase          Phase
	SkillKeys      []string
	Difficulty     int // 1 (gentle) to 5 (hard)
	EstimatedHours float64
	Prerequisites  []string // resource IDs, each in the same or an earlier phase
}

// ItemStatus is the mutable per-learner state of a selected resource.
type ItemStatus string

const (
	StatusNotStarted ItemStatus = "NOT_STARTED"
	StatusInProgress ItemStatus = "IN_PROGRESS"
	StatusCompleted  ItemStatus = "COMPLETED"
)
