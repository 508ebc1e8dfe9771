package mastery

// SkillMastery holds the mastery estimate for a single skill.
type SkillMastery struct {
	SkillKey   string
	Mastery    float64 // estimated proficiency, [0,1]
	Confidence float64 // evidence backing the estimate, [0,1]
	Attempts   int
}

const (
	// learningRate is the base step size toward a new observation.
	learningRate = 0.5

	// confidenceDamping scales how much accumulated confidence shrinks
	// the step size. At confidence 1 the step is halved, never zeroed,
	// so strong evidence can still move an established estimate.
	confidenceDamping = 0.5

	// selfReportConfidence is the fixed confidence assigned to a
	// self-report slider. Self-reports are informative but never strong
	// evidence.
	selfReportConfidence = 0.2
)

// Update moves the mastery estimate toward observed and grows confidence.
//
// The step size shrinks as confidence grows and scales linearly with
// weight, letting callers down-weight low-signal evidence. Confidence
// rises monotonically toward 1 with diminishing returns per attempt.
// Every call counts as an attempt regardless of weight.
func Update(current SkillMastery, observed, weight float64) SkillMastery {
	observed = clamp(observed, 0, 1)
	if weight < 0 {
		weight = 0
	}

	step := learningRate * (1 - confidenceDamping*clamp(current.Confidence, 0, 1)) * weight
	if step > 1 {
		step = 1
	}

	next := current
	next.Mastery = clamp(current.Mastery+step*(observed-current.Mastery), 0, 1)
	next.Confidence = clamp(current.Confidence+confidenceGain(current.Confidence, current.Attempts), 0, 1)
	next.Attempts = current.Attempts + 1
	return next
}

// confidenceGain closes a fraction of the remaining gap to full
// confidence; later attempts contribute less.
func confidenceGain(confidence float64, attempts int) float64 {
	return (1 - clamp(confidence, 0, 1)) / (float64(attempts) + 2)
}

// SelfReport converts a 1-5 confidence slider level into an initial
// mastery estimate: level 1 maps to 0, level 5 to 1. Levels outside
// [1,5] are clamped.
func SelfReport(skillKey string, level int) SkillMastery {
	if level < 1 {
		level = 1
	}
	if level > 5 {
		level = 5
	}
	return SkillMastery{
		SkillKey:   skillKey,
		Mastery:    float64(level-1) / 4,
		Confidence: selfReportConfidence,
		Attempts:   1,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
