package taxonomy

// Dimension groups related skills for reporting and roadmap targeting.
type Dimension string

const (
	DimProgFundamentals Dimension = "programming_fundamentals"
	DimJavaScript       Dimension = "javascript"
	DimWebFoundations   Dimension = "web_foundations"
	DimBackend          Dimension = "backend"
	DimSystemThinking   Dimension = "system_thinking"
	DimDesign           Dimension = "design"
	DimDevPractices     Dimension = "dev_practices"
)

// AllDimensions returns all dimensions in display order.
func AllDimensions() []Dimension {
	return []Dimension{
		DimProgFundamentals,
		DimJavaScript,
		DimWebFoundations,
		DimBackend,
		DimSystemThinking,
		DimDesign,
		DimDevPractices,
	}
}

// DimensionDisplayName returns a human-readable name for a dimension.
func DimensionDisplayName(d Dimension) string {
	switch d {
	case DimProgFundamentals:
		return "Programming Fundamentals"
	case DimJavaScript:
		return "JavaScript"
	case DimWebFoundations:
		return "Web Foundations"
	case DimBackend:
		return "Backend"
	case DimSystemThinking:
		return "System Thinking"
	case DimDesign:
		return "Design"
	case DimDevPractices:
		return "Dev Practices"
	default:
		return string(d)
	}
}

// SkillTag is a single assessable skill. Weight biases dimension
// aggregation toward higher-signal skills.
type SkillTag struct {
	Key       string
	Name      string
	Dimension Dimension
	Weight    float64 // (0, 1]
}
