package taxonomy

// TargetRole is the role a learner is working toward.
type TargetRole string

const (
	RoleFrontend        TargetRole = "frontend"
	RoleBackend         TargetRole = "backend"
	RoleJuniorFullstack TargetRole = "junior_fullstack"
)

// DefaultRole is used when the learner has not picked a role.
const DefaultRole = RoleJuniorFullstack

// ParseRole returns the TargetRole for s, falling back to DefaultRole
// for unknown values.
func ParseRole(s string) TargetRole {
	switch TargetRole(s) {
	case RoleFrontend, RoleBackend, RoleJuniorFullstack:
		return TargetRole(s)
	}
	return DefaultRole
}

// FocusDimensions returns the dimensions a role's roadmap should favor.
// The fullstack role focuses on everything.
func FocusDimensions(role TargetRole) []Dimension {
	switch role {
	case RoleFrontend:
		return []Dimension{DimJavaScript, DimWebFoundations, DimDesign}
	case RoleBackend:
		return []Dimension{DimBackend, DimSystemThinking, DimDevPractices}
	default:
		return AllDimensions()
	}
}

// IsFocusDimension reports whether d is a focus area for role.
func IsFocusDimension(role TargetRole, d Dimension) bool {
	for _, fd := range FocusDimensions(role) {
		if fd == d {
			return true
		}
	}
	return false
}
