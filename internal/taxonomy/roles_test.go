package taxonomy

import "testing"

func TestParseRole_UnknownFallsBackToDefault(t *testing.T) {
	if got := ParseRole("data_scientist"); got != DefaultRole {
		t.Errorf("ParseRole = %s, want %s", got, DefaultRole)
	}
	if got := ParseRole("frontend"); got != RoleFrontend {
		t.Errorf("ParseRole = %s, want frontend", got)
	}
}

func TestFocusDimensions_FullstackCoversEverything(t *testing.T) {
	focus := FocusDimensions(RoleJuniorFullstack)
	if len(focus) != len(AllDimensions()) {
		t.Errorf("fullstack focus = %d dimensions, want %d", len(focus), len(AllDimensions()))
	}
}

func TestIsFocusDimension(t *testing.T) {
	if !IsFocusDimension(RoleFrontend, DimDesign) {
		t.Error("design should be a frontend focus area")
	}
	if IsFocusDimension(RoleFrontend, DimBackend) {
		t.Error("backend should not be a frontend focus area")
	}
}
