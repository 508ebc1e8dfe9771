package roadmap

import (
	"fmt"
	"strings"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/taxonomy"
)

// validateResources performs all structural checks on the catalog.
// Returns a combined error describing all problems found, or nil if
// valid. A broken catalog is fatal at load time, never at selection
// time.
func validateResources(resources []Resource) error {
	var errs []string

	knownTypes := make(map[ResourceType]bool, len(AllTypes()))
	for _, t := range AllTypes() {
		knownTypes[t] = true
	}

	byID := make(map[string]Resource, len(resources))
	for _, r := range resources {
		if r.ID == "" {
			errs = append(errs, "resource with empty ID")
			continue
		}
		if _, dup := byID[r.ID]; dup {
			errs = append(errs, fmt.Sprintf("duplicate resource ID: %q", r.ID))
		}
		byID[r.ID] = r

		if r.Title == "" {
			errs = append(errs, fmt.Sprintf("resource %q has no title", r.ID))
		}
		if !knownTypes[r.Type] {
			errs = append(errs, fmt.Sprintf("resource %q has unknown type %q", r.ID, r.Type))
		}
		if r.Phase < PhaseFoundations || r.Phase > PhaseAdvanced {
			errs = append(errs, fmt.Sprintf("resource %q has invalid phase %d", r.ID, r.Phase))
		}
		if r.Difficulty < 1 || r.Difficulty > 5 {
			errs = append(errs, fmt.Sprintf("resource %q: difficulty must be 1-5, got %d", r.ID, r.Difficulty))
		}
		if r.EstimatedHours <= 0 {
			errs = append(errs, fmt.Sprintf("resource %q: estimated hours must be positive, got %f", r.ID, r.EstimatedHours))
		}
		if len(r.SkillKeys) == 0 {
			errs = append(errs, fmt.Sprintf("resource %q targets no skills", r.ID))
		}
		for _, key := range r.SkillKeys {
			if !taxonomy.HasTag(key) {
				errs = append(errs, fmt.Sprintf("resource %q references unknown skill %q", r.ID, key))
			}
		}
	}

	// Prerequisites must exist and must not point at a later phase.
	for _, r := range resources {
		for _, pid := range r.Prerequisites {
			p, ok := byID[pid]
			if !ok {
				errs = append(errs, fmt.Sprintf("resource %q references unknown prerequisite %q", r.ID, pid))
				continue
			}
			if p.Phase > r.Phase {
				errs = append(errs, fmt.Sprintf("resource %q (phase %d) depends on %q from later phase %d", r.ID, r.Phase, pid, p.Phase))
			}
		}
	}

	if cycle := findPrereqCycle(resources); len(cycle) > 0 {
		errs = append(errs, fmt.Sprintf("prerequisite cycle involving: %s", strings.Join(cycle, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("resource catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// findPrereqCycle runs Kahn's algorithm over the prerequisite graph and
// returns the IDs stuck in a cycle, or nil when the graph is acyclic.
func findPrereqCycle(resources []Resource) []string {
	inDegree := make(map[string]int, len(resources))
	dependents := make(map[string][]string)
	known := make(map[string]bool, len(resources))

	for _, r := range resources {
		known[r.ID] = true
		if _, ok := inDegree[r.ID]; !ok {
			inDegree[r.ID] = 0
		}
	}
	for _, r := range resources {
		for _, pid := range r.Prerequisites {
			if !known[pid] {
				continue // reported separately
			}
			inDegree[r.ID]++
			dependents[pid] = append(dependents[pid], r.ID)
		}
	}

	var queue []string
	for _, r := range resources {
		if inDegree[r.ID] == 0 {
			queue = append(queue, r.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range dependents[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if visited == len(resources) {
		return nil
	}
	var cycle []string
	for _, r := range resources {
		if inDegree[r.ID] > 0 {
			cycle = append(cycle, r.ID)
		}
	}
	return cycle
}

// Validate checks the loaded catalog for structural issues.
func Validate() error {
	return validateResources(c.resources)
}
