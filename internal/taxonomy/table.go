package taxonomy

import (
	"fmt"
	"slices"
)

// table holds the skill taxonomy with precomputed indices.
type table struct {
	tags        []SkillTag
	byKey       map[string]*SkillTag
	byDimension map[Dimension][]SkillTag
}

// t is the package-level taxonomy singleton, set by init() in seed.go.
var t *table

func buildTable(tags []SkillTag) *table {
	tb := &table{
		tags:        tags,
		byKey:       make(map[string]*SkillTag, len(tags)),
		byDimension: make(map[Dimension][]SkillTag),
	}
	for i := range tb.tags {
		tb.byKey[tb.tags[i].Key] = &tb.tags[i]
		tb.byDimension[tb.tags[i].Dimension] = append(tb.byDimension[tb.tags[i].Dimension], tb.tags[i])
	}
	return tb
}

// GetTag returns a skill tag by key, or an error if not found.
func GetTag(key string) (SkillTag, error) {
	tag, ok := t.byKey[key]
	if !ok {
		return SkillTag{}, fmt.Errorf("skill tag not found: %q", key)
	}
	return *tag, nil
}

// HasTag reports whether a skill key exists in the taxonomy.
func HasTag(key string) bool {
	_, ok := t.byKey[key]
	return ok
}

// AllTags returns all skill tags in seed order.
func AllTags() []SkillTag {
	return slices.Clone(t.tags)
}

// ByDimension returns all skill tags in a given dimension, in seed order.
func ByDimension(d Dimension) []SkillTag {
	return slices.Clone(t.byDimension[d])
}

// SkillName returns the display name for a skill key, falling back to
// the key itself when the tag is unknown.
func SkillName(key string) string {
	if tag, ok := t.byKey[key]; ok {
		return tag.Name
	}
	return key
}
