package store

import (
	"context"
	"fmt"

	"github.com/Trevorton27/tokuWebDev-sub003/ent"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/skillmastery"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/mastery"
)

// MasteryRepo persists per-skill estimates, keyed by (user, skill).
type MasteryRepo interface {
	// Upsert stores the estimate, replacing any earlier row for the
	// same user and skill.
	Upsert(ctx context.Context, userID string, sm mastery.SkillMastery) error

	// ForUser returns every stored estimate for a user, keyed by skill.
	ForUser(ctx context.Context, userID string) (map[string]mastery.SkillMastery, error)

	// DeleteForUser removes all of the user's estimates.
	DeleteForUser(ctx context.Context, userID string) error
}

type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) Upsert(ctx context.Context, userID string, sm mastery.SkillMastery) error {
	existing, err := r.client.SkillMastery.Query().
		Where(
			skillmastery.UserID(userID),
			skillmastery.SkillKey(sm.SkillKey),
		).
		Only(ctx)

	switch {
	case ent.IsNotFound(err):
		_, err = r.client.SkillMastery.Create().
			SetUserID(userID).
			SetSkillKey(sm.SkillKey).
			SetMastery(sm.Mastery).
			SetConfidence(sm.Confidence).
			SetAttempts(sm.Attempts).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create mastery row: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("query mastery row: %w", err)
	}

	_, err = existing.Update().
		SetMastery(sm.Mastery).
		SetConfidence(sm.Confidence).
		SetAttempts(sm.Attempts).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update mastery row: %w", err)
	}
	return nil
}

func (r *masteryRepo) ForUser(ctx context.Context, userID string) (map[string]mastery.SkillMastery, error) {
	rows, err := r.client.SkillMastery.Query().
		Where(skillmastery.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mastery rows: %w", err)
	}

	out := make(map[string]mastery.SkillMastery, len(rows))
	for _, row := range rows {
		out[row.SkillKey] = mastery.SkillMastery{
			SkillKey:   row.SkillKey,
			Mastery:    row.Mastery,
			Confidence: row.Confidence,
			Attempts:   row.Attempts,
		}
	}
	return out, nil
}

func (r *masteryRepo) DeleteForUser(ctx context.Context, userID string) error {
	_, err := r.client.SkillMastery.Delete().
		Where(skillmastery.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete mastery rows: %w", err)
	}
	return nil
}
