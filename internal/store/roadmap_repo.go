package store

import (
	"context"
	"fmt"

	"github.com/Trevorton27/tokuWebDev-sub003/ent"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/roadmapitem"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/roadmap"
)

// RoadmapItem is one persisted row of a user's roadmap.
type RoadmapItem struct {
	UserID     string
	ResourceID string
	Phase      roadmap.Phase
	Position   int
	Status     roadmap.ItemStatus
}

// RoadmapRepo persists generated roadmaps.
type RoadmapRepo interface {
	// ReplaceForUser swaps the user's roadmap for the given selection.
	// Previously COMPLETED items matching a newly selected resource stay
	// COMPLETED; everything else starts NOT_STARTED.
	ReplaceForUser(ctx context.Context, userID string, selection []roadmap.Resource) ([]*RoadmapItem, error)

	// ForUser returns the user's roadmap in phase/position order.
	ForUser(ctx context.Context, userID string) ([]*RoadmapItem, error)

	// UpdateStatus changes one item's status.
	UpdateStatus(ctx context.Context, userID, resourceID string, status roadmap.ItemStatus) error

	// DeleteForUser removes the user's roadmap.
	DeleteForUser(ctx context.Context, userID string) error
}

type roadmapRepo struct {
	client *ent.Client
}

func (r *roadmapRepo) ReplaceForUser(ctx context.Context, userID string, selection []roadmap.Resource) ([]*RoadmapItem, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	completed, err := tx.RoadmapItem.Query().
		Where(
			roadmapitem.UserID(userID),
			roadmapitem.Status(string(roadmap.StatusCompleted)),
		).
		All(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("query completed items: %w", err))
	}
	completedSet := make(map[string]bool, len(completed))
	for _, row := range completed {
		completedSet[row.ResourceID] = true
	}

	if _, err := tx.RoadmapItem.Delete().
		Where(roadmapitem.UserID(userID)).
		Exec(ctx); err != nil {
		return nil, rollback(tx, fmt.Errorf("clear roadmap: %w", err))
	}

	items := make([]*RoadmapItem, 0, len(selection))
	position := 0
	var lastPhase roadmap.Phase
	for _, res := range selection {
		if res.Phase != lastPhase {
			lastPhase = res.Phase
			position = 0
		}
		status := roadmap.StatusNotStarted
		if completedSet[res.ID] {
			status = roadmap.StatusCompleted
		}

		if _, err := tx.RoadmapItem.Create().
			SetUserID(userID).
			SetResourceID(res.ID).
			SetPhase(int(res.Phase)).
			SetPosition(position).
			SetStatus(string(status)).
			Save(ctx); err != nil {
			return nil, rollback(tx, fmt.Errorf("create roadmap item %s: %w", res.ID, err))
		}

		items = append(items, &RoadmapItem{
			UserID:     userID,
			ResourceID: res.ID,
			Phase:      res.Phase,
			Position:   position,
			Status:     status,
		})
		position++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit roadmap: %w", err)
	}
	return items, nil
}

func (r *roadmapRepo) ForUser(ctx context.Context, userID string) ([]*RoadmapItem, error) {
	rows, err := r.client.RoadmapItem.Query().
		Where(roadmapitem.UserID(userID)).
		Order(
			ent.Asc(roadmapitem.FieldPhase),
			ent.Asc(roadmapitem.FieldPosition),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roadmap items: %w", err)
	}

	out := make([]*RoadmapItem, len(rows))
	for i, row := range rows {
		out[i] = &RoadmapItem{
			UserID:     row.UserID,
			ResourceID: row.ResourceID,
			Phase:      roadmap.Phase(row.Phase),
			Position:   row.Position,
			Status:     roadmap.ItemStatus(row.Status),
		}
	}
	return out, nil
}

func (r *roadmapRepo) UpdateStatus(ctx context.Context, userID, resourceID string, status roadmap.ItemStatus) error {
	n, err := r.client.RoadmapItem.Update().
		Where(
			roadmapitem.UserID(userID),
			roadmapitem.ResourceID(resourceID),
		).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update item status: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("roadmap item not found: %s", resourceID)
	}
	return nil
}

func (r *roadmapRepo) DeleteForUser(ctx context.Context, userID string) error {
	_, err := r.client.RoadmapItem.Delete().
		Where(roadmapitem.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete roadmap items: %w", err)
	}
	return nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback failed: %v)", err, rerr)
	}
	return err
}
