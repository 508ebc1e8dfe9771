package planner

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/roadmap"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/store"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/taxonomy"
)

// Options controls one roadmap generation run.
type Options struct {
	TargetRole   taxonomy.TargetRole
	MaxWeeks     int
	HoursPerWeek int
	Regenerate   bool // replace an existing roadmap instead of returning it
}

// BudgetHours is the total time budget implied by the options.
func (o Options) BudgetHours() float64 {
	return float64(o.MaxWeeks) * float64(o.HoursPerWeek)
}

// Item is one roadmap entry joined with its catalog resource.
type Item struct {
	Resource roadmap.Resource
	Status   roadmap.ItemStatus
	Position int
}

// Service turns a stored skill profile into a persisted roadmap.
type Service struct {
	masteries store.MasteryRepo
	items     store.RoadmapRepo
	gen       *roadmap.Generator
	log       *zap.Logger
}

// NewService wires the planner. A nil generator falls back to default
// weights; a nil logger to nop.
func NewService(masteries store.MasteryRepo, items store.RoadmapRepo, gen *roadmap.Generator, log *zap.Logger) *Service {
	if gen == nil {
		gen = roadmap.NewGenerator(roadmap.DefaultWeights(), roadmap.DefaultWeakThreshold)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{masteries: masteries, items: items, gen: gen, log: log}
}

// GenerateForUser builds (or returns) the user's roadmap. Without
// Regenerate an existing roadmap is returned untouched; with it the
// roadmap is rebuilt from the current profile, keeping COMPLETED marks
// for resources that survive the reselection.
func (s *Service) GenerateForUser(ctx context.Context, userID string, opts Options) ([]Item, error) {
	if opts.MaxWeeks <= 0 || opts.HoursPerWeek <= 0 {
		return nil, fmt.Errorf("invalid plan horizon: %d weeks x %d hours", opts.MaxWeeks, opts.HoursPerWeek)
	}
	if opts.TargetRole == "" {
		opts.TargetRole = taxonomy.DefaultRole
	}

	if !opts.Regenerate {
		existing, err := s.CurrentForUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			return existing, nil
		}
	}

	profile, err := s.masteries.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	selection := s.gen.Generate(profile, opts.TargetRole, opts.BudgetHours())
	s.log.Info("generated roadmap",
		zap.String("user", userID),
		zap.String("role", string(opts.TargetRole)),
		zap.Float64("budget_hours", opts.BudgetHours()),
		zap.Int("resources", len(selection)))

	rows, err := s.items.ReplaceForUser(ctx, userID, selection)
	if err != nil {
		return nil, err
	}
	return joinCatalog(rows)
}

// CurrentForUser returns the stored roadmap joined with the catalog,
// or an empty slice when none exists.
func (s *Service) CurrentForUser(ctx context.Context, userID string) ([]Item, error) {
	rows, err := s.items.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return joinCatalog(rows)
}

// MarkStatus updates one item's progress.
func (s *Service) MarkStatus(ctx context.Context, userID, resourceID string, status roadmap.ItemStatus) error {
	return s.items.UpdateStatus(ctx, userID, resourceID, status)
}

func joinCatalog(rows []*store.RoadmapItem) ([]Item, error) {
	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		res, err := roadmap.Get(row.ResourceID)
		if err != nil {
			// A stored row pointing at a removed catalog entry is stale
			// data, not a reason to hide the rest of the roadmap.
			continue
		}
		items = append(items, Item{
			Resource: res,
			Status:   row.Status,
			Position: row.Position,
		})
	}
	return items, nil
}
