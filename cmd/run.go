package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/app"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/config"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/grader"
	intakesvc "github.com/Trevorton27/tokuWebDev-sub003/internal/intake"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/llm"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/logging"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/planner"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/roadmap"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/runner"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/store"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/taxonomy"
)

// runApp loads config, opens the store, builds services, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	return runAppWith(cmd, false)
}

func runAppWith(cmd *cobra.Command, startAssessment bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		// The app is usable without a debug log.
		log = zap.NewNop()
	}
	defer func() { _ = log.Sync() }()

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	g, err := buildGrader(cfg, log)
	if err != nil {
		return err
	}

	intake := intakesvc.NewService(st.Sessions(), st.Responses(), st.Mastery(), g, log)

	gen := roadmap.NewGenerator(cfg.Roadmap.Weights.ToWeights(), cfg.Roadmap.WeakThreshold)
	plan := planner.NewService(st.Mastery(), st.Roadmap(), gen, log)

	return app.Run(app.Options{
		Intake:          intake,
		Planner:         plan,
		UserID:          defaultUserID,
		WeakThreshold:   cfg.Roadmap.WeakThreshold,
		PlanDefaults:    planDefaults(cfg),
		StartAssessment: startAssessment,
	})
}

// buildGrader wires the grader with the configured text scorer and the
// sandboxed code runner. Without LLM credentials text answers fall
// back to heuristic scoring.
func buildGrader(cfg *config.Config, log *zap.Logger) (*grader.Grader, error) {
	llmCfg := llm.ConfigFromEnv()
	if cfg.LLM.Provider != "" {
		llmCfg.Provider = cfg.LLM.Provider
	}

	provider, err := llm.NewProvider(llmCfg, log)
	if err != nil {
		return nil, fmt.Errorf("configure LLM provider: %w", err)
	}

	var scorer grader.TextScorer
	if provider != nil {
		scorer = llm.NewScorer(provider)
	}

	run := runner.WithTimeout(runner.NewLocalRunner(),
		time.Duration(cfg.Runner.TimeoutSeconds)*time.Second)

	return grader.New(scorer, run, log), nil
}

func planDefaults(cfg *config.Config) planner.Options {
	return planner.Options{
		TargetRole:   taxonomy.TargetRole(cfg.Roadmap.DefaultRole),
		MaxWeeks:     cfg.Roadmap.MaxWeeks,
		HoursPerWeek: cfg.Roadmap.HoursPerWeek,
	}
}
