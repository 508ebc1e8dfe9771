package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Trevorton27/tokuWebDev-sub003/ent"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/assessmentresponse"
)

// Response is the stored answer and grade for one step.
type Response struct {
	SessionID   string
	StepID      string
	Answer      string // serialized submission JSON
	Score       float64
	Passed      bool
	SkillDeltas string // JSON map of skill key to mastery delta
	AnsweredAt  time.Time
}

// ResponseRepo manages per-step responses. One row exists per
// (session, step); resubmitting after going back overwrites it.
type ResponseRepo interface {
	// Upsert stores the response, replacing any earlier one for the
	// same session and step.
	Upsert(ctx context.Context, resp *Response) error

	// Get returns the response for a step, or nil when none exists.
	Get(ctx context.Context, sessionID, stepID string) (*Response, error)

	// BySession returns every response of a session in answer order.
	BySession(ctx context.Context, sessionID string) ([]*Response, error)

	// DeleteForSession removes all responses of a session.
	DeleteForSession(ctx context.Context, sessionID string) error
}

type responseRepo struct {
	client *ent.Client
}

func (r *responseRepo) Upsert(ctx context.Context, resp *Response) error {
	existing, err := r.client.AssessmentResponse.Query().
		Where(
			assessmentresponse.SessionID(resp.SessionID),
			assessmentresponse.StepID(resp.StepID),
		).
		Only(ctx)

	switch {
	case ent.IsNotFound(err):
		_, err = r.client.AssessmentResponse.Create().
			SetSessionID(resp.SessionID).
			SetStepID(resp.StepID).
			SetAnswer(resp.Answer).
			SetScore(resp.Score).
			SetPassed(resp.Passed).
			SetSkillDeltas(resp.SkillDeltas).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create response: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("query response: %w", err)
	}

	_, err = existing.Update().
		SetAnswer(resp.Answer).
		SetScore(resp.Score).
		SetPassed(resp.Passed).
		SetSkillDeltas(resp.SkillDeltas).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update response: %w", err)
	}
	return nil
}

func (r *responseRepo) Get(ctx context.Context, sessionID, stepID string) (*Response, error) {
	row, err := r.client.AssessmentResponse.Query().
		Where(
			assessmentresponse.SessionID(sessionID),
			assessmentresponse.StepID(stepID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get response: %w", err)
	}
	return responseFromRow(row), nil
}

func (r *responseRepo) BySession(ctx context.Context, sessionID string) ([]*Response, error) {
	rows, err := r.client.AssessmentResponse.Query().
		Where(assessmentresponse.SessionID(sessionID)).
		Order(ent.Asc(assessmentresponse.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	out := make([]*Response, len(rows))
	for i, row := range rows {
		out[i] = responseFromRow(row)
	}
	return out, nil
}

func (r *responseRepo) DeleteForSession(ctx context.Context, sessionID string) error {
	_, err := r.client.AssessmentResponse.Delete().
		Where(assessmentresponse.SessionID(sessionID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete responses: %w", err)
	}
	return nil
}

func responseFromRow(row *ent.AssessmentResponse) *Response {
	return &Response{
		SessionID:   row.SessionID,
		StepID:      row.StepID,
		Answer:      row.Answer,
		Score:       row.Score,
		Passed:      row.Passed,
		SkillDeltas: row.SkillDeltas,
		AnsweredAt:  row.UpdatedAt,
	}
}
