package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Trevorton27/tokuWebDev-sub003/ent"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/assessmentsession"
)

// Session statuses.
const (
	SessionInProgress = "IN_PROGRESS"
	SessionCompleted  = "COMPLETED"
)

// Session is the persisted state of one intake run.
type Session struct {
	SessionID     string
	UserID        string
	Status        string
	CurrentStepID string
	StartedAt     time.Time
	CompletedAt   *time.Time
}

// SessionRepo manages assessment sessions.
type SessionRepo interface {
	// Create starts a new IN_PROGRESS session positioned at firstStepID.
	Create(ctx context.Context, userID, firstStepID string) (*Session, error)

	// FindInProgress returns the user's IN_PROGRESS session, or nil when
	// there is none.
	FindInProgress(ctx context.Context, userID string) (*Session, error)

	// Get returns the session with the given ID.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// SetCurrentStep moves the session's cursor.
	SetCurrentStep(ctx context.Context, sessionID, stepID string) error

	// Complete marks the session COMPLETED and stamps completion time.
	Complete(ctx context.Context, sessionID string) error

	// DeleteForUser removes all of the user's sessions.
	DeleteForUser(ctx context.Context, userID string) error
}

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, userID, firstStepID string) (*Session, error) {
	row, err := r.client.AssessmentSession.Create().
		SetSessionID(uuid.NewString()).
		SetUserID(userID).
		SetStatus(SessionInProgress).
		SetCurrentStepID(firstStepID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sessionFromRow(row), nil
}

func (r *sessionRepo) FindInProgress(ctx context.Context, userID string) (*Session, error) {
	row, err := r.client.AssessmentSession.Query().
		Where(
			assessmentsession.UserID(userID),
			assessmentsession.Status(SessionInProgress),
		).
		Order(ent.Desc(assessmentsession.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find in-progress session: %w", err)
	}
	return sessionFromRow(row), nil
}

func (r *sessionRepo) Get(ctx context.Context, sessionID string) (*Session, error) {
	row, err := r.client.AssessmentSession.Query().
		Where(assessmentsession.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", sessionID, err)
	}
	return sessionFromRow(row), nil
}

func (r *sessionRepo) SetCurrentStep(ctx context.Context, sessionID, stepID string) error {
	n, err := r.client.AssessmentSession.Update().
		Where(assessmentsession.SessionID(sessionID)).
		SetCurrentStepID(stepID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set current step: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("set current step: session %s not found", sessionID)
	}
	return nil
}

func (r *sessionRepo) Complete(ctx context.Context, sessionID string) error {
	n, err := r.client.AssessmentSession.Update().
		Where(assessmentsession.SessionID(sessionID)).
		SetStatus(SessionCompleted).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("complete session: session %s not found", sessionID)
	}
	return nil
}

func (r *sessionRepo) DeleteForUser(ctx context.Context, userID string) error {
	_, err := r.client.AssessmentSession.Delete().
		Where(assessmentsession.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete sessions: %w", err)
	}
	return nil
}

func sessionFromRow(row *ent.AssessmentSession) *Session {
	return &Session{
		SessionID:     row.SessionID,
		UserID:        row.UserID,
		Status:        row.Status,
		CurrentStepID: row.CurrentStepID,
		StartedAt:     row.CreatedAt,
		CompletedAt:   row.CompletedAt,
	}
}
