// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/assessmentresponse"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/assessmentsession"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/predicate"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/roadmapitem"
	"github.com/Trevorton27/tokuWebDev-sub003/ent/skillmastery"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAssessmentResponse = "AssessmentResponse"
	TypeAssessmentSession  = "AssessmentSession"
	TypeRoadmapItem        = "RoadmapItem"
	TypeSkillMastery       = "SkillMastery"
)

// AssessmentResponseMutation represents an operation that mutates the AssessmentResponse nodes in the graph.
type AssessmentResponseMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	updated_at    *time.Time
	session_id    *string
	step_id       *string
	answer        *string
	score         *float64
	addscore      *float64
	passed        *bool
	skill_deltas  *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AssessmentResponse, error)
	predicates    []predicate.AssessmentResponse
}

var _ ent.Mutation = (*AssessmentResponseMutation)(nil)

// assessmentresponseOption allows management of the mutation configuration using functional options.
type assessmentresponseOption func(*AssessmentResponseMutation)

// newAssessmentResponseMutation creates new mutation for the AssessmentResponse entity.
func newAssessmentResponseMutation(c config, op Op, opts ...assessmentresponseOption) *AssessmentResponseMutation {
	m := &AssessmentResponseMutation{
		config:        c,
		op:            op,
		typ:           TypeAssessmentResponse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssessmentResponseID sets the ID field of the mutation.
func withAssessmentResponseID(id int) assessmentresponseOption {
	return func(m *AssessmentResponseMutation) {
		var (
			err   error
			once  sync.Once
			value *AssessmentResponse
		)
		m.oldValue = func(ctx context.Context) (*AssessmentResponse, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AssessmentResponse.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssessmentResponse sets the old AssessmentResponse of the mutation.
func withAssessmentResponse(node *AssessmentResponse) assessmentresponseOption {
	return func(m *AssessmentResponseMutation) {
		m.oldValue = func(context.Context) (*AssessmentResponse, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssessmentResponseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssessmentResponseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssessmentResponseMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssessmentResponseMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AssessmentResponse.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AssessmentResponseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AssessmentResponseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AssessmentResponse entity.
// If the AssessmentResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentResponseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AssessmentResponseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AssessmentResponseMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AssessmentResponseMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AssessmentResponse entity.
// If the AssessmentResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentResponseMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AssessmentResponseMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSessionID sets the "session_id" field.
func (m *AssessmentResponseMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AssessmentResponseMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AssessmentResponse entity.
// If the AssessmentResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentResponseMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AssessmentResponseMutation) ResetSessionID() {
	m.session_id = nil
}

// SetStepID sets the "step_id" field.
func (m *AssessmentResponseMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *AssessmentResponseMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the AssessmentResponse entity.
// If the AssessmentResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentResponseMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ResetStepID resets all changes to the "step_id" field.
func (m *AssessmentResponseMutation) ResetStepID() {
	m.step_id = nil
}

// SetAnswer sets the "answer" field.
func (m *AssessmentResponseMutation) SetAnswer(s string) {
	m.answer = &s
}

// Answer returns the value of the "answer" field in the mutation.
func (m *AssessmentResponseMutation) Answer() (r string, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswer returns the old "answer" field's value of the AssessmentResponse entity.
// If the AssessmentResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentResponseMutation) OldAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswer: %w", err)
	}
	return oldValue.Answer, nil
}

// ResetAnswer resets all changes to the "answer" field.
func (m *AssessmentResponseMutation) ResetAnswer() {
	m.answer = nil
}

// SetScore sets the "score" field.
func (m *AssessmentResponseMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *AssessmentResponseMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the AssessmentResponse entity.
// If the AssessmentResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentResponseMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *AssessmentResponseMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *AssessmentResponseMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *AssessmentResponseMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetPassed sets the "passed" field.
func (m *AssessmentResponseMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *AssessmentResponseMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the AssessmentResponse entity.
// If the AssessmentResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentResponseMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *AssessmentResponseMutation) ResetPassed() {
	m.passed = nil
}

// SetSkillDeltas sets the "skill_deltas" field.
func (m *AssessmentResponseMutation) SetSkillDeltas(s string) {
	m.skill_deltas = &s
}

// SkillDeltas returns the value of the "skill_deltas" field in the mutation.
func (m *AssessmentResponseMutation) SkillDeltas() (r string, exists bool) {
	v := m.skill_deltas
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillDeltas returns the old "skill_deltas" field's value of the AssessmentResponse entity.
// If the AssessmentResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentResponseMutation) OldSkillDeltas(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillDeltas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillDeltas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillDeltas: %w", err)
	}
	return oldValue.SkillDeltas, nil
}

// ResetSkillDeltas resets all changes to the "skill_deltas" field.
func (m *AssessmentResponseMutation) ResetSkillDeltas() {
	m.skill_deltas = nil
}

// Where appends a list predicates to the AssessmentResponseMutation builder.
func (m *AssessmentResponseMutation) Where(ps ...predicate.AssessmentResponse) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssessmentResponseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssessmentResponseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AssessmentResponse, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssessmentResponseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssessmentResponseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AssessmentResponse).
func (m *AssessmentResponseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssessmentResponseMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, assessmentresponse.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, assessmentresponse.FieldUpdatedAt)
	}
	if m.session_id != nil {
		fields = append(fields, assessmentresponse.FieldSessionID)
	}
	if m.step_id != nil {
		fields = append(fields, assessmentresponse.FieldStepID)
	}
	if m.answer != nil {
		fields = append(fields, assessmentresponse.FieldAnswer)
	}
	if m.score != nil {
		fields = append(fields, assessmentresponse.FieldScore)
	}
	if m.passed != nil {
		fields = append(fields, assessmentresponse.FieldPassed)
	}
	if m.skill_deltas != nil {
		fields = append(fields, assessmentresponse.FieldSkillDeltas)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssessmentResponseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assessmentresponse.FieldCreatedAt:
		return m.CreatedAt()
	case assessmentresponse.FieldUpdatedAt:
		return m.UpdatedAt()
	case assessmentresponse.FieldSessionID:
		return m.SessionID()
	case assessmentresponse.FieldStepID:
		return m.StepID()
	case assessmentresponse.FieldAnswer:
		return m.Answer()
	case assessmentresponse.FieldScore:
		return m.Score()
	case assessmentresponse.FieldPassed:
		return m.Passed()
	case assessmentresponse.FieldSkillDeltas:
		return m.SkillDeltas()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssessmentResponseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assessmentresponse.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case assessmentresponse.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case assessmentresponse.FieldSessionID:
		return m.OldSessionID(ctx)
	case assessmentresponse.FieldStepID:
		return m.OldStepID(ctx)
	case assessmentresponse.FieldAnswer:
		return m.OldAnswer(ctx)
	case assessmentresponse.FieldScore:
		return m.OldScore(ctx)
	case assessmentresponse.FieldPassed:
		return m.OldPassed(ctx)
	case assessmentresponse.FieldSkillDeltas:
		return m.OldSkillDeltas(ctx)
	}
	return nil, fmt.Errorf("unknown AssessmentResponse field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentResponseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assessmentresponse.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case assessmentresponse.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case assessmentresponse.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case assessmentresponse.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case assessmentresponse.FieldAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswer(v)
		return nil
	case assessmentresponse.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case assessmentresponse.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case assessmentresponse.FieldSkillDeltas:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillDeltas(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentResponse field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssessmentResponseMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, assessmentresponse.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssessmentResponseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assessmentresponse.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentResponseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assessmentresponse.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentResponse numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssessmentResponseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssessmentResponseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssessmentResponseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AssessmentResponse nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssessmentResponseMutation) ResetField(name string) error {
	switch name {
	case assessmentresponse.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case assessmentresponse.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case assessmentresponse.FieldSessionID:
		m.ResetSessionID()
		return nil
	case assessmentresponse.FieldStepID:
		m.ResetStepID()
		return nil
	case assessmentresponse.FieldAnswer:
		m.ResetAnswer()
		return nil
	case assessmentresponse.FieldScore:
		m.ResetScore()
		return nil
	case assessmentresponse.FieldPassed:
		m.ResetPassed()
		return nil
	case assessmentresponse.FieldSkillDeltas:
		m.ResetSkillDeltas()
		return nil
	}
	return fmt.Errorf("unknown AssessmentResponse field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssessmentResponseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssessmentResponseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssessmentResponseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssessmentResponseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssessmentResponseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssessmentResponseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssessmentResponseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AssessmentResponse unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssessmentResponseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AssessmentResponse edge %s", name)
}

// AssessmentSessionMutation represents an operation that mutates the AssessmentSession nodes in the graph.
type AssessmentSessionMutation struct {
	config
	op              Op
	typ             string
	id              *int
	created_at      *time.Time
	updated_at      *time.Time
	session_id      *string
	user_id         *string
	status          *string
	current_step_id *string
	completed_at    *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*AssessmentSession, error)
	predicates      []predicate.AssessmentSession
}

var _ ent.Mutation = (*AssessmentSessionMutation)(nil)

// assessmentsessionOption allows management of the mutation configuration using functional options.
type assessmentsessionOption func(*AssessmentSessionMutation)

// newAssessmentSessionMutation creates new mutation for the AssessmentSession entity.
func newAssessmentSessionMutation(c config, op Op, opts ...assessmentsessionOption) *AssessmentSessionMutation {
	m := &AssessmentSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAssessmentSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssessmentSessionID sets the ID field of the mutation.
func withAssessmentSessionID(id int) assessmentsessionOption {
	return func(m *AssessmentSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AssessmentSession
		)
		m.oldValue = func(ctx context.Context) (*AssessmentSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AssessmentSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssessmentSession sets the old AssessmentSession of the mutation.
func withAssessmentSession(node *AssessmentSession) assessmentsessionOption {
	return func(m *AssessmentSessionMutation) {
		m.oldValue = func(context.Context) (*AssessmentSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssessmentSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssessmentSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssessmentSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssessmentSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AssessmentSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AssessmentSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AssessmentSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AssessmentSession entity.
// If the AssessmentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AssessmentSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AssessmentSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AssessmentSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AssessmentSession entity.
// If the AssessmentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AssessmentSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSessionID sets the "session_id" field.
func (m *AssessmentSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AssessmentSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AssessmentSession entity.
// If the AssessmentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AssessmentSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *AssessmentSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AssessmentSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AssessmentSession entity.
// If the AssessmentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AssessmentSessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *AssessmentSessionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AssessmentSessionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AssessmentSession entity.
// If the AssessmentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentSessionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AssessmentSessionMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentStepID sets the "current_step_id" field.
func (m *AssessmentSessionMutation) SetCurrentStepID(s string) {
	m.current_step_id = &s
}

// CurrentStepID returns the value of the "current_step_id" field in the mutation.
func (m *AssessmentSessionMutation) CurrentStepID() (r string, exists bool) {
	v := m.current_step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStepID returns the old "current_step_id" field's value of the AssessmentSession entity.
// If the AssessmentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentSessionMutation) OldCurrentStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStepID: %w", err)
	}
	return oldValue.CurrentStepID, nil
}

// ResetCurrentStepID resets all changes to the "current_step_id" field.
func (m *AssessmentSessionMutation) ResetCurrentStepID() {
	m.current_step_id = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AssessmentSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AssessmentSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AssessmentSession entity.
// If the AssessmentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AssessmentSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[assessmentsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AssessmentSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[assessmentsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AssessmentSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, assessmentsession.FieldCompletedAt)
}

// Where appends a list predicates to the AssessmentSessionMutation builder.
func (m *AssessmentSessionMutation) Where(ps ...predicate.AssessmentSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssessmentSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssessmentSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AssessmentSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssessmentSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssessmentSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AssessmentSession).
func (m *AssessmentSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssessmentSessionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, assessmentsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, assessmentsession.FieldUpdatedAt)
	}
	if m.session_id != nil {
		fields = append(fields, assessmentsession.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, assessmentsession.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, assessmentsession.FieldStatus)
	}
	if m.current_step_id != nil {
		fields = append(fields, assessmentsession.FieldCurrentStepID)
	}
	if m.completed_at != nil {
		fields = append(fields, assessmentsession.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssessmentSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assessmentsession.FieldCreatedAt:
		return m.CreatedAt()
	case assessmentsession.FieldUpdatedAt:
		return m.UpdatedAt()
	case assessmentsession.FieldSessionID:
		return m.SessionID()
	case assessmentsession.FieldUserID:
		return m.UserID()
	case assessmentsession.FieldStatus:
		return m.Status()
	case assessmentsession.FieldCurrentStepID:
		return m.CurrentStepID()
	case assessmentsession.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssessmentSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assessmentsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case assessmentsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case assessmentsession.FieldSessionID:
		return m.OldSessionID(ctx)
	case assessmentsession.FieldUserID:
		return m.OldUserID(ctx)
	case assessmentsession.FieldStatus:
		return m.OldStatus(ctx)
	case assessmentsession.FieldCurrentStepID:
		return m.OldCurrentStepID(ctx)
	case assessmentsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AssessmentSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assessmentsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case assessmentsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case assessmentsession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case assessmentsession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case assessmentsession.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case assessmentsession.FieldCurrentStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStepID(v)
		return nil
	case assessmentsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssessmentSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssessmentSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AssessmentSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssessmentSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(assessmentsession.FieldCompletedAt) {
		fields = append(fields, assessmentsession.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssessmentSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssessmentSessionMutation) ClearField(name string) error {
	switch name {
	case assessmentsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AssessmentSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssessmentSessionMutation) ResetField(name string) error {
	switch name {
	case assessmentsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case assessmentsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case assessmentsession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case assessmentsession.FieldUserID:
		m.ResetUserID()
		return nil
	case assessmentsession.FieldStatus:
		m.ResetStatus()
		return nil
	case assessmentsession.FieldCurrentStepID:
		m.ResetCurrentStepID()
		return nil
	case assessmentsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AssessmentSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssessmentSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssessmentSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssessmentSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssessmentSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssessmentSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssessmentSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssessmentSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AssessmentSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssessmentSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AssessmentSession edge %s", name)
}

// RoadmapItemMutation represents an operation that mutates the RoadmapItem nodes in the graph.
type RoadmapItemMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	updated_at    *time.Time
	user_id       *string
	resource_id   *string
	phase         *int
	addphase      *int
	position      *int
	addposition   *int
	status        *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RoadmapItem, error)
	predicates    []predicate.RoadmapItem
}

var _ ent.Mutation = (*RoadmapItemMutation)(nil)

// roadmapitemOption allows management of the mutation configuration using functional options.
type roadmapitemOption func(*RoadmapItemMutation)

// newRoadmapItemMutation creates new mutation for the RoadmapItem entity.
func newRoadmapItemMutation(c config, op Op, opts ...roadmapitemOption) *RoadmapItemMutation {
	m := &RoadmapItemMutation{
		config:        c,
		op:            op,
		typ:           TypeRoadmapItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoadmapItemID sets the ID field of the mutation.
func withRoadmapItemID(id int) roadmapitemOption {
	return func(m *RoadmapItemMutation) {
		var (
			err   error
			once  sync.Once
			value *RoadmapItem
		)
		m.oldValue = func(ctx context.Context) (*RoadmapItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RoadmapItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoadmapItem sets the old RoadmapItem of the mutation.
func withRoadmapItem(node *RoadmapItem) roadmapitemOption {
	return func(m *RoadmapItemMutation) {
		m.oldValue = func(context.Context) (*RoadmapItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoadmapItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoadmapItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoadmapItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoadmapItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RoadmapItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RoadmapItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoadmapItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RoadmapItem entity.
// If the RoadmapItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RoadmapItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RoadmapItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RoadmapItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RoadmapItem entity.
// If the RoadmapItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RoadmapItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *RoadmapItemMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *RoadmapItemMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the RoadmapItem entity.
// If the RoadmapItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapItemMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *RoadmapItemMutation) ResetUserID() {
	m.user_id = nil
}

// SetResourceID sets the "resource_id" field.
func (m *RoadmapItemMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *RoadmapItemMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the RoadmapItem entity.
// If the RoadmapItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapItemMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *RoadmapItemMutation) ResetResourceID() {
	m.resource_id = nil
}

// SetPhase sets the "phase" field.
func (m *RoadmapItemMutation) SetPhase(i int) {
	m.phase = &i
	m.addphase = nil
}

// Phase returns the value of the "phase" field in the mutation.
func (m *RoadmapItemMutation) Phase() (r int, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the RoadmapItem entity.
// If the RoadmapItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapItemMutation) OldPhase(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// AddPhase adds i to the "phase" field.
func (m *RoadmapItemMutation) AddPhase(i int) {
	if m.addphase != nil {
		*m.addphase += i
	} else {
		m.addphase = &i
	}
}

// AddedPhase returns the value that was added to the "phase" field in this mutation.
func (m *RoadmapItemMutation) AddedPhase() (r int, exists bool) {
	v := m.addphase
	if v == nil {
		return
	}
	return *v, true
}

// ResetPhase resets all changes to the "phase" field.
func (m *RoadmapItemMutation) ResetPhase() {
	m.phase = nil
	m.addphase = nil
}

// SetPosition sets the "position" field.
func (m *RoadmapItemMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *RoadmapItemMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the RoadmapItem entity.
// If the RoadmapItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapItemMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *RoadmapItemMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *RoadmapItemMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *RoadmapItemMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetStatus sets the "status" field.
func (m *RoadmapItemMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *RoadmapItemMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RoadmapItem entity.
// If the RoadmapItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapItemMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RoadmapItemMutation) ResetStatus() {
	m.status = nil
}

// Where appends a list predicates to the RoadmapItemMutation builder.
func (m *RoadmapItemMutation) Where(ps ...predicate.RoadmapItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoadmapItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoadmapItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RoadmapItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoadmapItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoadmapItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RoadmapItem).
func (m *RoadmapItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoadmapItemMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, roadmapitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, roadmapitem.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, roadmapitem.FieldUserID)
	}
	if m.resource_id != nil {
		fields = append(fields, roadmapitem.FieldResourceID)
	}
	if m.phase != nil {
		fields = append(fields, roadmapitem.FieldPhase)
	}
	if m.position != nil {
		fields = append(fields, roadmapitem.FieldPosition)
	}
	if m.status != nil {
		fields = append(fields, roadmapitem.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoadmapItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case roadmapitem.FieldCreatedAt:
		return m.CreatedAt()
	case roadmapitem.FieldUpdatedAt:
		return m.UpdatedAt()
	case roadmapitem.FieldUserID:
		return m.UserID()
	case roadmapitem.FieldResourceID:
		return m.ResourceID()
	case roadmapitem.FieldPhase:
		return m.Phase()
	case roadmapitem.FieldPosition:
		return m.Position()
	case roadmapitem.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoadmapItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case roadmapitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case roadmapitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case roadmapitem.FieldUserID:
		return m.OldUserID(ctx)
	case roadmapitem.FieldResourceID:
		return m.OldResourceID(ctx)
	case roadmapitem.FieldPhase:
		return m.OldPhase(ctx)
	case roadmapitem.FieldPosition:
		return m.OldPosition(ctx)
	case roadmapitem.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown RoadmapItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoadmapItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case roadmapitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case roadmapitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case roadmapitem.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case roadmapitem.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case roadmapitem.FieldPhase:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case roadmapitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case roadmapitem.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown RoadmapItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoadmapItemMutation) AddedFields() []string {
	var fields []string
	if m.addphase != nil {
		fields = append(fields, roadmapitem.FieldPhase)
	}
	if m.addposition != nil {
		fields = append(fields, roadmapitem.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoadmapItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case roadmapitem.FieldPhase:
		return m.AddedPhase()
	case roadmapitem.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoadmapItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case roadmapitem.FieldPhase:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPhase(v)
		return nil
	case roadmapitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown RoadmapItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoadmapItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoadmapItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoadmapItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RoadmapItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoadmapItemMutation) ResetField(name string) error {
	switch name {
	case roadmapitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case roadmapitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case roadmapitem.FieldUserID:
		m.ResetUserID()
		return nil
	case roadmapitem.FieldResourceID:
		m.ResetResourceID()
		return nil
	case roadmapitem.FieldPhase:
		m.ResetPhase()
		return nil
	case roadmapitem.FieldPosition:
		m.ResetPosition()
		return nil
	case roadmapitem.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown RoadmapItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoadmapItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoadmapItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoadmapItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoadmapItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoadmapItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoadmapItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoadmapItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RoadmapItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoadmapItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RoadmapItem edge %s", name)
}

// SkillMasteryMutation represents an operation that mutates the SkillMastery nodes in the graph.
type SkillMasteryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	updated_at    *time.Time
	user_id       *string
	skill_key     *string
	mastery       *float64
	addmastery    *float64
	confidence    *float64
	addconfidence *float64
	attempts      *int
	addattempts   *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SkillMastery, error)
	predicates    []predicate.SkillMastery
}

var _ ent.Mutation = (*SkillMasteryMutation)(nil)

// skillmasteryOption allows management of the mutation configuration using functional options.
type skillmasteryOption func(*SkillMasteryMutation)

// newSkillMasteryMutation creates new mutation for the SkillMastery entity.
func newSkillMasteryMutation(c config, op Op, opts ...skillmasteryOption) *SkillMasteryMutation {
	m := &SkillMasteryMutation{
		config:        c,
		op:            op,
		typ:           TypeSkillMastery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSkillMasteryID sets the ID field of the mutation.
func withSkillMasteryID(id int) skillmasteryOption {
	return func(m *SkillMasteryMutation) {
		var (
			err   error
			once  sync.Once
			value *SkillMastery
		)
		m.oldValue = func(ctx context.Context) (*SkillMastery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SkillMastery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSkillMastery sets the old SkillMastery of the mutation.
func withSkillMastery(node *SkillMastery) skillmasteryOption {
	return func(m *SkillMasteryMutation) {
		m.oldValue = func(context.Context) (*SkillMastery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SkillMasteryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SkillMasteryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SkillMasteryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SkillMasteryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SkillMastery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SkillMasteryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SkillMasteryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SkillMastery entity.
// If the SkillMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMasteryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SkillMasteryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SkillMasteryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SkillMasteryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SkillMastery entity.
// If the SkillMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMasteryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SkillMasteryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *SkillMasteryMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SkillMasteryMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SkillMastery entity.
// If the SkillMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMasteryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SkillMasteryMutation) ResetUserID() {
	m.user_id = nil
}

// SetSkillKey sets the "skill_key" field.
func (m *SkillMasteryMutation) SetSkillKey(s string) {
	m.skill_key = &s
}

// SkillKey returns the value of the "skill_key" field in the mutation.
func (m *SkillMasteryMutation) SkillKey() (r string, exists bool) {
	v := m.skill_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillKey returns the old "skill_key" field's value of the SkillMastery entity.
// If the SkillMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMasteryMutation) OldSkillKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillKey: %w", err)
	}
	return oldValue.SkillKey, nil
}

// ResetSkillKey resets all changes to the "skill_key" field.
func (m *SkillMasteryMutation) ResetSkillKey() {
	m.skill_key = nil
}

// SetMastery sets the "mastery" field.
func (m *SkillMasteryMutation) SetMastery(f float64) {
	m.mastery = &f
	m.addmastery = nil
}

// Mastery returns the value of the "mastery" field in the mutation.
func (m *SkillMasteryMutation) Mastery() (r float64, exists bool) {
	v := m.mastery
	if v == nil {
		return
	}
	return *v, true
}

// OldMastery returns the old "mastery" field's value of the SkillMastery entity.
// If the SkillMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMasteryMutation) OldMastery(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMastery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMastery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMastery: %w", err)
	}
	return oldValue.Mastery, nil
}

// AddMastery adds f to the "mastery" field.
func (m *SkillMasteryMutation) AddMastery(f float64) {
	if m.addmastery != nil {
		*m.addmastery += f
	} else {
		m.addmastery = &f
	}
}

// AddedMastery returns the value that was added to the "mastery" field in this mutation.
func (m *SkillMasteryMutation) AddedMastery() (r float64, exists bool) {
	v := m.addmastery
	if v == nil {
		return
	}
	return *v, true
}

// ResetMastery resets all changes to the "mastery" field.
func (m *SkillMasteryMutation) ResetMastery() {
	m.mastery = nil
	m.addmastery = nil
}

// SetConfidence sets the "confidence" field.
func (m *SkillMasteryMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *SkillMasteryMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the SkillMastery entity.
// If the SkillMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMasteryMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *SkillMasteryMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *SkillMasteryMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *SkillMasteryMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetAttempts sets the "attempts" field.
func (m *SkillMasteryMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *SkillMasteryMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the SkillMastery entity.
// If the SkillMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMasteryMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *SkillMasteryMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *SkillMasteryMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *SkillMasteryMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// Where appends a list predicates to the SkillMasteryMutation builder.
func (m *SkillMasteryMutation) Where(ps ...predicate.SkillMastery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SkillMasteryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SkillMasteryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SkillMastery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SkillMasteryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SkillMasteryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SkillMastery).
func (m *SkillMasteryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SkillMasteryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, skillmastery.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, skillmastery.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, skillmastery.FieldUserID)
	}
	if m.skill_key != nil {
		fields = append(fields, skillmastery.FieldSkillKey)
	}
	if m.mastery != nil {
		fields = append(fields, skillmastery.FieldMastery)
	}
	if m.confidence != nil {
		fields = append(fields, skillmastery.FieldConfidence)
	}
	if m.attempts != nil {
		fields = append(fields, skillmastery.FieldAttempts)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SkillMasteryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case skillmastery.FieldCreatedAt:
		return m.CreatedAt()
	case skillmastery.FieldUpdatedAt:
		return m.UpdatedAt()
	case skillmastery.FieldUserID:
		return m.UserID()
	case skillmastery.FieldSkillKey:
		return m.SkillKey()
	case skillmastery.FieldMastery:
		return m.Mastery()
	case skillmastery.FieldConfidence:
		return m.Confidence()
	case skillmastery.FieldAttempts:
		return m.Attempts()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SkillMasteryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case skillmastery.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case skillmastery.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case skillmastery.FieldUserID:
		return m.OldUserID(ctx)
	case skillmastery.FieldSkillKey:
		return m.OldSkillKey(ctx)
	case skillmastery.FieldMastery:
		return m.OldMastery(ctx)
	case skillmastery.FieldConfidence:
		return m.OldConfidence(ctx)
	case skillmastery.FieldAttempts:
		return m.OldAttempts(ctx)
	}
	return nil, fmt.Errorf("unknown SkillMastery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillMasteryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case skillmastery.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case skillmastery.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case skillmastery.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case skillmastery.FieldSkillKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillKey(v)
		return nil
	case skillmastery.FieldMastery:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMastery(v)
		return nil
	case skillmastery.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case skillmastery.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown SkillMastery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SkillMasteryMutation) AddedFields() []string {
	var fields []string
	if m.addmastery != nil {
		fields = append(fields, skillmastery.FieldMastery)
	}
	if m.addconfidence != nil {
		fields = append(fields, skillmastery.FieldConfidence)
	}
	if m.addattempts != nil {
		fields = append(fields, skillmastery.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SkillMasteryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case skillmastery.FieldMastery:
		return m.AddedMastery()
	case skillmastery.FieldConfidence:
		return m.AddedConfidence()
	case skillmastery.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillMasteryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case skillmastery.FieldMastery:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMastery(v)
		return nil
	case skillmastery.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case skillmastery.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown SkillMastery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SkillMasteryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SkillMasteryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SkillMasteryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SkillMastery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SkillMasteryMutation) ResetField(name string) error {
	switch name {
	case skillmastery.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case skillmastery.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case skillmastery.FieldUserID:
		m.ResetUserID()
		return nil
	case skillmastery.FieldSkillKey:
		m.ResetSkillKey()
		return nil
	case skillmastery.FieldMastery:
		m.ResetMastery()
		return nil
	case skillmastery.FieldConfidence:
		m.ResetConfidence()
		return nil
	case skillmastery.FieldAttempts:
		m.ResetAttempts()
		return nil
	}
	return fmt.Errorf("unknown SkillMastery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SkillMasteryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SkillMasteryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SkillMasteryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SkillMasteryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SkillMasteryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SkillMasteryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SkillMasteryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SkillMastery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SkillMasteryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SkillMastery edge %s", name)
}
