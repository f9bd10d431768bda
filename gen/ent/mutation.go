// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tbruins/stroomadvies/gen/ent/predicate"
	"github.com/tbruins/stroomadvies/gen/ent/pricecheck"
	"github.com/tbruins/stroomadvies/gen/ent/profile"
	"github.com/tbruins/stroomadvies/gen/ent/usageestimate"
	"github.com/tbruins/stroomadvies/gen/ent/verifiedusage"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypePriceCheck    = "PriceCheck"
	TypeProfile       = "Profile"
	TypeUsageEstimate = "UsageEstimate"
	TypeVerifiedUsage = "VerifiedUsage"
)

// PriceCheckMutation represents an operation that mutates the PriceCheck nodes in the graph.
type PriceCheckMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	checked_at             *time.Time
	source                 *string
	used_kwh_per_month     *float64
	addused_kwh_per_month  *float64
	used_rate_per_kwh      *float64
	addused_rate_per_kwh   *float64
	snapshot_source        *string
	top2                   *json.RawMessage
	appendtop2             json.RawMessage
	cheapest               *json.RawMessage
	appendcheapest         json.RawMessage
	recommendation         *string
	monthly_savings_eur    *float64
	addmonthly_savings_eur *float64
	reasoning              *string
	clearedFields          map[string]struct{}
	profile                *uuid.UUID
	clearedprofile         bool
	done                   bool
	oldValue               func(context.Context) (*PriceCheck, error)
	predicates             []predicate.PriceCheck
}

var _ ent.Mutation = (*PriceCheckMutation)(nil)

// pricecheckOption allows management of the mutation configuration using functional options.
type pricecheckOption func(*PriceCheckMutation)

// newPriceCheckMutation creates new mutation for the PriceCheck entity.
func newPriceCheckMutation(c config, op Op, opts ...pricecheckOption) *PriceCheckMutation {
	m := &PriceCheckMutation{
		config:        c,
		op:            op,
		typ:           TypePriceCheck,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPriceCheckID sets the ID field of the mutation.
func withPriceCheckID(id uuid.UUID) pricecheckOption {
	return func(m *PriceCheckMutation) {
		var (
			err   error
			once  sync.Once
			value *PriceCheck
		)
		m.oldValue = func(ctx context.Context) (*PriceCheck, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PriceCheck.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPriceCheck sets the old PriceCheck of the mutation.
func withPriceCheck(node *PriceCheck) pricecheckOption {
	return func(m *PriceCheckMutation) {
		m.oldValue = func(context.Context) (*PriceCheck, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PriceCheckMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PriceCheckMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PriceCheck entities.
func (m *PriceCheckMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PriceCheckMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PriceCheckMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PriceCheck.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *PriceCheckMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *PriceCheckMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the PriceCheck entity.
// If the PriceCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceCheckMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *PriceCheckMutation) ResetProfileID() {
	m.profile = nil
}

// SetCheckedAt sets the "checked_at" field.
func (m *PriceCheckMutation) SetCheckedAt(t time.Time) {
	m.checked_at = &t
}

// CheckedAt returns the value of the "checked_at" field in the mutation.
func (m *PriceCheckMutation) CheckedAt() (r time.Time, exists bool) {
	v := m.checked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckedAt returns the old "checked_at" field's value of the PriceCheck entity.
// If the PriceCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceCheckMutation) OldCheckedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckedAt: %w", err)
	}
	return oldValue.CheckedAt, nil
}

// ResetCheckedAt resets all changes to the "checked_at" field.
func (m *PriceCheckMutation) ResetCheckedAt() {
	m.checked_at = nil
}

// SetSource sets the "source" field.
func (m *PriceCheckMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *PriceCheckMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the PriceCheck entity.
// If the PriceCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceCheckMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *PriceCheckMutation) ResetSource() {
	m.source = nil
}

// SetUsedKwhPerMonth sets the "used_kwh_per_month" field.
func (m *PriceCheckMutation) SetUsedKwhPerMonth(f float64) {
	m.used_kwh_per_month = &f
	m.addused_kwh_per_month = nil
}

// UsedKwhPerMonth returns the value of the "used_kwh_per_month" field in the mutation.
func (m *PriceCheckMutation) UsedKwhPerMonth() (r float64, exists bool) {
	v := m.used_kwh_per_month
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedKwhPerMonth returns the old "used_kwh_per_month" field's value of the PriceCheck entity.
// If the PriceCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceCheckMutation) OldUsedKwhPerMonth(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedKwhPerMonth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedKwhPerMonth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedKwhPerMonth: %w", err)
	}
	return oldValue.UsedKwhPerMonth, nil
}

// AddUsedKwhPerMonth adds f to the "used_kwh_per_month" field.
func (m *PriceCheckMutation) AddUsedKwhPerMonth(f float64) {
	if m.addused_kwh_per_month != nil {
		*m.addused_kwh_per_month += f
	} else {
		m.addused_kwh_per_month = &f
	}
}

// AddedUsedKwhPerMonth returns the value that was added to the "used_kwh_per_month" field in this mutation.
func (m *PriceCheckMutation) AddedUsedKwhPerMonth() (r float64, exists bool) {
	v := m.addused_kwh_per_month
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsedKwhPerMonth resets all changes to the "used_kwh_per_month" field.
func (m *PriceCheckMutation) ResetUsedKwhPerMonth() {
	m.used_kwh_per_month = nil
	m.addused_kwh_per_month = nil
}

// SetUsedRatePerKwh sets the "used_rate_per_kwh" field.
func (m *PriceCheckMutation) SetUsedRatePerKwh(f float64) {
	m.used_rate_per_kwh = &f
	m.addused_rate_per_kwh = nil
}

// UsedRatePerKwh returns the value of the "used_rate_per_kwh" field in the mutation.
func (m *PriceCheckMutation) UsedRatePerKwh() (r float64, exists bool) {
	v := m.used_rate_per_kwh
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedRatePerKwh returns the old "used_rate_per_kwh" field's value of the PriceCheck entity.
// If the PriceCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceCheckMutation) OldUsedRatePerKwh(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedRatePerKwh is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedRatePerKwh requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedRatePerKwh: %w", err)
	}
	return oldValue.UsedRatePerKwh, nil
}

// AddUsedRatePerKwh adds f to the "used_rate_per_kwh" field.
func (m *PriceCheckMutation) AddUsedRatePerKwh(f float64) {
	if m.addused_rate_per_kwh != nil {
		*m.addused_rate_per_kwh += f
	} else {
		m.addused_rate_per_kwh = &f
	}
}

// AddedUsedRatePerKwh returns the value that was added to the "used_rate_per_kwh" field in this mutation.
func (m *PriceCheckMutation) AddedUsedRatePerKwh() (r float64, exists bool) {
	v := m.addused_rate_per_kwh
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsedRatePerKwh resets all changes to the "used_rate_per_kwh" field.
func (m *PriceCheckMutation) ResetUsedRatePerKwh() {
	m.used_rate_per_kwh = nil
	m.addused_rate_per_kwh = nil
}

// SetSnapshotSource sets the "snapshot_source" field.
func (m *PriceCheckMutation) SetSnapshotSource(s string) {
	m.snapshot_source = &s
}

// SnapshotSource returns the value of the "snapshot_source" field in the mutation.
func (m *PriceCheckMutation) SnapshotSource() (r string, exists bool) {
	v := m.snapshot_source
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshotSource returns the old "snapshot_source" field's value of the PriceCheck entity.
// If the PriceCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceCheckMutation) OldSnapshotSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshotSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshotSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshotSource: %w", err)
	}
	return oldValue.SnapshotSource, nil
}

// ResetSnapshotSource resets all changes to the "snapshot_source" field.
func (m *PriceCheckMutation) ResetSnapshotSource() {
	m.snapshot_source = nil
}

// SetTop2 sets the "top2" field.
func (m *PriceCheckMutation) SetTop2(jm json.RawMessage) {
	m.top2 = &jm
	m.appendtop2 = nil
}

// Top2 returns the value of the "top2" field in the mutation.
func (m *PriceCheckMutation) Top2() (r json.RawMessage, exists bool) {
	v := m.top2
	if v == nil {
		return
	}
	return *v, true
}

// OldTop2 returns the old "top2" field's value of the PriceCheck entity.
// If the PriceCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceCheckMutation) OldTop2(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTop2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTop2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTop2: %w", err)
	}
	return oldValue.Top2, nil
}

// AppendTop2 adds jm to the "top2" field.
func (m *PriceCheckMutation) AppendTop2(jm json.RawMessage) {
	m.appendtop2 = append(m.appendtop2, jm...)
}

// AppendedTop2 returns the list of values that were appended to the "top2" field in this mutation.
func (m *PriceCheckMutation) AppendedTop2() (json.RawMessage, bool) {
	if len(m.appendtop2) == 0 {
		return nil, false
	}
	return m.appendtop2, true
}

// ClearTop2 clears the value of the "top2" field.
func (m *PriceCheckMutation) ClearTop2() {
	m.top2 = nil
	m.appendtop2 = nil
	m.clearedFields[pricecheck.FieldTop2] = struct{}{}
}

// Top2Cleared returns if the "top2" field was cleared in this mutation.
func (m *PriceCheckMutation) Top2Cleared() bool {
	_, ok := m.clearedFields[pricecheck.FieldTop2]
	return ok
}

// ResetTop2 resets all changes to the "top2" field.
func (m *PriceCheckMutation) ResetTop2() {
	m.top2 = nil
	m.appendtop2 = nil
	delete(m.clearedFields, pricecheck.FieldTop2)
}

// SetCheapest sets the "cheapest" field.
func (m *PriceCheckMutation) SetCheapest(jm json.RawMessage) {
	m.cheapest = &jm
	m.appendcheapest = nil
}

// Cheapest returns the value of the "cheapest" field in the mutation.
func (m *PriceCheckMutation) Cheapest() (r json.RawMessage, exists bool) {
	v := m.cheapest
	if v == nil {
		return
	}
	return *v, true
}

// OldCheapest returns the old "cheapest" field's value of the PriceCheck entity.
// If the PriceCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceCheckMutation) OldCheapest(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheapest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheapest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheapest: %w", err)
	}
	return oldValue.Cheapest, nil
}

// AppendCheapest adds jm to the "cheapest" field.
func (m *PriceCheckMutation) AppendCheapest(jm json.RawMessage) {
	m.appendcheapest = append(m.appendcheapest, jm...)
}

// AppendedCheapest returns the list of values that were appended to the "cheapest" field in this mutation.
func (m *PriceCheckMutation) AppendedCheapest() (json.RawMessage, bool) {
	if len(m.appendcheapest) == 0 {
		return nil, false
	}
	return m.appendcheapest, true
}

// ClearCheapest clears the value of the "cheapest" field.
func (m *PriceCheckMutation) ClearCheapest() {
	m.cheapest = nil
	m.appendcheapest = nil
	m.clearedFields[pricecheck.FieldCheapest] = struct{}{}
}

// CheapestCleared returns if the "cheapest" field was cleared in this mutation.
func (m *PriceCheckMutation) CheapestCleared() bool {
	_, ok := m.clearedFields[pricecheck.FieldCheapest]
	return ok
}

// ResetCheapest resets all changes to the "cheapest" field.
func (m *PriceCheckMutation) ResetCheapest() {
	m.cheapest = nil
	m.appendcheapest = nil
	delete(m.clearedFields, pricecheck.FieldCheapest)
}

// SetRecommendation sets the "recommendation" field.
func (m *PriceCheckMutation) SetRecommendation(s string) {
	m.recommendation = &s
}

// Recommendation returns the value of the "recommendation" field in the mutation.
func (m *PriceCheckMutation) Recommendation() (r string, exists bool) {
	v := m.recommendation
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendation returns the old "recommendation" field's value of the PriceCheck entity.
// If the PriceCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceCheckMutation) OldRecommendation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendation: %w", err)
	}
	return oldValue.Recommendation, nil
}

// ResetRecommendation resets all changes to the "recommendation" field.
func (m *PriceCheckMutation) ResetRecommendation() {
	m.recommendation = nil
}

// SetMonthlySavingsEur sets the "monthly_savings_eur" field.
func (m *PriceCheckMutation) SetMonthlySavingsEur(f float64) {
	m.monthly_savings_eur = &f
	m.addmonthly_savings_eur = nil
}

// MonthlySavingsEur returns the value of the "monthly_savings_eur" field in the mutation.
func (m *PriceCheckMutation) MonthlySavingsEur() (r float64, exists bool) {
	v := m.monthly_savings_eur
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthlySavingsEur returns the old "monthly_savings_eur" field's value of the PriceCheck entity.
// If the PriceCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceCheckMutation) OldMonthlySavingsEur(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthlySavingsEur is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthlySavingsEur requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthlySavingsEur: %w", err)
	}
	return oldValue.MonthlySavingsEur, nil
}

// AddMonthlySavingsEur adds f to the "monthly_savings_eur" field.
func (m *PriceCheckMutation) AddMonthlySavingsEur(f float64) {
	if m.addmonthly_savings_eur != nil {
		*m.addmonthly_savings_eur += f
	} else {
		m.addmonthly_savings_eur = &f
	}
}

// AddedMonthlySavingsEur returns the value that was added to the "monthly_savings_eur" field in this mutation.
func (m *PriceCheckMutation) AddedMonthlySavingsEur() (r float64, exists bool) {
	v := m.addmonthly_savings_eur
	if v == nil {
		return
	}
	return *v, true
}

// ResetMonthlySavingsEur resets all changes to the "monthly_savings_eur" field.
func (m *PriceCheckMutation) ResetMonthlySavingsEur() {
	m.monthly_savings_eur = nil
	m.addmonthly_savings_eur = nil
}

// SetReasoning sets the "reasoning" field.
func (m *PriceCheckMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *PriceCheckMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the PriceCheck entity.
// If the PriceCheck object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceCheckMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *PriceCheckMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[pricecheck.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *PriceCheckMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[pricecheck.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *PriceCheckMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, pricecheck.FieldReasoning)
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *PriceCheckMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[pricecheck.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *PriceCheckMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *PriceCheckMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *PriceCheckMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// Where appends a list predicates to the PriceCheckMutation builder.
func (m *PriceCheckMutation) Where(ps ...predicate.PriceCheck) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PriceCheckMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PriceCheckMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PriceCheck, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PriceCheckMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PriceCheckMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PriceCheck).
func (m *PriceCheckMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PriceCheckMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.profile != nil {
		fields = append(fields, pricecheck.FieldProfileID)
	}
	if m.checked_at != nil {
		fields = append(fields, pricecheck.FieldCheckedAt)
	}
	if m.source != nil {
		fields = append(fields, pricecheck.FieldSource)
	}
	if m.used_kwh_per_month != nil {
		fields = append(fields, pricecheck.FieldUsedKwhPerMonth)
	}
	if m.used_rate_per_kwh != nil {
		fields = append(fields, pricecheck.FieldUsedRatePerKwh)
	}
	if m.snapshot_source != nil {
		fields = append(fields, pricecheck.FieldSnapshotSource)
	}
	if m.top2 != nil {
		fields = append(fields, pricecheck.FieldTop2)
	}
	if m.cheapest != nil {
		fields = append(fields, pricecheck.FieldCheapest)
	}
	if m.recommendation != nil {
		fields = append(fields, pricecheck.FieldRecommendation)
	}
	if m.monthly_savings_eur != nil {
		fields = append(fields, pricecheck.FieldMonthlySavingsEur)
	}
	if m.reasoning != nil {
		fields = append(fields, pricecheck.FieldReasoning)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PriceCheckMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pricecheck.FieldProfileID:
		return m.ProfileID()
	case pricecheck.FieldCheckedAt:
		return m.CheckedAt()
	case pricecheck.FieldSource:
		return m.Source()
	case pricecheck.FieldUsedKwhPerMonth:
		return m.UsedKwhPerMonth()
	case pricecheck.FieldUsedRatePerKwh:
		return m.UsedRatePerKwh()
	case pricecheck.FieldSnapshotSource:
		return m.SnapshotSource()
	case pricecheck.FieldTop2:
		return m.Top2()
	case pricecheck.FieldCheapest:
		return m.Cheapest()
	case pricecheck.FieldRecommendation:
		return m.Recommendation()
	case pricecheck.FieldMonthlySavingsEur:
		return m.MonthlySavingsEur()
	case pricecheck.FieldReasoning:
		return m.Reasoning()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PriceCheckMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pricecheck.FieldProfileID:
		return m.OldProfileID(ctx)
	case pricecheck.FieldCheckedAt:
		return m.OldCheckedAt(ctx)
	case pricecheck.FieldSource:
		return m.OldSource(ctx)
	case pricecheck.FieldUsedKwhPerMonth:
		return m.OldUsedKwhPerMonth(ctx)
	case pricecheck.FieldUsedRatePerKwh:
		return m.OldUsedRatePerKwh(ctx)
	case pricecheck.FieldSnapshotSource:
		return m.OldSnapshotSource(ctx)
	case pricecheck.FieldTop2:
		return m.OldTop2(ctx)
	case pricecheck.FieldCheapest:
		return m.OldCheapest(ctx)
	case pricecheck.FieldRecommendation:
		return m.OldRecommendation(ctx)
	case pricecheck.FieldMonthlySavingsEur:
		return m.OldMonthlySavingsEur(ctx)
	case pricecheck.FieldReasoning:
		return m.OldReasoning(ctx)
	}
	return nil, fmt.Errorf("unknown PriceCheck field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PriceCheckMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pricecheck.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case pricecheck.FieldCheckedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckedAt(v)
		return nil
	case pricecheck.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case pricecheck.FieldUsedKwhPerMonth:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedKwhPerMonth(v)
		return nil
	case pricecheck.FieldUsedRatePerKwh:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedRatePerKwh(v)
		return nil
	case pricecheck.FieldSnapshotSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshotSource(v)
		return nil
	case pricecheck.FieldTop2:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTop2(v)
		return nil
	case pricecheck.FieldCheapest:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheapest(v)
		return nil
	case pricecheck.FieldRecommendation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendation(v)
		return nil
	case pricecheck.FieldMonthlySavingsEur:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthlySavingsEur(v)
		return nil
	case pricecheck.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	}
	return fmt.Errorf("unknown PriceCheck field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PriceCheckMutation) AddedFields() []string {
	var fields []string
	if m.addused_kwh_per_month != nil {
		fields = append(fields, pricecheck.FieldUsedKwhPerMonth)
	}
	if m.addused_rate_per_kwh != nil {
		fields = append(fields, pricecheck.FieldUsedRatePerKwh)
	}
	if m.addmonthly_savings_eur != nil {
		fields = append(fields, pricecheck.FieldMonthlySavingsEur)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PriceCheckMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pricecheck.FieldUsedKwhPerMonth:
		return m.AddedUsedKwhPerMonth()
	case pricecheck.FieldUsedRatePerKwh:
		return m.AddedUsedRatePerKwh()
	case pricecheck.FieldMonthlySavingsEur:
		return m.AddedMonthlySavingsEur()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PriceCheckMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pricecheck.FieldUsedKwhPerMonth:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsedKwhPerMonth(v)
		return nil
	case pricecheck.FieldUsedRatePerKwh:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsedRatePerKwh(v)
		return nil
	case pricecheck.FieldMonthlySavingsEur:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonthlySavingsEur(v)
		return nil
	}
	return fmt.Errorf("unknown PriceCheck numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PriceCheckMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pricecheck.FieldTop2) {
		fields = append(fields, pricecheck.FieldTop2)
	}
	if m.FieldCleared(pricecheck.FieldCheapest) {
		fields = append(fields, pricecheck.FieldCheapest)
	}
	if m.FieldCleared(pricecheck.FieldReasoning) {
		fields = append(fields, pricecheck.FieldReasoning)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PriceCheckMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PriceCheckMutation) ClearField(name string) error {
	switch name {
	case pricecheck.FieldTop2:
		m.ClearTop2()
		return nil
	case pricecheck.FieldCheapest:
		m.ClearCheapest()
		return nil
	case pricecheck.FieldReasoning:
		m.ClearReasoning()
		return nil
	}
	return fmt.Errorf("unknown PriceCheck nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PriceCheckMutation) ResetField(name string) error {
	switch name {
	case pricecheck.FieldProfileID:
		m.ResetProfileID()
		return nil
	case pricecheck.FieldCheckedAt:
		m.ResetCheckedAt()
		return nil
	case pricecheck.FieldSource:
		m.ResetSource()
		return nil
	case pricecheck.FieldUsedKwhPerMonth:
		m.ResetUsedKwhPerMonth()
		return nil
	case pricecheck.FieldUsedRatePerKwh:
		m.ResetUsedRatePerKwh()
		return nil
	case pricecheck.FieldSnapshotSource:
		m.ResetSnapshotSource()
		return nil
	case pricecheck.FieldTop2:
		m.ResetTop2()
		return nil
	case pricecheck.FieldCheapest:
		m.ResetCheapest()
		return nil
	case pricecheck.FieldRecommendation:
		m.ResetRecommendation()
		return nil
	case pricecheck.FieldMonthlySavingsEur:
		m.ResetMonthlySavingsEur()
		return nil
	case pricecheck.FieldReasoning:
		m.ResetReasoning()
		return nil
	}
	return fmt.Errorf("unknown PriceCheck field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PriceCheckMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.profile != nil {
		edges = append(edges, pricecheck.EdgeProfile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PriceCheckMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pricecheck.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PriceCheckMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PriceCheckMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PriceCheckMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprofile {
		edges = append(edges, pricecheck.EdgeProfile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PriceCheckMutation) EdgeCleared(name string) bool {
	switch name {
	case pricecheck.EdgeProfile:
		return m.clearedprofile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PriceCheckMutation) ClearEdge(name string) error {
	switch name {
	case pricecheck.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown PriceCheck unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PriceCheckMutation) ResetEdge(name string) error {
	switch name {
	case pricecheck.EdgeProfile:
		m.ResetProfile()
		return nil
	}
	return fmt.Errorf("unknown PriceCheck edge %s", name)
}

// ProfileMutation represents an operation that mutates the Profile nodes in the graph.
type ProfileMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	household_size        *string
	dwelling_type         *string
	works_from_home       *bool
	has_heat_pump         *bool
	has_district_heating  *bool
	has_solar_panels      *bool
	provider              *string
	contract_type         *string
	monthly_cost_eur      *float64
	addmonthly_cost_eur   *float64
	tier                  *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	estimates             map[uuid.UUID]struct{}
	removedestimates      map[uuid.UUID]struct{}
	clearedestimates      bool
	verified_usage        *uuid.UUID
	clearedverified_usage bool
	price_checks          map[uuid.UUID]struct{}
	removedprice_checks   map[uuid.UUID]struct{}
	clearedprice_checks   bool
	done                  bool
	oldValue              func(context.Context) (*Profile, error)
	predicates            []predicate.Profile
}

var _ ent.Mutation = (*ProfileMutation)(nil)

// profileOption allows management of the mutation configuration using functional options.
type profileOption func(*ProfileMutation)

// newProfileMutation creates new mutation for the Profile entity.
func newProfileMutation(c config, op Op, opts ...profileOption) *ProfileMutation {
	m := &ProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfileID sets the ID field of the mutation.
func withProfileID(id uuid.UUID) profileOption {
	return func(m *ProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *Profile
		)
		m.oldValue = func(ctx context.Context) (*Profile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Profile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfile sets the old Profile of the mutation.
func withProfile(node *Profile) profileOption {
	return func(m *ProfileMutation) {
		m.oldValue = func(context.Context) (*Profile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Profile entities.
func (m *ProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Profile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetHouseholdSize sets the "household_size" field.
func (m *ProfileMutation) SetHouseholdSize(s string) {
	m.household_size = &s
}

// HouseholdSize returns the value of the "household_size" field in the mutation.
func (m *ProfileMutation) HouseholdSize() (r string, exists bool) {
	v := m.household_size
	if v == nil {
		return
	}
	return *v, true
}

// OldHouseholdSize returns the old "household_size" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldHouseholdSize(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHouseholdSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHouseholdSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHouseholdSize: %w", err)
	}
	return oldValue.HouseholdSize, nil
}

// ResetHouseholdSize resets all changes to the "household_size" field.
func (m *ProfileMutation) ResetHouseholdSize() {
	m.household_size = nil
}

// SetDwellingType sets the "dwelling_type" field.
func (m *ProfileMutation) SetDwellingType(s string) {
	m.dwelling_type = &s
}

// DwellingType returns the value of the "dwelling_type" field in the mutation.
func (m *ProfileMutation) DwellingType() (r string, exists bool) {
	v := m.dwelling_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDwellingType returns the old "dwelling_type" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldDwellingType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDwellingType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDwellingType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDwellingType: %w", err)
	}
	return oldValue.DwellingType, nil
}

// ResetDwellingType resets all changes to the "dwelling_type" field.
func (m *ProfileMutation) ResetDwellingType() {
	m.dwelling_type = nil
}

// SetWorksFromHome sets the "works_from_home" field.
func (m *ProfileMutation) SetWorksFromHome(b bool) {
	m.works_from_home = &b
}

// WorksFromHome returns the value of the "works_from_home" field in the mutation.
func (m *ProfileMutation) WorksFromHome() (r bool, exists bool) {
	v := m.works_from_home
	if v == nil {
		return
	}
	return *v, true
}

// OldWorksFromHome returns the old "works_from_home" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldWorksFromHome(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorksFromHome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorksFromHome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorksFromHome: %w", err)
	}
	return oldValue.WorksFromHome, nil
}

// ResetWorksFromHome resets all changes to the "works_from_home" field.
func (m *ProfileMutation) ResetWorksFromHome() {
	m.works_from_home = nil
}

// SetHasHeatPump sets the "has_heat_pump" field.
func (m *ProfileMutation) SetHasHeatPump(b bool) {
	m.has_heat_pump = &b
}

// HasHeatPump returns the value of the "has_heat_pump" field in the mutation.
func (m *ProfileMutation) HasHeatPump() (r bool, exists bool) {
	v := m.has_heat_pump
	if v == nil {
		return
	}
	return *v, true
}

// OldHasHeatPump returns the old "has_heat_pump" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldHasHeatPump(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasHeatPump is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasHeatPump requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasHeatPump: %w", err)
	}
	return oldValue.HasHeatPump, nil
}

// ResetHasHeatPump resets all changes to the "has_heat_pump" field.
func (m *ProfileMutation) ResetHasHeatPump() {
	m.has_heat_pump = nil
}

// SetHasDistrictHeating sets the "has_district_heating" field.
func (m *ProfileMutation) SetHasDistrictHeating(b bool) {
	m.has_district_heating = &b
}

// HasDistrictHeating returns the value of the "has_district_heating" field in the mutation.
func (m *ProfileMutation) HasDistrictHeating() (r bool, exists bool) {
	v := m.has_district_heating
	if v == nil {
		return
	}
	return *v, true
}

// OldHasDistrictHeating returns the old "has_district_heating" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldHasDistrictHeating(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasDistrictHeating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasDistrictHeating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasDistrictHeating: %w", err)
	}
	return oldValue.HasDistrictHeating, nil
}

// ResetHasDistrictHeating resets all changes to the "has_district_heating" field.
func (m *ProfileMutation) ResetHasDistrictHeating() {
	m.has_district_heating = nil
}

// SetHasSolarPanels sets the "has_solar_panels" field.
func (m *ProfileMutation) SetHasSolarPanels(b bool) {
	m.has_solar_panels = &b
}

// HasSolarPanels returns the value of the "has_solar_panels" field in the mutation.
func (m *ProfileMutation) HasSolarPanels() (r bool, exists bool) {
	v := m.has_solar_panels
	if v == nil {
		return
	}
	return *v, true
}

// OldHasSolarPanels returns the old "has_solar_panels" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldHasSolarPanels(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasSolarPanels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasSolarPanels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasSolarPanels: %w", err)
	}
	return oldValue.HasSolarPanels, nil
}

// ResetHasSolarPanels resets all changes to the "has_solar_panels" field.
func (m *ProfileMutation) ResetHasSolarPanels() {
	m.has_solar_panels = nil
}

// SetProvider sets the "provider" field.
func (m *ProfileMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ProfileMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ClearProvider clears the value of the "provider" field.
func (m *ProfileMutation) ClearProvider() {
	m.provider = nil
	m.clearedFields[profile.FieldProvider] = struct{}{}
}

// ProviderCleared returns if the "provider" field was cleared in this mutation.
func (m *ProfileMutation) ProviderCleared() bool {
	_, ok := m.clearedFields[profile.FieldProvider]
	return ok
}

// ResetProvider resets all changes to the "provider" field.
func (m *ProfileMutation) ResetProvider() {
	m.provider = nil
	delete(m.clearedFields, profile.FieldProvider)
}

// SetContractType sets the "contract_type" field.
func (m *ProfileMutation) SetContractType(s string) {
	m.contract_type = &s
}

// ContractType returns the value of the "contract_type" field in the mutation.
func (m *ProfileMutation) ContractType() (r string, exists bool) {
	v := m.contract_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContractType returns the old "contract_type" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldContractType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractType: %w", err)
	}
	return oldValue.ContractType, nil
}

// ResetContractType resets all changes to the "contract_type" field.
func (m *ProfileMutation) ResetContractType() {
	m.contract_type = nil
}

// SetMonthlyCostEur sets the "monthly_cost_eur" field.
func (m *ProfileMutation) SetMonthlyCostEur(f float64) {
	m.monthly_cost_eur = &f
	m.addmonthly_cost_eur = nil
}

// MonthlyCostEur returns the value of the "monthly_cost_eur" field in the mutation.
func (m *ProfileMutation) MonthlyCostEur() (r float64, exists bool) {
	v := m.monthly_cost_eur
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthlyCostEur returns the old "monthly_cost_eur" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldMonthlyCostEur(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthlyCostEur is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthlyCostEur requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthlyCostEur: %w", err)
	}
	return oldValue.MonthlyCostEur, nil
}

// AddMonthlyCostEur adds f to the "monthly_cost_eur" field.
func (m *ProfileMutation) AddMonthlyCostEur(f float64) {
	if m.addmonthly_cost_eur != nil {
		*m.addmonthly_cost_eur += f
	} else {
		m.addmonthly_cost_eur = &f
	}
}

// AddedMonthlyCostEur returns the value that was added to the "monthly_cost_eur" field in this mutation.
func (m *ProfileMutation) AddedMonthlyCostEur() (r float64, exists bool) {
	v := m.addmonthly_cost_eur
	if v == nil {
		return
	}
	return *v, true
}

// ResetMonthlyCostEur resets all changes to the "monthly_cost_eur" field.
func (m *ProfileMutation) ResetMonthlyCostEur() {
	m.monthly_cost_eur = nil
	m.addmonthly_cost_eur = nil
}

// SetTier sets the "tier" field.
func (m *ProfileMutation) SetTier(s string) {
	m.tier = &s
}

// Tier returns the value of the "tier" field in the mutation.
func (m *ProfileMutation) Tier() (r string, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldTier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ResetTier resets all changes to the "tier" field.
func (m *ProfileMutation) ResetTier() {
	m.tier = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddEstimateIDs adds the "estimates" edge to the UsageEstimate entity by ids.
func (m *ProfileMutation) AddEstimateIDs(ids ...uuid.UUID) {
	if m.estimates == nil {
		m.estimates = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.estimates[ids[i]] = struct{}{}
	}
}

// ClearEstimates clears the "estimates" edge to the UsageEstimate entity.
func (m *ProfileMutation) ClearEstimates() {
	m.clearedestimates = true
}

// EstimatesCleared reports if the "estimates" edge to the UsageEstimate entity was cleared.
func (m *ProfileMutation) EstimatesCleared() bool {
	return m.clearedestimates
}

// RemoveEstimateIDs removes the "estimates" edge to the UsageEstimate entity by IDs.
func (m *ProfileMutation) RemoveEstimateIDs(ids ...uuid.UUID) {
	if m.removedestimates == nil {
		m.removedestimates = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.estimates, ids[i])
		m.removedestimates[ids[i]] = struct{}{}
	}
}

// RemovedEstimates returns the removed IDs of the "estimates" edge to the UsageEstimate entity.
func (m *ProfileMutation) RemovedEstimatesIDs() (ids []uuid.UUID) {
	for id := range m.removedestimates {
		ids = append(ids, id)
	}
	return
}

// EstimatesIDs returns the "estimates" edge IDs in the mutation.
func (m *ProfileMutation) EstimatesIDs() (ids []uuid.UUID) {
	for id := range m.estimates {
		ids = append(ids, id)
	}
	return
}

// ResetEstimates resets all changes to the "estimates" edge.
func (m *ProfileMutation) ResetEstimates() {
	m.estimates = nil
	m.clearedestimates = false
	m.removedestimates = nil
}

// SetVerifiedUsageID sets the "verified_usage" edge to the VerifiedUsage entity by id.
func (m *ProfileMutation) SetVerifiedUsageID(id uuid.UUID) {
	m.verified_usage = &id
}

// ClearVerifiedUsage clears the "verified_usage" edge to the VerifiedUsage entity.
func (m *ProfileMutation) ClearVerifiedUsage() {
	m.clearedverified_usage = true
}

// VerifiedUsageCleared reports if the "verified_usage" edge to the VerifiedUsage entity was cleared.
func (m *ProfileMutation) VerifiedUsageCleared() bool {
	return m.clearedverified_usage
}

// VerifiedUsageID returns the "verified_usage" edge ID in the mutation.
func (m *ProfileMutation) VerifiedUsageID() (id uuid.UUID, exists bool) {
	if m.verified_usage != nil {
		return *m.verified_usage, true
	}
	return
}

// VerifiedUsageIDs returns the "verified_usage" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VerifiedUsageID instead. It exists only for internal usage by the builders.
func (m *ProfileMutation) VerifiedUsageIDs() (ids []uuid.UUID) {
	if id := m.verified_usage; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVerifiedUsage resets all changes to the "verified_usage" edge.
func (m *ProfileMutation) ResetVerifiedUsage() {
	m.verified_usage = nil
	m.clearedverified_usage = false
}

// AddPriceCheckIDs adds the "price_checks" edge to the PriceCheck entity by ids.
func (m *ProfileMutation) AddPriceCheckIDs(ids ...uuid.UUID) {
	if m.price_checks == nil {
		m.price_checks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.price_checks[ids[i]] = struct{}{}
	}
}

// ClearPriceChecks clears the "price_checks" edge to the PriceCheck entity.
func (m *ProfileMutation) ClearPriceChecks() {
	m.clearedprice_checks = true
}

// PriceChecksCleared reports if the "price_checks" edge to the PriceCheck entity was cleared.
func (m *ProfileMutation) PriceChecksCleared() bool {
	return m.clearedprice_checks
}

// RemovePriceCheckIDs removes the "price_checks" edge to the PriceCheck entity by IDs.
func (m *ProfileMutation) RemovePriceCheckIDs(ids ...uuid.UUID) {
	if m.removedprice_checks == nil {
		m.removedprice_checks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.price_checks, ids[i])
		m.removedprice_checks[ids[i]] = struct{}{}
	}
}

// RemovedPriceChecks returns the removed IDs of the "price_checks" edge to the PriceCheck entity.
func (m *ProfileMutation) RemovedPriceChecksIDs() (ids []uuid.UUID) {
	for id := range m.removedprice_checks {
		ids = append(ids, id)
	}
	return
}

// PriceChecksIDs returns the "price_checks" edge IDs in the mutation.
func (m *ProfileMutation) PriceChecksIDs() (ids []uuid.UUID) {
	for id := range m.price_checks {
		ids = append(ids, id)
	}
	return
}

// ResetPriceChecks resets all changes to the "price_checks" edge.
func (m *ProfileMutation) ResetPriceChecks() {
	m.price_checks = nil
	m.clearedprice_checks = false
	m.removedprice_checks = nil
}

// Where appends a list predicates to the ProfileMutation builder.
func (m *ProfileMutation) Where(ps ...predicate.Profile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Profile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Profile).
func (m *ProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfileMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.household_size != nil {
		fields = append(fields, profile.FieldHouseholdSize)
	}
	if m.dwelling_type != nil {
		fields = append(fields, profile.FieldDwellingType)
	}
	if m.works_from_home != nil {
		fields = append(fields, profile.FieldWorksFromHome)
	}
	if m.has_heat_pump != nil {
		fields = append(fields, profile.FieldHasHeatPump)
	}
	if m.has_district_heating != nil {
		fields = append(fields, profile.FieldHasDistrictHeating)
	}
	if m.has_solar_panels != nil {
		fields = append(fields, profile.FieldHasSolarPanels)
	}
	if m.provider != nil {
		fields = append(fields, profile.FieldProvider)
	}
	if m.contract_type != nil {
		fields = append(fields, profile.FieldContractType)
	}
	if m.monthly_cost_eur != nil {
		fields = append(fields, profile.FieldMonthlyCostEur)
	}
	if m.tier != nil {
		fields = append(fields, profile.FieldTier)
	}
	if m.created_at != nil {
		fields = append(fields, profile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, profile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldHouseholdSize:
		return m.HouseholdSize()
	case profile.FieldDwellingType:
		return m.DwellingType()
	case profile.FieldWorksFromHome:
		return m.WorksFromHome()
	case profile.FieldHasHeatPump:
		return m.HasHeatPump()
	case profile.FieldHasDistrictHeating:
		return m.HasDistrictHeating()
	case profile.FieldHasSolarPanels:
		return m.HasSolarPanels()
	case profile.FieldProvider:
		return m.Provider()
	case profile.FieldContractType:
		return m.ContractType()
	case profile.FieldMonthlyCostEur:
		return m.MonthlyCostEur()
	case profile.FieldTier:
		return m.Tier()
	case profile.FieldCreatedAt:
		return m.CreatedAt()
	case profile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case profile.FieldHouseholdSize:
		return m.OldHouseholdSize(ctx)
	case profile.FieldDwellingType:
		return m.OldDwellingType(ctx)
	case profile.FieldWorksFromHome:
		return m.OldWorksFromHome(ctx)
	case profile.FieldHasHeatPump:
		return m.OldHasHeatPump(ctx)
	case profile.FieldHasDistrictHeating:
		return m.OldHasDistrictHeating(ctx)
	case profile.FieldHasSolarPanels:
		return m.OldHasSolarPanels(ctx)
	case profile.FieldProvider:
		return m.OldProvider(ctx)
	case profile.FieldContractType:
		return m.OldContractType(ctx)
	case profile.FieldMonthlyCostEur:
		return m.OldMonthlyCostEur(ctx)
	case profile.FieldTier:
		return m.OldTier(ctx)
	case profile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case profile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Profile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case profile.FieldHouseholdSize:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHouseholdSize(v)
		return nil
	case profile.FieldDwellingType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDwellingType(v)
		return nil
	case profile.FieldWorksFromHome:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorksFromHome(v)
		return nil
	case profile.FieldHasHeatPump:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasHeatPump(v)
		return nil
	case profile.FieldHasDistrictHeating:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasDistrictHeating(v)
		return nil
	case profile.FieldHasSolarPanels:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasSolarPanels(v)
		return nil
	case profile.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case profile.FieldContractType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractType(v)
		return nil
	case profile.FieldMonthlyCostEur:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthlyCostEur(v)
		return nil
	case profile.FieldTier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case profile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case profile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfileMutation) AddedFields() []string {
	var fields []string
	if m.addmonthly_cost_eur != nil {
		fields = append(fields, profile.FieldMonthlyCostEur)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldMonthlyCostEur:
		return m.AddedMonthlyCostEur()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case profile.FieldMonthlyCostEur:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonthlyCostEur(v)
		return nil
	}
	return fmt.Errorf("unknown Profile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(profile.FieldProvider) {
		fields = append(fields, profile.FieldProvider)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfileMutation) ClearField(name string) error {
	switch name {
	case profile.FieldProvider:
		m.ClearProvider()
		return nil
	}
	return fmt.Errorf("unknown Profile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfileMutation) ResetField(name string) error {
	switch name {
	case profile.FieldHouseholdSize:
		m.ResetHouseholdSize()
		return nil
	case profile.FieldDwellingType:
		m.ResetDwellingType()
		return nil
	case profile.FieldWorksFromHome:
		m.ResetWorksFromHome()
		return nil
	case profile.FieldHasHeatPump:
		m.ResetHasHeatPump()
		return nil
	case profile.FieldHasDistrictHeating:
		m.ResetHasDistrictHeating()
		return nil
	case profile.FieldHasSolarPanels:
		m.ResetHasSolarPanels()
		return nil
	case profile.FieldProvider:
		m.ResetProvider()
		return nil
	case profile.FieldContractType:
		m.ResetContractType()
		return nil
	case profile.FieldMonthlyCostEur:
		m.ResetMonthlyCostEur()
		return nil
	case profile.FieldTier:
		m.ResetTier()
		return nil
	case profile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case profile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.estimates != nil {
		edges = append(edges, profile.EdgeEstimates)
	}
	if m.verified_usage != nil {
		edges = append(edges, profile.EdgeVerifiedUsage)
	}
	if m.price_checks != nil {
		edges = append(edges, profile.EdgePriceChecks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case profile.EdgeEstimates:
		ids := make([]ent.Value, 0, len(m.estimates))
		for id := range m.estimates {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeVerifiedUsage:
		if id := m.verified_usage; id != nil {
			return []ent.Value{*id}
		}
	case profile.EdgePriceChecks:
		ids := make([]ent.Value, 0, len(m.price_checks))
		for id := range m.price_checks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedestimates != nil {
		edges = append(edges, profile.EdgeEstimates)
	}
	if m.removedprice_checks != nil {
		edges = append(edges, profile.EdgePriceChecks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case profile.EdgeEstimates:
		ids := make([]ent.Value, 0, len(m.removedestimates))
		for id := range m.removedestimates {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgePriceChecks:
		ids := make([]ent.Value, 0, len(m.removedprice_checks))
		for id := range m.removedprice_checks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedestimates {
		edges = append(edges, profile.EdgeEstimates)
	}
	if m.clearedverified_usage {
		edges = append(edges, profile.EdgeVerifiedUsage)
	}
	if m.clearedprice_checks {
		edges = append(edges, profile.EdgePriceChecks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case profile.EdgeEstimates:
		return m.clearedestimates
	case profile.EdgeVerifiedUsage:
		return m.clearedverified_usage
	case profile.EdgePriceChecks:
		return m.clearedprice_checks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfileMutation) ClearEdge(name string) error {
	switch name {
	case profile.EdgeVerifiedUsage:
		m.ClearVerifiedUsage()
		return nil
	}
	return fmt.Errorf("unknown Profile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfileMutation) ResetEdge(name string) error {
	switch name {
	case profile.EdgeEstimates:
		m.ResetEstimates()
		return nil
	case profile.EdgeVerifiedUsage:
		m.ResetVerifiedUsage()
		return nil
	case profile.EdgePriceChecks:
		m.ResetPriceChecks()
		return nil
	}
	return fmt.Errorf("unknown Profile edge %s", name)
}

// UsageEstimateMutation represents an operation that mutates the UsageEstimate nodes in the graph.
type UsageEstimateMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	kwh_per_month     *int
	addkwh_per_month  *int
	rate_per_kwh      *float64
	addrate_per_kwh   *float64
	confidence        *string
	assumptions       *[]string
	appendassumptions []string
	reasoning         *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	profile           *uuid.UUID
	clearedprofile    bool
	done              bool
	oldValue          func(context.Context) (*UsageEstimate, error)
	predicates        []predicate.UsageEstimate
}

var _ ent.Mutation = (*UsageEstimateMutation)(nil)

// usageestimateOption allows management of the mutation configuration using functional options.
type usageestimateOption func(*UsageEstimateMutation)

// newUsageEstimateMutation creates new mutation for the UsageEstimate entity.
func newUsageEstimateMutation(c config, op Op, opts ...usageestimateOption) *UsageEstimateMutation {
	m := &UsageEstimateMutation{
		config:        c,
		op:            op,
		typ:           TypeUsageEstimate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUsageEstimateID sets the ID field of the mutation.
func withUsageEstimateID(id uuid.UUID) usageestimateOption {
	return func(m *UsageEstimateMutation) {
		var (
			err   error
			once  sync.Once
			value *UsageEstimate
		)
		m.oldValue = func(ctx context.Context) (*UsageEstimate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UsageEstimate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUsageEstimate sets the old UsageEstimate of the mutation.
func withUsageEstimate(node *UsageEstimate) usageestimateOption {
	return func(m *UsageEstimateMutation) {
		m.oldValue = func(context.Context) (*UsageEstimate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UsageEstimateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UsageEstimateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UsageEstimate entities.
func (m *UsageEstimateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UsageEstimateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UsageEstimateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UsageEstimate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *UsageEstimateMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *UsageEstimateMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the UsageEstimate entity.
// If the UsageEstimate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEstimateMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *UsageEstimateMutation) ResetProfileID() {
	m.profile = nil
}

// SetKwhPerMonth sets the "kwh_per_month" field.
func (m *UsageEstimateMutation) SetKwhPerMonth(i int) {
	m.kwh_per_month = &i
	m.addkwh_per_month = nil
}

// KwhPerMonth returns the value of the "kwh_per_month" field in the mutation.
func (m *UsageEstimateMutation) KwhPerMonth() (r int, exists bool) {
	v := m.kwh_per_month
	if v == nil {
		return
	}
	return *v, true
}

// OldKwhPerMonth returns the old "kwh_per_month" field's value of the UsageEstimate entity.
// If the UsageEstimate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEstimateMutation) OldKwhPerMonth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKwhPerMonth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKwhPerMonth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKwhPerMonth: %w", err)
	}
	return oldValue.KwhPerMonth, nil
}

// AddKwhPerMonth adds i to the "kwh_per_month" field.
func (m *UsageEstimateMutation) AddKwhPerMonth(i int) {
	if m.addkwh_per_month != nil {
		*m.addkwh_per_month += i
	} else {
		m.addkwh_per_month = &i
	}
}

// AddedKwhPerMonth returns the value that was added to the "kwh_per_month" field in this mutation.
func (m *UsageEstimateMutation) AddedKwhPerMonth() (r int, exists bool) {
	v := m.addkwh_per_month
	if v == nil {
		return
	}
	return *v, true
}

// ResetKwhPerMonth resets all changes to the "kwh_per_month" field.
func (m *UsageEstimateMutation) ResetKwhPerMonth() {
	m.kwh_per_month = nil
	m.addkwh_per_month = nil
}

// SetRatePerKwh sets the "rate_per_kwh" field.
func (m *UsageEstimateMutation) SetRatePerKwh(f float64) {
	m.rate_per_kwh = &f
	m.addrate_per_kwh = nil
}

// RatePerKwh returns the value of the "rate_per_kwh" field in the mutation.
func (m *UsageEstimateMutation) RatePerKwh() (r float64, exists bool) {
	v := m.rate_per_kwh
	if v == nil {
		return
	}
	return *v, true
}

// OldRatePerKwh returns the old "rate_per_kwh" field's value of the UsageEstimate entity.
// If the UsageEstimate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEstimateMutation) OldRatePerKwh(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRatePerKwh is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRatePerKwh requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRatePerKwh: %w", err)
	}
	return oldValue.RatePerKwh, nil
}

// AddRatePerKwh adds f to the "rate_per_kwh" field.
func (m *UsageEstimateMutation) AddRatePerKwh(f float64) {
	if m.addrate_per_kwh != nil {
		*m.addrate_per_kwh += f
	} else {
		m.addrate_per_kwh = &f
	}
}

// AddedRatePerKwh returns the value that was added to the "rate_per_kwh" field in this mutation.
func (m *UsageEstimateMutation) AddedRatePerKwh() (r float64, exists bool) {
	v := m.addrate_per_kwh
	if v == nil {
		return
	}
	return *v, true
}

// ResetRatePerKwh resets all changes to the "rate_per_kwh" field.
func (m *UsageEstimateMutation) ResetRatePerKwh() {
	m.rate_per_kwh = nil
	m.addrate_per_kwh = nil
}

// SetConfidence sets the "confidence" field.
func (m *UsageEstimateMutation) SetConfidence(s string) {
	m.confidence = &s
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *UsageEstimateMutation) Confidence() (r string, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the UsageEstimate entity.
// If the UsageEstimate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEstimateMutation) OldConfidence(ctx context.Context) (v string, err error) {
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

// ResetConfidence resets all changes to the "confidence" field.
func (m *UsageEstimateMutation) ResetConfidence() {
	m.confidence = nil
}

// SetAssumptions sets the "assumptions" field.
func (m *UsageEstimateMutation) SetAssumptions(s []string) {
	m.assumptions = &s
	m.appendassumptions = nil
}

// Assumptions returns the value of the "assumptions" field in the mutation.
func (m *UsageEstimateMutation) Assumptions() (r []string, exists bool) {
	v := m.assumptions
	if v == nil {
		return
	}
	return *v, true
}

// OldAssumptions returns the old "assumptions" field's value of the UsageEstimate entity.
// If the UsageEstimate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEstimateMutation) OldAssumptions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssumptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssumptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssumptions: %w", err)
	}
	return oldValue.Assumptions, nil
}

// AppendAssumptions adds s to the "assumptions" field.
func (m *UsageEstimateMutation) AppendAssumptions(s []string) {
	m.appendassumptions = append(m.appendassumptions, s...)
}

// AppendedAssumptions returns the list of values that were appended to the "assumptions" field in this mutation.
func (m *UsageEstimateMutation) AppendedAssumptions() ([]string, bool) {
	if len(m.appendassumptions) == 0 {
		return nil, false
	}
	return m.appendassumptions, true
}

// ClearAssumptions clears the value of the "assumptions" field.
func (m *UsageEstimateMutation) ClearAssumptions() {
	m.assumptions = nil
	m.appendassumptions = nil
	m.clearedFields[usageestimate.FieldAssumptions] = struct{}{}
}

// AssumptionsCleared returns if the "assumptions" field was cleared in this mutation.
func (m *UsageEstimateMutation) AssumptionsCleared() bool {
	_, ok := m.clearedFields[usageestimate.FieldAssumptions]
	return ok
}

// ResetAssumptions resets all changes to the "assumptions" field.
func (m *UsageEstimateMutation) ResetAssumptions() {
	m.assumptions = nil
	m.appendassumptions = nil
	delete(m.clearedFields, usageestimate.FieldAssumptions)
}

// SetReasoning sets the "reasoning" field.
func (m *UsageEstimateMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *UsageEstimateMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the UsageEstimate entity.
// If the UsageEstimate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEstimateMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *UsageEstimateMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[usageestimate.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *UsageEstimateMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[usageestimate.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *UsageEstimateMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, usageestimate.FieldReasoning)
}

// SetCreatedAt sets the "created_at" field.
func (m *UsageEstimateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UsageEstimateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UsageEstimate entity.
// If the UsageEstimate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsageEstimateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UsageEstimateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *UsageEstimateMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[usageestimate.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *UsageEstimateMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *UsageEstimateMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *UsageEstimateMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// Where appends a list predicates to the UsageEstimateMutation builder.
func (m *UsageEstimateMutation) Where(ps ...predicate.UsageEstimate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UsageEstimateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UsageEstimateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UsageEstimate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UsageEstimateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UsageEstimateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UsageEstimate).
func (m *UsageEstimateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UsageEstimateMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.profile != nil {
		fields = append(fields, usageestimate.FieldProfileID)
	}
	if m.kwh_per_month != nil {
		fields = append(fields, usageestimate.FieldKwhPerMonth)
	}
	if m.rate_per_kwh != nil {
		fields = append(fields, usageestimate.FieldRatePerKwh)
	}
	if m.confidence != nil {
		fields = append(fields, usageestimate.FieldConfidence)
	}
	if m.assumptions != nil {
		fields = append(fields, usageestimate.FieldAssumptions)
	}
	if m.reasoning != nil {
		fields = append(fields, usageestimate.FieldReasoning)
	}
	if m.created_at != nil {
		fields = append(fields, usageestimate.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UsageEstimateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usageestimate.FieldProfileID:
		return m.ProfileID()
	case usageestimate.FieldKwhPerMonth:
		return m.KwhPerMonth()
	case usageestimate.FieldRatePerKwh:
		return m.RatePerKwh()
	case usageestimate.FieldConfidence:
		return m.Confidence()
	case usageestimate.FieldAssumptions:
		return m.Assumptions()
	case usageestimate.FieldReasoning:
		return m.Reasoning()
	case usageestimate.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UsageEstimateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usageestimate.FieldProfileID:
		return m.OldProfileID(ctx)
	case usageestimate.FieldKwhPerMonth:
		return m.OldKwhPerMonth(ctx)
	case usageestimate.FieldRatePerKwh:
		return m.OldRatePerKwh(ctx)
	case usageestimate.FieldConfidence:
		return m.OldConfidence(ctx)
	case usageestimate.FieldAssumptions:
		return m.OldAssumptions(ctx)
	case usageestimate.FieldReasoning:
		return m.OldReasoning(ctx)
	case usageestimate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UsageEstimate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageEstimateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usageestimate.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case usageestimate.FieldKwhPerMonth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKwhPerMonth(v)
		return nil
	case usageestimate.FieldRatePerKwh:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRatePerKwh(v)
		return nil
	case usageestimate.FieldConfidence:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case usageestimate.FieldAssumptions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssumptions(v)
		return nil
	case usageestimate.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case usageestimate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UsageEstimate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UsageEstimateMutation) AddedFields() []string {
	var fields []string
	if m.addkwh_per_month != nil {
		fields = append(fields, usageestimate.FieldKwhPerMonth)
	}
	if m.addrate_per_kwh != nil {
		fields = append(fields, usageestimate.FieldRatePerKwh)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UsageEstimateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usageestimate.FieldKwhPerMonth:
		return m.AddedKwhPerMonth()
	case usageestimate.FieldRatePerKwh:
		return m.AddedRatePerKwh()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsageEstimateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usageestimate.FieldKwhPerMonth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddKwhPerMonth(v)
		return nil
	case usageestimate.FieldRatePerKwh:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRatePerKwh(v)
		return nil
	}
	return fmt.Errorf("unknown UsageEstimate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UsageEstimateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usageestimate.FieldAssumptions) {
		fields = append(fields, usageestimate.FieldAssumptions)
	}
	if m.FieldCleared(usageestimate.FieldReasoning) {
		fields = append(fields, usageestimate.FieldReasoning)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UsageEstimateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UsageEstimateMutation) ClearField(name string) error {
	switch name {
	case usageestimate.FieldAssumptions:
		m.ClearAssumptions()
		return nil
	case usageestimate.FieldReasoning:
		m.ClearReasoning()
		return nil
	}
	return fmt.Errorf("unknown UsageEstimate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UsageEstimateMutation) ResetField(name string) error {
	switch name {
	case usageestimate.FieldProfileID:
		m.ResetProfileID()
		return nil
	case usageestimate.FieldKwhPerMonth:
		m.ResetKwhPerMonth()
		return nil
	case usageestimate.FieldRatePerKwh:
		m.ResetRatePerKwh()
		return nil
	case usageestimate.FieldConfidence:
		m.ResetConfidence()
		return nil
	case usageestimate.FieldAssumptions:
		m.ResetAssumptions()
		return nil
	case usageestimate.FieldReasoning:
		m.ResetReasoning()
		return nil
	case usageestimate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UsageEstimate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UsageEstimateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.profile != nil {
		edges = append(edges, usageestimate.EdgeProfile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UsageEstimateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case usageestimate.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UsageEstimateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UsageEstimateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UsageEstimateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprofile {
		edges = append(edges, usageestimate.EdgeProfile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UsageEstimateMutation) EdgeCleared(name string) bool {
	switch name {
	case usageestimate.EdgeProfile:
		return m.clearedprofile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UsageEstimateMutation) ClearEdge(name string) error {
	switch name {
	case usageestimate.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown UsageEstimate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UsageEstimateMutation) ResetEdge(name string) error {
	switch name {
	case usageestimate.EdgeProfile:
		m.ResetProfile()
		return nil
	}
	return fmt.Errorf("unknown UsageEstimate edge %s", name)
}

// VerifiedUsageMutation represents an operation that mutates the VerifiedUsage nodes in the graph.
type VerifiedUsageMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	kwh_per_month    *float64
	addkwh_per_month *float64
	rate_per_kwh     *float64
	addrate_per_kwh  *float64
	provider         *string
	contract_type    *string
	confidence       *string
	warnings         *[]string
	appendwarnings   []string
	confirmed_at     *time.Time
	clearedFields    map[string]struct{}
	profile          *uuid.UUID
	clearedprofile   bool
	done             bool
	oldValue         func(context.Context) (*VerifiedUsage, error)
	predicates       []predicate.VerifiedUsage
}

var _ ent.Mutation = (*VerifiedUsageMutation)(nil)

// verifiedusageOption allows management of the mutation configuration using functional options.
type verifiedusageOption func(*VerifiedUsageMutation)

// newVerifiedUsageMutation creates new mutation for the VerifiedUsage entity.
func newVerifiedUsageMutation(c config, op Op, opts ...verifiedusageOption) *VerifiedUsageMutation {
	m := &VerifiedUsageMutation{
		config:        c,
		op:            op,
		typ:           TypeVerifiedUsage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerifiedUsageID sets the ID field of the mutation.
func withVerifiedUsageID(id uuid.UUID) verifiedusageOption {
	return func(m *VerifiedUsageMutation) {
		var (
			err   error
			once  sync.Once
			value *VerifiedUsage
		)
		m.oldValue = func(ctx context.Context) (*VerifiedUsage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VerifiedUsage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerifiedUsage sets the old VerifiedUsage of the mutation.
func withVerifiedUsage(node *VerifiedUsage) verifiedusageOption {
	return func(m *VerifiedUsageMutation) {
		m.oldValue = func(context.Context) (*VerifiedUsage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerifiedUsageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerifiedUsageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VerifiedUsage entities.
func (m *VerifiedUsageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerifiedUsageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerifiedUsageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VerifiedUsage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *VerifiedUsageMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *VerifiedUsageMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the VerifiedUsage entity.
// If the VerifiedUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifiedUsageMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *VerifiedUsageMutation) ResetProfileID() {
	m.profile = nil
}

// SetKwhPerMonth sets the "kwh_per_month" field.
func (m *VerifiedUsageMutation) SetKwhPerMonth(f float64) {
	m.kwh_per_month = &f
	m.addkwh_per_month = nil
}

// KwhPerMonth returns the value of the "kwh_per_month" field in the mutation.
func (m *VerifiedUsageMutation) KwhPerMonth() (r float64, exists bool) {
	v := m.kwh_per_month
	if v == nil {
		return
	}
	return *v, true
}

// OldKwhPerMonth returns the old "kwh_per_month" field's value of the VerifiedUsage entity.
// If the VerifiedUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifiedUsageMutation) OldKwhPerMonth(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKwhPerMonth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKwhPerMonth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKwhPerMonth: %w", err)
	}
	return oldValue.KwhPerMonth, nil
}

// AddKwhPerMonth adds f to the "kwh_per_month" field.
func (m *VerifiedUsageMutation) AddKwhPerMonth(f float64) {
	if m.addkwh_per_month != nil {
		*m.addkwh_per_month += f
	} else {
		m.addkwh_per_month = &f
	}
}

// AddedKwhPerMonth returns the value that was added to the "kwh_per_month" field in this mutation.
func (m *VerifiedUsageMutation) AddedKwhPerMonth() (r float64, exists bool) {
	v := m.addkwh_per_month
	if v == nil {
		return
	}
	return *v, true
}

// ResetKwhPerMonth resets all changes to the "kwh_per_month" field.
func (m *VerifiedUsageMutation) ResetKwhPerMonth() {
	m.kwh_per_month = nil
	m.addkwh_per_month = nil
}

// SetRatePerKwh sets the "rate_per_kwh" field.
func (m *VerifiedUsageMutation) SetRatePerKwh(f float64) {
	m.rate_per_kwh = &f
	m.addrate_per_kwh = nil
}

// RatePerKwh returns the value of the "rate_per_kwh" field in the mutation.
func (m *VerifiedUsageMutation) RatePerKwh() (r float64, exists bool) {
	v := m.rate_per_kwh
	if v == nil {
		return
	}
	return *v, true
}

// OldRatePerKwh returns the old "rate_per_kwh" field's value of the VerifiedUsage entity.
// If the VerifiedUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifiedUsageMutation) OldRatePerKwh(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRatePerKwh is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRatePerKwh requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRatePerKwh: %w", err)
	}
	return oldValue.RatePerKwh, nil
}

// AddRatePerKwh adds f to the "rate_per_kwh" field.
func (m *VerifiedUsageMutation) AddRatePerKwh(f float64) {
	if m.addrate_per_kwh != nil {
		*m.addrate_per_kwh += f
	} else {
		m.addrate_per_kwh = &f
	}
}

// AddedRatePerKwh returns the value that was added to the "rate_per_kwh" field in this mutation.
func (m *VerifiedUsageMutation) AddedRatePerKwh() (r float64, exists bool) {
	v := m.addrate_per_kwh
	if v == nil {
		return
	}
	return *v, true
}

// ResetRatePerKwh resets all changes to the "rate_per_kwh" field.
func (m *VerifiedUsageMutation) ResetRatePerKwh() {
	m.rate_per_kwh = nil
	m.addrate_per_kwh = nil
}

// SetProvider sets the "provider" field.
func (m *VerifiedUsageMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *VerifiedUsageMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the VerifiedUsage entity.
// If the VerifiedUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifiedUsageMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ClearProvider clears the value of the "provider" field.
func (m *VerifiedUsageMutation) ClearProvider() {
	m.provider = nil
	m.clearedFields[verifiedusage.FieldProvider] = struct{}{}
}

// ProviderCleared returns if the "provider" field was cleared in this mutation.
func (m *VerifiedUsageMutation) ProviderCleared() bool {
	_, ok := m.clearedFields[verifiedusage.FieldProvider]
	return ok
}

// ResetProvider resets all changes to the "provider" field.
func (m *VerifiedUsageMutation) ResetProvider() {
	m.provider = nil
	delete(m.clearedFields, verifiedusage.FieldProvider)
}

// SetContractType sets the "contract_type" field.
func (m *VerifiedUsageMutation) SetContractType(s string) {
	m.contract_type = &s
}

// ContractType returns the value of the "contract_type" field in the mutation.
func (m *VerifiedUsageMutation) ContractType() (r string, exists bool) {
	v := m.contract_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContractType returns the old "contract_type" field's value of the VerifiedUsage entity.
// If the VerifiedUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifiedUsageMutation) OldContractType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractType: %w", err)
	}
	return oldValue.ContractType, nil
}

// ResetContractType resets all changes to the "contract_type" field.
func (m *VerifiedUsageMutation) ResetContractType() {
	m.contract_type = nil
}

// SetConfidence sets the "confidence" field.
func (m *VerifiedUsageMutation) SetConfidence(s string) {
	m.confidence = &s
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *VerifiedUsageMutation) Confidence() (r string, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the VerifiedUsage entity.
// If the VerifiedUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifiedUsageMutation) OldConfidence(ctx context.Context) (v string, err error) {
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

// ResetConfidence resets all changes to the "confidence" field.
func (m *VerifiedUsageMutation) ResetConfidence() {
	m.confidence = nil
}

// SetWarnings sets the "warnings" field.
func (m *VerifiedUsageMutation) SetWarnings(s []string) {
	m.warnings = &s
	m.appendwarnings = nil
}

// Warnings returns the value of the "warnings" field in the mutation.
func (m *VerifiedUsageMutation) Warnings() (r []string, exists bool) {
	v := m.warnings
	if v == nil {
		return
	}
	return *v, true
}

// OldWarnings returns the old "warnings" field's value of the VerifiedUsage entity.
// If the VerifiedUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifiedUsageMutation) OldWarnings(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarnings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarnings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarnings: %w", err)
	}
	return oldValue.Warnings, nil
}

// AppendWarnings adds s to the "warnings" field.
func (m *VerifiedUsageMutation) AppendWarnings(s []string) {
	m.appendwarnings = append(m.appendwarnings, s...)
}

// AppendedWarnings returns the list of values that were appended to the "warnings" field in this mutation.
func (m *VerifiedUsageMutation) AppendedWarnings() ([]string, bool) {
	if len(m.appendwarnings) == 0 {
		return nil, false
	}
	return m.appendwarnings, true
}

// ClearWarnings clears the value of the "warnings" field.
func (m *VerifiedUsageMutation) ClearWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	m.clearedFields[verifiedusage.FieldWarnings] = struct{}{}
}

// WarningsCleared returns if the "warnings" field was cleared in this mutation.
func (m *VerifiedUsageMutation) WarningsCleared() bool {
	_, ok := m.clearedFields[verifiedusage.FieldWarnings]
	return ok
}

// ResetWarnings resets all changes to the "warnings" field.
func (m *VerifiedUsageMutation) ResetWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	delete(m.clearedFields, verifiedusage.FieldWarnings)
}

// SetConfirmedAt sets the "confirmed_at" field.
func (m *VerifiedUsageMutation) SetConfirmedAt(t time.Time) {
	m.confirmed_at = &t
}

// ConfirmedAt returns the value of the "confirmed_at" field in the mutation.
func (m *VerifiedUsageMutation) ConfirmedAt() (r time.Time, exists bool) {
	v := m.confirmed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldConfirmedAt returns the old "confirmed_at" field's value of the VerifiedUsage entity.
// If the VerifiedUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerifiedUsageMutation) OldConfirmedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfirmedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfirmedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfirmedAt: %w", err)
	}
	return oldValue.ConfirmedAt, nil
}

// ResetConfirmedAt resets all changes to the "confirmed_at" field.
func (m *VerifiedUsageMutation) ResetConfirmedAt() {
	m.confirmed_at = nil
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *VerifiedUsageMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[verifiedusage.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *VerifiedUsageMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *VerifiedUsageMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *VerifiedUsageMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// Where appends a list predicates to the VerifiedUsageMutation builder.
func (m *VerifiedUsageMutation) Where(ps ...predicate.VerifiedUsage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerifiedUsageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerifiedUsageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VerifiedUsage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerifiedUsageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerifiedUsageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VerifiedUsage).
func (m *VerifiedUsageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerifiedUsageMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.profile != nil {
		fields = append(fields, verifiedusage.FieldProfileID)
	}
	if m.kwh_per_month != nil {
		fields = append(fields, verifiedusage.FieldKwhPerMonth)
	}
	if m.rate_per_kwh != nil {
		fields = append(fields, verifiedusage.FieldRatePerKwh)
	}
	if m.provider != nil {
		fields = append(fields, verifiedusage.FieldProvider)
	}
	if m.contract_type != nil {
		fields = append(fields, verifiedusage.FieldContractType)
	}
	if m.confidence != nil {
		fields = append(fields, verifiedusage.FieldConfidence)
	}
	if m.warnings != nil {
		fields = append(fields, verifiedusage.FieldWarnings)
	}
	if m.confirmed_at != nil {
		fields = append(fields, verifiedusage.FieldConfirmedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerifiedUsageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verifiedusage.FieldProfileID:
		return m.ProfileID()
	case verifiedusage.FieldKwhPerMonth:
		return m.KwhPerMonth()
	case verifiedusage.FieldRatePerKwh:
		return m.RatePerKwh()
	case verifiedusage.FieldProvider:
		return m.Provider()
	case verifiedusage.FieldContractType:
		return m.ContractType()
	case verifiedusage.FieldConfidence:
		return m.Confidence()
	case verifiedusage.FieldWarnings:
		return m.Warnings()
	case verifiedusage.FieldConfirmedAt:
		return m.ConfirmedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerifiedUsageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verifiedusage.FieldProfileID:
		return m.OldProfileID(ctx)
	case verifiedusage.FieldKwhPerMonth:
		return m.OldKwhPerMonth(ctx)
	case verifiedusage.FieldRatePerKwh:
		return m.OldRatePerKwh(ctx)
	case verifiedusage.FieldProvider:
		return m.OldProvider(ctx)
	case verifiedusage.FieldContractType:
		return m.OldContractType(ctx)
	case verifiedusage.FieldConfidence:
		return m.OldConfidence(ctx)
	case verifiedusage.FieldWarnings:
		return m.OldWarnings(ctx)
	case verifiedusage.FieldConfirmedAt:
		return m.OldConfirmedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VerifiedUsage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerifiedUsageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verifiedusage.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case verifiedusage.FieldKwhPerMonth:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKwhPerMonth(v)
		return nil
	case verifiedusage.FieldRatePerKwh:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRatePerKwh(v)
		return nil
	case verifiedusage.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case verifiedusage.FieldContractType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractType(v)
		return nil
	case verifiedusage.FieldConfidence:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case verifiedusage.FieldWarnings:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarnings(v)
		return nil
	case verifiedusage.FieldConfirmedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfirmedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VerifiedUsage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerifiedUsageMutation) AddedFields() []string {
	var fields []string
	if m.addkwh_per_month != nil {
		fields = append(fields, verifiedusage.FieldKwhPerMonth)
	}
	if m.addrate_per_kwh != nil {
		fields = append(fields, verifiedusage.FieldRatePerKwh)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerifiedUsageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case verifiedusage.FieldKwhPerMonth:
		return m.AddedKwhPerMonth()
	case verifiedusage.FieldRatePerKwh:
		return m.AddedRatePerKwh()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerifiedUsageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case verifiedusage.FieldKwhPerMonth:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddKwhPerMonth(v)
		return nil
	case verifiedusage.FieldRatePerKwh:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRatePerKwh(v)
		return nil
	}
	return fmt.Errorf("unknown VerifiedUsage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerifiedUsageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verifiedusage.FieldProvider) {
		fields = append(fields, verifiedusage.FieldProvider)
	}
	if m.FieldCleared(verifiedusage.FieldWarnings) {
		fields = append(fields, verifiedusage.FieldWarnings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerifiedUsageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerifiedUsageMutation) ClearField(name string) error {
	switch name {
	case verifiedusage.FieldProvider:
		m.ClearProvider()
		return nil
	case verifiedusage.FieldWarnings:
		m.ClearWarnings()
		return nil
	}
	return fmt.Errorf("unknown VerifiedUsage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerifiedUsageMutation) ResetField(name string) error {
	switch name {
	case verifiedusage.FieldProfileID:
		m.ResetProfileID()
		return nil
	case verifiedusage.FieldKwhPerMonth:
		m.ResetKwhPerMonth()
		return nil
	case verifiedusage.FieldRatePerKwh:
		m.ResetRatePerKwh()
		return nil
	case verifiedusage.FieldProvider:
		m.ResetProvider()
		return nil
	case verifiedusage.FieldContractType:
		m.ResetContractType()
		return nil
	case verifiedusage.FieldConfidence:
		m.ResetConfidence()
		return nil
	case verifiedusage.FieldWarnings:
		m.ResetWarnings()
		return nil
	case verifiedusage.FieldConfirmedAt:
		m.ResetConfirmedAt()
		return nil
	}
	return fmt.Errorf("unknown VerifiedUsage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerifiedUsageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.profile != nil {
		edges = append(edges, verifiedusage.EdgeProfile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerifiedUsageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case verifiedusage.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerifiedUsageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerifiedUsageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerifiedUsageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprofile {
		edges = append(edges, verifiedusage.EdgeProfile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerifiedUsageMutation) EdgeCleared(name string) bool {
	switch name {
	case verifiedusage.EdgeProfile:
		return m.clearedprofile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerifiedUsageMutation) ClearEdge(name string) error {
	switch name {
	case verifiedusage.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown VerifiedUsage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerifiedUsageMutation) ResetEdge(name string) error {
	switch name {
	case verifiedusage.EdgeProfile:
		m.ResetProfile()
		return nil
	}
	return fmt.Errorf("unknown VerifiedUsage edge %s", name)
}
