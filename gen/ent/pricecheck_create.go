// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tbruins/stroomadvies/gen/ent/pricecheck"
	"github.com/tbruins/stroomadvies/gen/ent/profile"
)

// PriceCheckCreate is the builder for creating a PriceCheck entity.
type PriceCheckCreate struct {
	config
	mutation *PriceCheckMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *PriceCheckCreate) SetProfileID(v uuid.UUID) *PriceCheckCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetCheckedAt sets the "checked_at" field.
func (_c *PriceCheckCreate) SetCheckedAt(v time.Time) *PriceCheckCreate {
	_c.mutation.SetCheckedAt(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *PriceCheckCreate) SetSource(v string) *PriceCheckCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetUsedKwhPerMonth sets the "used_kwh_per_month" field.
func (_c *PriceCheckCreate) SetUsedKwhPerMonth(v float64) *PriceCheckCreate {
	_c.mutation.SetUsedKwhPerMonth(v)
	return _c
}

// SetUsedRatePerKwh sets the "used_rate_per_kwh" field.
func (_c *PriceCheckCreate) SetUsedRatePerKwh(v float64) *PriceCheckCreate {
	_c.mutation.SetUsedRatePerKwh(v)
	return _c
}

// SetSnapshotSource sets the "snapshot_source" field.
func (_c *PriceCheckCreate) SetSnapshotSource(v string) *PriceCheckCreate {
	_c.mutation.SetSnapshotSource(v)
	return _c
}

// SetTop2 sets the "top2" field.
func (_c *PriceCheckCreate) SetTop2(v json.RawMessage) *PriceCheckCreate {
	_c.mutation.SetTop2(v)
	return _c
}

// SetCheapest sets the "cheapest" field.
func (_c *PriceCheckCreate) SetCheapest(v json.RawMessage) *PriceCheckCreate {
	_c.mutation.SetCheapest(v)
	return _c
}

// SetRecommendation sets the "recommendation" field.
func (_c *PriceCheckCreate) SetRecommendation(v string) *PriceCheckCreate {
	_c.mutation.SetRecommendation(v)
	return _c
}

// SetMonthlySavingsEur sets the "monthly_savings_eur" field.
func (_c *PriceCheckCreate) SetMonthlySavingsEur(v float64) *PriceCheckCreate {
	_c.mutation.SetMonthlySavingsEur(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *PriceCheckCreate) SetReasoning(v string) *PriceCheckCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *PriceCheckCreate) SetNillableReasoning(v *string) *PriceCheckCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PriceCheckCreate) SetID(v uuid.UUID) *PriceCheckCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PriceCheckCreate) SetNillableID(v *uuid.UUID) *PriceCheckCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *PriceCheckCreate) SetProfile(v *Profile) *PriceCheckCreate {
	return _c.SetProfileID(v.ID)
}

// Mutation returns the PriceCheckMutation object of the builder.
func (_c *PriceCheckCreate) Mutation() *PriceCheckMutation {
	return _c.mutation
}

// Save creates the PriceCheck in the database.
func (_c *PriceCheckCreate) Save(ctx context.Context) (*PriceCheck, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PriceCheckCreate) SaveX(ctx context.Context) *PriceCheck {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PriceCheckCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PriceCheckCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PriceCheckCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := pricecheck.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PriceCheckCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "PriceCheck.profile_id"`)}
	}
	if _, ok := _c.mutation.CheckedAt(); !ok {
		return &ValidationError{Name: "checked_at", err: errors.New(`ent: missing required field "PriceCheck.checked_at"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "PriceCheck.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := pricecheck.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "PriceCheck.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UsedKwhPerMonth(); !ok {
		return &ValidationError{Name: "used_kwh_per_month", err: errors.New(`ent: missing required field "PriceCheck.used_kwh_per_month"`)}
	}
	if _, ok := _c.mutation.UsedRatePerKwh(); !ok {
		return &ValidationError{Name: "used_rate_per_kwh", err: errors.New(`ent: missing required field "PriceCheck.used_rate_per_kwh"`)}
	}
	if _, ok := _c.mutation.SnapshotSource(); !ok {
		return &ValidationError{Name: "snapshot_source", err: errors.New(`ent: missing required field "PriceCheck.snapshot_source"`)}
	}
	if v, ok := _c.mutation.SnapshotSource(); ok {
		if err := pricecheck.SnapshotSourceValidator(v); err != nil {
			return &ValidationError{Name: "snapshot_source", err: fmt.Errorf(`ent: validator failed for field "PriceCheck.snapshot_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Recommendation(); !ok {
		return &ValidationError{Name: "recommendation", err: errors.New(`ent: missing required field "PriceCheck.recommendation"`)}
	}
	if v, ok := _c.mutation.Recommendation(); ok {
		if err := pricecheck.RecommendationValidator(v); err != nil {
			return &ValidationError{Name: "recommendation", err: fmt.Errorf(`ent: validator failed for field "PriceCheck.recommendation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MonthlySavingsEur(); !ok {
		return &ValidationError{Name: "monthly_savings_eur", err: errors.New(`ent: missing required field "PriceCheck.monthly_savings_eur"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "PriceCheck.profile"`)}
	}
	return nil
}

func (_c *PriceCheckCreate) sqlSave(ctx context.Context) (*PriceCheck, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PriceCheckCreate) createSpec() (*PriceCheck, *sqlgraph.CreateSpec) {
	var (
		_node = &PriceCheck{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pricecheck.Table, sqlgraph.NewFieldSpec(pricecheck.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CheckedAt(); ok {
		_spec.SetField(pricecheck.FieldCheckedAt, field.TypeTime, value)
		_node.CheckedAt = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(pricecheck.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.UsedKwhPerMonth(); ok {
		_spec.SetField(pricecheck.FieldUsedKwhPerMonth, field.TypeFloat64, value)
		_node.UsedKwhPerMonth = value
	}
	if value, ok := _c.mutation.UsedRatePerKwh(); ok {
		_spec.SetField(pricecheck.FieldUsedRatePerKwh, field.TypeFloat64, value)
		_node.UsedRatePerKwh = value
	}
	if value, ok := _c.mutation.SnapshotSource(); ok {
		_spec.SetField(pricecheck.FieldSnapshotSource, field.TypeString, value)
		_node.SnapshotSource = value
	}
	if value, ok := _c.mutation.Top2(); ok {
		_spec.SetField(pricecheck.FieldTop2, field.TypeJSON, value)
		_node.Top2 = value
	}
	if value, ok := _c.mutation.Cheapest(); ok {
		_spec.SetField(pricecheck.FieldCheapest, field.TypeJSON, value)
		_node.Cheapest = value
	}
	if value, ok := _c.mutation.Recommendation(); ok {
		_spec.SetField(pricecheck.FieldRecommendation, field.TypeString, value)
		_node.Recommendation = value
	}
	if value, ok := _c.mutation.MonthlySavingsEur(); ok {
		_spec.SetField(pricecheck.FieldMonthlySavingsEur, field.TypeFloat64, value)
		_node.MonthlySavingsEur = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(pricecheck.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pricecheck.ProfileTable,
			Columns: []string{pricecheck.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PriceCheckCreateBulk is the builder for creating many PriceCheck entities in bulk.
type PriceCheckCreateBulk struct {
	config
	err      error
	builders []*PriceCheckCreate
}

// Save creates the PriceCheck entities in the database.
func (_c *PriceCheckCreateBulk) Save(ctx context.Context) ([]*PriceCheck, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PriceCheck, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PriceCheckMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PriceCheckCreateBulk) SaveX(ctx context.Context) []*PriceCheck {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PriceCheckCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PriceCheckCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
