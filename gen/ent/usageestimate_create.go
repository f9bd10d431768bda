// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tbruins/stroomadvies/gen/ent/profile"
	"github.com/tbruins/stroomadvies/gen/ent/usageestimate"
)

// UsageEstimateCreate is the builder for creating a UsageEstimate entity.
type UsageEstimateCreate struct {
	config
	mutation *UsageEstimateMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *UsageEstimateCreate) SetProfileID(v uuid.UUID) *UsageEstimateCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetKwhPerMonth sets the "kwh_per_month" field.
func (_c *UsageEstimateCreate) SetKwhPerMonth(v int) *UsageEstimateCreate {
	_c.mutation.SetKwhPerMonth(v)
	return _c
}

// SetRatePerKwh sets the "rate_per_kwh" field.
func (_c *UsageEstimateCreate) SetRatePerKwh(v float64) *UsageEstimateCreate {
	_c.mutation.SetRatePerKwh(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *UsageEstimateCreate) SetConfidence(v string) *UsageEstimateCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetAssumptions sets the "assumptions" field.
func (_c *UsageEstimateCreate) SetAssumptions(v []string) *UsageEstimateCreate {
	_c.mutation.SetAssumptions(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *UsageEstimateCreate) SetReasoning(v string) *UsageEstimateCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *UsageEstimateCreate) SetNillableReasoning(v *string) *UsageEstimateCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UsageEstimateCreate) SetCreatedAt(v time.Time) *UsageEstimateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UsageEstimateCreate) SetNillableCreatedAt(v *time.Time) *UsageEstimateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UsageEstimateCreate) SetID(v uuid.UUID) *UsageEstimateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UsageEstimateCreate) SetNillableID(v *uuid.UUID) *UsageEstimateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *UsageEstimateCreate) SetProfile(v *Profile) *UsageEstimateCreate {
	return _c.SetProfileID(v.ID)
}

// Mutation returns the UsageEstimateMutation object of the builder.
func (_c *UsageEstimateCreate) Mutation() *UsageEstimateMutation {
	return _c.mutation
}

// Save creates the UsageEstimate in the database.
func (_c *UsageEstimateCreate) Save(ctx context.Context) (*UsageEstimate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UsageEstimateCreate) SaveX(ctx context.Context) *UsageEstimate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageEstimateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageEstimateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UsageEstimateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := usageestimate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := usageestimate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UsageEstimateCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "UsageEstimate.profile_id"`)}
	}
	if _, ok := _c.mutation.KwhPerMonth(); !ok {
		return &ValidationError{Name: "kwh_per_month", err: errors.New(`ent: missing required field "UsageEstimate.kwh_per_month"`)}
	}
	if v, ok := _c.mutation.KwhPerMonth(); ok {
		if err := usageestimate.KwhPerMonthValidator(v); err != nil {
			return &ValidationError{Name: "kwh_per_month", err: fmt.Errorf(`ent: validator failed for field "UsageEstimate.kwh_per_month": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RatePerKwh(); !ok {
		return &ValidationError{Name: "rate_per_kwh", err: errors.New(`ent: missing required field "UsageEstimate.rate_per_kwh"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "UsageEstimate.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := usageestimate.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "UsageEstimate.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UsageEstimate.created_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "UsageEstimate.profile"`)}
	}
	return nil
}

func (_c *UsageEstimateCreate) sqlSave(ctx context.Context) (*UsageEstimate, error) {
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

func (_c *UsageEstimateCreate) createSpec() (*UsageEstimate, *sqlgraph.CreateSpec) {
	var (
		_node = &UsageEstimate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usageestimate.Table, sqlgraph.NewFieldSpec(usageestimate.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.KwhPerMonth(); ok {
		_spec.SetField(usageestimate.FieldKwhPerMonth, field.TypeInt, value)
		_node.KwhPerMonth = value
	}
	if value, ok := _c.mutation.RatePerKwh(); ok {
		_spec.SetField(usageestimate.FieldRatePerKwh, field.TypeFloat64, value)
		_node.RatePerKwh = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(usageestimate.FieldConfidence, field.TypeString, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Assumptions(); ok {
		_spec.SetField(usageestimate.FieldAssumptions, field.TypeJSON, value)
		_node.Assumptions = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(usageestimate.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(usageestimate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usageestimate.ProfileTable,
			Columns: []string{usageestimate.ProfileColumn},
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

// UsageEstimateCreateBulk is the builder for creating many UsageEstimate entities in bulk.
type UsageEstimateCreateBulk struct {
	config
	err      error
	builders []*UsageEstimateCreate
}

// Save creates the UsageEstimate entities in the database.
func (_c *UsageEstimateCreateBulk) Save(ctx context.Context) ([]*UsageEstimate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UsageEstimate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsageEstimateMutation)
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
func (_c *UsageEstimateCreateBulk) SaveX(ctx context.Context) []*UsageEstimate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageEstimateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageEstimateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
