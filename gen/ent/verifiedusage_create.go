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
	"github.com/tbruins/stroomadvies/gen/ent/verifiedusage"
)

// VerifiedUsageCreate is the builder for creating a VerifiedUsage entity.
type VerifiedUsageCreate struct {
	config
	mutation *VerifiedUsageMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *VerifiedUsageCreate) SetProfileID(v uuid.UUID) *VerifiedUsageCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetKwhPerMonth sets the "kwh_per_month" field.
func (_c *VerifiedUsageCreate) SetKwhPerMonth(v float64) *VerifiedUsageCreate {
	_c.mutation.SetKwhPerMonth(v)
	return _c
}

// SetRatePerKwh sets the "rate_per_kwh" field.
func (_c *VerifiedUsageCreate) SetRatePerKwh(v float64) *VerifiedUsageCreate {
	_c.mutation.SetRatePerKwh(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *VerifiedUsageCreate) SetProvider(v string) *VerifiedUsageCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *VerifiedUsageCreate) SetNillableProvider(v *string) *VerifiedUsageCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetContractType sets the "contract_type" field.
func (_c *VerifiedUsageCreate) SetContractType(v string) *VerifiedUsageCreate {
	_c.mutation.SetContractType(v)
	return _c
}

// SetNillableContractType sets the "contract_type" field if the given value is not nil.
func (_c *VerifiedUsageCreate) SetNillableContractType(v *string) *VerifiedUsageCreate {
	if v != nil {
		_c.SetContractType(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *VerifiedUsageCreate) SetConfidence(v string) *VerifiedUsageCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetWarnings sets the "warnings" field.
func (_c *VerifiedUsageCreate) SetWarnings(v []string) *VerifiedUsageCreate {
	_c.mutation.SetWarnings(v)
	return _c
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_c *VerifiedUsageCreate) SetConfirmedAt(v time.Time) *VerifiedUsageCreate {
	_c.mutation.SetConfirmedAt(v)
	return _c
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_c *VerifiedUsageCreate) SetNillableConfirmedAt(v *time.Time) *VerifiedUsageCreate {
	if v != nil {
		_c.SetConfirmedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VerifiedUsageCreate) SetID(v uuid.UUID) *VerifiedUsageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VerifiedUsageCreate) SetNillableID(v *uuid.UUID) *VerifiedUsageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *VerifiedUsageCreate) SetProfile(v *Profile) *VerifiedUsageCreate {
	return _c.SetProfileID(v.ID)
}

// Mutation returns the VerifiedUsageMutation object of the builder.
func (_c *VerifiedUsageCreate) Mutation() *VerifiedUsageMutation {
	return _c.mutation
}

// Save creates the VerifiedUsage in the database.
func (_c *VerifiedUsageCreate) Save(ctx context.Context) (*VerifiedUsage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerifiedUsageCreate) SaveX(ctx context.Context) *VerifiedUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerifiedUsageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerifiedUsageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerifiedUsageCreate) defaults() {
	if _, ok := _c.mutation.ContractType(); !ok {
		v := verifiedusage.DefaultContractType
		_c.mutation.SetContractType(v)
	}
	if _, ok := _c.mutation.ConfirmedAt(); !ok {
		v := verifiedusage.DefaultConfirmedAt()
		_c.mutation.SetConfirmedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := verifiedusage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerifiedUsageCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "VerifiedUsage.profile_id"`)}
	}
	if _, ok := _c.mutation.KwhPerMonth(); !ok {
		return &ValidationError{Name: "kwh_per_month", err: errors.New(`ent: missing required field "VerifiedUsage.kwh_per_month"`)}
	}
	if _, ok := _c.mutation.RatePerKwh(); !ok {
		return &ValidationError{Name: "rate_per_kwh", err: errors.New(`ent: missing required field "VerifiedUsage.rate_per_kwh"`)}
	}
	if _, ok := _c.mutation.ContractType(); !ok {
		return &ValidationError{Name: "contract_type", err: errors.New(`ent: missing required field "VerifiedUsage.contract_type"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "VerifiedUsage.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := verifiedusage.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "VerifiedUsage.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConfirmedAt(); !ok {
		return &ValidationError{Name: "confirmed_at", err: errors.New(`ent: missing required field "VerifiedUsage.confirmed_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "VerifiedUsage.profile"`)}
	}
	return nil
}

func (_c *VerifiedUsageCreate) sqlSave(ctx context.Context) (*VerifiedUsage, error) {
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

func (_c *VerifiedUsageCreate) createSpec() (*VerifiedUsage, *sqlgraph.CreateSpec) {
	var (
		_node = &VerifiedUsage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verifiedusage.Table, sqlgraph.NewFieldSpec(verifiedusage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.KwhPerMonth(); ok {
		_spec.SetField(verifiedusage.FieldKwhPerMonth, field.TypeFloat64, value)
		_node.KwhPerMonth = value
	}
	if value, ok := _c.mutation.RatePerKwh(); ok {
		_spec.SetField(verifiedusage.FieldRatePerKwh, field.TypeFloat64, value)
		_node.RatePerKwh = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(verifiedusage.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.ContractType(); ok {
		_spec.SetField(verifiedusage.FieldContractType, field.TypeString, value)
		_node.ContractType = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(verifiedusage.FieldConfidence, field.TypeString, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Warnings(); ok {
		_spec.SetField(verifiedusage.FieldWarnings, field.TypeJSON, value)
		_node.Warnings = value
	}
	if value, ok := _c.mutation.ConfirmedAt(); ok {
		_spec.SetField(verifiedusage.FieldConfirmedAt, field.TypeTime, value)
		_node.ConfirmedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   verifiedusage.ProfileTable,
			Columns: []string{verifiedusage.ProfileColumn},
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

// VerifiedUsageCreateBulk is the builder for creating many VerifiedUsage entities in bulk.
type VerifiedUsageCreateBulk struct {
	config
	err      error
	builders []*VerifiedUsageCreate
}

// Save creates the VerifiedUsage entities in the database.
func (_c *VerifiedUsageCreateBulk) Save(ctx context.Context) ([]*VerifiedUsage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VerifiedUsage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerifiedUsageMutation)
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
func (_c *VerifiedUsageCreateBulk) SaveX(ctx context.Context) []*VerifiedUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerifiedUsageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerifiedUsageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
