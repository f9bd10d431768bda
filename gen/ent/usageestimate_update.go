// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tbruins/stroomadvies/gen/ent/predicate"
	"github.com/tbruins/stroomadvies/gen/ent/profile"
	"github.com/tbruins/stroomadvies/gen/ent/usageestimate"
)

// UsageEstimateUpdate is the builder for updating UsageEstimate entities.
type UsageEstimateUpdate struct {
	config
	hooks    []Hook
	mutation *UsageEstimateMutation
}

// Where appends a list predicates to the UsageEstimateUpdate builder.
func (_u *UsageEstimateUpdate) Where(ps ...predicate.UsageEstimate) *UsageEstimateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *UsageEstimateUpdate) SetProfileID(v uuid.UUID) *UsageEstimateUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *UsageEstimateUpdate) SetNillableProfileID(v *uuid.UUID) *UsageEstimateUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetKwhPerMonth sets the "kwh_per_month" field.
func (_u *UsageEstimateUpdate) SetKwhPerMonth(v int) *UsageEstimateUpdate {
	_u.mutation.ResetKwhPerMonth()
	_u.mutation.SetKwhPerMonth(v)
	return _u
}

// SetNillableKwhPerMonth sets the "kwh_per_month" field if the given value is not nil.
func (_u *UsageEstimateUpdate) SetNillableKwhPerMonth(v *int) *UsageEstimateUpdate {
	if v != nil {
		_u.SetKwhPerMonth(*v)
	}
	return _u
}

// AddKwhPerMonth adds value to the "kwh_per_month" field.
func (_u *UsageEstimateUpdate) AddKwhPerMonth(v int) *UsageEstimateUpdate {
	_u.mutation.AddKwhPerMonth(v)
	return _u
}

// SetRatePerKwh sets the "rate_per_kwh" field.
func (_u *UsageEstimateUpdate) SetRatePerKwh(v float64) *UsageEstimateUpdate {
	_u.mutation.ResetRatePerKwh()
	_u.mutation.SetRatePerKwh(v)
	return _u
}

// SetNillableRatePerKwh sets the "rate_per_kwh" field if the given value is not nil.
func (_u *UsageEstimateUpdate) SetNillableRatePerKwh(v *float64) *UsageEstimateUpdate {
	if v != nil {
		_u.SetRatePerKwh(*v)
	}
	return _u
}

// AddRatePerKwh adds value to the "rate_per_kwh" field.
func (_u *UsageEstimateUpdate) AddRatePerKwh(v float64) *UsageEstimateUpdate {
	_u.mutation.AddRatePerKwh(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *UsageEstimateUpdate) SetConfidence(v string) *UsageEstimateUpdate {
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *UsageEstimateUpdate) SetNillableConfidence(v *string) *UsageEstimateUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// SetAssumptions sets the "assumptions" field.
func (_u *UsageEstimateUpdate) SetAssumptions(v []string) *UsageEstimateUpdate {
	_u.mutation.SetAssumptions(v)
	return _u
}

// AppendAssumptions appends value to the "assumptions" field.
func (_u *UsageEstimateUpdate) AppendAssumptions(v []string) *UsageEstimateUpdate {
	_u.mutation.AppendAssumptions(v)
	return _u
}

// ClearAssumptions clears the value of the "assumptions" field.
func (_u *UsageEstimateUpdate) ClearAssumptions() *UsageEstimateUpdate {
	_u.mutation.ClearAssumptions()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *UsageEstimateUpdate) SetReasoning(v string) *UsageEstimateUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *UsageEstimateUpdate) SetNillableReasoning(v *string) *UsageEstimateUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *UsageEstimateUpdate) ClearReasoning() *UsageEstimateUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *UsageEstimateUpdate) SetProfile(v *Profile) *UsageEstimateUpdate {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the UsageEstimateMutation object of the builder.
func (_u *UsageEstimateUpdate) Mutation() *UsageEstimateMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *UsageEstimateUpdate) ClearProfile() *UsageEstimateUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsageEstimateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageEstimateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsageEstimateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageEstimateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageEstimateUpdate) check() error {
	if v, ok := _u.mutation.KwhPerMonth(); ok {
		if err := usageestimate.KwhPerMonthValidator(v); err != nil {
			return &ValidationError{Name: "kwh_per_month", err: fmt.Errorf(`ent: validator failed for field "UsageEstimate.kwh_per_month": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := usageestimate.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "UsageEstimate.confidence": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UsageEstimate.profile"`)
	}
	return nil
}

func (_u *UsageEstimateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usageestimate.Table, usageestimate.Columns, sqlgraph.NewFieldSpec(usageestimate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.KwhPerMonth(); ok {
		_spec.SetField(usageestimate.FieldKwhPerMonth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedKwhPerMonth(); ok {
		_spec.AddField(usageestimate.FieldKwhPerMonth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RatePerKwh(); ok {
		_spec.SetField(usageestimate.FieldRatePerKwh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRatePerKwh(); ok {
		_spec.AddField(usageestimate.FieldRatePerKwh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(usageestimate.FieldConfidence, field.TypeString, value)
	}
	if value, ok := _u.mutation.Assumptions(); ok {
		_spec.SetField(usageestimate.FieldAssumptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAssumptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, usageestimate.FieldAssumptions, value)
		})
	}
	if _u.mutation.AssumptionsCleared() {
		_spec.ClearField(usageestimate.FieldAssumptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(usageestimate.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(usageestimate.FieldReasoning, field.TypeString)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usageestimate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsageEstimateUpdateOne is the builder for updating a single UsageEstimate entity.
type UsageEstimateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsageEstimateMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *UsageEstimateUpdateOne) SetProfileID(v uuid.UUID) *UsageEstimateUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *UsageEstimateUpdateOne) SetNillableProfileID(v *uuid.UUID) *UsageEstimateUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetKwhPerMonth sets the "kwh_per_month" field.
func (_u *UsageEstimateUpdateOne) SetKwhPerMonth(v int) *UsageEstimateUpdateOne {
	_u.mutation.ResetKwhPerMonth()
	_u.mutation.SetKwhPerMonth(v)
	return _u
}

// SetNillableKwhPerMonth sets the "kwh_per_month" field if the given value is not nil.
func (_u *UsageEstimateUpdateOne) SetNillableKwhPerMonth(v *int) *UsageEstimateUpdateOne {
	if v != nil {
		_u.SetKwhPerMonth(*v)
	}
	return _u
}

// AddKwhPerMonth adds value to the "kwh_per_month" field.
func (_u *UsageEstimateUpdateOne) AddKwhPerMonth(v int) *UsageEstimateUpdateOne {
	_u.mutation.AddKwhPerMonth(v)
	return _u
}

// SetRatePerKwh sets the "rate_per_kwh" field.
func (_u *UsageEstimateUpdateOne) SetRatePerKwh(v float64) *UsageEstimateUpdateOne {
	_u.mutation.ResetRatePerKwh()
	_u.mutation.SetRatePerKwh(v)
	return _u
}

// SetNillableRatePerKwh sets the "rate_per_kwh" field if the given value is not nil.
func (_u *UsageEstimateUpdateOne) SetNillableRatePerKwh(v *float64) *UsageEstimateUpdateOne {
	if v != nil {
		_u.SetRatePerKwh(*v)
	}
	return _u
}

// AddRatePerKwh adds value to the "rate_per_kwh" field.
func (_u *UsageEstimateUpdateOne) AddRatePerKwh(v float64) *UsageEstimateUpdateOne {
	_u.mutation.AddRatePerKwh(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *UsageEstimateUpdateOne) SetConfidence(v string) *UsageEstimateUpdateOne {
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *UsageEstimateUpdateOne) SetNillableConfidence(v *string) *UsageEstimateUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// SetAssumptions sets the "assumptions" field.
func (_u *UsageEstimateUpdateOne) SetAssumptions(v []string) *UsageEstimateUpdateOne {
	_u.mutation.SetAssumptions(v)
	return _u
}

// AppendAssumptions appends value to the "assumptions" field.
func (_u *UsageEstimateUpdateOne) AppendAssumptions(v []string) *UsageEstimateUpdateOne {
	_u.mutation.AppendAssumptions(v)
	return _u
}

// ClearAssumptions clears the value of the "assumptions" field.
func (_u *UsageEstimateUpdateOne) ClearAssumptions() *UsageEstimateUpdateOne {
	_u.mutation.ClearAssumptions()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *UsageEstimateUpdateOne) SetReasoning(v string) *UsageEstimateUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *UsageEstimateUpdateOne) SetNillableReasoning(v *string) *UsageEstimateUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *UsageEstimateUpdateOne) ClearReasoning() *UsageEstimateUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *UsageEstimateUpdateOne) SetProfile(v *Profile) *UsageEstimateUpdateOne {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the UsageEstimateMutation object of the builder.
func (_u *UsageEstimateUpdateOne) Mutation() *UsageEstimateMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *UsageEstimateUpdateOne) ClearProfile() *UsageEstimateUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// Where appends a list predicates to the UsageEstimateUpdate builder.
func (_u *UsageEstimateUpdateOne) Where(ps ...predicate.UsageEstimate) *UsageEstimateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsageEstimateUpdateOne) Select(field string, fields ...string) *UsageEstimateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UsageEstimate entity.
func (_u *UsageEstimateUpdateOne) Save(ctx context.Context) (*UsageEstimate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageEstimateUpdateOne) SaveX(ctx context.Context) *UsageEstimate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsageEstimateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageEstimateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageEstimateUpdateOne) check() error {
	if v, ok := _u.mutation.KwhPerMonth(); ok {
		if err := usageestimate.KwhPerMonthValidator(v); err != nil {
			return &ValidationError{Name: "kwh_per_month", err: fmt.Errorf(`ent: validator failed for field "UsageEstimate.kwh_per_month": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := usageestimate.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "UsageEstimate.confidence": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UsageEstimate.profile"`)
	}
	return nil
}

func (_u *UsageEstimateUpdateOne) sqlSave(ctx context.Context) (_node *UsageEstimate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usageestimate.Table, usageestimate.Columns, sqlgraph.NewFieldSpec(usageestimate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageEstimate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usageestimate.FieldID)
		for _, f := range fields {
			if !usageestimate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usageestimate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.KwhPerMonth(); ok {
		_spec.SetField(usageestimate.FieldKwhPerMonth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedKwhPerMonth(); ok {
		_spec.AddField(usageestimate.FieldKwhPerMonth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RatePerKwh(); ok {
		_spec.SetField(usageestimate.FieldRatePerKwh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRatePerKwh(); ok {
		_spec.AddField(usageestimate.FieldRatePerKwh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(usageestimate.FieldConfidence, field.TypeString, value)
	}
	if value, ok := _u.mutation.Assumptions(); ok {
		_spec.SetField(usageestimate.FieldAssumptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAssumptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, usageestimate.FieldAssumptions, value)
		})
	}
	if _u.mutation.AssumptionsCleared() {
		_spec.ClearField(usageestimate.FieldAssumptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(usageestimate.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(usageestimate.FieldReasoning, field.TypeString)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UsageEstimate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usageestimate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
