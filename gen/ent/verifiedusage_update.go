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
	"github.com/tbruins/stroomadvies/gen/ent/verifiedusage"
)

// VerifiedUsageUpdate is the builder for updating VerifiedUsage entities.
type VerifiedUsageUpdate struct {
	config
	hooks    []Hook
	mutation *VerifiedUsageMutation
}

// Where appends a list predicates to the VerifiedUsageUpdate builder.
func (_u *VerifiedUsageUpdate) Where(ps ...predicate.VerifiedUsage) *VerifiedUsageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *VerifiedUsageUpdate) SetProfileID(v uuid.UUID) *VerifiedUsageUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *VerifiedUsageUpdate) SetNillableProfileID(v *uuid.UUID) *VerifiedUsageUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetKwhPerMonth sets the "kwh_per_month" field.
func (_u *VerifiedUsageUpdate) SetKwhPerMonth(v float64) *VerifiedUsageUpdate {
	_u.mutation.ResetKwhPerMonth()
	_u.mutation.SetKwhPerMonth(v)
	return _u
}

// SetNillableKwhPerMonth sets the "kwh_per_month" field if the given value is not nil.
func (_u *VerifiedUsageUpdate) SetNillableKwhPerMonth(v *float64) *VerifiedUsageUpdate {
	if v != nil {
		_u.SetKwhPerMonth(*v)
	}
	return _u
}

// AddKwhPerMonth adds value to the "kwh_per_month" field.
func (_u *VerifiedUsageUpdate) AddKwhPerMonth(v float64) *VerifiedUsageUpdate {
	_u.mutation.AddKwhPerMonth(v)
	return _u
}

// SetRatePerKwh sets the "rate_per_kwh" field.
func (_u *VerifiedUsageUpdate) SetRatePerKwh(v float64) *VerifiedUsageUpdate {
	_u.mutation.ResetRatePerKwh()
	_u.mutation.SetRatePerKwh(v)
	return _u
}

// SetNillableRatePerKwh sets the "rate_per_kwh" field if the given value is not nil.
func (_u *VerifiedUsageUpdate) SetNillableRatePerKwh(v *float64) *VerifiedUsageUpdate {
	if v != nil {
		_u.SetRatePerKwh(*v)
	}
	return _u
}

// AddRatePerKwh adds value to the "rate_per_kwh" field.
func (_u *VerifiedUsageUpdate) AddRatePerKwh(v float64) *VerifiedUsageUpdate {
	_u.mutation.AddRatePerKwh(v)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *VerifiedUsageUpdate) SetProvider(v string) *VerifiedUsageUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *VerifiedUsageUpdate) SetNillableProvider(v *string) *VerifiedUsageUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *VerifiedUsageUpdate) ClearProvider() *VerifiedUsageUpdate {
	_u.mutation.ClearProvider()
	return _u
}

// SetContractType sets the "contract_type" field.
func (_u *VerifiedUsageUpdate) SetContractType(v string) *VerifiedUsageUpdate {
	_u.mutation.SetContractType(v)
	return _u
}

// SetNillableContractType sets the "contract_type" field if the given value is not nil.
func (_u *VerifiedUsageUpdate) SetNillableContractType(v *string) *VerifiedUsageUpdate {
	if v != nil {
		_u.SetContractType(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *VerifiedUsageUpdate) SetConfidence(v string) *VerifiedUsageUpdate {
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *VerifiedUsageUpdate) SetNillableConfidence(v *string) *VerifiedUsageUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *VerifiedUsageUpdate) SetWarnings(v []string) *VerifiedUsageUpdate {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *VerifiedUsageUpdate) AppendWarnings(v []string) *VerifiedUsageUpdate {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *VerifiedUsageUpdate) ClearWarnings() *VerifiedUsageUpdate {
	_u.mutation.ClearWarnings()
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *VerifiedUsageUpdate) SetProfile(v *Profile) *VerifiedUsageUpdate {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the VerifiedUsageMutation object of the builder.
func (_u *VerifiedUsageUpdate) Mutation() *VerifiedUsageMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *VerifiedUsageUpdate) ClearProfile() *VerifiedUsageUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerifiedUsageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerifiedUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerifiedUsageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerifiedUsageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerifiedUsageUpdate) check() error {
	if v, ok := _u.mutation.Confidence(); ok {
		if err := verifiedusage.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "VerifiedUsage.confidence": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerifiedUsage.profile"`)
	}
	return nil
}

func (_u *VerifiedUsageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verifiedusage.Table, verifiedusage.Columns, sqlgraph.NewFieldSpec(verifiedusage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.KwhPerMonth(); ok {
		_spec.SetField(verifiedusage.FieldKwhPerMonth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedKwhPerMonth(); ok {
		_spec.AddField(verifiedusage.FieldKwhPerMonth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RatePerKwh(); ok {
		_spec.SetField(verifiedusage.FieldRatePerKwh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRatePerKwh(); ok {
		_spec.AddField(verifiedusage.FieldRatePerKwh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(verifiedusage.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(verifiedusage.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.ContractType(); ok {
		_spec.SetField(verifiedusage.FieldContractType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(verifiedusage.FieldConfidence, field.TypeString, value)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(verifiedusage.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verifiedusage.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(verifiedusage.FieldWarnings, field.TypeJSON)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verifiedusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerifiedUsageUpdateOne is the builder for updating a single VerifiedUsage entity.
type VerifiedUsageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerifiedUsageMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *VerifiedUsageUpdateOne) SetProfileID(v uuid.UUID) *VerifiedUsageUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *VerifiedUsageUpdateOne) SetNillableProfileID(v *uuid.UUID) *VerifiedUsageUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetKwhPerMonth sets the "kwh_per_month" field.
func (_u *VerifiedUsageUpdateOne) SetKwhPerMonth(v float64) *VerifiedUsageUpdateOne {
	_u.mutation.ResetKwhPerMonth()
	_u.mutation.SetKwhPerMonth(v)
	return _u
}

// SetNillableKwhPerMonth sets the "kwh_per_month" field if the given value is not nil.
func (_u *VerifiedUsageUpdateOne) SetNillableKwhPerMonth(v *float64) *VerifiedUsageUpdateOne {
	if v != nil {
		_u.SetKwhPerMonth(*v)
	}
	return _u
}

// AddKwhPerMonth adds value to the "kwh_per_month" field.
func (_u *VerifiedUsageUpdateOne) AddKwhPerMonth(v float64) *VerifiedUsageUpdateOne {
	_u.mutation.AddKwhPerMonth(v)
	return _u
}

// SetRatePerKwh sets the "rate_per_kwh" field.
func (_u *VerifiedUsageUpdateOne) SetRatePerKwh(v float64) *VerifiedUsageUpdateOne {
	_u.mutation.ResetRatePerKwh()
	_u.mutation.SetRatePerKwh(v)
	return _u
}

// SetNillableRatePerKwh sets the "rate_per_kwh" field if the given value is not nil.
func (_u *VerifiedUsageUpdateOne) SetNillableRatePerKwh(v *float64) *VerifiedUsageUpdateOne {
	if v != nil {
		_u.SetRatePerKwh(*v)
	}
	return _u
}

// AddRatePerKwh adds value to the "rate_per_kwh" field.
func (_u *VerifiedUsageUpdateOne) AddRatePerKwh(v float64) *VerifiedUsageUpdateOne {
	_u.mutation.AddRatePerKwh(v)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *VerifiedUsageUpdateOne) SetProvider(v string) *VerifiedUsageUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *VerifiedUsageUpdateOne) SetNillableProvider(v *string) *VerifiedUsageUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *VerifiedUsageUpdateOne) ClearProvider() *VerifiedUsageUpdateOne {
	_u.mutation.ClearProvider()
	return _u
}

// SetContractType sets the "contract_type" field.
func (_u *VerifiedUsageUpdateOne) SetContractType(v string) *VerifiedUsageUpdateOne {
	_u.mutation.SetContractType(v)
	return _u
}

// SetNillableContractType sets the "contract_type" field if the given value is not nil.
func (_u *VerifiedUsageUpdateOne) SetNillableContractType(v *string) *VerifiedUsageUpdateOne {
	if v != nil {
		_u.SetContractType(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *VerifiedUsageUpdateOne) SetConfidence(v string) *VerifiedUsageUpdateOne {
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *VerifiedUsageUpdateOne) SetNillableConfidence(v *string) *VerifiedUsageUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *VerifiedUsageUpdateOne) SetWarnings(v []string) *VerifiedUsageUpdateOne {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *VerifiedUsageUpdateOne) AppendWarnings(v []string) *VerifiedUsageUpdateOne {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *VerifiedUsageUpdateOne) ClearWarnings() *VerifiedUsageUpdateOne {
	_u.mutation.ClearWarnings()
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *VerifiedUsageUpdateOne) SetProfile(v *Profile) *VerifiedUsageUpdateOne {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the VerifiedUsageMutation object of the builder.
func (_u *VerifiedUsageUpdateOne) Mutation() *VerifiedUsageMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *VerifiedUsageUpdateOne) ClearProfile() *VerifiedUsageUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// Where appends a list predicates to the VerifiedUsageUpdate builder.
func (_u *VerifiedUsageUpdateOne) Where(ps ...predicate.VerifiedUsage) *VerifiedUsageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerifiedUsageUpdateOne) Select(field string, fields ...string) *VerifiedUsageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VerifiedUsage entity.
func (_u *VerifiedUsageUpdateOne) Save(ctx context.Context) (*VerifiedUsage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerifiedUsageUpdateOne) SaveX(ctx context.Context) *VerifiedUsage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerifiedUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerifiedUsageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerifiedUsageUpdateOne) check() error {
	if v, ok := _u.mutation.Confidence(); ok {
		if err := verifiedusage.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "VerifiedUsage.confidence": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerifiedUsage.profile"`)
	}
	return nil
}

func (_u *VerifiedUsageUpdateOne) sqlSave(ctx context.Context) (_node *VerifiedUsage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verifiedusage.Table, verifiedusage.Columns, sqlgraph.NewFieldSpec(verifiedusage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerifiedUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verifiedusage.FieldID)
		for _, f := range fields {
			if !verifiedusage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verifiedusage.FieldID {
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
		_spec.SetField(verifiedusage.FieldKwhPerMonth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedKwhPerMonth(); ok {
		_spec.AddField(verifiedusage.FieldKwhPerMonth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RatePerKwh(); ok {
		_spec.SetField(verifiedusage.FieldRatePerKwh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRatePerKwh(); ok {
		_spec.AddField(verifiedusage.FieldRatePerKwh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(verifiedusage.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(verifiedusage.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.ContractType(); ok {
		_spec.SetField(verifiedusage.FieldContractType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(verifiedusage.FieldConfidence, field.TypeString, value)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(verifiedusage.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verifiedusage.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(verifiedusage.FieldWarnings, field.TypeJSON)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VerifiedUsage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verifiedusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
