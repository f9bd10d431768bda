// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tbruins/stroomadvies/gen/ent/predicate"
	"github.com/tbruins/stroomadvies/gen/ent/pricecheck"
	"github.com/tbruins/stroomadvies/gen/ent/profile"
)

// PriceCheckUpdate is the builder for updating PriceCheck entities.
type PriceCheckUpdate struct {
	config
	hooks    []Hook
	mutation *PriceCheckMutation
}

// Where appends a list predicates to the PriceCheckUpdate builder.
func (_u *PriceCheckUpdate) Where(ps ...predicate.PriceCheck) *PriceCheckUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *PriceCheckUpdate) SetProfileID(v uuid.UUID) *PriceCheckUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *PriceCheckUpdate) SetNillableProfileID(v *uuid.UUID) *PriceCheckUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *PriceCheckUpdate) SetSource(v string) *PriceCheckUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *PriceCheckUpdate) SetNillableSource(v *string) *PriceCheckUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetUsedKwhPerMonth sets the "used_kwh_per_month" field.
func (_u *PriceCheckUpdate) SetUsedKwhPerMonth(v float64) *PriceCheckUpdate {
	_u.mutation.ResetUsedKwhPerMonth()
	_u.mutation.SetUsedKwhPerMonth(v)
	return _u
}

// SetNillableUsedKwhPerMonth sets the "used_kwh_per_month" field if the given value is not nil.
func (_u *PriceCheckUpdate) SetNillableUsedKwhPerMonth(v *float64) *PriceCheckUpdate {
	if v != nil {
		_u.SetUsedKwhPerMonth(*v)
	}
	return _u
}

// AddUsedKwhPerMonth adds value to the "used_kwh_per_month" field.
func (_u *PriceCheckUpdate) AddUsedKwhPerMonth(v float64) *PriceCheckUpdate {
	_u.mutation.AddUsedKwhPerMonth(v)
	return _u
}

// SetUsedRatePerKwh sets the "used_rate_per_kwh" field.
func (_u *PriceCheckUpdate) SetUsedRatePerKwh(v float64) *PriceCheckUpdate {
	_u.mutation.ResetUsedRatePerKwh()
	_u.mutation.SetUsedRatePerKwh(v)
	return _u
}

// SetNillableUsedRatePerKwh sets the "used_rate_per_kwh" field if the given value is not nil.
func (_u *PriceCheckUpdate) SetNillableUsedRatePerKwh(v *float64) *PriceCheckUpdate {
	if v != nil {
		_u.SetUsedRatePerKwh(*v)
	}
	return _u
}

// AddUsedRatePerKwh adds value to the "used_rate_per_kwh" field.
func (_u *PriceCheckUpdate) AddUsedRatePerKwh(v float64) *PriceCheckUpdate {
	_u.mutation.AddUsedRatePerKwh(v)
	return _u
}

// SetSnapshotSource sets the "snapshot_source" field.
func (_u *PriceCheckUpdate) SetSnapshotSource(v string) *PriceCheckUpdate {
	_u.mutation.SetSnapshotSource(v)
	return _u
}

// SetNillableSnapshotSource sets the "snapshot_source" field if the given value is not nil.
func (_u *PriceCheckUpdate) SetNillableSnapshotSource(v *string) *PriceCheckUpdate {
	if v != nil {
		_u.SetSnapshotSource(*v)
	}
	return _u
}

// SetTop2 sets the "top2" field.
func (_u *PriceCheckUpdate) SetTop2(v json.RawMessage) *PriceCheckUpdate {
	_u.mutation.SetTop2(v)
	return _u
}

// AppendTop2 appends value to the "top2" field.
func (_u *PriceCheckUpdate) AppendTop2(v json.RawMessage) *PriceCheckUpdate {
	_u.mutation.AppendTop2(v)
	return _u
}

// ClearTop2 clears the value of the "top2" field.
func (_u *PriceCheckUpdate) ClearTop2() *PriceCheckUpdate {
	_u.mutation.ClearTop2()
	return _u
}

// SetCheapest sets the "cheapest" field.
func (_u *PriceCheckUpdate) SetCheapest(v json.RawMessage) *PriceCheckUpdate {
	_u.mutation.SetCheapest(v)
	return _u
}

// AppendCheapest appends value to the "cheapest" field.
func (_u *PriceCheckUpdate) AppendCheapest(v json.RawMessage) *PriceCheckUpdate {
	_u.mutation.AppendCheapest(v)
	return _u
}

// ClearCheapest clears the value of the "cheapest" field.
func (_u *PriceCheckUpdate) ClearCheapest() *PriceCheckUpdate {
	_u.mutation.ClearCheapest()
	return _u
}

// SetRecommendation sets the "recommendation" field.
func (_u *PriceCheckUpdate) SetRecommendation(v string) *PriceCheckUpdate {
	_u.mutation.SetRecommendation(v)
	return _u
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_u *PriceCheckUpdate) SetNillableRecommendation(v *string) *PriceCheckUpdate {
	if v != nil {
		_u.SetRecommendation(*v)
	}
	return _u
}

// SetMonthlySavingsEur sets the "monthly_savings_eur" field.
func (_u *PriceCheckUpdate) SetMonthlySavingsEur(v float64) *PriceCheckUpdate {
	_u.mutation.ResetMonthlySavingsEur()
	_u.mutation.SetMonthlySavingsEur(v)
	return _u
}

// SetNillableMonthlySavingsEur sets the "monthly_savings_eur" field if the given value is not nil.
func (_u *PriceCheckUpdate) SetNillableMonthlySavingsEur(v *float64) *PriceCheckUpdate {
	if v != nil {
		_u.SetMonthlySavingsEur(*v)
	}
	return _u
}

// AddMonthlySavingsEur adds value to the "monthly_savings_eur" field.
func (_u *PriceCheckUpdate) AddMonthlySavingsEur(v float64) *PriceCheckUpdate {
	_u.mutation.AddMonthlySavingsEur(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *PriceCheckUpdate) SetReasoning(v string) *PriceCheckUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *PriceCheckUpdate) SetNillableReasoning(v *string) *PriceCheckUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *PriceCheckUpdate) ClearReasoning() *PriceCheckUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *PriceCheckUpdate) SetProfile(v *Profile) *PriceCheckUpdate {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the PriceCheckMutation object of the builder.
func (_u *PriceCheckUpdate) Mutation() *PriceCheckMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *PriceCheckUpdate) ClearProfile() *PriceCheckUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PriceCheckUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PriceCheckUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PriceCheckUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PriceCheckUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PriceCheckUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := pricecheck.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "PriceCheck.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SnapshotSource(); ok {
		if err := pricecheck.SnapshotSourceValidator(v); err != nil {
			return &ValidationError{Name: "snapshot_source", err: fmt.Errorf(`ent: validator failed for field "PriceCheck.snapshot_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Recommendation(); ok {
		if err := pricecheck.RecommendationValidator(v); err != nil {
			return &ValidationError{Name: "recommendation", err: fmt.Errorf(`ent: validator failed for field "PriceCheck.recommendation": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PriceCheck.profile"`)
	}
	return nil
}

func (_u *PriceCheckUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pricecheck.Table, pricecheck.Columns, sqlgraph.NewFieldSpec(pricecheck.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(pricecheck.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.UsedKwhPerMonth(); ok {
		_spec.SetField(pricecheck.FieldUsedKwhPerMonth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUsedKwhPerMonth(); ok {
		_spec.AddField(pricecheck.FieldUsedKwhPerMonth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UsedRatePerKwh(); ok {
		_spec.SetField(pricecheck.FieldUsedRatePerKwh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUsedRatePerKwh(); ok {
		_spec.AddField(pricecheck.FieldUsedRatePerKwh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SnapshotSource(); ok {
		_spec.SetField(pricecheck.FieldSnapshotSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Top2(); ok {
		_spec.SetField(pricecheck.FieldTop2, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTop2(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pricecheck.FieldTop2, value)
		})
	}
	if _u.mutation.Top2Cleared() {
		_spec.ClearField(pricecheck.FieldTop2, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cheapest(); ok {
		_spec.SetField(pricecheck.FieldCheapest, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCheapest(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pricecheck.FieldCheapest, value)
		})
	}
	if _u.mutation.CheapestCleared() {
		_spec.ClearField(pricecheck.FieldCheapest, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recommendation(); ok {
		_spec.SetField(pricecheck.FieldRecommendation, field.TypeString, value)
	}
	if value, ok := _u.mutation.MonthlySavingsEur(); ok {
		_spec.SetField(pricecheck.FieldMonthlySavingsEur, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlySavingsEur(); ok {
		_spec.AddField(pricecheck.FieldMonthlySavingsEur, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(pricecheck.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(pricecheck.FieldReasoning, field.TypeString)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pricecheck.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PriceCheckUpdateOne is the builder for updating a single PriceCheck entity.
type PriceCheckUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PriceCheckMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *PriceCheckUpdateOne) SetProfileID(v uuid.UUID) *PriceCheckUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *PriceCheckUpdateOne) SetNillableProfileID(v *uuid.UUID) *PriceCheckUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *PriceCheckUpdateOne) SetSource(v string) *PriceCheckUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *PriceCheckUpdateOne) SetNillableSource(v *string) *PriceCheckUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetUsedKwhPerMonth sets the "used_kwh_per_month" field.
func (_u *PriceCheckUpdateOne) SetUsedKwhPerMonth(v float64) *PriceCheckUpdateOne {
	_u.mutation.ResetUsedKwhPerMonth()
	_u.mutation.SetUsedKwhPerMonth(v)
	return _u
}

// SetNillableUsedKwhPerMonth sets the "used_kwh_per_month" field if the given value is not nil.
func (_u *PriceCheckUpdateOne) SetNillableUsedKwhPerMonth(v *float64) *PriceCheckUpdateOne {
	if v != nil {
		_u.SetUsedKwhPerMonth(*v)
	}
	return _u
}

// AddUsedKwhPerMonth adds value to the "used_kwh_per_month" field.
func (_u *PriceCheckUpdateOne) AddUsedKwhPerMonth(v float64) *PriceCheckUpdateOne {
	_u.mutation.AddUsedKwhPerMonth(v)
	return _u
}

// SetUsedRatePerKwh sets the "used_rate_per_kwh" field.
func (_u *PriceCheckUpdateOne) SetUsedRatePerKwh(v float64) *PriceCheckUpdateOne {
	_u.mutation.ResetUsedRatePerKwh()
	_u.mutation.SetUsedRatePerKwh(v)
	return _u
}

// SetNillableUsedRatePerKwh sets the "used_rate_per_kwh" field if the given value is not nil.
func (_u *PriceCheckUpdateOne) SetNillableUsedRatePerKwh(v *float64) *PriceCheckUpdateOne {
	if v != nil {
		_u.SetUsedRatePerKwh(*v)
	}
	return _u
}

// AddUsedRatePerKwh adds value to the "used_rate_per_kwh" field.
func (_u *PriceCheckUpdateOne) AddUsedRatePerKwh(v float64) *PriceCheckUpdateOne {
	_u.mutation.AddUsedRatePerKwh(v)
	return _u
}

// SetSnapshotSource sets the "snapshot_source" field.
func (_u *PriceCheckUpdateOne) SetSnapshotSource(v string) *PriceCheckUpdateOne {
	_u.mutation.SetSnapshotSource(v)
	return _u
}

// SetNillableSnapshotSource sets the "snapshot_source" field if the given value is not nil.
func (_u *PriceCheckUpdateOne) SetNillableSnapshotSource(v *string) *PriceCheckUpdateOne {
	if v != nil {
		_u.SetSnapshotSource(*v)
	}
	return _u
}

// SetTop2 sets the "top2" field.
func (_u *PriceCheckUpdateOne) SetTop2(v json.RawMessage) *PriceCheckUpdateOne {
	_u.mutation.SetTop2(v)
	return _u
}

// AppendTop2 appends value to the "top2" field.
func (_u *PriceCheckUpdateOne) AppendTop2(v json.RawMessage) *PriceCheckUpdateOne {
	_u.mutation.AppendTop2(v)
	return _u
}

// ClearTop2 clears the value of the "top2" field.
func (_u *PriceCheckUpdateOne) ClearTop2() *PriceCheckUpdateOne {
	_u.mutation.ClearTop2()
	return _u
}

// SetCheapest sets the "cheapest" field.
func (_u *PriceCheckUpdateOne) SetCheapest(v json.RawMessage) *PriceCheckUpdateOne {
	_u.mutation.SetCheapest(v)
	return _u
}

// AppendCheapest appends value to the "cheapest" field.
func (_u *PriceCheckUpdateOne) AppendCheapest(v json.RawMessage) *PriceCheckUpdateOne {
	_u.mutation.AppendCheapest(v)
	return _u
}

// ClearCheapest clears the value of the "cheapest" field.
func (_u *PriceCheckUpdateOne) ClearCheapest() *PriceCheckUpdateOne {
	_u.mutation.ClearCheapest()
	return _u
}

// SetRecommendation sets the "recommendation" field.
func (_u *PriceCheckUpdateOne) SetRecommendation(v string) *PriceCheckUpdateOne {
	_u.mutation.SetRecommendation(v)
	return _u
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_u *PriceCheckUpdateOne) SetNillableRecommendation(v *string) *PriceCheckUpdateOne {
	if v != nil {
		_u.SetRecommendation(*v)
	}
	return _u
}

// SetMonthlySavingsEur sets the "monthly_savings_eur" field.
func (_u *PriceCheckUpdateOne) SetMonthlySavingsEur(v float64) *PriceCheckUpdateOne {
	_u.mutation.ResetMonthlySavingsEur()
	_u.mutation.SetMonthlySavingsEur(v)
	return _u
}

// SetNillableMonthlySavingsEur sets the "monthly_savings_eur" field if the given value is not nil.
func (_u *PriceCheckUpdateOne) SetNillableMonthlySavingsEur(v *float64) *PriceCheckUpdateOne {
	if v != nil {
		_u.SetMonthlySavingsEur(*v)
	}
	return _u
}

// AddMonthlySavingsEur adds value to the "monthly_savings_eur" field.
func (_u *PriceCheckUpdateOne) AddMonthlySavingsEur(v float64) *PriceCheckUpdateOne {
	_u.mutation.AddMonthlySavingsEur(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *PriceCheckUpdateOne) SetReasoning(v string) *PriceCheckUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *PriceCheckUpdateOne) SetNillableReasoning(v *string) *PriceCheckUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *PriceCheckUpdateOne) ClearReasoning() *PriceCheckUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *PriceCheckUpdateOne) SetProfile(v *Profile) *PriceCheckUpdateOne {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the PriceCheckMutation object of the builder.
func (_u *PriceCheckUpdateOne) Mutation() *PriceCheckMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *PriceCheckUpdateOne) ClearProfile() *PriceCheckUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// Where appends a list predicates to the PriceCheckUpdate builder.
func (_u *PriceCheckUpdateOne) Where(ps ...predicate.PriceCheck) *PriceCheckUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PriceCheckUpdateOne) Select(field string, fields ...string) *PriceCheckUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PriceCheck entity.
func (_u *PriceCheckUpdateOne) Save(ctx context.Context) (*PriceCheck, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PriceCheckUpdateOne) SaveX(ctx context.Context) *PriceCheck {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PriceCheckUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PriceCheckUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PriceCheckUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := pricecheck.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "PriceCheck.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SnapshotSource(); ok {
		if err := pricecheck.SnapshotSourceValidator(v); err != nil {
			return &ValidationError{Name: "snapshot_source", err: fmt.Errorf(`ent: validator failed for field "PriceCheck.snapshot_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Recommendation(); ok {
		if err := pricecheck.RecommendationValidator(v); err != nil {
			return &ValidationError{Name: "recommendation", err: fmt.Errorf(`ent: validator failed for field "PriceCheck.recommendation": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PriceCheck.profile"`)
	}
	return nil
}

func (_u *PriceCheckUpdateOne) sqlSave(ctx context.Context) (_node *PriceCheck, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pricecheck.Table, pricecheck.Columns, sqlgraph.NewFieldSpec(pricecheck.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PriceCheck.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pricecheck.FieldID)
		for _, f := range fields {
			if !pricecheck.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pricecheck.FieldID {
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
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(pricecheck.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.UsedKwhPerMonth(); ok {
		_spec.SetField(pricecheck.FieldUsedKwhPerMonth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUsedKwhPerMonth(); ok {
		_spec.AddField(pricecheck.FieldUsedKwhPerMonth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UsedRatePerKwh(); ok {
		_spec.SetField(pricecheck.FieldUsedRatePerKwh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUsedRatePerKwh(); ok {
		_spec.AddField(pricecheck.FieldUsedRatePerKwh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SnapshotSource(); ok {
		_spec.SetField(pricecheck.FieldSnapshotSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Top2(); ok {
		_spec.SetField(pricecheck.FieldTop2, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTop2(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pricecheck.FieldTop2, value)
		})
	}
	if _u.mutation.Top2Cleared() {
		_spec.ClearField(pricecheck.FieldTop2, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cheapest(); ok {
		_spec.SetField(pricecheck.FieldCheapest, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCheapest(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pricecheck.FieldCheapest, value)
		})
	}
	if _u.mutation.CheapestCleared() {
		_spec.ClearField(pricecheck.FieldCheapest, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recommendation(); ok {
		_spec.SetField(pricecheck.FieldRecommendation, field.TypeString, value)
	}
	if value, ok := _u.mutation.MonthlySavingsEur(); ok {
		_spec.SetField(pricecheck.FieldMonthlySavingsEur, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlySavingsEur(); ok {
		_spec.AddField(pricecheck.FieldMonthlySavingsEur, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(pricecheck.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(pricecheck.FieldReasoning, field.TypeString)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PriceCheck{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pricecheck.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
