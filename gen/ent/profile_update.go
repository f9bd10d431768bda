// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tbruins/stroomadvies/gen/ent/predicate"
	"github.com/tbruins/stroomadvies/gen/ent/pricecheck"
	"github.com/tbruins/stroomadvies/gen/ent/profile"
	"github.com/tbruins/stroomadvies/gen/ent/usageestimate"
	"github.com/tbruins/stroomadvies/gen/ent/verifiedusage"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHouseholdSize sets the "household_size" field.
func (_u *ProfileUpdate) SetHouseholdSize(v string) *ProfileUpdate {
	_u.mutation.SetHouseholdSize(v)
	return _u
}

// SetNillableHouseholdSize sets the "household_size" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableHouseholdSize(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetHouseholdSize(*v)
	}
	return _u
}

// SetDwellingType sets the "dwelling_type" field.
func (_u *ProfileUpdate) SetDwellingType(v string) *ProfileUpdate {
	_u.mutation.SetDwellingType(v)
	return _u
}

// SetNillableDwellingType sets the "dwelling_type" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableDwellingType(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetDwellingType(*v)
	}
	return _u
}

// SetWorksFromHome sets the "works_from_home" field.
func (_u *ProfileUpdate) SetWorksFromHome(v bool) *ProfileUpdate {
	_u.mutation.SetWorksFromHome(v)
	return _u
}

// SetNillableWorksFromHome sets the "works_from_home" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableWorksFromHome(v *bool) *ProfileUpdate {
	if v != nil {
		_u.SetWorksFromHome(*v)
	}
	return _u
}

// SetHasHeatPump sets the "has_heat_pump" field.
func (_u *ProfileUpdate) SetHasHeatPump(v bool) *ProfileUpdate {
	_u.mutation.SetHasHeatPump(v)
	return _u
}

// SetNillableHasHeatPump sets the "has_heat_pump" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableHasHeatPump(v *bool) *ProfileUpdate {
	if v != nil {
		_u.SetHasHeatPump(*v)
	}
	return _u
}

// SetHasDistrictHeating sets the "has_district_heating" field.
func (_u *ProfileUpdate) SetHasDistrictHeating(v bool) *ProfileUpdate {
	_u.mutation.SetHasDistrictHeating(v)
	return _u
}

// SetNillableHasDistrictHeating sets the "has_district_heating" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableHasDistrictHeating(v *bool) *ProfileUpdate {
	if v != nil {
		_u.SetHasDistrictHeating(*v)
	}
	return _u
}

// SetHasSolarPanels sets the "has_solar_panels" field.
func (_u *ProfileUpdate) SetHasSolarPanels(v bool) *ProfileUpdate {
	_u.mutation.SetHasSolarPanels(v)
	return _u
}

// SetNillableHasSolarPanels sets the "has_solar_panels" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableHasSolarPanels(v *bool) *ProfileUpdate {
	if v != nil {
		_u.SetHasSolarPanels(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ProfileUpdate) SetProvider(v string) *ProfileUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableProvider(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *ProfileUpdate) ClearProvider() *ProfileUpdate {
	_u.mutation.ClearProvider()
	return _u
}

// SetContractType sets the "contract_type" field.
func (_u *ProfileUpdate) SetContractType(v string) *ProfileUpdate {
	_u.mutation.SetContractType(v)
	return _u
}

// SetNillableContractType sets the "contract_type" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableContractType(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetContractType(*v)
	}
	return _u
}

// SetMonthlyCostEur sets the "monthly_cost_eur" field.
func (_u *ProfileUpdate) SetMonthlyCostEur(v float64) *ProfileUpdate {
	_u.mutation.ResetMonthlyCostEur()
	_u.mutation.SetMonthlyCostEur(v)
	return _u
}

// SetNillableMonthlyCostEur sets the "monthly_cost_eur" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableMonthlyCostEur(v *float64) *ProfileUpdate {
	if v != nil {
		_u.SetMonthlyCostEur(*v)
	}
	return _u
}

// AddMonthlyCostEur adds value to the "monthly_cost_eur" field.
func (_u *ProfileUpdate) AddMonthlyCostEur(v float64) *ProfileUpdate {
	_u.mutation.AddMonthlyCostEur(v)
	return _u
}

// SetTier sets the "tier" field.
func (_u *ProfileUpdate) SetTier(v string) *ProfileUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableTier(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProfileUpdate) SetCreatedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableCreatedAt(v *time.Time) *ProfileUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdate) SetUpdatedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEstimateIDs adds the "estimates" edge to the UsageEstimate entity by IDs.
func (_u *ProfileUpdate) AddEstimateIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.AddEstimateIDs(ids...)
	return _u
}

// AddEstimates adds the "estimates" edges to the UsageEstimate entity.
func (_u *ProfileUpdate) AddEstimates(v ...*UsageEstimate) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEstimateIDs(ids...)
}

// SetVerifiedUsageID sets the "verified_usage" edge to the VerifiedUsage entity by ID.
func (_u *ProfileUpdate) SetVerifiedUsageID(id uuid.UUID) *ProfileUpdate {
	_u.mutation.SetVerifiedUsageID(id)
	return _u
}

// SetNillableVerifiedUsageID sets the "verified_usage" edge to the VerifiedUsage entity by ID if the given value is not nil.
func (_u *ProfileUpdate) SetNillableVerifiedUsageID(id *uuid.UUID) *ProfileUpdate {
	if id != nil {
		_u = _u.SetVerifiedUsageID(*id)
	}
	return _u
}

// SetVerifiedUsage sets the "verified_usage" edge to the VerifiedUsage entity.
func (_u *ProfileUpdate) SetVerifiedUsage(v *VerifiedUsage) *ProfileUpdate {
	return _u.SetVerifiedUsageID(v.ID)
}

// AddPriceCheckIDs adds the "price_checks" edge to the PriceCheck entity by IDs.
func (_u *ProfileUpdate) AddPriceCheckIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.AddPriceCheckIDs(ids...)
	return _u
}

// AddPriceChecks adds the "price_checks" edges to the PriceCheck entity.
func (_u *ProfileUpdate) AddPriceChecks(v ...*PriceCheck) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPriceCheckIDs(ids...)
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// ClearEstimates clears all "estimates" edges to the UsageEstimate entity.
func (_u *ProfileUpdate) ClearEstimates() *ProfileUpdate {
	_u.mutation.ClearEstimates()
	return _u
}

// RemoveEstimateIDs removes the "estimates" edge to UsageEstimate entities by IDs.
func (_u *ProfileUpdate) RemoveEstimateIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.RemoveEstimateIDs(ids...)
	return _u
}

// RemoveEstimates removes "estimates" edges to UsageEstimate entities.
func (_u *ProfileUpdate) RemoveEstimates(v ...*UsageEstimate) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEstimateIDs(ids...)
}

// ClearVerifiedUsage clears the "verified_usage" edge to the VerifiedUsage entity.
func (_u *ProfileUpdate) ClearVerifiedUsage() *ProfileUpdate {
	_u.mutation.ClearVerifiedUsage()
	return _u
}

// ClearPriceChecks clears all "price_checks" edges to the PriceCheck entity.
func (_u *ProfileUpdate) ClearPriceChecks() *ProfileUpdate {
	_u.mutation.ClearPriceChecks()
	return _u
}

// RemovePriceCheckIDs removes the "price_checks" edge to PriceCheck entities by IDs.
func (_u *ProfileUpdate) RemovePriceCheckIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.RemovePriceCheckIDs(ids...)
	return _u
}

// RemovePriceChecks removes "price_checks" edges to PriceCheck entities.
func (_u *ProfileUpdate) RemovePriceChecks(v ...*PriceCheck) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePriceCheckIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdate) check() error {
	if v, ok := _u.mutation.HouseholdSize(); ok {
		if err := profile.HouseholdSizeValidator(v); err != nil {
			return &ValidationError{Name: "household_size", err: fmt.Errorf(`ent: validator failed for field "Profile.household_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DwellingType(); ok {
		if err := profile.DwellingTypeValidator(v); err != nil {
			return &ValidationError{Name: "dwelling_type", err: fmt.Errorf(`ent: validator failed for field "Profile.dwelling_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.HouseholdSize(); ok {
		_spec.SetField(profile.FieldHouseholdSize, field.TypeString, value)
	}
	if value, ok := _u.mutation.DwellingType(); ok {
		_spec.SetField(profile.FieldDwellingType, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorksFromHome(); ok {
		_spec.SetField(profile.FieldWorksFromHome, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasHeatPump(); ok {
		_spec.SetField(profile.FieldHasHeatPump, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasDistrictHeating(); ok {
		_spec.SetField(profile.FieldHasDistrictHeating, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasSolarPanels(); ok {
		_spec.SetField(profile.FieldHasSolarPanels, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(profile.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(profile.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.ContractType(); ok {
		_spec.SetField(profile.FieldContractType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MonthlyCostEur(); ok {
		_spec.SetField(profile.FieldMonthlyCostEur, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlyCostEur(); ok {
		_spec.AddField(profile.FieldMonthlyCostEur, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(profile.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(profile.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EstimatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.EstimatesTable,
			Columns: []string{profile.EstimatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usageestimate.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEstimatesIDs(); len(nodes) > 0 && !_u.mutation.EstimatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.EstimatesTable,
			Columns: []string{profile.EstimatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usageestimate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EstimatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.EstimatesTable,
			Columns: []string{profile.EstimatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usageestimate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VerifiedUsageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   profile.VerifiedUsageTable,
			Columns: []string{profile.VerifiedUsageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verifiedusage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerifiedUsageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   profile.VerifiedUsageTable,
			Columns: []string{profile.VerifiedUsageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verifiedusage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PriceChecksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.PriceChecksTable,
			Columns: []string{profile.PriceChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pricecheck.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPriceChecksIDs(); len(nodes) > 0 && !_u.mutation.PriceChecksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.PriceChecksTable,
			Columns: []string{profile.PriceChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pricecheck.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PriceChecksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.PriceChecksTable,
			Columns: []string{profile.PriceChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pricecheck.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetHouseholdSize sets the "household_size" field.
func (_u *ProfileUpdateOne) SetHouseholdSize(v string) *ProfileUpdateOne {
	_u.mutation.SetHouseholdSize(v)
	return _u
}

// SetNillableHouseholdSize sets the "household_size" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableHouseholdSize(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetHouseholdSize(*v)
	}
	return _u
}

// SetDwellingType sets the "dwelling_type" field.
func (_u *ProfileUpdateOne) SetDwellingType(v string) *ProfileUpdateOne {
	_u.mutation.SetDwellingType(v)
	return _u
}

// SetNillableDwellingType sets the "dwelling_type" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableDwellingType(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetDwellingType(*v)
	}
	return _u
}

// SetWorksFromHome sets the "works_from_home" field.
func (_u *ProfileUpdateOne) SetWorksFromHome(v bool) *ProfileUpdateOne {
	_u.mutation.SetWorksFromHome(v)
	return _u
}

// SetNillableWorksFromHome sets the "works_from_home" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableWorksFromHome(v *bool) *ProfileUpdateOne {
	if v != nil {
		_u.SetWorksFromHome(*v)
	}
	return _u
}

// SetHasHeatPump sets the "has_heat_pump" field.
func (_u *ProfileUpdateOne) SetHasHeatPump(v bool) *ProfileUpdateOne {
	_u.mutation.SetHasHeatPump(v)
	return _u
}

// SetNillableHasHeatPump sets the "has_heat_pump" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableHasHeatPump(v *bool) *ProfileUpdateOne {
	if v != nil {
		_u.SetHasHeatPump(*v)
	}
	return _u
}

// SetHasDistrictHeating sets the "has_district_heating" field.
func (_u *ProfileUpdateOne) SetHasDistrictHeating(v bool) *ProfileUpdateOne {
	_u.mutation.SetHasDistrictHeating(v)
	return _u
}

// SetNillableHasDistrictHeating sets the "has_district_heating" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableHasDistrictHeating(v *bool) *ProfileUpdateOne {
	if v != nil {
		_u.SetHasDistrictHeating(*v)
	}
	return _u
}

// SetHasSolarPanels sets the "has_solar_panels" field.
func (_u *ProfileUpdateOne) SetHasSolarPanels(v bool) *ProfileUpdateOne {
	_u.mutation.SetHasSolarPanels(v)
	return _u
}

// SetNillableHasSolarPanels sets the "has_solar_panels" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableHasSolarPanels(v *bool) *ProfileUpdateOne {
	if v != nil {
		_u.SetHasSolarPanels(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ProfileUpdateOne) SetProvider(v string) *ProfileUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableProvider(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *ProfileUpdateOne) ClearProvider() *ProfileUpdateOne {
	_u.mutation.ClearProvider()
	return _u
}

// SetContractType sets the "contract_type" field.
func (_u *ProfileUpdateOne) SetContractType(v string) *ProfileUpdateOne {
	_u.mutation.SetContractType(v)
	return _u
}

// SetNillableContractType sets the "contract_type" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableContractType(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetContractType(*v)
	}
	return _u
}

// SetMonthlyCostEur sets the "monthly_cost_eur" field.
func (_u *ProfileUpdateOne) SetMonthlyCostEur(v float64) *ProfileUpdateOne {
	_u.mutation.ResetMonthlyCostEur()
	_u.mutation.SetMonthlyCostEur(v)
	return _u
}

// SetNillableMonthlyCostEur sets the "monthly_cost_eur" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableMonthlyCostEur(v *float64) *ProfileUpdateOne {
	if v != nil {
		_u.SetMonthlyCostEur(*v)
	}
	return _u
}

// AddMonthlyCostEur adds value to the "monthly_cost_eur" field.
func (_u *ProfileUpdateOne) AddMonthlyCostEur(v float64) *ProfileUpdateOne {
	_u.mutation.AddMonthlyCostEur(v)
	return _u
}

// SetTier sets the "tier" field.
func (_u *ProfileUpdateOne) SetTier(v string) *ProfileUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableTier(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProfileUpdateOne) SetCreatedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableCreatedAt(v *time.Time) *ProfileUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdateOne) SetUpdatedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEstimateIDs adds the "estimates" edge to the UsageEstimate entity by IDs.
func (_u *ProfileUpdateOne) AddEstimateIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.AddEstimateIDs(ids...)
	return _u
}

// AddEstimates adds the "estimates" edges to the UsageEstimate entity.
func (_u *ProfileUpdateOne) AddEstimates(v ...*UsageEstimate) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEstimateIDs(ids...)
}

// SetVerifiedUsageID sets the "verified_usage" edge to the VerifiedUsage entity by ID.
func (_u *ProfileUpdateOne) SetVerifiedUsageID(id uuid.UUID) *ProfileUpdateOne {
	_u.mutation.SetVerifiedUsageID(id)
	return _u
}

// SetNillableVerifiedUsageID sets the "verified_usage" edge to the VerifiedUsage entity by ID if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableVerifiedUsageID(id *uuid.UUID) *ProfileUpdateOne {
	if id != nil {
		_u = _u.SetVerifiedUsageID(*id)
	}
	return _u
}

// SetVerifiedUsage sets the "verified_usage" edge to the VerifiedUsage entity.
func (_u *ProfileUpdateOne) SetVerifiedUsage(v *VerifiedUsage) *ProfileUpdateOne {
	return _u.SetVerifiedUsageID(v.ID)
}

// AddPriceCheckIDs adds the "price_checks" edge to the PriceCheck entity by IDs.
func (_u *ProfileUpdateOne) AddPriceCheckIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.AddPriceCheckIDs(ids...)
	return _u
}

// AddPriceChecks adds the "price_checks" edges to the PriceCheck entity.
func (_u *ProfileUpdateOne) AddPriceChecks(v ...*PriceCheck) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPriceCheckIDs(ids...)
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// ClearEstimates clears all "estimates" edges to the UsageEstimate entity.
func (_u *ProfileUpdateOne) ClearEstimates() *ProfileUpdateOne {
	_u.mutation.ClearEstimates()
	return _u
}

// RemoveEstimateIDs removes the "estimates" edge to UsageEstimate entities by IDs.
func (_u *ProfileUpdateOne) RemoveEstimateIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.RemoveEstimateIDs(ids...)
	return _u
}

// RemoveEstimates removes "estimates" edges to UsageEstimate entities.
func (_u *ProfileUpdateOne) RemoveEstimates(v ...*UsageEstimate) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEstimateIDs(ids...)
}

// ClearVerifiedUsage clears the "verified_usage" edge to the VerifiedUsage entity.
func (_u *ProfileUpdateOne) ClearVerifiedUsage() *ProfileUpdateOne {
	_u.mutation.ClearVerifiedUsage()
	return _u
}

// ClearPriceChecks clears all "price_checks" edges to the PriceCheck entity.
func (_u *ProfileUpdateOne) ClearPriceChecks() *ProfileUpdateOne {
	_u.mutation.ClearPriceChecks()
	return _u
}

// RemovePriceCheckIDs removes the "price_checks" edge to PriceCheck entities by IDs.
func (_u *ProfileUpdateOne) RemovePriceCheckIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.RemovePriceCheckIDs(ids...)
	return _u
}

// RemovePriceChecks removes "price_checks" edges to PriceCheck entities.
func (_u *ProfileUpdateOne) RemovePriceChecks(v ...*PriceCheck) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePriceCheckIDs(ids...)
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdateOne) check() error {
	if v, ok := _u.mutation.HouseholdSize(); ok {
		if err := profile.HouseholdSizeValidator(v); err != nil {
			return &ValidationError{Name: "household_size", err: fmt.Errorf(`ent: validator failed for field "Profile.household_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DwellingType(); ok {
		if err := profile.DwellingTypeValidator(v); err != nil {
			return &ValidationError{Name: "dwelling_type", err: fmt.Errorf(`ent: validator failed for field "Profile.dwelling_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
	if value, ok := _u.mutation.HouseholdSize(); ok {
		_spec.SetField(profile.FieldHouseholdSize, field.TypeString, value)
	}
	if value, ok := _u.mutation.DwellingType(); ok {
		_spec.SetField(profile.FieldDwellingType, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorksFromHome(); ok {
		_spec.SetField(profile.FieldWorksFromHome, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasHeatPump(); ok {
		_spec.SetField(profile.FieldHasHeatPump, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasDistrictHeating(); ok {
		_spec.SetField(profile.FieldHasDistrictHeating, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasSolarPanels(); ok {
		_spec.SetField(profile.FieldHasSolarPanels, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(profile.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(profile.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.ContractType(); ok {
		_spec.SetField(profile.FieldContractType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MonthlyCostEur(); ok {
		_spec.SetField(profile.FieldMonthlyCostEur, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlyCostEur(); ok {
		_spec.AddField(profile.FieldMonthlyCostEur, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(profile.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(profile.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EstimatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.EstimatesTable,
			Columns: []string{profile.EstimatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usageestimate.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEstimatesIDs(); len(nodes) > 0 && !_u.mutation.EstimatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.EstimatesTable,
			Columns: []string{profile.EstimatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usageestimate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EstimatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.EstimatesTable,
			Columns: []string{profile.EstimatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usageestimate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VerifiedUsageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   profile.VerifiedUsageTable,
			Columns: []string{profile.VerifiedUsageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verifiedusage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerifiedUsageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   profile.VerifiedUsageTable,
			Columns: []string{profile.VerifiedUsageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verifiedusage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PriceChecksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.PriceChecksTable,
			Columns: []string{profile.PriceChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pricecheck.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPriceChecksIDs(); len(nodes) > 0 && !_u.mutation.PriceChecksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.PriceChecksTable,
			Columns: []string{profile.PriceChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pricecheck.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PriceChecksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.PriceChecksTable,
			Columns: []string{profile.PriceChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pricecheck.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
