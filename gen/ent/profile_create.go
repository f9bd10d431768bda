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
	"github.com/tbruins/stroomadvies/gen/ent/pricecheck"
	"github.com/tbruins/stroomadvies/gen/ent/profile"
	"github.com/tbruins/stroomadvies/gen/ent/usageestimate"
	"github.com/tbruins/stroomadvies/gen/ent/verifiedusage"
)

// ProfileCreate is the builder for creating a Profile entity.
type ProfileCreate struct {
	config
	mutation *ProfileMutation
	hooks    []Hook
}

// SetHouseholdSize sets the "household_size" field.
func (_c *ProfileCreate) SetHouseholdSize(v string) *ProfileCreate {
	_c.mutation.SetHouseholdSize(v)
	return _c
}

// SetDwellingType sets the "dwelling_type" field.
func (_c *ProfileCreate) SetDwellingType(v string) *ProfileCreate {
	_c.mutation.SetDwellingType(v)
	return _c
}

// SetWorksFromHome sets the "works_from_home" field.
func (_c *ProfileCreate) SetWorksFromHome(v bool) *ProfileCreate {
	_c.mutation.SetWorksFromHome(v)
	return _c
}

// SetNillableWorksFromHome sets the "works_from_home" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableWorksFromHome(v *bool) *ProfileCreate {
	if v != nil {
		_c.SetWorksFromHome(*v)
	}
	return _c
}

// SetHasHeatPump sets the "has_heat_pump" field.
func (_c *ProfileCreate) SetHasHeatPump(v bool) *ProfileCreate {
	_c.mutation.SetHasHeatPump(v)
	return _c
}

// SetNillableHasHeatPump sets the "has_heat_pump" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableHasHeatPump(v *bool) *ProfileCreate {
	if v != nil {
		_c.SetHasHeatPump(*v)
	}
	return _c
}

// SetHasDistrictHeating sets the "has_district_heating" field.
func (_c *ProfileCreate) SetHasDistrictHeating(v bool) *ProfileCreate {
	_c.mutation.SetHasDistrictHeating(v)
	return _c
}

// SetNillableHasDistrictHeating sets the "has_district_heating" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableHasDistrictHeating(v *bool) *ProfileCreate {
	if v != nil {
		_c.SetHasDistrictHeating(*v)
	}
	return _c
}

// SetHasSolarPanels sets the "has_solar_panels" field.
func (_c *ProfileCreate) SetHasSolarPanels(v bool) *ProfileCreate {
	_c.mutation.SetHasSolarPanels(v)
	return _c
}

// SetNillableHasSolarPanels sets the "has_solar_panels" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableHasSolarPanels(v *bool) *ProfileCreate {
	if v != nil {
		_c.SetHasSolarPanels(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *ProfileCreate) SetProvider(v string) *ProfileCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableProvider(v *string) *ProfileCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetContractType sets the "contract_type" field.
func (_c *ProfileCreate) SetContractType(v string) *ProfileCreate {
	_c.mutation.SetContractType(v)
	return _c
}

// SetNillableContractType sets the "contract_type" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableContractType(v *string) *ProfileCreate {
	if v != nil {
		_c.SetContractType(*v)
	}
	return _c
}

// SetMonthlyCostEur sets the "monthly_cost_eur" field.
func (_c *ProfileCreate) SetMonthlyCostEur(v float64) *ProfileCreate {
	_c.mutation.SetMonthlyCostEur(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *ProfileCreate) SetTier(v string) *ProfileCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableTier(v *string) *ProfileCreate {
	if v != nil {
		_c.SetTier(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProfileCreate) SetCreatedAt(v time.Time) *ProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableCreatedAt(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProfileCreate) SetUpdatedAt(v time.Time) *ProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableUpdatedAt(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProfileCreate) SetID(v uuid.UUID) *ProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableID(v *uuid.UUID) *ProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddEstimateIDs adds the "estimates" edge to the UsageEstimate entity by IDs.
func (_c *ProfileCreate) AddEstimateIDs(ids ...uuid.UUID) *ProfileCreate {
	_c.mutation.AddEstimateIDs(ids...)
	return _c
}

// AddEstimates adds the "estimates" edges to the UsageEstimate entity.
func (_c *ProfileCreate) AddEstimates(v ...*UsageEstimate) *ProfileCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEstimateIDs(ids...)
}

// SetVerifiedUsageID sets the "verified_usage" edge to the VerifiedUsage entity by ID.
func (_c *ProfileCreate) SetVerifiedUsageID(id uuid.UUID) *ProfileCreate {
	_c.mutation.SetVerifiedUsageID(id)
	return _c
}

// SetNillableVerifiedUsageID sets the "verified_usage" edge to the VerifiedUsage entity by ID if the given value is not nil.
func (_c *ProfileCreate) SetNillableVerifiedUsageID(id *uuid.UUID) *ProfileCreate {
	if id != nil {
		_c = _c.SetVerifiedUsageID(*id)
	}
	return _c
}

// SetVerifiedUsage sets the "verified_usage" edge to the VerifiedUsage entity.
func (_c *ProfileCreate) SetVerifiedUsage(v *VerifiedUsage) *ProfileCreate {
	return _c.SetVerifiedUsageID(v.ID)
}

// AddPriceCheckIDs adds the "price_checks" edge to the PriceCheck entity by IDs.
func (_c *ProfileCreate) AddPriceCheckIDs(ids ...uuid.UUID) *ProfileCreate {
	_c.mutation.AddPriceCheckIDs(ids...)
	return _c
}

// AddPriceChecks adds the "price_checks" edges to the PriceCheck entity.
func (_c *ProfileCreate) AddPriceChecks(v ...*PriceCheck) *ProfileCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPriceCheckIDs(ids...)
}

// Mutation returns the ProfileMutation object of the builder.
func (_c *ProfileCreate) Mutation() *ProfileMutation {
	return _c.mutation
}

// Save creates the Profile in the database.
func (_c *ProfileCreate) Save(ctx context.Context) (*Profile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileCreate) SaveX(ctx context.Context) *Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileCreate) defaults() {
	if _, ok := _c.mutation.WorksFromHome(); !ok {
		v := profile.DefaultWorksFromHome
		_c.mutation.SetWorksFromHome(v)
	}
	if _, ok := _c.mutation.HasHeatPump(); !ok {
		v := profile.DefaultHasHeatPump
		_c.mutation.SetHasHeatPump(v)
	}
	if _, ok := _c.mutation.HasDistrictHeating(); !ok {
		v := profile.DefaultHasDistrictHeating
		_c.mutation.SetHasDistrictHeating(v)
	}
	if _, ok := _c.mutation.HasSolarPanels(); !ok {
		v := profile.DefaultHasSolarPanels
		_c.mutation.SetHasSolarPanels(v)
	}
	if _, ok := _c.mutation.ContractType(); !ok {
		v := profile.DefaultContractType
		_c.mutation.SetContractType(v)
	}
	if _, ok := _c.mutation.Tier(); !ok {
		v := profile.DefaultTier
		_c.mutation.SetTier(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := profile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := profile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := profile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileCreate) check() error {
	if _, ok := _c.mutation.HouseholdSize(); !ok {
		return &ValidationError{Name: "household_size", err: errors.New(`ent: missing required field "Profile.household_size"`)}
	}
	if v, ok := _c.mutation.HouseholdSize(); ok {
		if err := profile.HouseholdSizeValidator(v); err != nil {
			return &ValidationError{Name: "household_size", err: fmt.Errorf(`ent: validator failed for field "Profile.household_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DwellingType(); !ok {
		return &ValidationError{Name: "dwelling_type", err: errors.New(`ent: missing required field "Profile.dwelling_type"`)}
	}
	if v, ok := _c.mutation.DwellingType(); ok {
		if err := profile.DwellingTypeValidator(v); err != nil {
			return &ValidationError{Name: "dwelling_type", err: fmt.Errorf(`ent: validator failed for field "Profile.dwelling_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WorksFromHome(); !ok {
		return &ValidationError{Name: "works_from_home", err: errors.New(`ent: missing required field "Profile.works_from_home"`)}
	}
	if _, ok := _c.mutation.HasHeatPump(); !ok {
		return &ValidationError{Name: "has_heat_pump", err: errors.New(`ent: missing required field "Profile.has_heat_pump"`)}
	}
	if _, ok := _c.mutation.HasDistrictHeating(); !ok {
		return &ValidationError{Name: "has_district_heating", err: errors.New(`ent: missing required field "Profile.has_district_heating"`)}
	}
	if _, ok := _c.mutation.HasSolarPanels(); !ok {
		return &ValidationError{Name: "has_solar_panels", err: errors.New(`ent: missing required field "Profile.has_solar_panels"`)}
	}
	if _, ok := _c.mutation.ContractType(); !ok {
		return &ValidationError{Name: "contract_type", err: errors.New(`ent: missing required field "Profile.contract_type"`)}
	}
	if _, ok := _c.mutation.MonthlyCostEur(); !ok {
		return &ValidationError{Name: "monthly_cost_eur", err: errors.New(`ent: missing required field "Profile.monthly_cost_eur"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "Profile.tier"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Profile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Profile.updated_at"`)}
	}
	return nil
}

func (_c *ProfileCreate) sqlSave(ctx context.Context) (*Profile, error) {
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

func (_c *ProfileCreate) createSpec() (*Profile, *sqlgraph.CreateSpec) {
	var (
		_node = &Profile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profile.Table, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.HouseholdSize(); ok {
		_spec.SetField(profile.FieldHouseholdSize, field.TypeString, value)
		_node.HouseholdSize = value
	}
	if value, ok := _c.mutation.DwellingType(); ok {
		_spec.SetField(profile.FieldDwellingType, field.TypeString, value)
		_node.DwellingType = value
	}
	if value, ok := _c.mutation.WorksFromHome(); ok {
		_spec.SetField(profile.FieldWorksFromHome, field.TypeBool, value)
		_node.WorksFromHome = value
	}
	if value, ok := _c.mutation.HasHeatPump(); ok {
		_spec.SetField(profile.FieldHasHeatPump, field.TypeBool, value)
		_node.HasHeatPump = value
	}
	if value, ok := _c.mutation.HasDistrictHeating(); ok {
		_spec.SetField(profile.FieldHasDistrictHeating, field.TypeBool, value)
		_node.HasDistrictHeating = value
	}
	if value, ok := _c.mutation.HasSolarPanels(); ok {
		_spec.SetField(profile.FieldHasSolarPanels, field.TypeBool, value)
		_node.HasSolarPanels = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(profile.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.ContractType(); ok {
		_spec.SetField(profile.FieldContractType, field.TypeString, value)
		_node.ContractType = value
	}
	if value, ok := _c.mutation.MonthlyCostEur(); ok {
		_spec.SetField(profile.FieldMonthlyCostEur, field.TypeFloat64, value)
		_node.MonthlyCostEur = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(profile.FieldTier, field.TypeString, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(profile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.EstimatesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VerifiedUsageIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PriceChecksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProfileCreateBulk is the builder for creating many Profile entities in bulk.
type ProfileCreateBulk struct {
	config
	err      error
	builders []*ProfileCreate
}

// Save creates the Profile entities in the database.
func (_c *ProfileCreateBulk) Save(ctx context.Context) ([]*Profile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Profile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileMutation)
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
func (_c *ProfileCreateBulk) SaveX(ctx context.Context) []*Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
