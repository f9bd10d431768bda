// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tbruins/stroomadvies/gen/ent/profile"
	"github.com/tbruins/stroomadvies/gen/ent/verifiedusage"
)

// Profile is the model entity for the Profile schema.
type Profile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// HouseholdSize holds the value of the "household_size" field.
	HouseholdSize string `json:"household_size,omitempty"`
	// DwellingType holds the value of the "dwelling_type" field.
	DwellingType string `json:"dwelling_type,omitempty"`
	// WorksFromHome holds the value of the "works_from_home" field.
	WorksFromHome bool `json:"works_from_home,omitempty"`
	// HasHeatPump holds the value of the "has_heat_pump" field.
	HasHeatPump bool `json:"has_heat_pump,omitempty"`
	// HasDistrictHeating holds the value of the "has_district_heating" field.
	HasDistrictHeating bool `json:"has_district_heating,omitempty"`
	// HasSolarPanels holds the value of the "has_solar_panels" field.
	HasSolarPanels bool `json:"has_solar_panels,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// ContractType holds the value of the "contract_type" field.
	ContractType string `json:"contract_type,omitempty"`
	// MonthlyCostEur holds the value of the "monthly_cost_eur" field.
	MonthlyCostEur float64 `json:"monthly_cost_eur,omitempty"`
	// Tier holds the value of the "tier" field.
	Tier string `json:"tier,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProfileQuery when eager-loading is set.
	Edges        ProfileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProfileEdges holds the relations/edges for other nodes in the graph.
type ProfileEdges struct {
	// Estimates holds the value of the estimates edge.
	Estimates []*UsageEstimate `json:"estimates,omitempty"`
	// VerifiedUsage holds the value of the verified_usage edge.
	VerifiedUsage *VerifiedUsage `json:"verified_usage,omitempty"`
	// PriceChecks holds the value of the price_checks edge.
	PriceChecks []*PriceCheck `json:"price_checks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// EstimatesOrErr returns the Estimates value or an error if the edge
// was not loaded in eager-loading.
func (e ProfileEdges) EstimatesOrErr() ([]*UsageEstimate, error) {
	if e.loadedTypes[0] {
		return e.Estimates, nil
	}
	return nil, &NotLoadedError{edge: "estimates"}
}

// VerifiedUsageOrErr returns the VerifiedUsage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProfileEdges) VerifiedUsageOrErr() (*VerifiedUsage, error) {
	if e.VerifiedUsage != nil {
		return e.VerifiedUsage, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: verifiedusage.Label}
	}
	return nil, &NotLoadedError{edge: "verified_usage"}
}

// PriceChecksOrErr returns the PriceChecks value or an error if the edge
// was not loaded in eager-loading.
func (e ProfileEdges) PriceChecksOrErr() ([]*PriceCheck, error) {
	if e.loadedTypes[2] {
		return e.PriceChecks, nil
	}
	return nil, &NotLoadedError{edge: "price_checks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Profile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case profile.FieldWorksFromHome, profile.FieldHasHeatPump, profile.FieldHasDistrictHeating, profile.FieldHasSolarPanels:
			values[i] = new(sql.NullBool)
		case profile.FieldMonthlyCostEur:
			values[i] = new(sql.NullFloat64)
		case profile.FieldHouseholdSize, profile.FieldDwellingType, profile.FieldProvider, profile.FieldContractType, profile.FieldTier:
			values[i] = new(sql.NullString)
		case profile.FieldCreatedAt, profile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case profile.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Profile fields.
func (_m *Profile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case profile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case profile.FieldHouseholdSize:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field household_size", values[i])
			} else if value.Valid {
				_m.HouseholdSize = value.String
			}
		case profile.FieldDwellingType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dwelling_type", values[i])
			} else if value.Valid {
				_m.DwellingType = value.String
			}
		case profile.FieldWorksFromHome:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field works_from_home", values[i])
			} else if value.Valid {
				_m.WorksFromHome = value.Bool
			}
		case profile.FieldHasHeatPump:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_heat_pump", values[i])
			} else if value.Valid {
				_m.HasHeatPump = value.Bool
			}
		case profile.FieldHasDistrictHeating:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_district_heating", values[i])
			} else if value.Valid {
				_m.HasDistrictHeating = value.Bool
			}
		case profile.FieldHasSolarPanels:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_solar_panels", values[i])
			} else if value.Valid {
				_m.HasSolarPanels = value.Bool
			}
		case profile.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case profile.FieldContractType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contract_type", values[i])
			} else if value.Valid {
				_m.ContractType = value.String
			}
		case profile.FieldMonthlyCostEur:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_cost_eur", values[i])
			} else if value.Valid {
				_m.MonthlyCostEur = value.Float64
			}
		case profile.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = value.String
			}
		case profile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case profile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Profile.
// This includes values selected through modifiers, order, etc.
func (_m *Profile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEstimates queries the "estimates" edge of the Profile entity.
func (_m *Profile) QueryEstimates() *UsageEstimateQuery {
	return NewProfileClient(_m.config).QueryEstimates(_m)
}

// QueryVerifiedUsage queries the "verified_usage" edge of the Profile entity.
func (_m *Profile) QueryVerifiedUsage() *VerifiedUsageQuery {
	return NewProfileClient(_m.config).QueryVerifiedUsage(_m)
}

// QueryPriceChecks queries the "price_checks" edge of the Profile entity.
func (_m *Profile) QueryPriceChecks() *PriceCheckQuery {
	return NewProfileClient(_m.config).QueryPriceChecks(_m)
}

// Update returns a builder for updating this Profile.
// Note that you need to call Profile.Unwrap() before calling this method if this Profile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Profile) Update() *ProfileUpdateOne {
	return NewProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Profile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Profile) Unwrap() *Profile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Profile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Profile) String() string {
	var builder strings.Builder
	builder.WriteString("Profile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("household_size=")
	builder.WriteString(_m.HouseholdSize)
	builder.WriteString(", ")
	builder.WriteString("dwelling_type=")
	builder.WriteString(_m.DwellingType)
	builder.WriteString(", ")
	builder.WriteString("works_from_home=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorksFromHome))
	builder.WriteString(", ")
	builder.WriteString("has_heat_pump=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasHeatPump))
	builder.WriteString(", ")
	builder.WriteString("has_district_heating=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasDistrictHeating))
	builder.WriteString(", ")
	builder.WriteString("has_solar_panels=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasSolarPanels))
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("contract_type=")
	builder.WriteString(_m.ContractType)
	builder.WriteString(", ")
	builder.WriteString("monthly_cost_eur=")
	builder.WriteString(fmt.Sprintf("%v", _m.MonthlyCostEur))
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(_m.Tier)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Profiles is a parsable slice of Profile.
type Profiles []*Profile
