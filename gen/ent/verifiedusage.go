// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tbruins/stroomadvies/gen/ent/profile"
	"github.com/tbruins/stroomadvies/gen/ent/verifiedusage"
)

// VerifiedUsage is the model entity for the VerifiedUsage schema.
type VerifiedUsage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// KwhPerMonth holds the value of the "kwh_per_month" field.
	KwhPerMonth float64 `json:"kwh_per_month,omitempty"`
	// RatePerKwh holds the value of the "rate_per_kwh" field.
	RatePerKwh float64 `json:"rate_per_kwh,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// ContractType holds the value of the "contract_type" field.
	ContractType string `json:"contract_type,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence string `json:"confidence,omitempty"`
	// Warnings holds the value of the "warnings" field.
	Warnings []string `json:"warnings,omitempty"`
	// ConfirmedAt holds the value of the "confirmed_at" field.
	ConfirmedAt time.Time `json:"confirmed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VerifiedUsageQuery when eager-loading is set.
	Edges        VerifiedUsageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VerifiedUsageEdges holds the relations/edges for other nodes in the graph.
type VerifiedUsageEdges struct {
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VerifiedUsageEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VerifiedUsage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verifiedusage.FieldWarnings:
			values[i] = new([]byte)
		case verifiedusage.FieldKwhPerMonth, verifiedusage.FieldRatePerKwh:
			values[i] = new(sql.NullFloat64)
		case verifiedusage.FieldProvider, verifiedusage.FieldContractType, verifiedusage.FieldConfidence:
			values[i] = new(sql.NullString)
		case verifiedusage.FieldConfirmedAt:
			values[i] = new(sql.NullTime)
		case verifiedusage.FieldID, verifiedusage.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VerifiedUsage fields.
func (_m *VerifiedUsage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verifiedusage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case verifiedusage.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case verifiedusage.FieldKwhPerMonth:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field kwh_per_month", values[i])
			} else if value.Valid {
				_m.KwhPerMonth = value.Float64
			}
		case verifiedusage.FieldRatePerKwh:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rate_per_kwh", values[i])
			} else if value.Valid {
				_m.RatePerKwh = value.Float64
			}
		case verifiedusage.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case verifiedusage.FieldContractType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contract_type", values[i])
			} else if value.Valid {
				_m.ContractType = value.String
			}
		case verifiedusage.FieldConfidence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.String
			}
		case verifiedusage.FieldWarnings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field warnings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Warnings); err != nil {
					return fmt.Errorf("unmarshal field warnings: %w", err)
				}
			}
		case verifiedusage.FieldConfirmedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field confirmed_at", values[i])
			} else if value.Valid {
				_m.ConfirmedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VerifiedUsage.
// This includes values selected through modifiers, order, etc.
func (_m *VerifiedUsage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProfile queries the "profile" edge of the VerifiedUsage entity.
func (_m *VerifiedUsage) QueryProfile() *ProfileQuery {
	return NewVerifiedUsageClient(_m.config).QueryProfile(_m)
}

// Update returns a builder for updating this VerifiedUsage.
// Note that you need to call VerifiedUsage.Unwrap() before calling this method if this VerifiedUsage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VerifiedUsage) Update() *VerifiedUsageUpdateOne {
	return NewVerifiedUsageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VerifiedUsage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VerifiedUsage) Unwrap() *VerifiedUsage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VerifiedUsage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VerifiedUsage) String() string {
	var builder strings.Builder
	builder.WriteString("VerifiedUsage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	builder.WriteString("kwh_per_month=")
	builder.WriteString(fmt.Sprintf("%v", _m.KwhPerMonth))
	builder.WriteString(", ")
	builder.WriteString("rate_per_kwh=")
	builder.WriteString(fmt.Sprintf("%v", _m.RatePerKwh))
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("contract_type=")
	builder.WriteString(_m.ContractType)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(_m.Confidence)
	builder.WriteString(", ")
	builder.WriteString("warnings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Warnings))
	builder.WriteString(", ")
	builder.WriteString("confirmed_at=")
	builder.WriteString(_m.ConfirmedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VerifiedUsages is a parsable slice of VerifiedUsage.
type VerifiedUsages []*VerifiedUsage
