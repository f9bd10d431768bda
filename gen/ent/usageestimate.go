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
	"github.com/tbruins/stroomadvies/gen/ent/usageestimate"
)

// UsageEstimate is the model entity for the UsageEstimate schema.
type UsageEstimate struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// KwhPerMonth holds the value of the "kwh_per_month" field.
	KwhPerMonth int `json:"kwh_per_month,omitempty"`
	// RatePerKwh holds the value of the "rate_per_kwh" field.
	RatePerKwh float64 `json:"rate_per_kwh,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence string `json:"confidence,omitempty"`
	// Assumptions holds the value of the "assumptions" field.
	Assumptions []string `json:"assumptions,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning string `json:"reasoning,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UsageEstimateQuery when eager-loading is set.
	Edges        UsageEstimateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UsageEstimateEdges holds the relations/edges for other nodes in the graph.
type UsageEstimateEdges struct {
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UsageEstimateEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UsageEstimate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case usageestimate.FieldAssumptions:
			values[i] = new([]byte)
		case usageestimate.FieldRatePerKwh:
			values[i] = new(sql.NullFloat64)
		case usageestimate.FieldKwhPerMonth:
			values[i] = new(sql.NullInt64)
		case usageestimate.FieldConfidence, usageestimate.FieldReasoning:
			values[i] = new(sql.NullString)
		case usageestimate.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case usageestimate.FieldID, usageestimate.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UsageEstimate fields.
func (_m *UsageEstimate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case usageestimate.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case usageestimate.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case usageestimate.FieldKwhPerMonth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field kwh_per_month", values[i])
			} else if value.Valid {
				_m.KwhPerMonth = int(value.Int64)
			}
		case usageestimate.FieldRatePerKwh:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rate_per_kwh", values[i])
			} else if value.Valid {
				_m.RatePerKwh = value.Float64
			}
		case usageestimate.FieldConfidence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.String
			}
		case usageestimate.FieldAssumptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field assumptions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Assumptions); err != nil {
					return fmt.Errorf("unmarshal field assumptions: %w", err)
				}
			}
		case usageestimate.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case usageestimate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UsageEstimate.
// This includes values selected through modifiers, order, etc.
func (_m *UsageEstimate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProfile queries the "profile" edge of the UsageEstimate entity.
func (_m *UsageEstimate) QueryProfile() *ProfileQuery {
	return NewUsageEstimateClient(_m.config).QueryProfile(_m)
}

// Update returns a builder for updating this UsageEstimate.
// Note that you need to call UsageEstimate.Unwrap() before calling this method if this UsageEstimate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UsageEstimate) Update() *UsageEstimateUpdateOne {
	return NewUsageEstimateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UsageEstimate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UsageEstimate) Unwrap() *UsageEstimate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UsageEstimate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UsageEstimate) String() string {
	var builder strings.Builder
	builder.WriteString("UsageEstimate(")
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
	builder.WriteString("confidence=")
	builder.WriteString(_m.Confidence)
	builder.WriteString(", ")
	builder.WriteString("assumptions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Assumptions))
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UsageEstimates is a parsable slice of UsageEstimate.
type UsageEstimates []*UsageEstimate
