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
	"github.com/tbruins/stroomadvies/gen/ent/pricecheck"
	"github.com/tbruins/stroomadvies/gen/ent/profile"
)

// PriceCheck is the model entity for the PriceCheck schema.
type PriceCheck struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// CheckedAt holds the value of the "checked_at" field.
	CheckedAt time.Time `json:"checked_at,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// UsedKwhPerMonth holds the value of the "used_kwh_per_month" field.
	UsedKwhPerMonth float64 `json:"used_kwh_per_month,omitempty"`
	// UsedRatePerKwh holds the value of the "used_rate_per_kwh" field.
	UsedRatePerKwh float64 `json:"used_rate_per_kwh,omitempty"`
	// SnapshotSource holds the value of the "snapshot_source" field.
	SnapshotSource string `json:"snapshot_source,omitempty"`
	// Top2 holds the value of the "top2" field.
	Top2 json.RawMessage `json:"top2,omitempty"`
	// Cheapest holds the value of the "cheapest" field.
	Cheapest json.RawMessage `json:"cheapest,omitempty"`
	// Recommendation holds the value of the "recommendation" field.
	Recommendation string `json:"recommendation,omitempty"`
	// MonthlySavingsEur holds the value of the "monthly_savings_eur" field.
	MonthlySavingsEur float64 `json:"monthly_savings_eur,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning string `json:"reasoning,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PriceCheckQuery when eager-loading is set.
	Edges        PriceCheckEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PriceCheckEdges holds the relations/edges for other nodes in the graph.
type PriceCheckEdges struct {
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PriceCheckEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PriceCheck) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pricecheck.FieldTop2, pricecheck.FieldCheapest:
			values[i] = new([]byte)
		case pricecheck.FieldUsedKwhPerMonth, pricecheck.FieldUsedRatePerKwh, pricecheck.FieldMonthlySavingsEur:
			values[i] = new(sql.NullFloat64)
		case pricecheck.FieldSource, pricecheck.FieldSnapshotSource, pricecheck.FieldRecommendation, pricecheck.FieldReasoning:
			values[i] = new(sql.NullString)
		case pricecheck.FieldCheckedAt:
			values[i] = new(sql.NullTime)
		case pricecheck.FieldID, pricecheck.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PriceCheck fields.
func (_m *PriceCheck) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pricecheck.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case pricecheck.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case pricecheck.FieldCheckedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field checked_at", values[i])
			} else if value.Valid {
				_m.CheckedAt = value.Time
			}
		case pricecheck.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case pricecheck.FieldUsedKwhPerMonth:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field used_kwh_per_month", values[i])
			} else if value.Valid {
				_m.UsedKwhPerMonth = value.Float64
			}
		case pricecheck.FieldUsedRatePerKwh:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field used_rate_per_kwh", values[i])
			} else if value.Valid {
				_m.UsedRatePerKwh = value.Float64
			}
		case pricecheck.FieldSnapshotSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field snapshot_source", values[i])
			} else if value.Valid {
				_m.SnapshotSource = value.String
			}
		case pricecheck.FieldTop2:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field top2", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Top2); err != nil {
					return fmt.Errorf("unmarshal field top2: %w", err)
				}
			}
		case pricecheck.FieldCheapest:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field cheapest", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Cheapest); err != nil {
					return fmt.Errorf("unmarshal field cheapest: %w", err)
				}
			}
		case pricecheck.FieldRecommendation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recommendation", values[i])
			} else if value.Valid {
				_m.Recommendation = value.String
			}
		case pricecheck.FieldMonthlySavingsEur:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_savings_eur", values[i])
			} else if value.Valid {
				_m.MonthlySavingsEur = value.Float64
			}
		case pricecheck.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PriceCheck.
// This includes values selected through modifiers, order, etc.
func (_m *PriceCheck) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProfile queries the "profile" edge of the PriceCheck entity.
func (_m *PriceCheck) QueryProfile() *ProfileQuery {
	return NewPriceCheckClient(_m.config).QueryProfile(_m)
}

// Update returns a builder for updating this PriceCheck.
// Note that you need to call PriceCheck.Unwrap() before calling this method if this PriceCheck
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PriceCheck) Update() *PriceCheckUpdateOne {
	return NewPriceCheckClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PriceCheck entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PriceCheck) Unwrap() *PriceCheck {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PriceCheck is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PriceCheck) String() string {
	var builder strings.Builder
	builder.WriteString("PriceCheck(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	builder.WriteString("checked_at=")
	builder.WriteString(_m.CheckedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("used_kwh_per_month=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsedKwhPerMonth))
	builder.WriteString(", ")
	builder.WriteString("used_rate_per_kwh=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsedRatePerKwh))
	builder.WriteString(", ")
	builder.WriteString("snapshot_source=")
	builder.WriteString(_m.SnapshotSource)
	builder.WriteString(", ")
	builder.WriteString("top2=")
	builder.WriteString(fmt.Sprintf("%v", _m.Top2))
	builder.WriteString(", ")
	builder.WriteString("cheapest=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cheapest))
	builder.WriteString(", ")
	builder.WriteString("recommendation=")
	builder.WriteString(_m.Recommendation)
	builder.WriteString(", ")
	builder.WriteString("monthly_savings_eur=")
	builder.WriteString(fmt.Sprintf("%v", _m.MonthlySavingsEur))
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteByte(')')
	return builder.String()
}

// PriceChecks is a parsable slice of PriceCheck.
type PriceChecks []*PriceCheck
