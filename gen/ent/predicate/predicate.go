// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// PriceCheck is the predicate function for pricecheck builders.
type PriceCheck func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// UsageEstimate is the predicate function for usageestimate builders.
type UsageEstimate func(*sql.Selector)

// VerifiedUsage is the predicate function for verifiedusage builders.
type VerifiedUsage func(*sql.Selector)
