package constants

// Tier is the subscription tier gate on a profile.
type Tier string

const (
	TierFree    Tier = "FREE"
	TierPremium Tier = "PREMIUM"
)

// UsageSource labels which figures a price check was computed from.
type UsageSource string

const (
	SourceEstimated UsageSource = "ESTIMATED"
	SourceVerified  UsageSource = "VERIFIED"
)

// SnapshotSource labels how a market snapshot was obtained.
type SnapshotSource string

const (
	SnapshotLive     SnapshotSource = "LIVE"
	SnapshotFallback SnapshotSource = "FALLBACK"
)
