package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrOutcome  = "outcome"
	AttrOrigin   = "origin"
)

// Cache outcomes recorded by the offline layer.
const (
	CacheHit      = "hit"
	CacheMiss     = "miss"
	CacheStore    = "store"
	CacheStale    = "stale"
	CacheFallback = "offline_fallback"
	CacheFailure  = "failure"
)

// Origin classes for cache outcomes.
const (
	OriginSame   = "same"
	OriginRemote = "remote"
)
