package domain

// Candidate pool bucket names, in selection order.
const (
	TopByBaseWithTokenInBucket            = "topByBaseWithTokenIn"
	TopByBaseWithTokenOutBucket           = "topByBaseWithTokenOut"
	TopByDirectSwapPoolBucket             = "topByDirectSwapPool"
	TopByTVLBucket                        = "topByTVL"
	TopByTVLUsingTokenInBucket            = "topByTVLUsingTokenIn"
	TopByTVLUsingTokenOutBucket           = "topByTVLUsingTokenOut"
	TopByTVLUsingTokenInSecondHopsBucket  = "topByTVLUsingTokenInSecondHops"
	TopByTVLUsingTokenOutSecondHopsBucket = "topByTVLUsingTokenOutSecondHops"
)

// CandidatePoolBucket is a named subset of the candidate pools.
type CandidatePoolBucket struct {
	Name  string `json:"name"`
	Pools []Pool `json:"pools"`
}

// CandidatePoolSelection explains how the candidate pools were chosen.
// Pools is the deduplicated union of all buckets and is the only part
// consumed by route enumeration.
type CandidatePoolSelection struct {
	Protocol Protocol              `json:"protocol"`
	Buckets  []CandidatePoolBucket `json:"buckets"`
	Pools    []Pool                `json:"pools"`
}

// GetBucket returns the pools of the named bucket.
func (s CandidatePoolSelection) GetBucket(name string) []Pool {
	for _, bucket := range s.Buckets {
		if bucket.Name == name {
			return bucket.Pools
		}
	}
	return nil
}

// CandidatePoolSelectionSummary is the address-only view of a selection.
type CandidatePoolSelectionSummary struct {
	Protocol Protocol            `json:"protocol"`
	Buckets  map[string][]string `json:"buckets"`
	Total    int                 `json:"total"`
}

// Summary returns the pool addresses per bucket.
func (s CandidatePoolSelection) Summary() CandidatePoolSelectionSummary {
	buckets := make(map[string][]string, len(s.Buckets))
	for _, bucket := range s.Buckets {
		addresses := make([]string, len(bucket.Pools))
		for i, pool := range bucket.Pools {
			addresses[i] = pool.Address
		}
		buckets[bucket.Name] = addresses
	}

	return CandidatePoolSelectionSummary{
		Protocol: s.Protocol,
		Buckets:  buckets,
		Total:    len(s.Pools),
	}
}
