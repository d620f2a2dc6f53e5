package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Protocol discriminates route variants. Every routing algorithm operates
// on a single protocol and new protocols are added as new values.
type Protocol string

const (
	// ProtocolV2 is the constant-product pair protocol.
	ProtocolV2 Protocol = "V2"
)

// IsSupported returns true if the router knows how to quote the protocol.
func (p Protocol) IsSupported() bool {
	return p == ProtocolV2
}

// ProtocolSet is a sorted, deduplicated list of protocols.
type ProtocolSet []Protocol

// NewProtocolSet sorts and deduplicates the given protocols.
// An empty input defaults to every supported protocol.
func NewProtocolSet(protocols ...Protocol) ProtocolSet {
	if len(protocols) == 0 {
		return ProtocolSet{ProtocolV2}
	}

	seen := make(map[Protocol]struct{}, len(protocols))
	set := make(ProtocolSet, 0, len(protocols))
	for _, protocol := range protocols {
		if _, ok := seen[protocol]; ok {
			continue
		}
		seen[protocol] = struct{}{}
		set = append(set, protocol)
	}

	sort.Slice(set, func(i, j int) bool { return set[i] < set[j] })
	return set
}

// Contains returns true if the protocol is in the set.
func (s ProtocolSet) Contains(protocol Protocol) bool {
	for _, p := range s {
		if p == protocol {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (s ProtocolSet) String() string {
	strs := make([]string, len(s))
	for i, p := range s {
		strs[i] = string(p)
	}
	return strings.Join(strs, ",")
}

// Route is a simple path through pools from TokenPath[0] to TokenPath[len-1].
type Route struct {
	Protocol  Protocol `json:"protocol"`
	TokenPath []Asset  `json:"tokenPath"`
	Pools     []Pool   `json:"pools"`
}

// NewRoute creates a route and validates its invariants.
func NewRoute(protocol Protocol, tokenPath []Asset, pools []Pool) (Route, error) {
	route := Route{
		Protocol:  protocol,
		TokenPath: tokenPath,
		Pools:     pools,
	}

	if err := route.Validate(); err != nil {
		return Route{}, err
	}

	return route, nil
}

// Validate checks that the route is a simple path and that every pool
// connects the adjacent assets of the token path.
func (r Route) Validate() error {
	if len(r.Pools) == 0 {
		return InvalidRouteError{Reason: "route has no pools"}
	}

	if len(r.Pools) != len(r.TokenPath)-1 {
		return InvalidRouteError{Reason: fmt.Sprintf("pool count (%d) does not match token path length (%d)", len(r.Pools), len(r.TokenPath))}
	}

	seen := make(map[string]struct{}, len(r.TokenPath))
	for _, asset := range r.TokenPath {
		address := NormalizeAddress(asset.Address)
		if _, ok := seen[address]; ok {
			return InvalidRouteError{Reason: fmt.Sprintf("asset (%s) repeats in token path", address)}
		}
		seen[address] = struct{}{}
	}

	for i, pool := range r.Pools {
		if !pool.Connects(r.TokenPath[i], r.TokenPath[i+1]) {
			return InvalidRouteError{Reason: fmt.Sprintf("pool (%s) does not connect %s and %s", pool.Address, r.TokenPath[i], r.TokenPath[i+1])}
		}
	}

	return nil
}

// Input returns the first asset of the route.
func (r Route) Input() Asset {
	return r.TokenPath[0]
}

// Output returns the last asset of the route.
func (r Route) Output() Asset {
	return r.TokenPath[len(r.TokenPath)-1]
}

// HopCount returns the number of pools in the route.
func (r Route) HopCount() int {
	return len(r.Pools)
}

// PoolAddresses returns the pool addresses in path order.
func (r Route) PoolAddresses() []string {
	addresses := make([]string, len(r.Pools))
	for i, pool := range r.Pools {
		addresses[i] = pool.Address
	}
	return addresses
}

// Key uniquely identifies the route by its pools.
func (r Route) Key() string {
	return strings.Join(r.PoolAddresses(), ">")
}

// String returns a human readable representation, e.g. "WETH -- [0xab..] --> USDC".
func (r Route) String() string {
	var sb strings.Builder
	for i, pool := range r.Pools {
		sb.WriteString(r.TokenPath[i].String())
		sb.WriteString(" -- [")
		sb.WriteString(pool.Address)
		sb.WriteString("] --> ")
	}
	if len(r.TokenPath) > 0 {
		sb.WriteString(r.Output().String())
	}
	return sb.String()
}
