package chain

import (
	"fmt"
	"sync"

	"github.com/enclave-hq/chain-utils/pkg/logger"
)

// Registry owns the bidirectional mapping between SLIP-44 identifiers and
// native chain identifiers, plus per-chain metadata. The forward map is
// keyed by SLIP-44, the reverse map by the canonical string form of the
// native chain ID, so numeric identifiers given as 1 and "1" resolve to the
// same record.
//
// Registry is safe for concurrent use: Register takes the write lock,
// lookups take the read lock.
type Registry struct {
	mu       sync.RWMutex
	bySlip44 map[uint32]ChainInfo
	byNative map[string]uint32
	// order holds SLIP-44 keys in first-registration order for AllChains.
	order []uint32
	lggr  logger.Logger
}

// RegistryOption configures a Registry under construction.
type RegistryOption func(*registryOptions)

type registryOptions struct {
	lggr   logger.Logger
	noSeed bool
}

// WithLogger sets the logger used for registration diagnostics. The default
// discards all output.
func WithLogger(lggr logger.Logger) RegistryOption {
	return func(o *registryOptions) {
		o.lggr = lggr
	}
}

// WithoutSeed returns a registry with no pre-registered chains. Intended
// for tests that need full control over the registry contents.
func WithoutSeed() RegistryOption {
	return func(o *registryOptions) {
		o.noSeed = true
	}
}

// NewRegistry returns a registry pre-populated with the default seed table
// unless WithoutSeed is given.
func NewRegistry(opts ...RegistryOption) *Registry {
	o := registryOptions{lggr: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{
		bySlip44: make(map[uint32]ChainInfo),
		byNative: make(map[string]uint32),
		lggr:     o.lggr.Named("registry"),
	}

	if !o.noSeed {
		for _, info := range seedChains {
			r.Register(info)
		}
	}

	return r
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// Default returns the shared process-wide registry, seeded on first use.
// Callers that need isolation (tests in particular) should build their own
// registry with NewRegistry instead.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})

	return defaultRegistry
}

// Register inserts info, replacing any prior record under the same SLIP-44
// key and any prior reverse mapping under the same native identifier. Last
// write wins on both maps; no conflict validation is performed. An
// overwrite that changes an existing association is logged, since it can
// leave the reverse lookup for a native ID pointing at a record whose own
// native ID differs.
func (r *Registry) Register(info ChainInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := info.ChainID.String()

	if prev, ok := r.bySlip44[info.Slip44]; !ok {
		r.order = append(r.order, info.Slip44)
	} else if prev.ChainID != info.ChainID {
		r.lggr.Warnw("replacing chain registration",
			"slip44", info.Slip44,
			"previousChainID", prev.ChainID.String(),
			"chainID", key,
		)
	}

	if prev, ok := r.byNative[key]; ok && prev != info.Slip44 {
		r.lggr.Warnw("replacing reverse chain mapping",
			"chainID", key,
			"previousSlip44", prev,
			"slip44", info.Slip44,
		)
	}

	r.bySlip44[info.Slip44] = info
	if !info.ChainID.IsZero() {
		r.byNative[key] = info.Slip44
	}
}

// Slip44ByChainID returns the SLIP-44 identifier registered for a native
// chain ID.
func (r *Registry) Slip44ByChainID(id ChainID) (uint32, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slip44, ok := r.byNative[id.String()]
	if !ok {
		return 0, fmt.Errorf("native chain ID %q: %w", id.String(), ErrChainNotFound)
	}

	return slip44, nil
}

// ChainIDBySlip44 returns the native chain identifier recorded for a
// SLIP-44 value.
func (r *Registry) ChainIDBySlip44(slip44 uint32) (ChainID, error) {
	info, err := r.InfoBySlip44(slip44)
	if err != nil {
		return ChainID{}, err
	}

	return info.ChainID, nil
}

// InfoBySlip44 returns the full registry record for a SLIP-44 value.
func (r *Registry) InfoBySlip44(slip44 uint32) (ChainInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info, ok := r.bySlip44[slip44]
	if !ok {
		return ChainInfo{}, fmt.Errorf("slip44 %d: %w", slip44, ErrChainNotFound)
	}

	return info, nil
}

// InfoByChainID returns the full registry record for a native chain ID. It
// composes the reverse lookup with InfoBySlip44, so after conflicting
// registrations it reflects whichever record currently owns the SLIP-44
// key.
func (r *Registry) InfoByChainID(id ChainID) (ChainInfo, error) {
	slip44, err := r.Slip44ByChainID(id)
	if err != nil {
		return ChainInfo{}, err
	}

	return r.InfoBySlip44(slip44)
}

// TypeBySlip44 returns the chain type recorded for a SLIP-44 value.
func (r *Registry) TypeBySlip44(slip44 uint32) (ChainType, error) {
	info, err := r.InfoBySlip44(slip44)
	if err != nil {
		return "", err
	}

	return info.Type, nil
}

// IsSupportedChainID reports whether a native chain ID has a registry
// entry.
func (r *Registry) IsSupportedChainID(id ChainID) bool {
	_, err := r.Slip44ByChainID(id)
	return err == nil
}

// IsSupportedSlip44 reports whether a SLIP-44 value has a registry entry.
func (r *Registry) IsSupportedSlip44(slip44 uint32) bool {
	_, err := r.InfoBySlip44(slip44)
	return err == nil
}

// AllChains returns a snapshot of all registered records in
// first-registration order. The snapshot reflects live state at call time.
func (r *Registry) AllChains() []ChainInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ChainInfo, 0, len(r.order))
	for _, slip44 := range r.order {
		out = append(out, r.bySlip44[slip44])
	}

	return out
}

// AllSlip44s returns all registered SLIP-44 values in first-registration
// order.
func (r *Registry) AllSlip44s() []uint32 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]uint32, len(r.order))
	copy(out, r.order)

	return out
}
