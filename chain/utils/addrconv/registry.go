package addrconv

import (
	"fmt"
	"sync"

	"github.com/enclave-hq/chain-utils/chain"
	"github.com/enclave-hq/chain-utils/chain/evm"
	"github.com/enclave-hq/chain-utils/chain/tron"
)

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the shared process-wide converter registry that
// the package-level functions dispatch through. Converters added to it via
// Register are visible to every consumer of the default registry, the
// universal package's default codec included.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})

	return defaultRegistry
}

// ToBytes converts an address string to its 32-byte slot form based on the
// chain type.
//
// Usage:
//
//	slot, err := addrconv.ToBytes(chain.TypeEVM, "0x742d35Cc...")
func ToBytes(t chain.ChainType, address string) ([]byte, error) {
	return DefaultRegistry().ToBytes(t, address)
}

// FromBytes recovers the canonical native address string from a 32-byte
// slot based on the chain type.
func FromBytes(t chain.ChainType, b []byte) (string, error) {
	return DefaultRegistry().FromBytes(t, b)
}

// IsValid reports whether address is valid for the chain type. Unknown
// chain types are reported as invalid.
func IsValid(t chain.ChainType, address string) bool {
	return DefaultRegistry().IsValid(t, address)
}

// ForType returns the converter registered for a chain type in the default
// registry.
func ForType(t chain.ChainType) (Converter, error) {
	return DefaultRegistry().ForType(t)
}

// Register adds or replaces the converter for a chain type in the default
// registry. Supporting a new chain family means registering one converter
// here; call sites dispatching through this package pick it up unchanged.
func Register(t chain.ChainType, c Converter) {
	DefaultRegistry().Register(t, c)
}

// Registry manages address conversion strategies keyed by chain type. It
// delegates each conversion to the converter registered for the type.
type Registry struct {
	mu         sync.RWMutex
	converters map[chain.ChainType]Converter
}

// NewRegistry creates a registry with the EVM and Tron converters
// pre-registered. Solana and Cosmos have no converter yet; requests for
// them fail with chain.ErrUnsupportedChainType until one is registered.
func NewRegistry() *Registry {
	r := &Registry{
		converters: make(map[chain.ChainType]Converter),
	}

	r.Register(chain.TypeEVM, evm.AddressConverter{})
	r.Register(chain.TypeTron, tron.AddressConverter{})

	return r
}

// Register adds or replaces the converter for a chain type.
func (r *Registry) Register(t chain.ChainType, c Converter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.converters[t] = c
}

// ForType returns the converter registered for a chain type.
func (r *Registry) ForType(t chain.ChainType) (Converter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.converters[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", chain.ErrUnsupportedChainType, t)
	}

	return c, nil
}

// ToBytes converts an address string to its 32-byte slot form using the
// converter for the chain type.
func (r *Registry) ToBytes(t chain.ChainType, address string) ([]byte, error) {
	c, err := r.ForType(t)
	if err != nil {
		return nil, err
	}

	return c.ToBytes(address)
}

// FromBytes recovers the native address string from a 32-byte slot using
// the converter for the chain type.
func (r *Registry) FromBytes(t chain.ChainType, b []byte) (string, error) {
	c, err := r.ForType(t)
	if err != nil {
		return "", err
	}

	return c.FromBytes(b)
}

// IsValid reports whether address is valid for the chain type. Unknown
// chain types are reported as invalid rather than an error.
func (r *Registry) IsValid(t chain.ChainType, address string) bool {
	c, err := r.ForType(t)
	if err != nil {
		return false
	}

	return c.IsValid(address)
}
