package config

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/trebuchet-org/upgrade-audit/internal/domain"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/config"
)

// NetworkResolver resolves network names to upgrade deployments
type NetworkResolver struct {
	networks map[string]*config.Network
	mu       sync.RWMutex
}

// NewNetworkResolver creates a new network resolver over the given networks
func NewNetworkResolver(networks map[string]*config.Network) *NetworkResolver {
	r := &NetworkResolver{
		networks: make(map[string]*config.Network, len(networks)),
	}
	for name, network := range networks {
		r.Add(name, network)
	}
	return r
}

// Add registers (or replaces) a network under a case-insensitive name
func (r *NetworkResolver) Add(name string, network *config.Network) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if network.Name == "" {
		network.Name = name
	}
	r.networks[strings.ToLower(name)] = network
}

// Resolve resolves a network name to its configuration
func (r *NetworkResolver) Resolve(networkName string) (*config.Network, error) {
	if networkName == "" {
		return nil, &domain.ConfigError{
			Key:    "network",
			Reason: "no network selected (set NETWORK or pass --network)",
		}
	}

	r.mu.RLock()
	network, ok := r.networks[strings.ToLower(networkName)]
	r.mu.RUnlock()

	if !ok {
		return nil, &domain.ConfigError{
			Key:    "network",
			Value:  networkName,
			Reason: fmt.Sprintf("unknown network, expected one of: %s", strings.Join(r.Names(), ", ")),
		}
	}

	return network, nil
}

// Names returns the known network names in lexical order
func (r *NetworkResolver) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.networks))
	for _, network := range r.networks {
		names = append(names, network.Name)
	}
	sort.Strings(names)
	return names
}

// Networks returns the known networks sorted by name
func (r *NetworkResolver) Networks() []*config.Network {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()

	networks := make([]*config.Network, 0, len(names))
	for _, name := range names {
		networks = append(networks, r.networks[strings.ToLower(name)])
	}
	return networks
}
