package usecase

import (
	"context"

	"github.com/trebuchet-org/upgrade-audit/internal/domain/config"
)

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents a known network
type NetworkStatus struct {
	Name    string
	Network *config.Network
	Error   error
}

// ListNetworks is a use case for listing the networks an upgrade can be audited on
type ListNetworks struct {
	resolver NetworkResolver
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(resolver NetworkResolver) *ListNetworks {
	return &ListNetworks{
		resolver: resolver,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context) (*ListNetworksResult, error) {
	names := uc.resolver.Names()

	networks := make([]NetworkStatus, 0, len(names))
	for _, name := range names {
		status := NetworkStatus{
			Name: name,
		}

		network, err := uc.resolver.Resolve(name)
		if err != nil {
			status.Error = err
		} else {
			status.Network = network
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}
